// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// violations collects rule failures for a single input.
type violations []string

func (v *violations) add(format string, args ...any) {
	*v = append(*v, fmt.Sprintf(format, args...))
}

func (v violations) err() error {
	if len(v) == 0 {
		return nil
	}

	return &ValidationError{Violations: v}
}

// required trims s and checks it is present and at most maxLen characters.
func (v *violations) required(field string, s *string, maxLen int) {
	*s = strings.TrimSpace(*s)
	if *s == "" {
		v.add("%q is required", field)
		return
	}
	v.maxLen(field, *s, maxLen)
}

// requiredPtr is [violations.required] for fields that may be absent from a
// partial update. A nil pointer passes; a present blank value fails.
func (v *violations) requiredPtr(field string, s *string, maxLen int) {
	if s == nil {
		return
	}
	v.required(field, s, maxLen)
}

// optional trims *s, turns a blank value into nil and checks the length.
func (v *violations) optional(field string, s **string, maxLen int) {
	if *s == nil {
		return
	}

	trimmed := strings.TrimSpace(**s)
	if trimmed == "" {
		*s = nil
		return
	}
	*s = &trimmed
	v.maxLen(field, trimmed, maxLen)
}

func (v *violations) maxLen(field, s string, maxLen int) {
	if utf8.RuneCountInString(s) > maxLen {
		v.add("%q length must be less than or equal to %d characters long", field, maxLen)
	}
}

func (v *violations) email(field string, s *string) {
	if s == nil {
		return
	}

	addr, err := mail.ParseAddress(*s)
	if err != nil || addr.Address != *s || addr.Name != "" {
		v.add("%q must be a valid email", field)
	}
}

func (v *violations) digits(field string, s *string) {
	if s == nil {
		return
	}

	for _, r := range *s {
		if r < '0' || r > '9' {
			v.add("%q must only contain digits", field)
			return
		}
	}
}
