// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DataResponse is the success envelope written by every HTTP endpoint.
type DataResponse struct {
	// Data holds the operation payload.
	Data any `json:"data"`

	// Paging is set only by list endpoints that paginate.
	Paging *Paging `json:"paging,omitempty"`
}

// ErrorResponse is the failure envelope. Errors is either a single message
// or a list of validation violations.
type ErrorResponse struct {
	Errors any `json:"errors"`
}

// Paging describes the position of a page inside a search result.
type Paging struct {
	Page      int   `json:"page"`
	TotalPage int   `json:"total_page"`
	TotalItem int64 `json:"total_item"`
}

// NewPaging computes paging metadata for the given page, page size and
// total number of matching items. TotalPage is never less than 1.
func NewPaging(page, size int, totalItem int64) Paging {
	totalPage := 1
	if size > 0 && totalItem > 0 {
		totalPage = int((totalItem + int64(size) - 1) / int64(size))
	}

	return Paging{
		Page:      page,
		TotalPage: totalPage,
		TotalItem: totalItem,
	}
}
