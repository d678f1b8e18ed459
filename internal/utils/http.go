// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-contacts/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteData writes a success envelope {"data": ...} with an optional paging block.
func WriteData(w http.ResponseWriter, data any, paging *models.Paging, statusCode int) (int, error) {
	return WriteJSON(w, models.DataResponse{Data: data, Paging: paging}, statusCode)
}

// WriteErrors writes a failure envelope {"errors": ...}.
func WriteErrors(w http.ResponseWriter, errs any, statusCode int) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Errors: errs}, statusCode)
}
