// Package server provides the HTTP REST API for the resume coach.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ErrAnalysisNotFound indicates a stored analysis was not found
type ErrAnalysisNotFound struct {
	ID uuid.UUID
}

func (e *ErrAnalysisNotFound) Error() string {
	return fmt.Sprintf("analysis not found: %s", e.ID)
}

// ErrAnalyzerUnavailable indicates the server was started without an AI key
type ErrAnalyzerUnavailable struct{}

func (e *ErrAnalyzerUnavailable) Error() string {
	return "analysis is unavailable: no API key configured"
}

// ErrStorageUnavailable indicates the server was started without a database
type ErrStorageUnavailable struct{}

func (e *ErrStorageUnavailable) Error() string {
	return "storage is unavailable: no database configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrAnalysisNotFound:
		return http.StatusNotFound
	case *ErrAnalyzerUnavailable, *ErrStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
