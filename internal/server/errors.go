package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/categorizer"
	"github.com/jonathan/resume-analyzer/internal/fetch"
)

// ErrAnalysisNotFound indicates the requested analysis record was not found
type ErrAnalysisNotFound struct {
	ID uuid.UUID
}

func (e *ErrAnalysisNotFound) Error() string {
	return fmt.Sprintf("analysis not found: %s", e.ID)
}

// ErrHistoryDisabled indicates the server runs without a database
type ErrHistoryDisabled struct{}

func (e *ErrHistoryDisabled) Error() string {
	return "analysis history is not enabled on this server"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Caller mistakes map to 4xx, upstream failures to 502.
func HTTPStatus(err error) int {
	var notFound *ErrAnalysisNotFound
	var disabled *ErrHistoryDisabled
	var validation *ErrValidation
	var input *analyzer.InputError
	var transport *categorizer.TransportError
	var fetchErr *fetch.Error

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &disabled):
		return http.StatusNotImplemented
	case errors.As(err, &validation), errors.As(err, &input):
		return http.StatusBadRequest
	case errors.As(err, &transport), errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
