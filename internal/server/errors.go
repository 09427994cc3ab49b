// Package server provides the HTTP REST API for the resume analyzer.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/skills"
)

// ErrSessionNotFound indicates the analysis session does not exist or
// has expired
type ErrSessionNotFound struct {
	ID uuid.UUID
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// ErrCourseNotFound indicates the course index is outside the corpus
type ErrCourseNotFound struct {
	Index int
}

func (e *ErrCourseNotFound) Error() string {
	return fmt.Sprintf("course not found: %d", e.Index)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		sessionErr    *ErrSessionNotFound
		courseErr     *ErrCourseNotFound
		validationErr *ErrValidation
		extractionErr *ingestion.ExtractionError
		roleErr       *skills.UnknownRoleError
	)
	switch {
	case errors.As(err, &sessionErr), errors.As(err, &courseErr):
		return http.StatusNotFound
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &extractionErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &roleErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
