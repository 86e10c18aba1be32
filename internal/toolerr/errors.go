// Package toolerr defines the failure taxonomy shared by every tool.
//
// Failures are classified with cockroachdb/errors marks so callers can test
// the kind with errors.Is while the message stays human readable.
package toolerr

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
)

// Kind names a failure class.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindLogic      Kind = "logic"
	KindRemote     Kind = "remote"
	KindInternal   Kind = "internal"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrLogic      = errors.New("logic error")
	ErrRemote     = errors.New("remote error")
)

// FieldError describes one offending input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed validation for a tool.
type ValidationError struct {
	Tool   string       `json:"tool"`
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Field == "" {
			parts = append(parts, f.Message)
			continue
		}
		parts = append(parts, f.Field+": "+f.Message)
	}
	if e.Tool == "" {
		return "invalid arguments: " + strings.Join(parts, "; ")
	}
	return fmt.Sprintf("invalid arguments for %s: %s", e.Tool, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Validation builds a ValidationError for the given tool.
func Validation(tool string, fields ...FieldError) *ValidationError {
	return &ValidationError{Tool: tool, Fields: fields}
}

// NotFound returns an error marked as ErrNotFound.
func NotFound(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrNotFound)
}

// Logic returns an error marked as ErrLogic.
func Logic(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrLogic)
}

// RemoteError is a non-success response from the platform API.
type RemoteError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

func (e *RemoteError) Is(target error) bool {
	switch target {
	case ErrRemote:
		return true
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// Remote wraps a transport failure that never produced a response.
func Remote(err error, method, path string) error {
	return errors.Mark(errors.Wrapf(err, "%s %s", method, path), ErrRemote)
}

// KindOf classifies err. Not-found wins over remote for a 404.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrLogic):
		return KindLogic
	case errors.Is(err, ErrRemote):
		return KindRemote
	}
	return KindInternal
}
