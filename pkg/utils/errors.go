package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Error kinds. A StructuredError matches its kind with errors.Is anywhere in
// a wrapped chain.
var (
	ErrFileSystem = errors.New("filesystem")
	ErrConfig     = errors.New("config")
	ErrValidation = errors.New("validation")
)

// ErrorContext says where an error happened.
type ErrorContext struct {
	Component string
	Operation string
	Resource  string
}

// StructuredError carries a code, a kind and the failing resource.
type StructuredError struct {
	Code      string
	Message   string
	Kind      error
	Context   *ErrorContext
	RootCause error
	Timestamp int64
}

func (e *StructuredError) Error() string {
	if e.RootCause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.RootCause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the root cause.
func (e *StructuredError) Unwrap() error {
	return e.RootCause
}

// Is reports whether target is this error's kind.
func (e *StructuredError) Is(target error) bool {
	return target == e.Kind
}

func newError(code string, kind error, message string, ctx *ErrorContext, rootCause error) *StructuredError {
	return &StructuredError{
		Code:      code,
		Message:   message,
		Kind:      kind,
		Context:   ctx,
		RootCause: rootCause,
		Timestamp: time.Now().Unix(),
	}
}

// NewFileSystemError reports a failed read, write, walk or delete of path.
func NewFileSystemError(operation, path string, rootCause error) *StructuredError {
	return newError("FS_ERROR", ErrFileSystem, "Filesystem error during "+operation,
		&ErrorContext{Operation: operation, Resource: path}, rootCause)
}

// NewConfigError reports a config file that could not be loaded or is invalid.
func NewConfigError(key string, rootCause error) *StructuredError {
	return newError("CFG_ERROR", ErrConfig, "Configuration error for "+key,
		&ErrorContext{Resource: key}, rootCause)
}

// NewValidationError reports malformed input.
func NewValidationError(field, reason string) *StructuredError {
	return newError("VAL_ERROR", ErrValidation, fmt.Sprintf("Validation failed for %s: %s", field, reason),
		&ErrorContext{Resource: field}, nil)
}

// WithComponent records which component raised the error.
func (e *StructuredError) WithComponent(component string) *StructuredError {
	if e.Context == nil {
		e.Context = &ErrorContext{}
	}
	e.Context.Component = component
	return e
}

// FormatError renders the outermost StructuredError in err as a single log
// line, or err.Error() when there is none.
func FormatError(err error) string {
	var se *StructuredError
	if !errors.As(err, &se) {
		return err.Error()
	}

	parts := []string{fmt.Sprintf("Error [%s]: %s", se.Code, se.Message)}
	if ctx := se.Context; ctx != nil {
		for _, field := range [][2]string{
			{"Component", ctx.Component},
			{"Operation", ctx.Operation},
			{"Resource", ctx.Resource},
		} {
			if field[1] != "" {
				parts = append(parts, field[0]+": "+field[1])
			}
		}
	}
	if se.RootCause != nil {
		parts = append(parts, fmt.Sprintf("Root Cause: %v", se.RootCause))
	}
	return strings.Join(parts, " | ")
}
