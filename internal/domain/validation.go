package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ContentValidationError reports a generated structure that breaks the
// content model. Path names the offending element using JSON field names,
// for example "sections[2].points[0].chunks[1].explanation".
type ContentValidationError struct {
	Path   string
	Reason string
	// Err is an optional more specific cause, such as ErrEmptyDeck or a
	// JSON syntax error.
	Err error
}

// Error implements the error interface.
func (e *ContentValidationError) Error() string {
	msg := "content validation failed"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes ErrValidation and the specific cause to errors.Is/As.
func (e *ContentValidationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Err}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// structValidator returns the shared validator. Field names in errors are
// taken from json tags so that paths match the wire format.
func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// validateWire validates a wire struct and converts the first field error
// into a *ContentValidationError.
func validateWire(v any) error {
	err := structValidator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ContentValidationError{Reason: "invalid structure", Err: err}
	}
	return fieldErrorToContentError(fieldErrs[0])
}

func fieldErrorToContentError(fe validator.FieldError) *ContentValidationError {
	path := fe.Namespace()
	// drop the root struct name
	if i := strings.IndexByte(path, '.'); i >= 0 {
		path = path[i+1:]
	}

	cve := &ContentValidationError{Path: path}
	switch fe.Tag() {
	case "min":
		cve.Reason = "must not be empty"
		if fe.Field() == "flashcards" {
			cve.Err = ErrEmptyDeck
		}
	case "oneof":
		cve.Reason = fmt.Sprintf("unknown chunk type %q", fe.Value())
	case "required", "required_if", "required_unless":
		cve.Reason = "is required"
	case "gte", "lte":
		cve.Reason = fmt.Sprintf("must be between 0 and 100, got %v", fe.Value())
		cve.Err = ErrInvalidAccuracy
	default:
		cve.Reason = fmt.Sprintf("failed %q check", fe.Tag())
	}
	return cve
}
