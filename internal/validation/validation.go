// Package validation binds request data and runs the payload's own checks.
//
// CustomValidationErrors are turned into field errors the client can read.
// Any other error from Validate becomes a plain 400 carrying its message.
package validation

import (
	"fmt"
	"net/http"

	"github.com/deppfellow/go-qa/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validatable is implemented by request payload types that know how to validate themselves.
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a specific field.
type CustomValidationError struct {
	Field   string
	Message string
}

type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds the request into payload, which must be a pointer,
// and validates it. Failures are returned as 400 *errs.HTTPError values.
//
// A body sent without a Content-Type is decoded as JSON.
func BindAndValidate(c echo.Context, payload Validatable) error {
	req := c.Request()
	if req.ContentLength != 0 && req.Header.Get(echo.HeaderContentType) == "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindMessage(err), false, nil, nil)
	}

	if err := payload.Validate(); err != nil {
		msg, fieldErrors := extractValidationError(err)
		return errs.ValidationError(msg, fieldErrors)
	}

	return nil
}

func bindMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code == http.StatusUnsupportedMediaType {
			return "Unsupported Content-Type, expected application/json"
		}
		return fmt.Sprint(he.Message)
	}
	return err.Error()
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var custom CustomValidationErrors
	if !errors.As(err, &custom) {
		return err.Error(), nil
	}

	fieldErrors := make([]errs.FieldError, 0, len(custom))
	for _, e := range custom {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: e.Field, Error: e.Message})
	}
	return "Validation failed", fieldErrors
}
