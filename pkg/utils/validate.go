// Package utils holds the request binding and validation helpers shared by
// the route packages. Drafts carry their rules as validate tags, so a handler
// only ever calls BindRequest and hands the failure back to the error
// middleware.
package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// BindRequest decodes the request body into a draft of type T and runs its
// validate tags. Bind and validation failures both come back as a 400 so the
// caller can return the error unwrapped.
func BindRequest[T any](c echo.Context) (T, error) {
	var draft T

	if err := c.Bind(&draft); err != nil {
		return draft, httperror.WrapError(http.StatusBadRequest, err)
	}

	if _, err := Validate(draft); err != nil {
		return draft, httperror.WrapError(http.StatusBadRequest, err)
	}

	return draft, nil
}

// Validate runs the struct's validate tags and returns the value with a
// readable error on failure.
func Validate[T any](value T) (T, error) {
	if err := validate.Struct(value); err != nil {
		return value, ValidationErrorToString(value, err)
	}

	return value, nil
}

// ValidateValue checks a single value against a validate tag expression.
func ValidateValue(value any, tag string) error {
	err := validate.Var(value, tag)
	if err != nil {
		return ValidationErrorToString(value, err)
	}
	return nil
}

// ValidationErrorToString flattens validator failures into one message with a
// line per failed field.
func ValidationErrorToString(input any, err error) error {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		msg := ""
		for _, fe := range verrs {
			msg += fmt.Sprintf("\n • Failed %T validation for field '%s': rule '%s' expected '%s', got '%v'.", input, fe.StructField(), fe.Tag(), fe.Param(), fe.Value())
		}
		return errors.New(msg)
	}

	return err
}
