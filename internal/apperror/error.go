package apperror

import "errors"

type Code string

const (
	CodeValidation Code = "validation"
	CodeNotFound   Code = "not_found"
	CodeConflict   Code = "conflict"
	CodeInternal   Code = "internal"
)

type Error struct {
	Code    Code
	Message string
	// Fields maps a persisted field name to the rule keys it failed.
	Fields map[string][]string
}

func (e *Error) Error() string {
	return e.Message
}

func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func Validation(message string, fields map[string][]string) *Error {
	return &Error{
		Code:    CodeValidation,
		Message: message,
		Fields:  fields,
	}
}

func GetCode(err error) Code {
	if err == nil {
		return ""
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return CodeInternal
}

func GetFields(err error) map[string][]string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}
