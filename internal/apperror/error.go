package apperror

import "errors"

type Code string

const (
	CodeValidation Code = "validation"
	CodeNotFound   Code = "not_found"
	CodeConstraint Code = "constraint"
	CodeInternal   Code = "internal"
)

// Error is a failure the HTTP layer knows how to report. Detail holds the
// store's own wording for constraint violations and is sent to the client
// next to Message.
type Error struct {
	Code    Code
	Message string
	Detail  string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Message
	}
	return e.Message + ": " + e.Detail
}

func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Constraint reports a row rejected by a CHECK, foreign key or NOT NULL rule.
func Constraint(detail string) *Error {
	return &Error{
		Code:    CodeConstraint,
		Message: "database operation failed",
		Detail:  detail,
	}
}

// GetCode returns the code of the first *Error in err's chain, CodeInternal
// for any other error and "" for nil.
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
