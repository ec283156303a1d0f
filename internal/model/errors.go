package model

import (
	"errors"
	"fmt"
)

// ServiceError is an error reported by the NIP24 service in /result/error
type ServiceError struct {
	Code        int
	Description string
}

func (e *ServiceError) Error() string {
	if name := ErrorName(e.Code); name != "" {
		return fmt.Sprintf("nip24 [%d %s]: %s", e.Code, name, e.Description)
	}
	return fmt.Sprintf("nip24 [%d]: %s", e.Code, e.Description)
}

// NewServiceError creates a new service error
func NewServiceError(code int, description string) *ServiceError {
	return &ServiceError{
		Code:        code,
		Description: description,
	}
}

// ClientError represents a condition detected by the client before or
// instead of getting a usable answer from the service
type ClientError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("nip24 client [%d]: %s (%v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("nip24 client [%d]: %s", e.Code, e.Message)
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// NewClientError creates a client error with the default message for code
func NewClientError(code int, cause error) *ClientError {
	return &ClientError{
		Code:    code,
		Message: ErrorMessage(code),
		Cause:   cause,
	}
}

// ErrInput returns error for missing or out-of-range call arguments
func ErrInput() *ClientError {
	return NewClientError(ErrCLIInput, nil)
}

// ErrNumberKind returns error for an identifier kind the path builder does not know
func ErrNumberKind() *ClientError {
	return NewClientError(ErrCLINumber, nil)
}

// ErrInvalidNumber returns the per-kind error for an identifier that fails validation
func ErrInvalidNumber(kind Number) *ClientError {
	switch kind {
	case NIP:
		return NewClientError(ErrCLINIP, nil)
	case REGON:
		return NewClientError(ErrCLIREGON, nil)
	case KRS:
		return NewClientError(ErrCLIKRS, nil)
	case EUVAT:
		return NewClientError(ErrCLIEUVAT, nil)
	case IBAN:
		return NewClientError(ErrCLIIBAN, nil)
	default:
		return ErrNumberKind()
	}
}

// ErrConnect returns error when the service could not be reached
func ErrConnect(cause error) *ClientError {
	return NewClientError(ErrCLIConnect, cause)
}

// ErrResponse returns error when the response is not a valid document
func ErrResponse(cause error) *ClientError {
	return NewClientError(ErrCLIResponse, cause)
}

// ErrDateFormat returns error for a date argument that cannot be used
func ErrDateFormat(cause error) *ClientError {
	return NewClientError(ErrCLIDateFormat, cause)
}

// Code returns the numeric code carried by err, or -1 if err is not a
// service or client error
func Code(err error) int {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Code
	}
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return -1
}

// Message returns the human readable description carried by err
func Message(err error) string {
	if err == nil {
		return ""
	}
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Description
	}
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Message
	}
	return err.Error()
}

// IsServiceError reports whether err is a service error with the given code
func IsServiceError(err error, code int) bool {
	var se *ServiceError
	return errors.As(err, &se) && se.Code == code
}
