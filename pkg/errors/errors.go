// Package errors contains the service error taxonomy shared by every REST handler.
package errors

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/stackrox/newsletter-manager/pkg/api"
)

// ErrorCodePrefix is prepended to every service error code.
const ErrorCodePrefix = "NEWSLETTERS-MGMT"

// ErrorHREF is the base href of the error catalogue.
const ErrorHREF = "/api/newsletters_mgmt/v1/errors/"

// ErrorCodePrefixOverride may be set by other binaries reusing the middlewares.
var ErrorCodePrefixOverride = ""

// ServiceErrorCode ...
type ServiceErrorCode int

// Error codes. Values are part of the public API and must never be renumbered.
const (
	// ErrorForbidden Forbidden
	ErrorForbidden ServiceErrorCode = 4
	// ErrorConflict Resource conflict
	ErrorConflict ServiceErrorCode = 6
	// ErrorNotFound Resource not found
	ErrorNotFound ServiceErrorCode = 7
	// ErrorValidation General validation failure
	ErrorValidation ServiceErrorCode = 8
	// ErrorGeneral General error
	ErrorGeneral ServiceErrorCode = 9
	// ErrorNotImplemented Not implemented
	ErrorNotImplemented ServiceErrorCode = 10
	// ErrorUnauthorized Unauthorized
	ErrorUnauthorized ServiceErrorCode = 11
	// ErrorUnauthenticated Required authentication
	ErrorUnauthenticated ServiceErrorCode = 15
	// ErrorMalformedRequest Request is malformed
	ErrorMalformedRequest ServiceErrorCode = 17
	// ErrorBadRequest Bad request
	ErrorBadRequest ServiceErrorCode = 21
	// ErrorFailedToParseSearch Failed to parse search query
	ErrorFailedToParseSearch ServiceErrorCode = 23
	// ErrorMinimumFieldLength Minimum field length not reached
	ErrorMinimumFieldLength ServiceErrorCode = 29
	// ErrorMaximumFieldLength Maximum field length exceeded
	ErrorMaximumFieldLength ServiceErrorCode = 30
	// ErrorInvalidPassword Wrong username or password
	ErrorInvalidPassword ServiceErrorCode = 31
)

// ServiceErrors ...
type ServiceErrors []ServiceError

// Errors returns the catalogue of every known error.
func Errors() ServiceErrors {
	return ServiceErrors{
		ServiceError{ErrorForbidden, "Forbidden to perform this action", http.StatusForbidden, nil},
		ServiceError{ErrorConflict, "An entity with the specified unique values already exists", http.StatusConflict, nil},
		ServiceError{ErrorNotFound, "Resource not found", http.StatusNotFound, nil},
		ServiceError{ErrorValidation, "General validation failure", http.StatusBadRequest, nil},
		ServiceError{ErrorGeneral, "Unspecified error", http.StatusInternalServerError, nil},
		ServiceError{ErrorNotImplemented, "HTTP Method not implemented for this endpoint", http.StatusMethodNotAllowed, nil},
		ServiceError{ErrorUnauthorized, "Account is unauthorized to perform this action", http.StatusForbidden, nil},
		ServiceError{ErrorUnauthenticated, "Account authentication could not be verified", http.StatusUnauthorized, nil},
		ServiceError{ErrorMalformedRequest, "Unable to read request body", http.StatusBadRequest, nil},
		ServiceError{ErrorBadRequest, "Bad request", http.StatusBadRequest, nil},
		ServiceError{ErrorFailedToParseSearch, "Failed to parse search query", http.StatusBadRequest, nil},
		ServiceError{ErrorMinimumFieldLength, "Minimum field length not reached", http.StatusBadRequest, nil},
		ServiceError{ErrorMaximumFieldLength, "Maximum field length has been depassed", http.StatusBadRequest, nil},
		ServiceError{ErrorInvalidPassword, "Wrong username or password", http.StatusUnauthorized, nil},
	}
}

// Find returns the catalogue entry for code.
func Find(code ServiceErrorCode) (bool, *ServiceError) {
	for _, err := range Errors() {
		if err.Code == code {
			return true, &err
		}
	}
	return false, nil
}

// ServiceError ...
type ServiceError struct {
	// Code is the numeric and distinct ID for the error
	Code ServiceErrorCode
	// Reason is the context-specific reason the error was generated
	Reason string
	// HTTPCode is the HTTP status code returned to the client
	HTTPCode int
	// cause is the wrapped internal error, never sent to the client
	cause error
}

// New creates a ServiceError from the catalogue with a formatted reason.
func New(code ServiceErrorCode, reason string, values ...interface{}) *ServiceError {
	return NewWithCause(code, nil, reason, values...)
}

// NewWithCause ...
func NewWithCause(code ServiceErrorCode, cause error, reason string, values ...interface{}) *ServiceError {
	exists, err := Find(code)
	if !exists {
		glog.Errorf("Undefined error code used: %d", code)
		err = &ServiceError{
			Code:     ErrorGeneral,
			Reason:   "Unspecified error",
			HTTPCode: http.StatusInternalServerError,
		}
	}

	// If the reason is unspecified, use the default
	if reason != "" {
		err.Reason = fmt.Sprintf(reason, values...)
	}
	err.cause = cause

	return err
}

// Error ...
func (e *ServiceError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s\n caused by: %s", *CodeStr(e.Code), e.Reason, e.cause.Error())
	}
	return fmt.Sprintf("%s: %s", *CodeStr(e.Code), e.Reason)
}

// Unwrap ...
func (e *ServiceError) Unwrap() error {
	return e.cause
}

// AsError returns nil for a nil *ServiceError so callers can compare with nil safely.
func (e *ServiceError) AsError() error {
	if e == nil {
		return nil
	}
	return fmt.Errorf("%s", e.Error())
}

// Is404 ...
func (e *ServiceError) Is404() bool {
	return e.Code == ErrorNotFound
}

// IsForbidden ...
func (e *ServiceError) IsForbidden() bool {
	return e.Code == ErrorForbidden
}

// IsConflict ...
func (e *ServiceError) IsConflict() bool {
	return e.Code == ErrorConflict
}

// IsClientErrorClass ...
func (e *ServiceError) IsClientErrorClass() bool {
	return e.HTTPCode >= http.StatusBadRequest && e.HTTPCode < http.StatusInternalServerError
}

// IsServerErrorClass ...
func (e *ServiceError) IsServerErrorClass() bool {
	return e.HTTPCode >= http.StatusInternalServerError
}

// AsOpenapiError converts the error into the JSON body returned to clients.
func (e *ServiceError) AsOpenapiError(operationID string, basePath string) api.Error {
	return api.Error{
		Kind:        "Error",
		ID:          strconv.Itoa(int(e.Code)),
		HREF:        Href(e.Code),
		Code:        *CodeStr(e.Code),
		Reason:      e.Reason,
		OperationID: operationID,
	}
}

// CodeStr returns the public string code, e.g. NEWSLETTERS-MGMT-7.
func CodeStr(code ServiceErrorCode) *string {
	prefix := ErrorCodePrefix
	if ErrorCodePrefixOverride != "" {
		prefix = ErrorCodePrefixOverride
	}
	s := fmt.Sprintf("%s-%d", prefix, code)
	return &s
}

// Href ...
func Href(code ServiceErrorCode) *string {
	s := fmt.Sprintf("%s%d", ErrorHREF, code)
	return &s
}

// ToServiceError converts any error into a ServiceError, keeping existing ServiceErrors intact.
func ToServiceError(err error) *ServiceError {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return GeneralError("%v", err)
}

// GeneralError ...
func GeneralError(reason string, values ...interface{}) *ServiceError {
	return New(ErrorGeneral, reason, values...)
}

// NotFound ...
func NotFound(reason string, values ...interface{}) *ServiceError {
	return New(ErrorNotFound, reason, values...)
}

// Forbidden ...
func Forbidden(reason string, values ...interface{}) *ServiceError {
	return New(ErrorForbidden, reason, values...)
}

// Unauthorized ...
func Unauthorized(reason string, values ...interface{}) *ServiceError {
	return New(ErrorUnauthorized, reason, values...)
}

// Unauthenticated ...
func Unauthenticated(reason string, values ...interface{}) *ServiceError {
	return New(ErrorUnauthenticated, reason, values...)
}

// InvalidPassword ...
func InvalidPassword(reason string, values ...interface{}) *ServiceError {
	return New(ErrorInvalidPassword, reason, values...)
}

// NotImplemented ...
func NotImplemented(reason string, values ...interface{}) *ServiceError {
	return New(ErrorNotImplemented, reason, values...)
}

// Conflict ...
func Conflict(reason string, values ...interface{}) *ServiceError {
	return New(ErrorConflict, reason, values...)
}

// Validation ...
func Validation(reason string, values ...interface{}) *ServiceError {
	return New(ErrorValidation, reason, values...)
}

// MalformedRequest ...
func MalformedRequest(reason string, values ...interface{}) *ServiceError {
	return New(ErrorMalformedRequest, reason, values...)
}

// BadRequest ...
func BadRequest(reason string, values ...interface{}) *ServiceError {
	return New(ErrorBadRequest, reason, values...)
}

// FailedToParseSearch ...
func FailedToParseSearch(reason string, values ...interface{}) *ServiceError {
	return New(ErrorFailedToParseSearch, reason, values...)
}

// MinimumFieldLengthNotReached ...
func MinimumFieldLengthNotReached(reason string, values ...interface{}) *ServiceError {
	return New(ErrorMinimumFieldLength, reason, values...)
}

// MaximumFieldLengthMissing ...
func MaximumFieldLengthMissing(reason string, values ...interface{}) *ServiceError {
	return New(ErrorMaximumFieldLength, reason, values...)
}
