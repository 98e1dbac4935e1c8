// Package errors defines the JSON error envelope returned by the HTTP API.
package errors

import (
	stderrors "errors"
	"net/http"
)

// ErrorKind classifies an APIError and selects its HTTP status.
type ErrorKind string

const (
	KindBadRequest         ErrorKind = "bad_request"
	KindNotFound           ErrorKind = "not_found"
	KindTooLarge           ErrorKind = "too_large"
	KindInternal           ErrorKind = "internal"
	KindServiceUnavailable ErrorKind = "service_unavailable"
)

// KindTooLarge is a 400, like a missing file.
var statusByKind = map[ErrorKind]int{
	KindBadRequest:         http.StatusBadRequest,
	KindTooLarge:           http.StatusBadRequest,
	KindNotFound:           http.StatusNotFound,
	KindServiceUnavailable: http.StatusServiceUnavailable,
	KindInternal:           http.StatusInternalServerError,
}

// APIError is serialized as {"error": "<message>"}.
type APIError struct {
	Kind    ErrorKind `json:"-"`
	Message string    `json:"error" example:"audio conversion failed"`
}

// New returns an APIError of the given kind.
func New(kind ErrorKind, message string) *APIError {
	return &APIError{Kind: kind, Message: message}
}

func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus maps the kind to a status code; unknown kinds are 500.
func (e *APIError) HTTPStatus() int {
	if status, ok := statusByKind[e.Kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func NewBadRequestError(message string) *APIError { return New(KindBadRequest, message) }

// NewTooLargeError reports an upload over the configured limit.
func NewTooLargeError(message string) *APIError { return New(KindTooLarge, message) }

func NewNotFoundError(message string) *APIError { return New(KindNotFound, message) }

func NewInternalError(message string) *APIError { return New(KindInternal, message) }

func NewServiceUnavailableError(message string) *APIError {
	return New(KindServiceUnavailable, message)
}

// AsAPIError returns err as an *APIError, wrapping anything else as an internal error
// carrying err's message.
func AsAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}
	return NewInternalError(err.Error())
}
