package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

var ErrUnboundEntity = fmt.Errorf("unbound entity")
var ErrDeserialization = fmt.Errorf("deserialization error")
var ErrNotImplemented = fmt.Errorf("not implemented")
var ErrNotFound = fmt.Errorf("not found")
var ErrUnauthorized = fmt.Errorf("unauthorized")
var ErrRateLimited = fmt.Errorf("rate limited")
var ErrBadResponse = fmt.Errorf("bad response")
var ErrInternal = fmt.Errorf("internal error")

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

// NewUnboundEntityError reports an attempted remote fetch on an entity
// that has no associated client.
func NewUnboundEntityError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrUnboundEntity,
	}
}

func NewDeserializationError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrDeserialization,
	}
}

func NewNotFoundError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrNotFound,
	}
}

func NewUnauthorizedError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrUnauthorized,
	}
}

func NewRateLimitedError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrRateLimited,
	}
}

// NewErrorFromFault maps a non 2xx API response to one of the sentinel
// errors above. The API reports failures as a fault document with a
// message and a list of field level errors.
func NewErrorFromFault(code int, body []byte) error {
	fault := &struct {
		Message string `json:"message"`
		Errors  []struct {
			Resource string `json:"resource"`
			Field    string `json:"field"`
			Code     string `json:"code"`
		} `json:"errors"`
	}{}

	detail := fmt.Sprintf("request failed with status %d", code)

	err := json.Unmarshal(body, fault)
	if err == nil && fault.Message != "" {
		detail = fault.Message
		for _, e := range fault.Errors {
			detail = detail + fmt.Sprintf(" (%s.%s: %s)", e.Resource, e.Field, e.Code)
		}
	}

	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return NewUnauthorizedError(detail)
	case http.StatusNotFound:
		return NewNotFoundError(detail)
	case http.StatusTooManyRequests:
		return NewRateLimitedError(detail)
	}

	return &myError{
		msg:    detail,
		target: ErrBadResponse,
	}
}
