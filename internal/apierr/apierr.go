package apierr

import (
  "fmt"
  "net/http"
)

// Error is the service-level failure surfaced to handlers. Status is the
// HTTP status the handler should answer with.
type Error struct {
  Status int
  Code   string
  Err    error
}

func (e *Error) Error() string {
  if e == nil {
    return ""
  }
  if e.Err != nil {
    return e.Err.Error()
  }
  if e.Code != "" {
    return e.Code
  }
  if e.Status != 0 {
    return fmt.Sprintf("api error (%d)", e.Status)
  }
  return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
  return &Error{Status: status, Code: code, Err: err}
}

func Validation(format string, args ...interface{}) *Error {
  return New(http.StatusBadRequest, "validation_error", fmt.Errorf(format, args...))
}

func Unauthorized(format string, args ...interface{}) *Error {
  return New(http.StatusUnauthorized, "unauthorized", fmt.Errorf(format, args...))
}

func Forbidden(format string, args ...interface{}) *Error {
  return New(http.StatusForbidden, "forbidden", fmt.Errorf(format, args...))
}

func NotFound(format string, args ...interface{}) *Error {
  return New(http.StatusNotFound, "not_found", fmt.Errorf(format, args...))
}
