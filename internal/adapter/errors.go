package adapter

import "errors"

// Transport sentinels. mapHTTPError translates HTTP status codes into these;
// request-level failures (DNS, refused connection, timeout) map to ErrNetwork
// and ErrTimeout. The engine mostly cares about failed-vs-succeeded, but the
// use-case layer classifies on these for user-facing messaging.
var (
	ErrNetwork            = errors.New("network error")
	ErrTimeout            = errors.New("request timeout")
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("client unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrServerError        = errors.New("internal server error")
	ErrServiceUnavailable = errors.New("service unavailable")
)
