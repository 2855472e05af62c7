package fetch

import "fmt"

// HTTPError reports a transport-level send failure or a response status
// outside [200,300). StatusCode is 0 when the request never produced a
// status (DNS failure, timeout, connection refused).
type HTTPError struct {
	StatusCode int
	Message    string
	cause      error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: %s (status code: %d)", e.Message, e.StatusCode)
}

func (e *HTTPError) Unwrap() error { return e.cause }

// ParseError reports a malformed JSON response body, or a decode function's
// semantic rejection of a well-formed one.
type ParseError struct {
	Message string
	cause   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing error: %s", e.Message)
}

func (e *ParseError) Unwrap() error { return e.cause }

// Parsingf builds a ParseError for decode functions that want to signal
// semantic validation failures (for example, a missing expected field).
func Parsingf(format string, args ...any) error {
	return &ParseError{Message: fmt.Sprintf(format, args...)}
}

// EndpointNotFoundError reports a Fetch call against a key that was never
// registered.
type EndpointNotFoundError struct {
	Endpoint string
}

func (e *EndpointNotFoundError) Error() string {
	return fmt.Sprintf("endpoint %q not found in lookup table", e.Endpoint)
}
