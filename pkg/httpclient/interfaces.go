package httpclient

import "context"

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
//
// Headers are raw "Name: value" strings applied in order; duplicate names are
// all sent. The body is attached only for methods that carry one (POST, PUT,
// PATCH) and only when non-empty.
type Client interface {
	Do(ctx context.Context, method, url string, headers []string, body string) (Response, error)
}
