// Package fetch maps named endpoints to (HTTP method, decode function)
// pairs and dispatches requests through an injected transport, returning
// strongly-typed results produced from the parsed JSON body.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/samvad-hq/jsonfetch/pkg/httpclient"
)

// DecodeFunc transforms a decoded generic JSON value into the caller's type.
// Errors it returns are propagated to the Fetch caller unchanged; use
// Parsingf for semantic validation failures.
type DecodeFunc[T any] func(doc any) (T, error)

// Config supplies the two per-fetcher extension points.
type Config struct {
	// BaseURL is prepended to every endpoint key to form the request URL.
	BaseURL string
	// DefaultBody is sent when a call supplies no body of its own. An empty
	// per-call body cannot suppress a configured default.
	DefaultBody string
}

// Params carries the optional per-call request parameters. The zero value
// means "no query, no extra headers, default body".
type Params struct {
	// Query is appended to the URL as ?k1=v1&k2=v2. Keys and values are sent
	// raw, without percent-encoding; callers sending reserved characters get
	// them on the wire verbatim.
	Query map[string]string
	// Headers are raw "Name: value" strings appended after the global
	// headers. Duplicates are not collapsed.
	Headers []string
	// Body overrides the fetcher's default body when non-empty.
	Body string
}

type endpointDef[T any] struct {
	method string
	decode DecodeFunc[T]
}

// Fetcher dispatches requests for registered endpoints and decodes the JSON
// responses into T.
//
// Register and SetGlobalHeaders are not safe to call concurrently with
// Fetch: populate the registry before first use and do not swap global
// headers while a call is in flight.
type Fetcher[T any] struct {
	client        httpclient.Client
	baseURL       string
	defaultBody   string
	endpoints     map[string]endpointDef[T]
	globalHeaders []string
}

// New builds a Fetcher over the given transport. A nil client gets the
// default resty transport with the fixed 10-second timeout.
func New[T any](client httpclient.Client, cfg Config) (*Fetcher[T], error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("fetch: base URL is empty")
	}
	if client == nil {
		client = httpclient.NewDefaultClient()
	}
	return &Fetcher[T]{
		client:      client,
		baseURL:     cfg.BaseURL,
		defaultBody: cfg.DefaultBody,
		endpoints:   make(map[string]endpointDef[T]),
	}, nil
}

// Register maps an endpoint key to an HTTP method and a decode function.
// Registering the same key twice overwrites the earlier definition.
func (f *Fetcher[T]) Register(endpoint, method string, decode DecodeFunc[T]) {
	f.endpoints[endpoint] = endpointDef[T]{method: method, decode: decode}
}

// SetGlobalHeaders replaces the header list applied to every request. A copy
// of the slice is taken.
func (f *Fetcher[T]) SetGlobalHeaders(headers []string) {
	f.globalHeaders = append([]string(nil), headers...)
}

// Fetch dispatches a request for the registered endpoint and returns the
// decoded result.
//
// Failure kinds: *EndpointNotFoundError for an unregistered key (no network
// call is made), *HTTPError for send failures and statuses outside
// [200,300), *ParseError for a malformed JSON body, and whatever error the
// decode function returns for anything it rejects.
func (f *Fetcher[T]) Fetch(ctx context.Context, endpoint string, p Params) (T, error) {
	var zero T

	def, ok := f.endpoints[endpoint]
	if !ok {
		return zero, &EndpointNotFoundError{Endpoint: endpoint}
	}

	url := f.baseURL + endpoint
	if len(p.Query) > 0 {
		var sb strings.Builder
		sb.WriteString(url)
		sep := "?"
		for k, v := range p.Query {
			sb.WriteString(sep)
			sb.WriteString(k)
			sb.WriteString("=")
			sb.WriteString(v)
			sep = "&"
		}
		url = sb.String()
	}

	headers := append(append([]string(nil), f.globalHeaders...), p.Headers...)

	body := p.Body
	if body == "" {
		body = f.defaultBody
	}

	resp, err := f.client.Do(ctx, def.method, url, headers, body)
	if err != nil {
		return zero, &HTTPError{StatusCode: 0, Message: err.Error(), cause: err}
	}

	raw := resp.Body()
	if code := resp.StatusCode(); code < 200 || code >= 300 {
		return zero, &HTTPError{StatusCode: code, Message: "unexpected http status: " + responseSnippet(raw)}
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return zero, &ParseError{Message: "malformed json body: " + responseSnippet(raw), cause: err}
	}

	return def.decode(doc)
}

// responseSnippet trims a response body for use in error messages.
func responseSnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
