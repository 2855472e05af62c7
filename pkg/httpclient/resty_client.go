package httpclient

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultTimeout bounds every request issued by a RestyClient.
const DefaultTimeout = 10 * time.Second

// RestyClient adapts resty.Client to the httpclient.Client interface.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient creates a new RestyClient with the specified timeout.
// Redirects are followed, per resty's default policy.
func NewRestyClient(timeout time.Duration) *RestyClient {
	c := resty.New()
	c.SetTimeout(timeout)
	return &RestyClient{client: c}
}

// NewDefaultClient returns a RestyClient with the default timeout.
func NewDefaultClient() *RestyClient {
	return NewRestyClient(DefaultTimeout)
}

// Do performs a single synchronous HTTP request and captures the full body.
//
// Any HTTP status is returned as a Response; transport-level failures are
// returned as errors. Header strings missing a colon are skipped.
func (r *RestyClient) Do(ctx context.Context, method, url string, headers []string, body string) (Response, error) {
	req := r.client.R().SetContext(ctx)

	for _, h := range headers {
		name, value, ok := strings.Cut(h, ":")
		if !ok {
			continue
		}
		req.Header.Add(strings.TrimSpace(name), strings.TrimSpace(value))
	}

	if body != "" && methodAllowsBody(method) {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// methodAllowsBody reports whether a request body is attached for the method.
func methodAllowsBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte    { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int { return r.resp.StatusCode() }
