package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDoSendsHeadersVerbatim(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewRestyClient(2 * time.Second)
	headers := []string{
		"X-Trace: one",
		"X-Trace: two",
		"Authorization: Bearer t",
		"malformed-no-colon",
	}
	resp, err := client.Do(context.Background(), http.MethodGet, srv.URL, headers, "")
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode())
	}

	traces := got.Values("X-Trace")
	if len(traces) != 2 || traces[0] != "one" || traces[1] != "two" {
		t.Fatalf("expected duplicate X-Trace headers in order, got %v", traces)
	}
	if got.Get("Authorization") != "Bearer t" {
		t.Fatalf("missing authorization header: %v", got)
	}
}

func TestDoAttachesBodyOnlyForMutatingMethods(t *testing.T) {
	bodies := map[string]string{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		bodies[r.Method] = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewRestyClient(2 * time.Second)
	for _, method := range []string{
		http.MethodGet, http.MethodDelete,
		http.MethodPost, http.MethodPut, http.MethodPatch,
	} {
		if _, err := client.Do(context.Background(), method, srv.URL, nil, `{"k":1}`); err != nil {
			t.Fatalf("%s: %v", method, err)
		}
	}

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		if bodies[method] != "" {
			t.Fatalf("%s attached a body: %q", method, bodies[method])
		}
	}
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch} {
		if bodies[method] != `{"k":1}` {
			t.Fatalf("%s body mismatch: %q", method, bodies[method])
		}
	}
}

func TestDoCapturesBodyAndStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))
	defer srv.Close()

	client := NewDefaultClient()
	resp, err := client.Do(context.Background(), http.MethodGet, srv.URL, nil, "")
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if resp.StatusCode() != http.StatusTeapot {
		t.Fatalf("unexpected status: %d", resp.StatusCode())
	}
	if string(resp.Body()) != "short and stout" {
		t.Fatalf("unexpected body: %q", resp.Body())
	}
}

func TestDoFollowsRedirects(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("landed"))
	}))
	defer target.Close()

	redirect := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL, http.StatusFound)
	}))
	defer redirect.Close()

	client := NewDefaultClient()
	resp, err := client.Do(context.Background(), http.MethodGet, redirect.URL, nil, "")
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if resp.StatusCode() != http.StatusOK || string(resp.Body()) != "landed" {
		t.Fatalf("expected redirect to be followed, got %d %q", resp.StatusCode(), resp.Body())
	}
}

func TestDoRawQueryPreserved(t *testing.T) {
	var rawQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewDefaultClient()
	if _, err := client.Do(context.Background(), http.MethodGet, srv.URL+"?a=1&b=red/blue+green", nil, ""); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if rawQuery != "a=1&b=red/blue+green" {
		t.Fatalf("query was rewritten: %q", rawQuery)
	}
}
