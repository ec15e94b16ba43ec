package dispatch_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hokumski/profilecallback/dispatch"
	"github.com/hokumski/profilecallback/endpoint"
)

func ctx() context.Context { return context.Background() }

const testPayload = `{"Type":"UPDATE_PROFILE","Id":"u-1"}`

func TestDispatchHappyPath(t *testing.T) {
	var receivedBody string
	var receivedHeaders http.Header

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedHeaders = r.Header
		b, err := io.ReadAll(r.Body)
		if err != nil {
			t.Error(err)
		}
		receivedBody = string(b)
		w.Write([]byte("accepted"))
	}))
	defer srv.Close()

	d := dispatch.New(nil, nil, nil)
	out := d.Dispatch(ctx(), []endpoint.Endpoint{{
		URL:             srv.URL,
		AuthHeaderName:  "X-Token",
		AuthHeaderValue: "test-token-12345",
	}}, testPayload)

	if out != "accepted\n" {
		t.Fatalf("outcome = %q", out)
	}
	if receivedBody != testPayload {
		t.Errorf("body = %q", receivedBody)
	}
	if got := receivedHeaders.Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Errorf("content-type = %q", got)
	}
	if got := receivedHeaders.Get("X-Token"); got != "test-token-12345" {
		t.Errorf("auth header = %q", got)
	}
}

func TestDispatchEmptyResponsePlaceholder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d := dispatch.New(nil, nil, nil)
	out := d.Dispatch(ctx(), []endpoint.Endpoint{{URL: srv.URL}}, testPayload)

	if out != dispatch.EmptyResponse+"\n" {
		t.Fatalf("outcome = %q", out)
	}
}

func TestDispatchEmptyAuthHeaderValueIsSent(t *testing.T) {
	var ok bool
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, ok = r.Header["X-Token"]
	}))
	defer srv.Close()

	d := dispatch.New(nil, nil, nil)
	d.Dispatch(ctx(), []endpoint.Endpoint{{URL: srv.URL, AuthHeaderName: "X-Token"}}, testPayload)

	if !ok {
		t.Fatal("auth header with empty value must still be sent")
	}
}

func TestDispatchFailureIsolation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("first ok"))
	}))
	defer srv.Close()

	badURL := "http://callback.invalid/hook"

	d := dispatch.New(nil, nil, nil)
	out := d.Dispatch(ctx(), []endpoint.Endpoint{
		{URL: srv.URL},
		{URL: badURL},
		{URL: srv.URL},
	}, testPayload)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d outcome lines, want 3: %q", len(lines), out)
	}
	if lines[0] != "first ok" {
		t.Errorf("line 1 = %q", lines[0])
	}
	if lines[1] != "unknown host: "+badURL {
		t.Errorf("line 2 = %q", lines[1])
	}
	if lines[2] != "first ok" {
		t.Errorf("line 3 = %q", lines[2])
	}
}

func TestDispatchAcceptsErrorStatusBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("backend exploded"))
	}))
	defer srv.Close()

	d := dispatch.New(nil, nil, nil)
	out := d.Dispatch(ctx(), []endpoint.Endpoint{{URL: srv.URL}}, testPayload)

	// Any status is a delivery; the body is the outcome line.
	if out != "backend exploded\n" {
		t.Fatalf("outcome = %q", out)
	}
}

func TestDispatchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte("too late"))
	}))
	defer srv.Close()

	d := dispatch.New(nil, nil, nil)
	out := d.Dispatch(ctx(), []endpoint.Endpoint{{
		URL:     srv.URL,
		Timeout: 20 * time.Millisecond,
	}}, testPayload)

	if out != "connection timeout for: "+srv.URL+"\n" {
		t.Fatalf("outcome = %q", out)
	}
}

func TestDispatchUTF8Body(t *testing.T) {
	var receivedBody string
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		receivedBody = string(b)
	}))
	defer srv.Close()

	body := `{"FirstName":"Кириллица"}`
	d := dispatch.New(nil, nil, nil)
	d.Dispatch(ctx(), []endpoint.Endpoint{{URL: srv.URL}}, body)

	if receivedBody != body {
		t.Fatalf("body = %q, want byte-for-byte %q", receivedBody, body)
	}
}

func TestDispatchNoEndpoints(t *testing.T) {
	d := dispatch.New(nil, nil, nil)
	if out := d.Dispatch(ctx(), nil, testPayload); out != "" {
		t.Fatalf("outcome = %q, want empty", out)
	}
}
