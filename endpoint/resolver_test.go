package endpoint

import (
	"testing"
	"time"

	"github.com/hokumski/profilecallback/scope"
)

const providerID = "profile-callback"

func TestLoadSingleEndpointMode(t *testing.T) {
	sc := scope.Map{
		"callbackTo":      "https://example.com/hook",
		"timeout":         "5000",
		"authHeaderName":  "X-Token",
		"authHeaderValue": "secret",
		// Positional blocks are ignored once the unsuffixed one matched.
		"callbackTo1": "https://example.com/other",
	}

	endpoints := Load(sc, providerID, nil)
	if len(endpoints) != 1 {
		t.Fatalf("got %d endpoints, want 1", len(endpoints))
	}

	ep := endpoints[0]
	if ep.URL != "https://example.com/hook" {
		t.Errorf("url = %q", ep.URL)
	}
	if ep.Timeout != 5*time.Second {
		t.Errorf("timeout = %v", ep.Timeout)
	}
	if ep.AuthHeaderName != "X-Token" || ep.AuthHeaderValue != "secret" {
		t.Errorf("auth header = %q:%q", ep.AuthHeaderName, ep.AuthHeaderValue)
	}
}

func TestLoadPositionalStopsAtGap(t *testing.T) {
	sc := scope.Map{
		"callbackTo1": "https://one.example.com/hook",
		// no callbackTo2
		"callbackTo3": "https://three.example.com/hook",
	}

	endpoints := Load(sc, providerID, nil)
	if len(endpoints) != 1 {
		t.Fatalf("got %d endpoints, want 1", len(endpoints))
	}
	if endpoints[0].URL != "https://one.example.com/hook" {
		t.Errorf("url = %q", endpoints[0].URL)
	}
}

func TestLoadPositionalOrder(t *testing.T) {
	sc := scope.Map{
		"callbackTo1": "https://one.example.com/hook",
		"callbackTo2": "https://two.example.com/hook",
		"timeout2":    "250",
	}

	endpoints := Load(sc, providerID, nil)
	if len(endpoints) != 2 {
		t.Fatalf("got %d endpoints, want 2", len(endpoints))
	}
	if endpoints[0].URL != "https://one.example.com/hook" || endpoints[1].URL != "https://two.example.com/hook" {
		t.Errorf("order: %q, %q", endpoints[0].URL, endpoints[1].URL)
	}
	if endpoints[0].Timeout != 0 {
		t.Errorf("endpoint 1 timeout = %v, want transport default", endpoints[0].Timeout)
	}
	if endpoints[1].Timeout != 250*time.Millisecond {
		t.Errorf("endpoint 2 timeout = %v", endpoints[1].Timeout)
	}
}

func TestLoadMalformedUnsuffixedFallsThrough(t *testing.T) {
	sc := scope.Map{
		"callbackTo":  "not a url",
		"callbackTo1": "https://one.example.com/hook",
	}

	endpoints := Load(sc, providerID, nil)
	if len(endpoints) != 1 {
		t.Fatalf("got %d endpoints, want 1", len(endpoints))
	}
	if endpoints[0].URL != "https://one.example.com/hook" {
		t.Errorf("url = %q", endpoints[0].URL)
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	for _, bad := range []string{"soon", "-5", "0"} {
		sc := scope.Map{
			"callbackTo": "https://example.com/hook",
			"timeout":    bad,
		}
		endpoints := Load(sc, providerID, nil)
		if len(endpoints) != 1 {
			t.Fatalf("timeout %q: got %d endpoints", bad, len(endpoints))
		}
		if endpoints[0].Timeout != 0 {
			t.Errorf("timeout %q: endpoint timeout = %v, want transport default", bad, endpoints[0].Timeout)
		}
	}
}

func TestLoadKeepsEmptyAuthHeaderValue(t *testing.T) {
	sc := scope.Map{
		"callbackTo":     "https://example.com/hook",
		"authHeaderName": "X-Token",
	}

	endpoints := Load(sc, providerID, nil)
	if len(endpoints) != 1 {
		t.Fatal("expected one endpoint")
	}
	if endpoints[0].AuthHeaderName != "X-Token" {
		t.Errorf("auth header name = %q", endpoints[0].AuthHeaderName)
	}
	if endpoints[0].AuthHeaderValue != "" {
		t.Errorf("auth header value = %q, want empty", endpoints[0].AuthHeaderValue)
	}
}

func TestLoadNoConfiguration(t *testing.T) {
	if endpoints := Load(scope.Map{}, providerID, nil); len(endpoints) != 0 {
		t.Fatalf("got %d endpoints, want 0", len(endpoints))
	}
}
