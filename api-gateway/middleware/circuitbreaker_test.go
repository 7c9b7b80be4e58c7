package middleware

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreakerOpensAfterMaxFailures(t *testing.T) {
	cb := NewCircuitBreaker("test", 3, time.Minute)
	failing := func() error { return errors.New("backend down") }

	for i := 0; i < 3; i++ {
		if err := cb.Call(failing); err == nil {
			t.Fatal("expected failure to propagate")
		}
	}

	if got := cb.GetState(); got != StateOpen {
		t.Fatalf("expected open after 3 failures, got %s", got)
	}

	// Open circuit rejects without calling the function
	called := false
	err := cb.Call(func() error {
		called = true
		return nil
	})
	if err == nil {
		t.Fatal("expected rejection while open")
	}
	if called {
		t.Fatal("function must not run while circuit is open")
	}
}

func TestCircuitBreakerSuccessResetsFailureCount(t *testing.T) {
	cb := NewCircuitBreaker("test", 3, time.Minute)
	failing := func() error { return errors.New("backend down") }

	cb.Call(failing) //nolint:errcheck
	cb.Call(failing) //nolint:errcheck
	if err := cb.Call(func() error { return nil }); err != nil {
		t.Fatalf("success call: %v", err)
	}
	cb.Call(failing) //nolint:errcheck
	cb.Call(failing) //nolint:errcheck

	if got := cb.GetState(); got != StateClosed {
		t.Fatalf("failures are not consecutive, expected closed, got %s", got)
	}
}

func TestCircuitBreakerRecoversThroughHalfOpen(t *testing.T) {
	cb := NewCircuitBreaker("test", 1, 10*time.Millisecond)

	if err := cb.Call(func() error { return errors.New("boom") }); err == nil {
		t.Fatal("expected failure")
	}
	if got := cb.GetState(); got != StateOpen {
		t.Fatalf("expected open, got %s", got)
	}

	time.Sleep(20 * time.Millisecond)

	// Three successes in half-open close the circuit
	for i := 0; i < 3; i++ {
		if err := cb.Call(func() error { return nil }); err != nil {
			t.Fatalf("half-open success %d: %v", i, err)
		}
	}

	if got := cb.GetState(); got != StateClosed {
		t.Fatalf("expected closed after recovery, got %s", got)
	}
}

func TestCircuitBreakerHalfOpenFailureReopens(t *testing.T) {
	cb := NewCircuitBreaker("test", 1, 10*time.Millisecond)

	cb.Call(func() error { return errors.New("boom") }) //nolint:errcheck
	time.Sleep(20 * time.Millisecond)

	if err := cb.Call(func() error { return errors.New("still down") }); err == nil {
		t.Fatal("expected failure")
	}

	if got := cb.GetState(); got != StateOpen {
		t.Fatalf("expected reopened circuit, got %s", got)
	}
}

func TestDetermineServiceFromPath(t *testing.T) {
	cases := map[string]string{
		"/api/items":            "supplychain",
		"/api/items/abc":        "supplychain",
		"/api/supplies":         "supplychain",
		"/api/supplies?x=1":     "supplychain",
		"/api/inventory/item-1": "supplychain",
		"/api/lists":            "supplychain",
		"/health":               "",
		"/metrics":              "",
		"/api/unknown-resource": "",
	}

	for path, want := range cases {
		if got := determineServiceFromPath(path); got != want {
			t.Fatalf("path %q: expected %q, got %q", path, want, got)
		}
	}
}
