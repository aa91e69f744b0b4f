package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/itemstore/pkg/httpx"
)

type fakeChecker struct {
	err error
}

func (f *fakeChecker) Ping(ctx context.Context) error { return f.err }

func TestHealthHandler_allHealthy(t *testing.T) {
	h := httpx.HealthHandler(httpx.HealthChecks{
		Database: &fakeChecker{},
		Cache:    &fakeChecker{},
		EventBus: &fakeChecker{},
	})

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %q", body["status"])
	}
}

func TestHealthHandler_degradedOnFailure(t *testing.T) {
	h := httpx.HealthHandler(httpx.HealthChecks{
		Database: &fakeChecker{err: errors.New("down")},
		Cache:    &fakeChecker{},
	})

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["status"] != "degraded" {
		t.Errorf("expected degraded, got %q", body["status"])
	}
	if body["database"] != "unreachable" {
		t.Errorf("expected database unreachable, got %q", body["database"])
	}
	if body["cache"] != "ok" {
		t.Errorf("expected cache ok, got %q", body["cache"])
	}
}

func TestHealthHandler_nilCheckersSkipped(t *testing.T) {
	h := httpx.HealthHandler(httpx.HealthChecks{
		Database: &fakeChecker{},
	})

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if _, present := body["cache"]; present {
		t.Error("expected cache field omitted when checker is nil")
	}
}
