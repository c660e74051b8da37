package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestHealthHandler_Liveness(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/health", nil, nil)
	if err := NewHealthHandler(nil, zerolog.Nop()).Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	expectStatus(t, rec, http.StatusOK)
}

func TestHealthHandler_Readiness(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	t.Run("all healthy", func(t *testing.T) {
		c, rec := newContext(http.MethodGet, "/health/ready", nil, nil)
		h := NewHealthHandler(map[string]Check{"mongodb": ok, "redis": ok}, zerolog.Nop())
		if err := h.Readiness(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		expectStatus(t, rec, http.StatusOK)
		if decodeBody(t, rec)["status"] != "ok" {
			t.Fatalf("expected ok")
		}
	})

	t.Run("one degraded", func(t *testing.T) {
		c, rec := newContext(http.MethodGet, "/health/ready", nil, nil)
		var logs bytes.Buffer
		h := NewHealthHandler(map[string]Check{"mongodb": ok, "redis": down}, zerolog.New(&logs))
		if err := h.Readiness(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		expectStatus(t, rec, http.StatusServiceUnavailable)

		resp := decodeBody(t, rec)
		deps, _ := resp["dependencies"].(map[string]any)
		redis, _ := deps["redis"].(map[string]any)
		mongo, _ := deps["mongodb"].(map[string]any)
		if resp["status"] != "degraded" || redis["status"] != "unhealthy" || mongo["status"] != "ok" {
			t.Fatalf("unexpected response: %v", resp)
		}
		if strings.Contains(rec.Body.String(), "connection refused") {
			t.Fatalf("dependency error leaked into response: %s", rec.Body.String())
		}
		if _, ok := redis["error"]; ok {
			t.Fatalf("unexpected error field: %v", redis)
		}
		if !strings.Contains(logs.String(), "connection refused") || !strings.Contains(logs.String(), `"dependency":"redis"`) {
			t.Fatalf("expected failure detail in logs, got %q", logs.String())
		}
	})

	t.Run("no dependencies", func(t *testing.T) {
		c, rec := newContext(http.MethodGet, "/health/ready", nil, nil)
		if err := NewHealthHandler(nil, zerolog.Nop()).Readiness(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		expectStatus(t, rec, http.StatusOK)
	})
}
