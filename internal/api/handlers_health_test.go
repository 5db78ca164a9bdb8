// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package api

import (
	"net/http"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/indiepick/internal/catalog/catalogtest"
	"github.com/tomtom215/indiepick/internal/models"
)

func TestHealthLive(t *testing.T) {
	fake := &catalogtest.Fake{}
	h := newTestHandler(fake)
	h.SetCircuitBreaker(stubBreaker("open"))

	rec := serve(t, newTestRouter(h), "/api/health/live")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp models.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != StatusOK {
		t.Errorf("status = %q, want ok even with an open breaker", resp.Status)
	}
	if resp.Timestamp.IsZero() {
		t.Error("timestamp should be set")
	}
	if fake.GenreCalls() != 0 || len(fake.Queries()) != 0 {
		t.Error("liveness must not call the catalog")
	}
}

func TestHealthReady(t *testing.T) {
	tests := []struct {
		name        string
		breaker     BreakerState
		wantCode    int
		wantStatus  string
		wantBreaker string
	}{
		{"no breaker", nil, http.StatusOK, StatusOK, ""},
		{"closed", stubBreaker("closed"), http.StatusOK, StatusOK, "closed"},
		{"half-open", stubBreaker("half-open"), http.StatusOK, StatusOK, "half-open"},
		{"open", stubBreaker("open"), http.StatusServiceUnavailable, StatusDegraded, "open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&catalogtest.Fake{})
			if tt.breaker != nil {
				h.SetCircuitBreaker(tt.breaker)
			}

			rec := serve(t, newTestRouter(h), "/api/health/ready")
			if rec.Code != tt.wantCode {
				t.Fatalf("status code = %d, want %d", rec.Code, tt.wantCode)
			}

			var resp models.HealthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantStatus)
			}
			if resp.CircuitBreaker != tt.wantBreaker {
				t.Errorf("circuit_breaker = %q, want %q", resp.CircuitBreaker, tt.wantBreaker)
			}
		})
	}
}
