// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "/api/games/42", "/api/games/42"},
		{"newline", "bad\nline", "bad\\x0aline"},
		{"carriage return and tab", "a\r\tb", "a\\x0d\\x09b"},
		{"delete", "x\x7fy", "x\\x7fy"},
		{"unicode kept", "Ōkami", "Ōkami"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeLogValue(tt.input); got != tt.want {
				t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerateETag(t *testing.T) {
	a := generateETag([]byte(`{"id":1}`))
	b := generateETag([]byte(`{"id":1}`))
	c := generateETag([]byte(`{"id":2}`))

	if a != b {
		t.Errorf("ETag not stable: %s vs %s", a, b)
	}
	if a == c {
		t.Error("different bodies should produce different ETags")
	}
	if a[0] != '"' || a[len(a)-1] != '"' {
		t.Errorf("ETag %s should be quoted", a)
	}
}

func TestRespondJSON_CacheControl(t *testing.T) {
	tests := []struct {
		name   string
		preset string
		status int
		want   string
	}{
		{"success cacheable", "", http.StatusOK, "public, max-age=60"},
		{"error not cached", "", http.StatusInternalServerError, "no-store"},
		{"handler override kept", "no-store", http.StatusOK, "no-store"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			if tt.preset != "" {
				rec.Header().Set("Cache-Control", tt.preset)
			}

			respondJSON(rec, tt.status, map[string]int{"id": 1})

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			if got := rec.Header().Get("Cache-Control"); got != tt.want {
				t.Errorf("Cache-Control = %q, want %q", got, tt.want)
			}
			if got := rec.Body.String(); got != `{"id":1}` {
				t.Errorf("body = %s", got)
			}
		})
	}
}

func TestRespondError_HidesCause(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/genres", nil)

	respondError(rec, req, http.StatusInternalServerError, MsgGenresFailed, errTest("key=abc123 leaked"))

	if got := rec.Body.String(); got != `{"message":"Failed to fetch genres"}` {
		t.Errorf("body = %s", got)
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
