// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package models

import "time"

// ErrorResponse is the JSON body of every failed request.
//
//	{"message": "Failed to fetch genres"}
//
// Validation failures also carry the offending field:
//
//	{"message": "minRating must be less than or equal to 100", "code": "VALIDATION_ERROR",
//	 "details": {"field": "minRating", "tag": "lte", "value": 150}}
type ErrorResponse struct {
	Message string                 `json:"message"`
	Code    string                 `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status         string    `json:"status"` // "ok" or "degraded"
	Uptime         float64   `json:"uptime_seconds"`
	CircuitBreaker string    `json:"circuit_breaker,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}
