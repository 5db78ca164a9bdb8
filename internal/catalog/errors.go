// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package catalog

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// maxErrorBody caps how much of an upstream error body is kept in the error.
const maxErrorBody = 256

// UpstreamError reports a failed catalog call: a non-2xx status, a transport
// failure, an undecodable body, or a rejection by the circuit breaker.
type UpstreamError struct {
	Op         string
	StatusCode int    // 0 when no response was received
	Body       string // truncated upstream body, for logs only
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Body != "":
		return fmt.Sprintf("catalog %s returned status %d: %s", e.Op, e.StatusCode, e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("catalog %s returned status %d", e.Op, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("catalog %s failed: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("catalog %s failed", e.Op)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NotFound reports whether the upstream answered 404.
func (e *UpstreamError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsNotFound reports whether err is an UpstreamError for a 404 response.
func IsNotFound(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue) && ue.NotFound()
}

func newStatusError(op string, status int, body []byte) *UpstreamError {
	snippet := string(body)
	if len(snippet) > maxErrorBody {
		snippet = snippet[:maxErrorBody] + "..."
	}
	return &UpstreamError{Op: op, StatusCode: status, Body: snippet}
}

// redactURLError strips the query string (which carries the API key) from
// *url.Error values returned by http.Client.
func redactURLError(err error) error {
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}
	if u, perr := url.Parse(uerr.URL); perr == nil {
		u.RawQuery = ""
		return &url.Error{Op: uerr.Op, URL: u.String(), Err: uerr.Err}
	}
	return &url.Error{Op: uerr.Op, URL: "[redacted]", Err: uerr.Err}
}
