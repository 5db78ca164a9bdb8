// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// CompressionMinSize is the smallest body, in bytes, that is gzip encoded.
const CompressionMinSize = 1024

// gzipResponseWriter buffers the handler output so the encoding decision
// can be made once the final body size is known.
type gzipResponseWriter struct {
	http.ResponseWriter
	buf    bytes.Buffer
	status int
}

func (w *gzipResponseWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.buf.Write(b)
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *gzipResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *gzipResponseWriter) finish() {
	status := w.status
	if status == 0 {
		status = http.StatusOK
	}

	h := w.ResponseWriter.Header()
	if w.buf.Len() < CompressionMinSize || !bodyAllowed(status) || h.Get("Content-Encoding") != "" {
		w.ResponseWriter.WriteHeader(status)
		_, _ = w.ResponseWriter.Write(w.buf.Bytes())
		return
	}

	h.Set("Content-Encoding", "gzip")
	h.Del("Content-Length") // Length will be different after compression
	w.ResponseWriter.WriteHeader(status)

	gz := gzipWriterPool.Get().(*gzip.Writer)
	defer gzipWriterPool.Put(gz)
	gz.Reset(w.ResponseWriter)
	_, _ = gz.Write(w.buf.Bytes())
	_ = gz.Close() // Best-effort, the status line is already on the wire
}

func bodyAllowed(status int) bool {
	return status != http.StatusNoContent && status != http.StatusNotModified && status >= http.StatusOK
}

// gzipWriterPool pools gzip writers to reduce allocations
var gzipWriterPool = sync.Pool{
	New: func() interface{} {
		return gzip.NewWriter(io.Discard)
	},
}

// Compression middleware gzip encodes responses of at least CompressionMinSize
// bytes when the client advertises gzip support.
func Compression(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead || !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next(w, r)
			return
		}

		w.Header().Add("Vary", "Accept-Encoding")
		gzw := &gzipResponseWriter{ResponseWriter: w}
		next(gzw, r)
		gzw.finish()
	}
}
