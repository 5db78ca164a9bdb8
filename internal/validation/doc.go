// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

// Package validation provides struct validation using go-playground/validator v10.
//
// It wraps a thread-safe singleton validator with custom validators and
// user-friendly error messages, and converts failures to an APIError that
// the HTTP layer renders as a 400 response.
//
// # Custom Validators
//
//   - daterange: "YYYY-MM-DD,YYYY-MM-DD" with start not after end
//   - slug: lowercase alphanumerics separated by single hyphens (genre slugs)
//
// # Field Names
//
// Struct fields are reported by their `query` tag, so a failure on
//
//	MinRating *int `query:"minRating" validate:"omitempty,gte=0,lte=100"`
//
// reads "minRating must be less than or equal to 100".
//
// # Usage
//
//	if verr := validation.ValidateStruct(&filters); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
package validation
