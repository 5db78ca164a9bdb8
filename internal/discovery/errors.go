// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package discovery

import "errors"

// ErrNotFound is returned when no candidate survives querying and filtering.
var ErrNotFound = errors.New("no games match the requested filters")
