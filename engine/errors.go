// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import "errors"

var (
	// ErrMissingCollaborator is returned by constructors when a required
	// dependency (measurer or theme resolver) is nil.
	ErrMissingCollaborator = errors.New("engine: missing collaborator")

	// ErrInvalidConfig is returned by Validate and by constructors.
	ErrInvalidConfig = errors.New("engine: invalid config")
)
