// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "github.com/google/uuid"

// ID identifies a surface for the lifetime of the process.
type ID uuid.UUID

// NewID returns a fresh random identity.
func NewID() ID {
	return ID(uuid.New())
}

// String returns the canonical UUID text form.
func (id ID) String() string {
	return uuid.UUID(id).String()
}

// IsZero reports whether id is the zero identity.
func (id ID) IsZero() bool {
	return id == ID{}
}
