// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package wire

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two decode failure modes. Callers treat both like a
// network failure: re-fetch, never re-decode the same buffer.
var (
	ErrUnsupportedVersion = errors.New("unsupported protocol version")
	ErrTruncated          = errors.New("truncated buffer")
)

// VersionError reports a header version byte the decoder does not support.
type VersionError struct {
	Got byte
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("unsupported protocol version %d (supported: %d)", e.Got, Version)
}

func (e *VersionError) Unwrap() error { return ErrUnsupportedVersion }

// TruncatedError reports a read past the end of the buffer. Offset is the
// cursor position of the failed read, Need the number of bytes it required.
type TruncatedError struct {
	Offset int
	Need   int
	Size   int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated buffer: need %d bytes at offset %d, have %d total", e.Need, e.Offset, e.Size)
}

func (e *TruncatedError) Unwrap() error { return ErrTruncated }
