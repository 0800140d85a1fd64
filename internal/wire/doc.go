// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

/*
Package wire implements the compact binary snapshot transport used by the
Hazelmere API's interval endpoint.

The format is big-endian and strictly sequential: a two-byte header (version,
reserved flags), an eight-byte epoch-millisecond timestamp, three
count-prefixed fixed-width record sections (skills, bosses, activities), then
a two-byte-counted block of deltas, each carrying its own timestamp and three
count-prefixed gain sections. The format is self-describing only through its
counts, so every read is bounds-checked against the remaining buffer; short
input fails with a truncation error rather than producing garbage entries.

Decode never panics on malformed input. The two failure modes are distinct
and detectable with errors.Is: ErrUnsupportedVersion for a version byte other
than the supported one, ErrTruncated for a buffer that ends mid-record.
*/
package wire
