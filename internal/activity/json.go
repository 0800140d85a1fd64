// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package activity

import (
	"github.com/goccy/go-json"
)

// MarshalJSON encodes the type as its symbolic name, the form the Hazelmere
// API carries on the JSON transport.
func (t ActivityType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Name())
}

// UnmarshalJSON decodes a symbolic name. Mirroring ordinal totality,
// unrecognized names decode to Unknown rather than failing the document.
func (t *ActivityType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	typ, ok := FromName(name)
	if !ok {
		typ = Unknown
	}
	*t = typ
	return nil
}
