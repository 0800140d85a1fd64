// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package wire

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ctfloyd/hazelmere-charts/internal/models"
)

// Encode serializes a snapshot and its deltas into the binary interval
// format. It is the exact inverse of Decode and exists for the mock API
// server and the codec tests; the dashboard itself only ever decodes.
func Encode(s *models.SnapshotWithDeltas) ([]byte, error) {
	w := &writer{}
	w.u8(Version)
	w.u8(0) // reserved flags

	if err := encodeSnapshot(w, &s.Snapshot); err != nil {
		return nil, err
	}

	if len(s.Deltas) > math.MaxUint16 {
		return nil, fmt.Errorf("delta count %d exceeds format limit", len(s.Deltas))
	}
	w.u16(uint16(len(s.Deltas)))
	for i := range s.Deltas {
		if err := encodeDelta(w, &s.Deltas[i]); err != nil {
			return nil, err
		}
	}
	return w.buf, nil
}

type writer struct {
	buf []byte
}

func (w *writer) u8(v byte)    { w.buf = append(w.buf, v) }
func (w *writer) u16(v uint16) { w.buf = binary.BigEndian.AppendUint16(w.buf, v) }
func (w *writer) i16(v int16)  { w.buf = binary.BigEndian.AppendUint16(w.buf, uint16(v)) }
func (w *writer) i32(v int32)  { w.buf = binary.BigEndian.AppendUint32(w.buf, uint32(v)) }
func (w *writer) i64(v int64)  { w.buf = binary.BigEndian.AppendUint64(w.buf, uint64(v)) }

func sectionCount(name string, n int) (byte, error) {
	if n > math.MaxUint8 {
		return 0, fmt.Errorf("%s count %d exceeds format limit", name, n)
	}
	return byte(n), nil
}

func checkedI32(name string, v int64) (int32, error) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("%s %d overflows the 4-byte wire field", name, v)
	}
	return int32(v), nil
}

func checkedI16(name string, v int64) (int16, error) {
	if v > math.MaxInt16 || v < math.MinInt16 {
		return 0, fmt.Errorf("%s %d overflows the 2-byte wire field", name, v)
	}
	return int16(v), nil
}

func encodeSnapshot(w *writer, s *models.Snapshot) error {
	w.i64(s.Timestamp)

	n, err := sectionCount("skill", len(s.Skills))
	if err != nil {
		return err
	}
	w.u8(n)
	for _, e := range s.Skills {
		exp, err := checkedI32("experience", e.Experience)
		if err != nil {
			return err
		}
		level, err := checkedI16("level", int64(e.Level))
		if err != nil {
			return err
		}
		w.u8(byte(e.Type.Ordinal()))
		w.i32(exp)
		w.i16(level)
	}

	n, err = sectionCount("boss", len(s.Bosses))
	if err != nil {
		return err
	}
	w.u8(n)
	for _, e := range s.Bosses {
		kills, err := checkedI32("kill count", int64(e.KillCount))
		if err != nil {
			return err
		}
		w.u8(byte(e.Type.Ordinal()))
		w.i32(kills)
	}

	n, err = sectionCount("activity", len(s.Activities))
	if err != nil {
		return err
	}
	w.u8(n)
	for _, e := range s.Activities {
		score, err := checkedI32("score", int64(e.Score))
		if err != nil {
			return err
		}
		w.u8(byte(e.Type.Ordinal()))
		w.i32(score)
	}
	return nil
}

func encodeDelta(w *writer, d *models.Delta) error {
	w.i64(d.Timestamp)

	n, err := sectionCount("skill delta", len(d.Skills))
	if err != nil {
		return err
	}
	w.u8(n)
	for _, e := range d.Skills {
		gain, err := checkedI32("experience gain", e.ExperienceGain)
		if err != nil {
			return err
		}
		levelGain, err := checkedI16("level gain", int64(e.LevelGain))
		if err != nil {
			return err
		}
		w.u8(byte(e.Type.Ordinal()))
		w.i32(gain)
		w.i16(levelGain)
	}

	n, err = sectionCount("boss delta", len(d.Bosses))
	if err != nil {
		return err
	}
	w.u8(n)
	for _, e := range d.Bosses {
		gain, err := checkedI32("kill count gain", int64(e.KillCountGain))
		if err != nil {
			return err
		}
		w.u8(byte(e.Type.Ordinal()))
		w.i32(gain)
	}

	n, err = sectionCount("activity delta", len(d.Activities))
	if err != nil {
		return err
	}
	w.u8(n)
	for _, e := range d.Activities {
		gain, err := checkedI32("score gain", int64(e.ScoreGain))
		if err != nil {
			return err
		}
		w.u8(byte(e.Type.Ordinal()))
		w.i32(gain)
	}
	return nil
}
