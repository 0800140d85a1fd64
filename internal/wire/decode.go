// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package wire

import (
	"encoding/binary"

	"github.com/ctfloyd/hazelmere-charts/internal/activity"
	"github.com/ctfloyd/hazelmere-charts/internal/models"
)

// Version is the single supported protocol version.
const Version = 1

// reader is a bounds-checked cursor over the input buffer. All reads are
// sequential; a read past the end yields a TruncatedError carrying the
// offset and width of the failed read.
type reader struct {
	buf []byte
	off int
}

func (r *reader) take(n int) ([]byte, error) {
	if r.off+n > len(r.buf) {
		return nil, &TruncatedError{Offset: r.off, Need: n, Size: len(r.buf)}
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *reader) u8() (byte, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) u16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *reader) i16() (int16, error) {
	v, err := r.u16()
	return int16(v), err
}

func (r *reader) i32() (int32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func (r *reader) i64() (int64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

// Decode parses a binary interval payload into a snapshot and its deltas.
// The user identifier is not carried on the wire and is stamped onto the
// decoded snapshot. Trailing bytes beyond the delta block are ignored.
func Decode(buf []byte, userID string) (*models.SnapshotWithDeltas, error) {
	r := &reader{buf: buf}

	version, err := r.u8()
	if err != nil {
		return nil, err
	}
	if version != Version {
		return nil, &VersionError{Got: version}
	}
	// Reserved flags byte, ignored.
	if _, err := r.u8(); err != nil {
		return nil, err
	}

	snap, err := decodeSnapshot(r, userID)
	if err != nil {
		return nil, err
	}

	deltaCount, err := r.u16()
	if err != nil {
		return nil, err
	}
	var deltas []models.Delta
	if deltaCount > 0 {
		deltas = make([]models.Delta, 0, deltaCount)
		for i := 0; i < int(deltaCount); i++ {
			d, err := decodeDelta(r)
			if err != nil {
				return nil, err
			}
			deltas = append(deltas, d)
		}
	}

	return &models.SnapshotWithDeltas{Snapshot: snap, Deltas: deltas}, nil
}

func decodeSnapshot(r *reader, userID string) (models.Snapshot, error) {
	ts, err := r.i64()
	if err != nil {
		return models.Snapshot{}, err
	}

	skillCount, err := r.u8()
	if err != nil {
		return models.Snapshot{}, err
	}
	skills := make([]models.SkillEntry, 0, skillCount)
	for i := 0; i < int(skillCount); i++ {
		ord, err := r.u8()
		if err != nil {
			return models.Snapshot{}, err
		}
		exp, err := r.i32()
		if err != nil {
			return models.Snapshot{}, err
		}
		level, err := r.i16()
		if err != nil {
			return models.Snapshot{}, err
		}
		skills = append(skills, models.SkillEntry{
			Type:       activity.FromOrdinal(int(ord)),
			Experience: int64(exp),
			Level:      int(level),
		})
	}

	bossCount, err := r.u8()
	if err != nil {
		return models.Snapshot{}, err
	}
	bosses := make([]models.BossEntry, 0, bossCount)
	for i := 0; i < int(bossCount); i++ {
		ord, err := r.u8()
		if err != nil {
			return models.Snapshot{}, err
		}
		kills, err := r.i32()
		if err != nil {
			return models.Snapshot{}, err
		}
		bosses = append(bosses, models.BossEntry{
			Type:      activity.FromOrdinal(int(ord)),
			KillCount: int(kills),
		})
	}

	activityCount, err := r.u8()
	if err != nil {
		return models.Snapshot{}, err
	}
	activities := make([]models.ActivityEntry, 0, activityCount)
	for i := 0; i < int(activityCount); i++ {
		ord, err := r.u8()
		if err != nil {
			return models.Snapshot{}, err
		}
		score, err := r.i32()
		if err != nil {
			return models.Snapshot{}, err
		}
		activities = append(activities, models.ActivityEntry{
			Type:  activity.FromOrdinal(int(ord)),
			Score: int(score),
		})
	}

	return models.Snapshot{
		UserID:     userID,
		Timestamp:  ts,
		Skills:     skills,
		Bosses:     bosses,
		Activities: activities,
	}, nil
}

func decodeDelta(r *reader) (models.Delta, error) {
	ts, err := r.i64()
	if err != nil {
		return models.Delta{}, err
	}
	d := models.Delta{Timestamp: ts}

	skillCount, err := r.u8()
	if err != nil {
		return models.Delta{}, err
	}
	// Zero-count sections stay nil: absent, per the data model contract.
	if skillCount > 0 {
		d.Skills = make([]models.SkillDelta, 0, skillCount)
		for i := 0; i < int(skillCount); i++ {
			ord, err := r.u8()
			if err != nil {
				return models.Delta{}, err
			}
			expGain, err := r.i32()
			if err != nil {
				return models.Delta{}, err
			}
			levelGain, err := r.i16()
			if err != nil {
				return models.Delta{}, err
			}
			d.Skills = append(d.Skills, models.SkillDelta{
				Type:           activity.FromOrdinal(int(ord)),
				ExperienceGain: int64(expGain),
				LevelGain:      int(levelGain),
			})
		}
	}

	bossCount, err := r.u8()
	if err != nil {
		return models.Delta{}, err
	}
	if bossCount > 0 {
		d.Bosses = make([]models.BossDelta, 0, bossCount)
		for i := 0; i < int(bossCount); i++ {
			ord, err := r.u8()
			if err != nil {
				return models.Delta{}, err
			}
			gain, err := r.i32()
			if err != nil {
				return models.Delta{}, err
			}
			d.Bosses = append(d.Bosses, models.BossDelta{
				Type:          activity.FromOrdinal(int(ord)),
				KillCountGain: int(gain),
			})
		}
	}

	activityCount, err := r.u8()
	if err != nil {
		return models.Delta{}, err
	}
	if activityCount > 0 {
		d.Activities = make([]models.ActivityDelta, 0, activityCount)
		for i := 0; i < int(activityCount); i++ {
			ord, err := r.u8()
			if err != nil {
				return models.Delta{}, err
			}
			gain, err := r.i32()
			if err != nil {
				return models.Delta{}, err
			}
			d.Activities = append(d.Activities, models.ActivityDelta{
				Type:      activity.FromOrdinal(int(ord)),
				ScoreGain: int(gain),
			})
		}
	}

	return d, nil
}
