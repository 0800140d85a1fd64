// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package hazelmere

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ctfloyd/hazelmere-charts/internal/metrics"
	"github.com/ctfloyd/hazelmere-charts/internal/models"
	"github.com/ctfloyd/hazelmere-charts/internal/validation"
	"github.com/ctfloyd/hazelmere-charts/internal/wire"
)

// GetAllSnapshots fetches every snapshot recorded for a user, ordered by
// timestamp ascending.
func (c *Client) GetAllSnapshots(ctx context.Context, userID string) ([]models.Snapshot, error) {
	const op = "get_all_snapshots"
	if userID == "" {
		return nil, fmt.Errorf("%s: user id is required", op)
	}

	resp, err := c.get(ctx, op, c.snapshotURL(userID, "", nil), contentTypeJSON)
	if err != nil {
		return nil, err
	}

	var snapshots []models.Snapshot
	if err := decodeInto(op, resp, &snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}

type nearestRequest struct {
	UserID    string `validate:"required"`
	Timestamp int64  `validate:"gt=0"`
}

// GetSnapshotNearest fetches the snapshot closest in time to the given epoch
// millisecond timestamp.
func (c *Client) GetSnapshotNearest(ctx context.Context, userID string, timestamp int64) (*models.Snapshot, error) {
	const op = "get_snapshot_nearest"
	if verr := validation.ValidateStruct(&nearestRequest{UserID: userID, Timestamp: timestamp}); verr != nil {
		return nil, fmt.Errorf("%s: %w", op, verr)
	}

	query := url.Values{"timestamp": {strconv.FormatInt(timestamp, 10)}}
	resp, err := c.get(ctx, op, c.snapshotURL(userID, "nearest", query), contentTypeJSON)
	if err != nil {
		return nil, err
	}

	var snapshot models.Snapshot
	if err := decodeInto(op, resp, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

type createSnapshotRequest struct {
	UserID    string `validate:"required"`
	Timestamp int64  `validate:"gt=0"`
}

// CreateSnapshot records a new snapshot and returns the stored copy,
// including the server-assigned ID.
func (c *Client) CreateSnapshot(ctx context.Context, snapshot *models.Snapshot) (*models.Snapshot, error) {
	const op = "create_snapshot"
	if snapshot == nil {
		return nil, fmt.Errorf("%s: snapshot is required", op)
	}
	req := createSnapshotRequest{UserID: snapshot.UserID, Timestamp: snapshot.Timestamp}
	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, fmt.Errorf("%s: %w", op, verr)
	}

	resp, err := c.post(ctx, op, c.baseURL+"/v1/snapshots", snapshot)
	if err != nil {
		return nil, err
	}

	var created models.Snapshot
	if err := decodeInto(op, resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

type intervalRequest struct {
	UserID string            `validate:"required"`
	Start  int64             `validate:"gte=0"`
	End    int64             `validate:"gtefield=Start"`
	Window AggregationWindow `validate:"oneof=daily weekly monthly"`
}

// GetSnapshotInterval fetches the snapshots within [start, end], aggregated
// server-side to the given window. Concurrent calls with identical
// parameters are coalesced onto a single upstream request; every caller
// receives the same slice and must treat it as read-only.
func (c *Client) GetSnapshotInterval(ctx context.Context, userID string, start, end int64, window AggregationWindow) ([]models.Snapshot, error) {
	const op = "get_snapshot_interval"
	req := intervalRequest{UserID: userID, Start: start, End: end, Window: window}
	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, fmt.Errorf("%s: %w", op, verr)
	}

	v, err, shared := c.flight.Do(dedupKey(op, req), func() (interface{}, error) {
		query := url.Values{
			"start":  {strconv.FormatInt(start, 10)},
			"end":    {strconv.FormatInt(end, 10)},
			"window": {string(window)},
		}
		resp, err := c.get(ctx, op, c.snapshotURL(userID, "interval", query), contentTypeJSON)
		if err != nil {
			return nil, err
		}

		var snapshots []models.Snapshot
		if err := decodeInto(op, resp, &snapshots); err != nil {
			return nil, err
		}
		return snapshots, nil
	})
	if shared {
		metrics.RecordDedupHit(op)
	}
	if err != nil {
		return nil, err
	}
	return v.([]models.Snapshot), nil
}

type withDeltasRequest struct {
	UserID string `validate:"required"`
	Start  int64  `validate:"gte=0"`
	End    int64  `validate:"gtefield=Start"`
}

// GetSnapshotWithDeltas fetches the base snapshot plus delta sequence for
// [start, end]. The binary wire transport is preferred; when the server
// answers with JSON instead, the response decodes through the JSON path to
// the identical logical structure. An empty result is not an error; see
// models.SnapshotWithDeltas.IsEmpty.
func (c *Client) GetSnapshotWithDeltas(ctx context.Context, userID string, start, end int64) (*models.SnapshotWithDeltas, error) {
	const op = "get_snapshot_with_deltas"
	if verr := validation.ValidateStruct(&withDeltasRequest{UserID: userID, Start: start, End: end}); verr != nil {
		return nil, fmt.Errorf("%s: %w", op, verr)
	}

	query := url.Values{
		"start": {strconv.FormatInt(start, 10)},
		"end":   {strconv.FormatInt(end, 10)},
	}
	accept := contentTypeBinary + ", " + contentTypeJSON + ";q=0.5"
	resp, err := c.get(ctx, op, c.snapshotURL(userID, "deltas", query), accept)
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(resp.contentType, contentTypeBinary) {
		began := time.Now()
		swd, err := wire.Decode(resp.body, userID)
		metrics.RecordDecode(len(resp.body), time.Since(began), err)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		metrics.AddDeltasDecoded(len(swd.Deltas))
		return swd, nil
	}

	var swd models.SnapshotWithDeltas
	if err := decodeInto(op, resp, &swd); err != nil {
		return nil, err
	}
	return &swd, nil
}

// snapshotURL builds /v1/snapshots/{userID}[/suffix][?query].
func (c *Client) snapshotURL(userID, suffix string, query url.Values) string {
	u := c.baseURL + "/v1/snapshots/" + url.PathEscape(userID)
	if suffix != "" {
		u += "/" + suffix
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}
