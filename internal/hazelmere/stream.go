// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package hazelmere

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/ctfloyd/hazelmere-charts/internal/metrics"
	"github.com/ctfloyd/hazelmere-charts/internal/models"
)

const (
	streamBuffer        = 16
	streamReadTimeout   = 60 * time.Second
	streamReconnectBase = time.Second
	streamReconnectMax  = 32 * time.Second
	streamDialTimeout   = 10 * time.Second
)

// snapshotEvent is the wire shape of a snapshot-created push.
type snapshotEvent struct {
	UserID   string          `json:"userId"`
	Snapshot models.Snapshot `json:"snapshot"`
}

// WatchSnapshots subscribes to snapshot-created events for a user over a
// websocket. The initial dial happens synchronously so configuration errors
// surface immediately; after that a background reader owns the connection,
// reconnecting with exponential backoff when it drops. The returned channel
// closes when the context is canceled.
func (c *Client) WatchSnapshots(ctx context.Context, userID string) (<-chan models.Snapshot, error) {
	if userID == "" {
		return nil, errors.New("watch_snapshots: user id is required")
	}
	wsURL, err := c.streamURL(userID)
	if err != nil {
		return nil, fmt.Errorf("watch_snapshots: %w", err)
	}

	conn, err := c.dialStream(ctx, wsURL)
	if err != nil {
		metrics.RecordStreamError("dial")
		return nil, fmt.Errorf("watch_snapshots: %w", err)
	}
	metrics.RecordStreamConnect()

	events := make(chan models.Snapshot, streamBuffer)
	go c.watch(ctx, wsURL, conn, events)
	return events, nil
}

// streamURL converts the client base URL into the websocket endpoint for a
// user's snapshot stream.
func (c *Client) streamURL(userID string) (string, error) {
	var base string
	switch {
	case strings.HasPrefix(c.baseURL, "https://"):
		base = "wss" + strings.TrimPrefix(c.baseURL, "https")
	case strings.HasPrefix(c.baseURL, "http://"):
		base = "ws" + strings.TrimPrefix(c.baseURL, "http")
	default:
		return "", fmt.Errorf("base URL %q is not http or https", c.baseURL)
	}
	return base + "/v1/snapshots/" + url.PathEscape(userID) + "/stream", nil
}

func (c *Client) dialStream(ctx context.Context, wsURL string) (*websocket.Conn, error) {
	dialer := websocket.Dialer{HandshakeTimeout: streamDialTimeout}
	conn, resp, err := dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("websocket dial failed (status %d): %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("websocket dial failed: %w", err)
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	return conn, nil
}

// watch reads events until the context is canceled, reconnecting with
// exponential backoff (1s doubling to 32s) on connection loss.
func (c *Client) watch(ctx context.Context, wsURL string, conn *websocket.Conn, events chan<- models.Snapshot) {
	defer close(events)

	delay := streamReconnectBase
	for {
		if conn == nil {
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
			delay *= 2
			if delay > streamReconnectMax {
				delay = streamReconnectMax
			}

			metrics.RecordStreamReconnect()
			var err error
			conn, err = c.dialStream(ctx, wsURL)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				metrics.RecordStreamError("dial")
				c.log.Warn().Err(err).Dur("next_delay", delay).Msg("Stream reconnect failed")
				continue
			}
			metrics.RecordStreamConnect()
			delay = streamReconnectBase
		}

		// Unblock the pending read promptly when the context is canceled.
		stop := context.AfterFunc(ctx, func() { _ = conn.Close() })

		_ = conn.SetReadDeadline(time.Now().Add(streamReadTimeout))
		_, message, err := conn.ReadMessage()
		stop()
		if err != nil {
			_ = conn.Close()
			conn = nil
			if ctx.Err() != nil {
				return
			}
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				metrics.RecordStreamError("read")
				c.log.Warn().Err(err).Msg("Stream read failed")
			}
			continue
		}

		var ev snapshotEvent
		if err := json.Unmarshal(message, &ev); err != nil {
			metrics.RecordStreamError("decode")
			c.log.Warn().Err(err).Msg("Discarding malformed stream event")
			continue
		}
		metrics.RecordStreamSnapshot()

		select {
		case events <- ev.Snapshot:
		case <-ctx.Done():
			_ = conn.Close()
			return
		}
	}
}
