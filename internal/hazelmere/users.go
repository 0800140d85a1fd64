// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package hazelmere

import (
	"context"

	"github.com/ctfloyd/hazelmere-charts/internal/models"
)

// GetAllUsers fetches every tracked user.
func (c *Client) GetAllUsers(ctx context.Context) ([]models.User, error) {
	const op = "get_all_users"
	resp, err := c.get(ctx, op, c.baseURL+"/v1/users", contentTypeJSON)
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := decodeInto(op, resp, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Health probes the service health endpoint. A nil return means the API
// answered 2xx within the client timeout.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.get(ctx, "health", c.baseURL+"/v1/health", contentTypeJSON)
	return err
}
