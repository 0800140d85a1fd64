// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

// Package config loads and validates application configuration using
// Koanf v2 with layered sources.
//
// # Precedence
//
// Configuration is assembled from three layers, later layers overriding
// earlier ones:
//
//  1. Struct defaults (defaultConfig)
//  2. Optional YAML file (first hit in DefaultConfigPaths, or CONFIG_PATH)
//  3. Environment variables (explicit mapping table, see envTransformFunc)
//
// # Sections
//
//   - api: Hazelmere API base URL, request timeout, outbound rate limit,
//     and circuit breaker tuning
//   - chart: default activity, aggregation window policy, display floors
//   - agent: watch-mode ops listener, CORS origins, stream subscriptions
//   - logging: zerolog level, format, caller annotation
//
// # Environment variables
//
// Only explicitly mapped variables are read; everything else in the
// environment is ignored. Slice-valued settings (agent.cors_origins,
// agent.stream_user_ids) accept comma-separated values from the
// environment.
//
// # Validation
//
// Load returns an error when the merged configuration fails validation.
// Range and enumeration rules live as validate struct tags; cross-field
// rules live in Config.Validate.
package config
