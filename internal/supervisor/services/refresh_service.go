// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/waypoint/internal/recommend"
)

// Reloader swaps in tables loaded from a source. *recommend.Engine
// implements it.
type Reloader interface {
	Reload(ctx context.Context, src recommend.TableSource) (recommend.ReloadResult, error)
}

// RefreshService reloads the dataset every interval through the engine's
// reload path, which it shares with the admin endpoint. A failed reload
// keeps the current table.
type RefreshService struct {
	source   recommend.TableSource
	target   Reloader
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewRefreshService creates a refresh service. interval must be positive.
//
//nolint:gocritic // zerolog.Logger is passed by value
func NewRefreshService(source recommend.TableSource, target Reloader, interval time.Duration, logger zerolog.Logger) (*RefreshService, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("refresh interval must be positive, got %v", interval)
	}
	return &RefreshService{
		source:   source,
		target:   target,
		interval: interval,
		logger:   logger.With().Str("service", "dataset-refresh").Logger(),
		name:     "dataset-refresh",
	}, nil
}

// Serve implements suture.Service.
func (s *RefreshService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("dataset refresh service starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("dataset refresh service shutting down")
			return ctx.Err()

		case <-ticker.C:
			if err := s.refresh(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("scheduled dataset refresh failed")
			}
		}
	}
}

func (s *RefreshService) refresh(ctx context.Context) error {
	start := time.Now()
	result, err := s.target.Reload(ctx, s.source)
	if errors.Is(err, recommend.ErrReloadInProgress) {
		s.logger.Debug().Msg("reload already in progress, skipping scheduled refresh")
		return nil
	}
	if err != nil {
		return err
	}

	s.logger.Debug().
		Int("rows", result.Rows).
		Dur("duration", time.Since(start)).
		Msg("scheduled refresh complete")
	return nil
}

// String names the service in supervisor events.
func (s *RefreshService) String() string {
	return s.name
}
