// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package setting

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pakapat-jp/edu-mcru/internal/platform/apperr"
	"github.com/pakapat-jp/edu-mcru/internal/platform/constants"
)

// cacheTTL bounds staleness if an invalidation is ever lost.
const cacheTTL = 5 * time.Minute

// Service serves the site settings map through a Redis snapshot cache.
//
// # Caching
//
// The public site requests settings on every page render, so the full
// map is cached as one JSON blob. Saves invalidate the snapshot; the TTL
// is a backstop, not the primary freshness mechanism. Cache failures
// degrade to the database, they never fail a request.
type Service struct {
	repo   Repository
	cache  *redis.Client
	logger *slog.Logger
}

// NewService constructs a new settings [Service].
func NewService(repo Repository, cache *redis.Client, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

/*
GetAll returns every site setting as a flat key/value map.

Description: Served from the Redis snapshot when present; otherwise read
from the database and re-cached.

Parameters:
  - ctx: context.Context

Returns:
  - map[string]string: All settings
  - error: Database retrieval failures
*/
func (service *Service) GetAll(ctx context.Context) (map[string]string, error) {
	if cached := service.fromCache(ctx); cached != nil {
		return cached, nil
	}

	settings, err := service.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	service.toCache(ctx, settings)

	return settings, nil
}

/*
Save upserts the given settings and invalidates the snapshot cache.

Parameters:
  - ctx: context.Context
  - settings: map[string]string (keys not present are left untouched)

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) Save(ctx context.Context, settings map[string]string) error {
	if len(settings) == 0 {
		return apperr.ValidationError("No settings provided")
	}

	if err := service.repo.SaveAll(ctx, settings); err != nil {
		return err
	}

	if err := service.cache.Del(ctx, constants.RedisKeySettings).Err(); err != nil {
		// The TTL caps how long readers can observe the stale snapshot.
		service.logger.Warn("settings_cache_invalidation_failed",
			slog.String("error", err.Error()),
		)
	}

	service.logger.Info("settings_saved", slog.Int("keys", len(settings)))

	return nil
}

// fromCache loads the snapshot, returning nil on miss or any failure.
func (service *Service) fromCache(ctx context.Context) map[string]string {
	payload, err := service.cache.Get(ctx, constants.RedisKeySettings).Bytes()
	if err != nil {
		return nil
	}

	var settings map[string]string
	if err := json.Unmarshal(payload, &settings); err != nil {
		return nil
	}
	return settings
}

// toCache stores the snapshot best-effort.
func (service *Service) toCache(ctx context.Context, settings map[string]string) {
	payload, err := json.Marshal(settings)
	if err != nil {
		return
	}

	if err := service.cache.Set(ctx, constants.RedisKeySettings, payload, cacheTTL).Err(); err != nil {
		service.logger.Warn("settings_cache_write_failed",
			slog.String("error", err.Error()),
		)
	}
}
