package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"linkhop/internal/cache"
	"linkhop/internal/repository"
)

// ResolverService defines the business logic for resolving short codes
type ResolverService interface {
	// Resolve returns the destination URL for a code and accounts the click.
	// It returns ErrNotFound for unknown or empty codes and ErrResolution
	// when the store fails; no raw store error escapes.
	Resolve(ctx context.Context, code string) (string, error)
}

type resolverService struct {
	repo  repository.LinkRepository
	cache cache.Cache
	log   zerolog.Logger
}

// NewResolverService creates a new resolver service. cacheClient may be nil;
// the resolver then skips miss caching entirely.
func NewResolverService(repo repository.LinkRepository, cacheClient cache.Cache, log zerolog.Logger) ResolverService {
	return &resolverService{
		repo:  repo,
		cache: cacheClient,
		log:   log,
	}
}

// missCacheTTL is how long an unknown code is remembered as a miss. Short on
// purpose: a sync run may create the public record at any moment.
const missCacheTTL = 30 * time.Second

func (s *resolverService) Resolve(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", ErrNotFound
	}

	// Only misses are ever served from cache. A hit must always reach the
	// store so the counters increment once per request.
	if s.cache != nil {
		missKey := fmt.Sprintf("shortlink:miss:%s", code)
		if exists, err := s.cache.Exists(ctx, missKey); err == nil && exists {
			return "", ErrNotFound
		}
	}

	resolved, err := s.repo.ResolveAndCount(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			if s.cache != nil {
				missKey := fmt.Sprintf("shortlink:miss:%s", code)
				if cacheErr := s.cache.Set(ctx, missKey, "1", missCacheTTL); cacheErr != nil {
					s.log.Warn().Err(cacheErr).Str("code", code).Msg("failed to cache miss")
				}
			}
			s.log.Info().Str("code", code).Msg("short link not found")
			return "", ErrNotFound
		}

		s.log.Error().Err(err).Str("code", code).Msg("short link resolution failed")
		return "", fmt.Errorf("%w: %s", ErrResolution, code)
	}

	s.log.Info().
		Str("code", code).
		Int64("click_count", resolved.ClickCount).
		Msg("short link resolved")

	return resolved.OriginalURL, nil
}
