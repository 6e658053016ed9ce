package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"linkhop/internal/entities"
	"linkhop/internal/models"
	"linkhop/internal/repository"
)

// DiagnosticService is a manual verification tool for click accounting. It
// increments the private counter with a plain read-modify-write, outside any
// transaction, so concurrent writers are NOT serialized against it. Keep it
// off the production redirect path.
type DiagnosticService interface {
	TestIncrement(ctx context.Context, code string) (*models.ClickTestResult, error)

	// LinkStats returns the private and public counters for a code side by
	// side, for operator inspection.
	LinkStats(ctx context.Context, code string) (*entities.LinkStats, error)
}

type diagnosticService struct {
	repo repository.LinkRepository
	log  zerolog.Logger
}

// NewDiagnosticService creates a new diagnostic service
func NewDiagnosticService(repo repository.LinkRepository, log zerolog.Logger) DiagnosticService {
	return &diagnosticService{repo: repo, log: log}
}

func (s *diagnosticService) TestIncrement(ctx context.Context, code string) (*models.ClickTestResult, error) {
	link, err := s.repo.GetPrivate(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read test link: %w", err)
	}

	newCount := link.ClickCount + 1
	if err := s.repo.PatchPrivateClickCount(ctx, code, newCount); err != nil {
		return nil, fmt.Errorf("failed to patch test link: %w", err)
	}

	s.log.Info().
		Str("code", code).
		Int64("previous", link.ClickCount).
		Int64("new", newCount).
		Msg("diagnostic click increment")

	return &models.ClickTestResult{
		Code:          code,
		PreviousCount: link.ClickCount,
		NewCount:      newCount,
	}, nil
}

func (s *diagnosticService) LinkStats(ctx context.Context, code string) (*entities.LinkStats, error) {
	stats, err := s.repo.GetStats(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read link stats: %w", err)
	}

	return stats, nil
}
