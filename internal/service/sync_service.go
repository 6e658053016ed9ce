package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"linkhop/internal/models"
	"linkhop/internal/repository"
)

// SyncService reconciles the private collection into the public projection
type SyncService interface {
	// Sync copies every private record whose code is missing from the public
	// collection. Best-effort: individual failures are collected in the
	// report, not raised, and re-running is always safe.
	Sync(ctx context.Context) (*models.SyncReport, error)

	// Status reports divergence between the two collections without writing.
	Status(ctx context.Context) (*models.SyncStatus, error)
}

const (
	// maxBatchSize caps how many staged creates are committed per batch,
	// matching the store's atomic-batch limit.
	maxBatchSize = 500

	// maxMissingExamples caps how many missing codes Status lists.
	maxMissingExamples = 10
)

type syncService struct {
	repo repository.LinkRepository
	log  zerolog.Logger
}

// NewSyncService creates a new reconciliation sync service
func NewSyncService(repo repository.LinkRepository, log zerolog.Logger) SyncService {
	return &syncService{repo: repo, log: log}
}

func (s *syncService) Sync(ctx context.Context) (*models.SyncReport, error) {
	private, err := s.repo.ListPrivate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load private links: %w", err)
	}

	publicCodes, err := s.repo.ListPublicCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load public codes: %w", err)
	}

	report := &models.SyncReport{
		Stats: models.SyncStats{
			TotalPrivateLinks:   len(private),
			ExistingPublicLinks: len(publicCodes),
		},
	}

	for start := 0; start < len(private); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(private) {
			end = len(private)
		}

		for _, link := range private[start:end] {
			if _, ok := publicCodes[link.Code]; ok {
				continue
			}

			// A failed record is reported and skipped; the rest of the batch
			// and all later batches still run.
			if err := s.repo.CreatePublic(ctx, link); err != nil {
				report.Stats.Errors++
				report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", link.Code, err))
				s.log.Error().Err(err).Str("code", link.Code).Msg("failed to sync link")
				continue
			}
			report.Stats.SyncedLinks++
		}

		s.log.Info().
			Int("batch_start", start).
			Int("batch_end", end).
			Int("synced", report.Stats.SyncedLinks).
			Int("errors", report.Stats.Errors).
			Msg("sync batch committed")
	}

	return report, nil
}

func (s *syncService) Status(ctx context.Context) (*models.SyncStatus, error) {
	private, err := s.repo.ListPrivate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load private links: %w", err)
	}

	publicCodes, err := s.repo.ListPublicCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load public codes: %w", err)
	}

	status := &models.SyncStatus{
		PrivateCount: len(private),
		PublicCount:  len(publicCodes),
		MissingLinks: []string{},
	}

	for _, link := range private {
		if _, ok := publicCodes[link.Code]; ok {
			continue
		}
		status.MissingCount++
		if len(status.MissingLinks) < maxMissingExamples {
			status.MissingLinks = append(status.MissingLinks, link.Code)
		}
	}
	status.NeedsSync = status.MissingCount > 0

	return status, nil
}
