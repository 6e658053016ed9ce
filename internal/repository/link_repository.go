package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/sethvargo/go-retry"

	"linkhop/internal/entities"
)

// ErrNotFound is returned when no record exists for a code.
var ErrNotFound = errors.New("short link not found")

// LinkRepository defines the storage operations for short link records
type LinkRepository interface {
	// ResolveAndCount looks up the public record for code and, in the same
	// serializable transaction, increments its click counter and mirrors the
	// new value into the private record if one exists. It returns the
	// destination URL captured before the increment.
	ResolveAndCount(ctx context.Context, code string) (*entities.ResolvedLink, error)

	GetPrivate(ctx context.Context, code string) (*entities.ShortLink, error)
	ListPrivate(ctx context.Context) ([]*entities.ShortLink, error)
	ListPublicCodes(ctx context.Context) (map[string]struct{}, error)

	// CreatePublic inserts a public projection of a private record. Inserting
	// an already-present code is a no-op, so sync stays idempotent even when
	// two runs race.
	CreatePublic(ctx context.Context, link *entities.ShortLink) error

	// PatchPrivateClickCount overwrites the private record's counter without
	// any transaction. Diagnostic use only.
	PatchPrivateClickCount(ctx context.Context, code string, count int64) error

	GetStats(ctx context.Context, code string) (*entities.LinkStats, error)
}

type linkRepository struct {
	db *sql.DB
}

// NewLinkRepository creates a new Postgres-backed link repository
func NewLinkRepository(db *sql.DB) LinkRepository {
	return &linkRepository{db: db}
}

// maxResolveRetries bounds how often a resolve transaction is retried after a
// serialization conflict before the error is surfaced to the caller.
const maxResolveRetries = 3

func (r *linkRepository) ResolveAndCount(ctx context.Context, code string) (*entities.ResolvedLink, error) {
	var resolved *entities.ResolvedLink

	backoff := retry.WithMaxRetries(maxResolveRetries, retry.NewFibonacci(5*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		res, err := r.resolveOnce(ctx, code)
		if err != nil {
			if isSerializationFailure(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		resolved = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resolved, nil
}

// resolveOnce runs one attempt of the resolve transaction. Both reads are
// issued before either write; the serializable isolation level makes the
// read-increment-write sequence linearizable per code.
func (r *linkRepository) resolveOnce(ctx context.Context, code string) (*entities.ResolvedLink, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var originalURL string
	var publicCount int64
	err = tx.QueryRowContext(ctx, `
		SELECT original_url, click_count
		FROM short_links_public
		WHERE code = $1
	`, code).Scan(&originalURL, &publicCount)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read public link: %w", err)
	}

	var privateCount int64
	hasPrivate := true
	err = tx.QueryRowContext(ctx, `
		SELECT click_count
		FROM short_links
		WHERE code = $1
	`, code).Scan(&privateCount)
	if err == sql.ErrNoRows {
		hasPrivate = false
	} else if err != nil {
		return nil, fmt.Errorf("failed to read private link: %w", err)
	}

	newCount := publicCount + 1

	_, err = tx.ExecContext(ctx, `
		UPDATE short_links_public
		SET click_count = $2
		WHERE code = $1
	`, code, newCount)
	if err != nil {
		return nil, fmt.Errorf("failed to update public click count: %w", err)
	}

	// The private copy mirrors the post-increment public value. A missing
	// private record is skipped, not an error: standalone public links are
	// valid.
	if hasPrivate {
		_, err = tx.ExecContext(ctx, `
			UPDATE short_links
			SET click_count = $2, updated_at = (NOW() AT TIME ZONE 'UTC')
			WHERE code = $1
		`, code, newCount)
		if err != nil {
			return nil, fmt.Errorf("failed to mirror private click count: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	return &entities.ResolvedLink{
		Code:        code,
		OriginalURL: originalURL,
		ClickCount:  newCount,
	}, nil
}

// isSerializationFailure reports whether err is a Postgres serialization or
// deadlock error that a fresh transaction attempt can resolve.
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}
	return false
}

// GetPrivate fetches a private record by code with a plain read
func (r *linkRepository) GetPrivate(ctx context.Context, code string) (*entities.ShortLink, error) {
	var link entities.ShortLink
	err := r.db.QueryRowContext(ctx, `
		SELECT code, original_url, click_count, created_at, updated_at
		FROM short_links
		WHERE code = $1
	`, code).Scan(
		&link.Code,
		&link.OriginalURL,
		&link.ClickCount,
		&link.CreatedAt,
		&link.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get private link: %w", err)
	}

	return &link, nil
}

// ListPrivate loads the full private collection, ordered by creation time
func (r *linkRepository) ListPrivate(ctx context.Context) ([]*entities.ShortLink, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT code, original_url, click_count, created_at, updated_at
		FROM short_links
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list private links: %w", err)
	}
	defer rows.Close()

	var links []*entities.ShortLink
	for rows.Next() {
		var link entities.ShortLink
		err := rows.Scan(
			&link.Code,
			&link.OriginalURL,
			&link.ClickCount,
			&link.CreatedAt,
			&link.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan private link: %w", err)
		}
		links = append(links, &link)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating private links: %w", err)
	}

	return links, nil
}

// ListPublicCodes loads only the code set of the public collection
func (r *linkRepository) ListPublicCodes(ctx context.Context) (map[string]struct{}, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT code FROM short_links_public`)
	if err != nil {
		return nil, fmt.Errorf("failed to list public codes: %w", err)
	}
	defer rows.Close()

	codes := make(map[string]struct{})
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan public code: %w", err)
		}
		codes[code] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating public codes: %w", err)
	}

	return codes, nil
}

func (r *linkRepository) CreatePublic(ctx context.Context, link *entities.ShortLink) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO short_links_public (code, original_url, click_count, synced_at)
		VALUES ($1, $2, $3, (NOW() AT TIME ZONE 'UTC'))
		ON CONFLICT (code) DO NOTHING
	`, link.Code, link.OriginalURL, link.ClickCount)
	if err != nil {
		return fmt.Errorf("failed to create public link %s: %w", link.Code, err)
	}

	return nil
}

func (r *linkRepository) PatchPrivateClickCount(ctx context.Context, code string, count int64) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE short_links
		SET click_count = $2, updated_at = (NOW() AT TIME ZONE 'UTC')
		WHERE code = $1
	`, code, count)
	if err != nil {
		return fmt.Errorf("failed to patch click count: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// GetStats joins the private record with its public projection, if any
func (r *linkRepository) GetStats(ctx context.Context, code string) (*entities.LinkStats, error) {
	var stats entities.LinkStats
	var publicCount sql.NullInt64
	err := r.db.QueryRowContext(ctx, `
		SELECT l.code, l.original_url, l.click_count, p.click_count
		FROM short_links l
		LEFT JOIN short_links_public p ON p.code = l.code
		WHERE l.code = $1
	`, code).Scan(&stats.Code, &stats.OriginalURL, &stats.PrivateCount, &publicCount)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get link stats: %w", err)
	}

	stats.HasPublic = publicCount.Valid
	stats.PublicCount = publicCount.Int64

	return &stats, nil
}
