// Package inmemory provides a mutex-guarded, map-backed implementation of
// repository.LinkRepository. It backs tests and local experiments; the mutex
// gives it the same per-code serialization the Postgres repository gets from
// serializable transactions.
package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"linkhop/internal/entities"
	"linkhop/internal/repository"
)

type InMemory struct {
	mu      sync.Mutex
	private map[string]*entities.ShortLink
	public  map[string]*entities.ShortLinkPublic
}

func New() *InMemory {
	return &InMemory{
		private: make(map[string]*entities.ShortLink),
		public:  make(map[string]*entities.ShortLinkPublic),
	}
}

// SeedPrivate inserts or replaces a private record.
func (m *InMemory) SeedPrivate(code, originalURL string, clickCount int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	m.private[code] = &entities.ShortLink{
		Code:        code,
		OriginalURL: originalURL,
		ClickCount:  clickCount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SeedPublic inserts or replaces a public record.
func (m *InMemory) SeedPublic(code, originalURL string, clickCount int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.public[code] = &entities.ShortLinkPublic{
		Code:        code,
		OriginalURL: originalURL,
		ClickCount:  clickCount,
		SyncedAt:    time.Now().UTC(),
	}
}

func (m *InMemory) ResolveAndCount(ctx context.Context, code string) (*entities.ResolvedLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pub, ok := m.public[code]
	if !ok {
		return nil, repository.ErrNotFound
	}

	newCount := pub.ClickCount + 1
	pub.ClickCount = newCount

	if priv, ok := m.private[code]; ok {
		priv.ClickCount = newCount
		priv.UpdatedAt = time.Now().UTC()
	}

	return &entities.ResolvedLink{
		Code:        code,
		OriginalURL: pub.OriginalURL,
		ClickCount:  newCount,
	}, nil
}

func (m *InMemory) GetPrivate(ctx context.Context, code string) (*entities.ShortLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	link, ok := m.private[code]
	if !ok {
		return nil, repository.ErrNotFound
	}

	copied := *link
	return &copied, nil
}

func (m *InMemory) ListPrivate(ctx context.Context) ([]*entities.ShortLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	links := make([]*entities.ShortLink, 0, len(m.private))
	for _, link := range m.private {
		copied := *link
		links = append(links, &copied)
	}
	sort.Slice(links, func(i, j int) bool { return links[i].Code < links[j].Code })

	return links, nil
}

func (m *InMemory) ListPublicCodes(ctx context.Context) (map[string]struct{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	codes := make(map[string]struct{}, len(m.public))
	for code := range m.public {
		codes[code] = struct{}{}
	}

	return codes, nil
}

func (m *InMemory) CreatePublic(ctx context.Context, link *entities.ShortLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.public[link.Code]; ok {
		return nil
	}

	m.public[link.Code] = &entities.ShortLinkPublic{
		Code:        link.Code,
		OriginalURL: link.OriginalURL,
		ClickCount:  link.ClickCount,
		SyncedAt:    time.Now().UTC(),
	}

	return nil
}

func (m *InMemory) PatchPrivateClickCount(ctx context.Context, code string, count int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	link, ok := m.private[code]
	if !ok {
		return repository.ErrNotFound
	}

	link.ClickCount = count
	link.UpdatedAt = time.Now().UTC()

	return nil
}

func (m *InMemory) GetStats(ctx context.Context, code string) (*entities.LinkStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	priv, ok := m.private[code]
	if !ok {
		return nil, repository.ErrNotFound
	}

	stats := &entities.LinkStats{
		Code:         priv.Code,
		OriginalURL:  priv.OriginalURL,
		PrivateCount: priv.ClickCount,
	}
	if pub, ok := m.public[code]; ok {
		stats.HasPublic = true
		stats.PublicCount = pub.ClickCount
	}

	return stats, nil
}

// PublicCount returns the current public counter for a code, for assertions.
func (m *InMemory) PublicCount(code string) (int64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pub, ok := m.public[code]
	if !ok {
		return 0, false
	}
	return pub.ClickCount, true
}

// PrivateCount returns the current private counter for a code, for assertions.
func (m *InMemory) PrivateCount(code string) (int64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	priv, ok := m.private[code]
	if !ok {
		return 0, false
	}
	return priv.ClickCount, true
}
