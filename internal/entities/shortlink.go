package entities

import "time"

// ShortLink is the private, owner-scoped short link record. It is the
// authoritative source of truth for a code's existence and destination.
type ShortLink struct {
	Code        string    `json:"code"`
	OriginalURL string    `json:"original_url"`
	ClickCount  int64     `json:"click_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ShortLinkPublic is the denormalized, anonymously-readable projection of a
// ShortLink. Redirects resolve against this record only; its click counter
// increments independently of the private one.
type ShortLinkPublic struct {
	Code        string    `json:"code"`
	OriginalURL string    `json:"original_url"`
	ClickCount  int64     `json:"click_count"`
	SyncedAt    time.Time `json:"synced_at"`
}

// ResolvedLink is the outcome of a successful resolve-and-count transaction.
// OriginalURL is the destination captured before the increment; ClickCount is
// the public counter after it.
type ResolvedLink struct {
	Code        string `json:"code"`
	OriginalURL string `json:"original_url"`
	ClickCount  int64  `json:"click_count"`
}

// LinkStats pairs the private and public counters for one code so operators
// can eyeball drift between the two collections.
type LinkStats struct {
	Code         string `json:"code"`
	OriginalURL  string `json:"original_url"`
	PrivateCount int64  `json:"private_count"`
	PublicCount  int64  `json:"public_count"`
	HasPublic    bool   `json:"has_public"`
}
