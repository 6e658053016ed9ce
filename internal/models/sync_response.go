package models

// SyncStats summarizes one reconciliation run.
type SyncStats struct {
	TotalPrivateLinks   int `json:"totalPrivateLinks"`
	ExistingPublicLinks int `json:"existingPublicLinks"`
	SyncedLinks         int `json:"syncedLinks"`
	Errors              int `json:"errors"`
}

// SyncReport is returned by the sync operation. A non-zero Stats.Errors means
// the run was partial and is safe to repeat.
type SyncReport struct {
	Stats  SyncStats `json:"stats"`
	Errors []string  `json:"errors,omitempty"`
}

// SyncStatus is the read-only divergence report between the private and
// public collections.
type SyncStatus struct {
	PrivateCount int      `json:"privateCount"`
	PublicCount  int      `json:"publicCount"`
	MissingCount int      `json:"missingCount"`
	MissingLinks []string `json:"missingLinks"`
	NeedsSync    bool     `json:"needsSync"`
}
