// Package stats exposes aggregate completion figures. It reads through to
// the storage layer on every call so counts always reflect the latest
// committed records.
package stats

import "github.com/nvoronova/trackerd/internal/storage"

// Provider answers statistics queries against a storage backend.
type Provider struct {
	store storage.Provider
}

func New(store storage.Provider) *Provider {
	return &Provider{store: store}
}

// CompletedCount returns the all-time number of completion records across
// every tracker. Read failures degrade to 0.
func (p *Provider) CompletedCount() int {
	return p.store.TotalRecordsCount()
}

// TrackerCompletedCount returns the all-time completion count for a single
// tracker.
func (p *Provider) TrackerCompletedCount(id string) int {
	return p.store.CompletedCount(id)
}
