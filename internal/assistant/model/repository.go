package model

import "context"

// LeadRepository is the pluggable persistence boundary for captured leads.
// The default backend is a flat JSON file; swapping in another store must not
// touch the request pipeline.
type LeadRepository interface {
	// Append adds a record to the end of the persisted collection.
	Append(ctx context.Context, record EntityRecord) error

	// LoadAll returns every persisted record in append order. A missing or
	// corrupt store degrades to an empty collection, never an error.
	LoadAll(ctx context.Context) ([]EntityRecord, error)

	// ClearAll removes the persisted collection entirely.
	ClearAll(ctx context.Context) error
}
