package roll_log

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/scribbler/internal/repositories/roll_log Repository

import (
	"context"
)

// MaxEntries is the number of most recent entries kept per scope
const MaxEntries = 50

// Repository defines the interface for roll log persistence
type Repository interface {
	// AddEntry prepends an entry to its scope's log, dropping the oldest beyond MaxEntries
	AddEntry(ctx context.Context, input *AddEntryInput) error

	// ListEntries returns a scope's entries, newest first
	ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error)

	// ClearEntries removes every entry in a scope
	ClearEntries(ctx context.Context, input *ClearEntriesInput) error
}
