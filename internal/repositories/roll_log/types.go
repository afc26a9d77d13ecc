package roll_log

import "github.com/KirkDiggler/scribbler/internal/models"

// AddEntryInput contains parameters for adding a roll log entry
type AddEntryInput struct {
	Entry *models.RollLogEntry
}

// ListEntriesInput contains parameters for listing a scope's entries
type ListEntriesInput struct {
	ScopeID string

	// Limit caps the number of entries returned; zero or negative means all
	Limit int
}

// ListEntriesOutput contains a scope's entries, newest first
type ListEntriesOutput struct {
	Entries []*models.RollLogEntry
}

// ClearEntriesInput contains parameters for clearing a scope's log
type ClearEntriesInput struct {
	ScopeID string
}
