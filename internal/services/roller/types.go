package roller

import (
	"github.com/KirkDiggler/scribbler/internal/common/clock"
	"github.com/KirkDiggler/scribbler/internal/common/uuid"
	"github.com/KirkDiggler/scribbler/internal/dice"
	"github.com/KirkDiggler/scribbler/internal/models"
	rollLogRepo "github.com/KirkDiggler/scribbler/internal/repositories/roll_log"
)

// Config holds configuration for the roll service
type Config struct {
	// Repository dependencies
	RollLogRepo rollLogRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// RollInput contains parameters for a roll
type RollInput struct {
	// ScopeID is the log the roll is recorded in, e.g. a Discord channel ID
	ScopeID string

	// RollerID is the ID of the user rolling
	RollerID string

	// RollerName is the display name of the user rolling
	RollerName string

	// Notation is the dice notation, e.g. 2d6+3; empty rolls a d20
	Notation string

	// Mode is normal, advantage or disadvantage
	Mode dice.Mode
}

// RollOutput contains the result of a roll
type RollOutput struct {
	Outcome *dice.Outcome
	Entry   *models.RollLogEntry
}

// GetHistoryInput contains parameters for reading a roll log
type GetHistoryInput struct {
	ScopeID string

	// Limit caps the number of entries; zero returns the whole log
	Limit int
}

// GetHistoryOutput contains a scope's recent rolls, newest first
type GetHistoryOutput struct {
	Entries []*models.RollLogEntry
}

// ClearHistoryInput contains parameters for clearing a roll log
type ClearHistoryInput struct {
	ScopeID string
}

// ClearHistoryOutput contains the result of clearing a roll log
type ClearHistoryOutput struct {
	Success bool
}
