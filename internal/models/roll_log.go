package models

import (
	"time"
)

// RollLogEntry is a past roll kept for display
type RollLogEntry struct {
	// ID is the unique identifier for the entry
	ID string `json:"id"`

	// ScopeID groups entries into one log, e.g. a Discord channel
	ScopeID string `json:"scope_id"`

	// RollerID is the ID of the user who rolled
	RollerID string `json:"roller_id"`

	// RollerName is the display name of the user who rolled
	RollerName string `json:"roller_name"`

	// Notation is the canonical notation that was rolled, e.g. 2d6+3
	Notation string `json:"notation"`

	// RequestedMode is the mode the user asked for
	RequestedMode string `json:"requested_mode"`

	// Mode is the mode actually applied
	Mode string `json:"mode"`

	// Rolls holds every die face rolled
	Rolls []int `json:"rolls"`

	Modifier int `json:"modifier"`
	Total    int `json:"total"`

	// Description is the human readable breakdown
	Description string `json:"description"`

	// Timestamp is when the roll was made
	Timestamp time.Time `json:"timestamp"`
}
