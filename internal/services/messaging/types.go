package messaging

import (
	"github.com/KirkDiggler/scribbler/internal/dice"
)

// ResultCategory groups roll outcomes that share flavor text
type ResultCategory string

const (
	// CategoryCritical is a natural 20 kept on a d20
	CategoryCritical ResultCategory = "critical"

	// CategoryFumble is a natural 1 kept on a d20
	CategoryFumble ResultCategory = "fumble"

	// CategoryMaximum is every die showing its highest face
	CategoryMaximum ResultCategory = "maximum"

	// CategoryMinimum is every die showing a 1
	CategoryMinimum ResultCategory = "minimum"

	// CategoryOrdinary is anything else
	CategoryOrdinary ResultCategory = "ordinary"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// DiceRoller picks among candidate messages
	DiceRoller dice.Roller
}

// GetRollResultMessageInput contains parameters for getting a roll result message
type GetRollResultMessageInput struct {
	// RollerName is the name of the user who rolled
	RollerName string

	Outcome *dice.Outcome
}

// GetRollResultMessageOutput contains the result of getting a roll result message
type GetRollResultMessageOutput struct {
	Message  string
	Category ResultCategory
}
