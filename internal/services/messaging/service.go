package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/scribbler/internal/dice"
)

var rollResultMessages = map[ResultCategory][]string{
	CategoryCritical: {
		"Natural 20! %s, the dice gods smile upon you.",
		"CRIT! %s, describe how you do it.",
		"%s rolls a 20. Somewhere, a DM quietly rewrites their notes.",
		"The bards will sing of this roll, %s.",
	},
	CategoryFumble: {
		"Natural 1. %s, your sword is now somewhere behind you.",
		"%s rolled a 1. The goblins are laughing.",
		"Oof. %s, maybe blame the dice and move on.",
		"A natural 1! %s trips over absolutely nothing.",
	},
	CategoryMaximum: {
		"Every die maxed out! %s is not holding back.",
		"%s rolled the ceiling. Nothing left on the table.",
		"Maximum damage, %s. Someone check those dice.",
	},
	CategoryMinimum: {
		"All ones. %s, the dice owe you one.",
		"%s rolled the floor. It can only go up from here.",
		"Snake eyes and then some, %s.",
	},
	CategoryOrdinary: {
		"The dice have spoken, %s.",
		"%s rolls the bones.",
		"Let's see what that does, %s.",
		"Fortune favors the bold, %s.",
	},
}

// service implements the Service interface
type service struct {
	diceRoller dice.Roller
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}
	if config.DiceRoller == nil {
		return nil, errors.New("dice roller cannot be nil")
	}

	return &service{
		diceRoller: config.DiceRoller,
	}, nil
}

// GetRollResultMessage returns a message for a roll outcome
func (s *service) GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error) {
	if input == nil || input.Outcome == nil {
		return nil, errors.New("input and outcome cannot be nil")
	}

	name := input.RollerName
	if name == "" {
		name = "adventurer"
	}

	category := categorize(input.Outcome)
	messages := rollResultMessages[category]
	selected := messages[s.diceRoller.Roll(len(messages))-1]

	return &GetRollResultMessageOutput{
		Message:  fmt.Sprintf(selected, name),
		Category: category,
	}, nil
}

// categorize looks at the kept dice only, so a discarded 20 under
// disadvantage is not a critical
func categorize(outcome *dice.Outcome) ResultCategory {
	if outcome.Spec.IsSingleD20() {
		kept := outcome.Sum
		switch kept {
		case 20:
			return CategoryCritical
		case 1:
			return CategoryFumble
		}
		return CategoryOrdinary
	}

	spec := outcome.Spec
	if len(outcome.Rolls) == 0 || spec.Sides < 2 {
		return CategoryOrdinary
	}

	switch outcome.Sum {
	case spec.Count * spec.Sides:
		return CategoryMaximum
	case spec.Count:
		return CategoryMinimum
	}
	return CategoryOrdinary
}
