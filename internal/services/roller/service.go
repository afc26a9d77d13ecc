package roller

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/scribbler/internal/common/clock"
	"github.com/KirkDiggler/scribbler/internal/common/uuid"
	"github.com/KirkDiggler/scribbler/internal/dice"
	"github.com/KirkDiggler/scribbler/internal/models"
	rollLogRepo "github.com/KirkDiggler/scribbler/internal/repositories/roll_log"
)

// service implements the Service interface
type service struct {
	rollLogRepo   rollLogRepo.Repository
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new roll service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RollLogRepo == nil {
		return nil, ErrNilRollLogRepo
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		rollLogRepo:   cfg.RollLogRepo,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// Roll parses and evaluates the notation, then records it in the scope's log
func (s *service) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.ScopeID == "" {
		return nil, ErrMissingScope
	}

	spec := dice.Parse(input.Notation)
	if err := spec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNotation, err)
	}

	outcome := dice.Evaluate(s.diceRoller, spec, input.Mode)

	entry := &models.RollLogEntry{
		ID:            s.uuidGenerator.NewUUID(),
		ScopeID:       input.ScopeID,
		RollerID:      input.RollerID,
		RollerName:    input.RollerName,
		Notation:      spec.String(),
		RequestedMode: string(outcome.RequestedMode),
		Mode:          string(outcome.Mode),
		Rolls:         outcome.Rolls,
		Modifier:      outcome.Modifier,
		Total:         outcome.Total,
		Description:   outcome.Description,
		Timestamp:     s.clock.Now(),
	}

	if err := s.rollLogRepo.AddEntry(ctx, &rollLogRepo.AddEntryInput{
		Entry: entry,
	}); err != nil {
		return nil, fmt.Errorf("failed to record roll: %w", err)
	}

	return &RollOutput{
		Outcome: outcome,
		Entry:   entry,
	}, nil
}

// GetHistory returns the scope's most recent rolls
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.ScopeID == "" {
		return nil, ErrMissingScope
	}

	output, err := s.rollLogRepo.ListEntries(ctx, &rollLogRepo.ListEntriesInput{
		ScopeID: input.ScopeID,
		Limit:   input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get roll history: %w", err)
	}

	return &GetHistoryOutput{
		Entries: output.Entries,
	}, nil
}

// ClearHistory empties the scope's roll log
func (s *service) ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.ScopeID == "" {
		return nil, ErrMissingScope
	}

	if err := s.rollLogRepo.ClearEntries(ctx, &rollLogRepo.ClearEntriesInput{
		ScopeID: input.ScopeID,
	}); err != nil {
		return nil, fmt.Errorf("failed to clear roll history: %w", err)
	}

	return &ClearHistoryOutput{
		Success: true,
	}, nil
}
