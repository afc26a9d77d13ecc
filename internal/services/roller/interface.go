package roller

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/scribbler/internal/services/roller Service

// Service defines the interface for dice roll operations
type Service interface {
	// Roll parses notation, rolls it and records the result in the scope's log
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// GetHistory returns the scope's most recent rolls, newest first
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)

	// ClearHistory empties the scope's roll log
	ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error)
}
