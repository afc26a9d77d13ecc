package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/scribbler/internal/services/messaging Service

// Service picks flavor text for roll results
type Service interface {
	// GetRollResultMessage returns a message for a roll outcome
	GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error)
}
