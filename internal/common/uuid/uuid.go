package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/scribbler/internal/common/uuid UUID

// UUID generates identifiers for roll log entries
type UUID interface {
	NewUUID() string
}

// DefaultUUID generates random (v4) UUIDs
type DefaultUUID struct{}

// New creates a UUID generator
func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID string
func (d *DefaultUUID) NewUUID() string {
	return uuid.NewString()
}
