package roller

// RollerError is a custom error type for roll service errors
type RollerError string

// Error implements the error interface
func (e RollerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidNotation  RollerError = "invalid dice notation"
	ErrMissingScope     RollerError = "scope ID cannot be empty"
	ErrNilInput         RollerError = "input cannot be nil"
	ErrNilConfig        RollerError = "config cannot be nil"
	ErrNilDiceRoller    RollerError = "dice roller cannot be nil"
	ErrNilRollLogRepo   RollerError = "roll log repository cannot be nil"
	ErrNilClock         RollerError = "clock cannot be nil"
	ErrNilUUIDGenerator RollerError = "UUID generator cannot be nil"
)
