package dice

// DiceError is a custom error type for malformed dice notation
type DiceError string

// Error implements the error interface
func (e DiceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidFormat   DiceError = "Invalid dice notation format. Use XdY+Z, dY, or XdY."
	ErrInvalidCount    DiceError = "Invalid number of dice. Must be a positive integer."
	ErrInvalidSides    DiceError = "Invalid number of sides. Must be a positive integer."
	ErrInvalidModifier DiceError = "Invalid modifier value"

	ErrTooManyDice      DiceError = "Too many dice. Roll at most 100 at once."
	ErrTooManySides     DiceError = "Too many sides. A die can have at most 1000 sides."
	ErrModifierTooLarge DiceError = "Modifier too large. Must be between -1000 and 1000."
)
