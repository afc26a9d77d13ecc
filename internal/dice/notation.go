package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Upper bounds keep every total well inside int range and every roll
// small enough to render in a chat message
const (
	MaxCount    = 100
	MaxSides    = 1000
	MaxModifier = 1000
)

var (
	// [count]d<sides>[(+|-)<modifier>], whitespace already stripped
	notationPattern = regexp.MustCompile(`^(\d*)d(\d+)(?:([+-])(.*))?$`)
	digitsPattern   = regexp.MustCompile(`^\d+$`)
)

// Spec is a parsed dice notation such as 2d6+3.
//
// A failed parse leaves Count, Sides and Modifier at zero and sets Error.
// Callers must check Error (or Err) before rolling.
type Spec struct {
	Count    int
	Sides    int
	Modifier int
	Error    string
}

// DefaultSpec is a single d20, used for empty notation
func DefaultSpec() Spec {
	return Spec{Count: 1, Sides: 20}
}

// Err returns the parse error as a DiceError, or nil for a valid spec
func (s Spec) Err() error {
	if s.Error == "" {
		return nil
	}
	return DiceError(s.Error)
}

// Valid reports whether the spec parsed successfully
func (s Spec) Valid() bool {
	return s.Error == ""
}

// IsSingleD20 reports whether the spec is exactly one twenty-sided die
func (s Spec) IsSingleD20() bool {
	return s.Count == 1 && s.Sides == 20
}

// String renders the spec in canonical notation, e.g. 1d20-1
func (s Spec) String() string {
	if !s.Valid() {
		return "invalid"
	}
	notation := fmt.Sprintf("%dd%d", s.Count, s.Sides)
	if s.Modifier != 0 {
		notation += fmt.Sprintf("%+d", s.Modifier)
	}
	return notation
}

// Parse converts dice notation into a Spec.
//
// Accepted forms are dY, XdY and XdY+Z / XdY-Z, case-insensitive, with any
// whitespace between tokens. Empty input yields a single d20. Count, sides
// and modifier magnitude are capped at MaxCount, MaxSides and MaxModifier.
func Parse(text string) Spec {
	notation := strings.ToLower(strings.Join(strings.Fields(text), ""))
	if notation == "" {
		return DefaultSpec()
	}

	matches := notationPattern.FindStringSubmatch(notation)
	if matches == nil {
		return failed(ErrInvalidFormat)
	}

	count := 1
	if matches[1] != "" {
		n, err := strconv.Atoi(matches[1])
		if err != nil || n < 1 {
			return failed(ErrInvalidCount)
		}
		if n > MaxCount {
			return failed(ErrTooManyDice)
		}
		count = n
	}

	sides, err := strconv.Atoi(matches[2])
	if err != nil || sides < 1 {
		return failed(ErrInvalidSides)
	}
	if sides > MaxSides {
		return failed(ErrTooManySides)
	}

	modifier := 0
	if sign := matches[3]; sign != "" {
		if !digitsPattern.MatchString(matches[4]) {
			return failed(ErrInvalidModifier)
		}
		modifier, err = strconv.Atoi(matches[4])
		if err != nil {
			return failed(ErrInvalidModifier)
		}
		if modifier > MaxModifier {
			return failed(ErrModifierTooLarge)
		}
		if sign == "-" {
			modifier = -modifier
		}
	}

	return Spec{
		Count:    count,
		Sides:    sides,
		Modifier: modifier,
	}
}

func failed(err DiceError) Spec {
	return Spec{Error: err.Error()}
}
