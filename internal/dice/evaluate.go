package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode is the way a roll is evaluated
type Mode string

const (
	// ModeNormal sums every die and adds the modifier
	ModeNormal Mode = "normal"

	// ModeAdvantage rolls two d20s and keeps the higher
	ModeAdvantage Mode = "advantage"

	// ModeDisadvantage rolls two d20s and keeps the lower
	ModeDisadvantage Mode = "disadvantage"
)

// ParseMode maps free text to a Mode. Unknown or empty text is normal.
func ParseMode(text string) Mode {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "advantage", "adv":
		return ModeAdvantage
	case "disadvantage", "dis", "disadv":
		return ModeDisadvantage
	default:
		return ModeNormal
	}
}

// AdvantageOutcome details a two-d20 roll under advantage or disadvantage
type AdvantageOutcome struct {
	FirstRoll     int
	SecondRoll    int
	ChosenRoll    int
	DiscardedRoll int
	Total         int
}

// Outcome is a fully evaluated roll
type Outcome struct {
	// Spec is the notation that was rolled
	Spec Spec

	// RequestedMode is the mode the caller asked for
	RequestedMode Mode

	// Mode is the mode actually applied; advantage and disadvantage
	// fall back to normal for anything but a single d20
	Mode Mode

	// Rolls holds every die face rolled, in order
	Rolls []int

	// Sum of the kept dice before the modifier
	Sum int

	Modifier int
	Total    int

	// Advantage is set only when advantage or disadvantage was applied
	Advantage *AdvantageOutcome

	// Description is a human readable breakdown for display
	Description string
}

// Ignored reports whether the requested mode was not applied
func (o *Outcome) Ignored() bool {
	return o.RequestedMode != o.Mode
}

// Evaluate rolls spec under the given mode. It never fails: advantage and
// disadvantage on anything other than exactly 1d20 are rolled as normal.
func Evaluate(roller Roller, spec Spec, mode Mode) *Outcome {
	if mode != ModeAdvantage && mode != ModeDisadvantage {
		mode = ModeNormal
	}

	outcome := &Outcome{
		Spec:          spec,
		RequestedMode: mode,
		Mode:          ModeNormal,
		Modifier:      spec.Modifier,
	}

	if (mode == ModeAdvantage || mode == ModeDisadvantage) && spec.IsSingleD20() {
		first := roller.Roll(20)
		second := roller.Roll(20)

		chosen, discarded := first, second
		if (mode == ModeAdvantage && second > first) || (mode == ModeDisadvantage && second < first) {
			chosen, discarded = second, first
		}

		outcome.Mode = mode
		outcome.Rolls = []int{first, second}
		outcome.Sum = chosen
		outcome.Total = chosen + spec.Modifier
		outcome.Advantage = &AdvantageOutcome{
			FirstRoll:     first,
			SecondRoll:    second,
			ChosenRoll:    chosen,
			DiscardedRoll: discarded,
			Total:         outcome.Total,
		}
	} else {
		pool := RollPool(roller, spec.Count, spec.Sides)
		outcome.Rolls = pool.Rolls
		outcome.Sum = pool.Sum
		outcome.Total = pool.Sum + spec.Modifier
	}

	outcome.Description = describe(outcome)
	return outcome
}

// describe renders e.g. "1d20+2 with advantage: [17*, 4] +2 = 19"
func describe(o *Outcome) string {
	var b strings.Builder
	b.WriteString(o.Spec.String())

	switch {
	case o.Ignored():
		fmt.Fprintf(&b, " (%s ignored, only applies to 1d20)", o.RequestedMode)
	case o.Mode != ModeNormal:
		fmt.Fprintf(&b, " with %s", o.Mode)
	}
	b.WriteString(": ")

	faces := make([]string, len(o.Rolls))
	for i, roll := range o.Rolls {
		faces[i] = strconv.Itoa(roll)
	}
	if o.Advantage != nil {
		// the chosen die is the second only when it strictly won
		chosenIdx := 0
		if o.Advantage.ChosenRoll != o.Advantage.FirstRoll {
			chosenIdx = 1
		}
		faces[chosenIdx] += "*"
	}
	b.WriteString("[" + strings.Join(faces, ", ") + "]")

	if o.Modifier != 0 {
		fmt.Fprintf(&b, " %+d", o.Modifier)
	}
	fmt.Fprintf(&b, " = %d", o.Total)

	return b.String()
}
