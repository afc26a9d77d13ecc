package discord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/scribbler/internal/dice"
	"github.com/KirkDiggler/scribbler/internal/models"
	"github.com/KirkDiggler/scribbler/internal/services/roller"
	"github.com/bwmarrin/discordgo"
)

const (
	colorNormal   = 0x00ff00
	colorCritical = 0xffd700
	colorFumble   = 0xff8c00
	colorError    = 0xff0000
	colorHistory  = 0x5865f2

	// Discord caps custom IDs at 100 characters
	maxCustomIDLength = 100

	// Discord embed limits
	maxFieldValueLength  = 1024
	maxDescriptionLength = 4096

	// faces shown per history line before eliding the rest
	historyFacesLength = 200

	// room kept for the ", … +N more]" tail of an elided face list
	facesTailReserve = 40
)

// renderRollEmbed renders the embed for a completed roll
func renderRollEmbed(rollerName string, outcome *dice.Outcome) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Dice",
			Value:  formatFaces(outcome.Rolls, maxFieldValueLength),
			Inline: true,
		},
	}

	if outcome.Modifier != 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Modifier",
			Value:  fmt.Sprintf("%+d", outcome.Modifier),
			Inline: true,
		})
	}

	if adv := outcome.Advantage; adv != nil {
		fields = append(fields,
			&discordgo.MessageEmbedField{
				Name:   "Kept",
				Value:  strconv.Itoa(adv.ChosenRoll),
				Inline: true,
			},
			&discordgo.MessageEmbedField{
				Name:   "Discarded",
				Value:  strconv.Itoa(adv.DiscardedRoll),
				Inline: true,
			},
		)
	}

	if outcome.Ignored() {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Note",
			Value: fmt.Sprintf("%s only applies to a single d20, rolled normally", outcome.RequestedMode),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎲 %s rolled %d", rollerName, outcome.Total),
		Description: truncate(outcome.Description, maxDescriptionLength),
		Color:       rollColor(outcome),
		Fields:      fields,
	}
}

// rollColor highlights a natural 20 or natural 1 on a d20 roll
func rollColor(outcome *dice.Outcome) int {
	if !outcome.Spec.IsSingleD20() {
		return colorNormal
	}

	switch outcome.Sum {
	case 20:
		return colorCritical
	case 1:
		return colorFumble
	default:
		return colorNormal
	}
}

// renderRollAgainButton renders a button that repeats the roll, or nil if
// the notation is too long to fit in a custom ID
func renderRollAgainButton(outcome *dice.Outcome) []discordgo.MessageComponent {
	customID := rollAgainCustomID(outcome.Spec.String(), outcome.RequestedMode)
	if len(customID) > maxCustomIDLength {
		return nil
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Roll Again",
					Style:    discordgo.PrimaryButton,
					CustomID: customID,
					Emoji: &discordgo.ComponentEmoji{
						Name: "🎲",
					},
				},
			},
		},
	}
}

// renderHistoryEmbed renders a channel's roll log, newest first
func renderHistoryEmbed(entries []*models.RollLogEntry) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Roll History",
		Color: colorHistory,
	}

	if len(entries) == 0 {
		embed.Description = "No rolls yet in this channel."
		return embed
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		line := fmt.Sprintf("**%s** `%s` → **%d** %s", entry.RollerName, entry.Notation, entry.Total, formatFaces(entry.Rolls, historyFacesLength))
		if entry.Mode != string(dice.ModeNormal) {
			line += fmt.Sprintf(" (%s)", entry.Mode)
		}
		lines = append(lines, line)
	}
	embed.Description = truncate(strings.Join(lines, "\n"), maxDescriptionLength)

	return embed
}

func renderErrorEmbed(message string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Error",
		Description: message,
		Color:       colorError,
	}
}

// errorMessage turns a service error into something safe to show a user
func errorMessage(err error) string {
	var diceErr dice.DiceError
	if errors.As(err, &diceErr) {
		return diceErr.Error()
	}
	if errors.Is(err, roller.ErrMissingScope) {
		return "Rolls can only be made in a channel."
	}
	return "Something went wrong rolling the dice. Please try again."
}

// formatFaces renders rolls as "[3, 5]", eliding the tail as
// "[3, 5, … +280 more]" once the list would exceed maxLen bytes
func formatFaces(rolls []int, maxLen int) string {
	faces := make([]string, len(rolls))
	for i, roll := range rolls {
		faces[i] = strconv.Itoa(roll)
	}
	full := "[" + strings.Join(faces, ", ") + "]"
	if len(full) <= maxLen {
		return full
	}

	var b strings.Builder
	b.WriteString("[")
	shown := 0
	for _, face := range faces {
		if shown > 0 {
			face = ", " + face
		}
		if b.Len()+len(face) > maxLen-facesTailReserve {
			break
		}
		b.WriteString(face)
		shown++
	}
	if shown > 0 {
		b.WriteString(", ")
	}
	fmt.Fprintf(&b, "… +%d more]", len(rolls)-shown)

	return b.String()
}

// truncate cuts text to at most limit characters, ending in an ellipsis
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}
