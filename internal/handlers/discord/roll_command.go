package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/scribbler/internal/dice"
	"github.com/KirkDiggler/scribbler/internal/repositories/roll_log"
	"github.com/KirkDiggler/scribbler/internal/services/messaging"
	"github.com/KirkDiggler/scribbler/internal/services/roller"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

const (
	// ButtonRollAgain prefixes the custom ID of the roll again button,
	// followed by notation and mode
	ButtonRollAgain = "roll_again:"

	defaultHistoryCount = 10
)

// RollCommand handles the /roll command
type RollCommand struct {
	BaseCommand
	rollerService roller.Service

	// optional, adds flavor text to roll embeds
	messagingService messaging.Service
	log              zerolog.Logger
}

// NewRollCommand creates a new roll command handler. messagingService may be nil.
func NewRollCommand(rollerService roller.Service, messagingService messaging.Service, log zerolog.Logger) *RollCommand {
	minCount := 1.0

	return &RollCommand{
		BaseCommand: BaseCommand{
			Name:        "roll",
			Description: "Roll dice and keep a log for the table",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "dice",
					Description: "Roll dice notation such as 2d6+3 (defaults to d20)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "notation",
							Description: "XdY+Z, dY, or XdY",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "mode",
							Description: "Advantage and disadvantage apply to a single d20",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "normal", Value: string(dice.ModeNormal)},
								{Name: "advantage", Value: string(dice.ModeAdvantage)},
								{Name: "disadvantage", Value: string(dice.ModeDisadvantage)},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "Show recent rolls in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "count",
							Description: "How many rolls to show",
							MinValue:    &minCount,
							MaxValue:    roll_log.MaxEntries,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "clear",
					Description: "Clear the roll history for this channel",
				},
			},
		},
		rollerService:    rollerService,
		messagingService: messagingService,
		log:              log.With().Str("command", "roll").Logger(),
	}
}

// Handle processes a Discord interaction for the roll command
func (c *RollCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	subcommand := data.Options[0]
	options := optionMap(subcommand.Options)

	switch subcommand.Name {
	case "dice":
		notation, mode := "", dice.ModeNormal
		if opt, ok := options["notation"]; ok {
			notation = opt.StringValue()
		}
		if opt, ok := options["mode"]; ok {
			mode = dice.ParseMode(opt.StringValue())
		}
		return c.handleRoll(s, i, notation, mode)
	case "history":
		count := defaultHistoryCount
		if opt, ok := options["count"]; ok {
			count = int(opt.IntValue())
		}
		return c.handleHistory(s, i, count)
	case "clear":
		return c.handleClear(s, i)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown subcommand: %s", subcommand.Name))
	}
}

// HandleRollAgain repeats the roll encoded in a roll again button
func (c *RollCommand) HandleRollAgain(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	notation, mode, ok := parseRollAgainCustomID(i.MessageComponentData().CustomID)
	if !ok {
		return RespondWithError(s, i, "This button no longer works, use /roll dice instead.")
	}
	return c.handleRoll(s, i, notation, mode)
}

func (c *RollCommand) handleRoll(s *discordgo.Session, i *discordgo.InteractionCreate, notation string, mode dice.Mode) error {
	userID, username := interactionUser(i)

	output, err := c.rollerService.Roll(context.Background(), &roller.RollInput{
		ScopeID:    i.ChannelID,
		RollerID:   userID,
		RollerName: username,
		Notation:   notation,
		Mode:       mode,
	})
	if err != nil {
		c.log.Warn().Err(err).Str("notation", notation).Str("mode", string(mode)).Msg("Roll failed")
		return RespondWithError(s, i, errorMessage(err))
	}

	c.log.Debug().
		Str("channel_id", i.ChannelID).
		Str("user_id", userID).
		Str("notation", output.Entry.Notation).
		Int("total", output.Outcome.Total).
		Msg("Rolled dice")

	embed := renderRollEmbed(username, output.Outcome)
	if flavor := c.flavorText(username, output.Outcome); flavor != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: flavor}
	}

	return RespondWithEmbed(s, i, embed, renderRollAgainButton(output.Outcome))
}

// flavorText never fails the roll; a missing message just drops the footer
func (c *RollCommand) flavorText(username string, outcome *dice.Outcome) string {
	if c.messagingService == nil {
		return ""
	}

	msg, err := c.messagingService.GetRollResultMessage(context.Background(), &messaging.GetRollResultMessageInput{
		RollerName: username,
		Outcome:    outcome,
	})
	if err != nil {
		c.log.Warn().Err(err).Msg("Failed to get roll result message")
		return ""
	}

	return msg.Message
}

func (c *RollCommand) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate, count int) error {
	output, err := c.rollerService.GetHistory(context.Background(), &roller.GetHistoryInput{
		ScopeID: i.ChannelID,
		Limit:   count,
	})
	if err != nil {
		c.log.Error().Err(err).Str("channel_id", i.ChannelID).Msg("Failed to get roll history")
		return RespondWithError(s, i, errorMessage(err))
	}

	return RespondWithEmbed(s, i, renderHistoryEmbed(output.Entries), nil)
}

func (c *RollCommand) handleClear(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if _, err := c.rollerService.ClearHistory(context.Background(), &roller.ClearHistoryInput{
		ScopeID: i.ChannelID,
	}); err != nil {
		c.log.Error().Err(err).Str("channel_id", i.ChannelID).Msg("Failed to clear roll history")
		return RespondWithError(s, i, errorMessage(err))
	}

	return RespondWithEphemeralMessage(s, i, "Roll history cleared.")
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func rollAgainCustomID(notation string, mode dice.Mode) string {
	return ButtonRollAgain + notation + "|" + string(mode)
}

func parseRollAgainCustomID(customID string) (string, dice.Mode, bool) {
	rest, ok := strings.CutPrefix(customID, ButtonRollAgain)
	if !ok {
		return "", "", false
	}
	notation, mode, ok := strings.Cut(rest, "|")
	if !ok {
		return "", "", false
	}
	return notation, dice.ParseMode(mode), true
}
