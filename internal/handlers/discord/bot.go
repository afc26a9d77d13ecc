package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/scribbler/internal/services/messaging"
	"github.com/KirkDiggler/scribbler/internal/services/roller"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	rollCommand *RollCommand
	log         zerolog.Logger
	config      *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Roll service
	RollerService roller.Service

	// Optional flavor text for roll results
	MessagingService messaging.Service

	Logger zerolog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.RollerService == nil {
		return nil, errors.New("roller service cannot be nil")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:     session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		rollCommand: NewRollCommand(cfg.RollerService, cfg.MessagingService, cfg.Logger),
		log:         cfg.Logger,
		config:      cfg,
	}

	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start opens the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(b.rollCommand); err != nil {
		return fmt.Errorf("failed to register roll command: %w", err)
	}

	b.log.Info().Msg("Bot is now running")
	return nil
}

// Stop removes registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.applicationID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.log.Warn().Err(err).Str("command", cmdName).Str("command_id", cmdID).Msg("Failed to delete command")
		} else {
			b.log.Info().Str("command", cmdName).Str("command_id", cmdID).Msg("Deleted command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord, for a single guild when
// GuildID is set and globally otherwise
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	guildID := b.config.GuildID
	b.log.Info().Str("command", cmd.GetName()).Str("guild_id", guildID).Msg("Registering command")

	createdCmd, err := b.session.ApplicationCommandCreate(b.applicationID(), guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.log.Info().Str("command", cmd.GetName()).Str("command_id", createdCmd.ID).Msg("Registered command")

	return nil
}

// applicationID falls back to the session user ID if no application ID is configured
func (b *Bot) applicationID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.log.Error().Err(err).Str("command", name).Msg("Error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.log.Error().Err(err).Msg("Error handling component interaction")
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	switch {
	case strings.HasPrefix(customID, ButtonRollAgain):
		return b.rollCommand.HandleRollAgain(s, i)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}
}
