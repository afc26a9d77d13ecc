package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/scribbler/internal/common/clock"
	"github.com/KirkDiggler/scribbler/internal/common/logger"
	"github.com/KirkDiggler/scribbler/internal/common/uuid"
	"github.com/KirkDiggler/scribbler/internal/config"
	"github.com/KirkDiggler/scribbler/internal/dice"
	"github.com/KirkDiggler/scribbler/internal/handlers/discord"
	"github.com/KirkDiggler/scribbler/internal/repositories/roll_log"
	"github.com/KirkDiggler/scribbler/internal/services/messaging"
	"github.com/KirkDiggler/scribbler/internal/services/roller"
	"github.com/redis/go-redis/v9"
	zlog "github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})
	log.Info().Msg("Starting Dungeon Scribbler dice bot")

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("Failed to connect to Redis")
	}

	// Initialize repositories
	rollLogRepo, err := roll_log.NewRedis(&roll_log.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create roll log repository")
	}

	diceRoller := dice.New(&dice.Config{Seed: cfg.DiceSeed})

	// Initialize roll service
	rollerSvc, err := roller.New(&roller.Config{
		RollLogRepo:   rollLogRepo,
		DiceRoller:    diceRoller,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create roller service")
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		DiceRoller: diceRoller,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create messaging service")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		RollerService:    rollerSvc,
		MessagingService: messagingSvc,
		Logger:           log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start Discord bot")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("Error stopping bot")
	}

	log.Info().Msg("Bot has been shut down")
}
