package application

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/hangman/internal/config"
	"github.com/rocketscienceinc/hangman/internal/hangman"
	"github.com/rocketscienceinc/hangman/internal/repository"
	"github.com/rocketscienceinc/hangman/internal/repository/storage"
	"github.com/rocketscienceinc/hangman/internal/usecase"
	"github.com/rocketscienceinc/hangman/transport/rest"
	"github.com/rocketscienceinc/hangman/transport/terminal"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open word bank: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init word bank: %w", err)
	}

	if conf.SeedWords {
		seeded, seedErr := sqliteStorage.Seed(ctx)
		if seedErr != nil {
			return fmt.Errorf("could not seed word bank: %w", seedErr)
		}

		if seeded > 0 {
			log.Info("word bank seeded", "words", seeded)
		}
	}

	wordRepo := repository.NewWordRepository(sqliteStorage.Connection)

	if conf.Redis.Enabled {
		redisStorage, redisErr := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if redisErr != nil {
			return fmt.Errorf("could not connect to redis storage: %w", redisErr)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		wordRepo = repository.NewCachedWordRepository(logger, redisStorage.Connection, wordRepo, conf.Redis.CacheTTL)
	}

	// run HTTP server
	if conf.HTTPPort != "" {
		go func() {
			log.Info("Starting HTTP server", "port", conf.HTTPPort)
			if httpErr := rest.Start(ctx, logger, conf.HTTPPort, wordRepo); httpErr != nil {
				log.Error("HTTP server error", "error", httpErr)
			}
		}()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("could not create screen: %w", err)
	}

	countdown := hangman.NewCountdown(conf.Game.TickInterval, terminal.TickPoster(screen))
	engine := hangman.NewEngine(wordRepo, countdown)
	manager := usecase.NewGameManager(logger, engine)

	log.Info("Starting game")

	if err = terminal.New(logger, manager, screen).Run(ctx); err != nil {
		return fmt.Errorf("terminal error: %w", err)
	}

	log.Info("Game closed, shutting down")

	return nil
}
