package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/wordduel/wordduel-backend/internal/config"
	"github.com/wordduel/wordduel-backend/internal/dictionary"
	"github.com/wordduel/wordduel-backend/internal/registry"
	"github.com/wordduel/wordduel-backend/internal/repository"
	"github.com/wordduel/wordduel-backend/internal/repository/storage"
	"github.com/wordduel/wordduel-backend/internal/usecase"
	"github.com/wordduel/wordduel-backend/internal/words"
	"github.com/wordduel/wordduel-backend/transport/rest"
	"github.com/wordduel/wordduel-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	wordSource, err := words.New()
	if err != nil {
		return fmt.Errorf("could not load word lists: %w", err)
	}

	validator := dictionary.New(conf.Dictionary.BaseURL, conf.Dictionary.GetTimeout())
	leaderboardRepo := repository.NewLeaderboardRepository(redisStorage.Connection)
	roomRegistry := registry.New()

	matchManager := usecase.NewMatchManager(logger, roomRegistry, wordSource, validator, leaderboardRepo, usecase.Options{
		TurnDuration: conf.Game.GetTurnDuration(),
		RestartDelay: conf.Game.GetRoundDelay(),
		MaxRounds:    conf.Game.MaxRounds,
		Difficulty:   conf.Game.Difficulty,
	})

	wsServer := websocket.New(logger, matchManager)
	matchManager.SetBroadcaster(wsServer)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		restServer := rest.New(logger, leaderboardRepo)
		if httpErr := restServer.Start(conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
