package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/edgerun-backend/internal/config"
	"github.com/rocketscienceinc/edgerun-backend/internal/repository"
	"github.com/rocketscienceinc/edgerun-backend/internal/repository/storage"
	"github.com/rocketscienceinc/edgerun-backend/internal/service"
	"github.com/rocketscienceinc/edgerun-backend/internal/usecase"
	"github.com/rocketscienceinc/edgerun-backend/transport/rest"
	"github.com/rocketscienceinc/edgerun-backend/transport/websocket"
)

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

	scoreRepo, closeScores, err := newScoreRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeScores()

	botService := service.NewBotService(service.BotOptions{IncludeJumps: conf.Bot.IncludeJumps})
	gameManager := usecase.NewGameManager(logger, botService, scoreRepo)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		router := rest.NewRouter(rest.NewHandlers(logger, gameManager))
		if httpErr := rest.Start(ctx, conf.HTTPPort, router); httpErr != nil {
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameManager)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
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

// newScoreRepository picks the Redis scoreboard when enabled, the in-memory one otherwise.
func newScoreRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.ScoreRepository, func(), error) {
	if !conf.Redis.Enabled {
		log.Info("Redis disabled, keeping scores in memory")
		return repository.NewMemoryScoreRepository(), func() {}, nil
	}

	client, err := storage.NewRedis(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewScoreRepository(client), closeFn, nil
}
