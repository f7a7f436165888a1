package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mr-tron/base58"

	"github.com/rocketscienceinc/tictactoe-chain/internal/config"
	"github.com/rocketscienceinc/tictactoe-chain/internal/events"
	"github.com/rocketscienceinc/tictactoe-chain/internal/keys"
	"github.com/rocketscienceinc/tictactoe-chain/internal/program"
	"github.com/rocketscienceinc/tictactoe-chain/internal/repository"
	"github.com/rocketscienceinc/tictactoe-chain/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-chain/internal/service"
	"github.com/rocketscienceinc/tictactoe-chain/transport/rest"
	"github.com/rocketscienceinc/tictactoe-chain/transport/websocket"
)

const shutdownTimeout = 10 * time.Second

var ErrAddrNotFound = errors.New("redis address string is empty")

// eventBus is whatever carries game events: NATS when configured, the
// in-process bus otherwise.
type eventBus interface {
	events.Publisher
	events.Subscriber
}

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

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	archiveStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open archive storage: %w", err)
	}

	if err = archiveStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init archive storage: %w", err)
	}

	defer func() {
		if err = archiveStorage.Close(); err != nil {
			log.Error("could not close archive storage", "error", err)
		}
	}()

	var bus eventBus

	closeBus := func() {}

	if conf.NATSURL == "" {
		log.Info("no NATS url configured, using in-process event bus")
		bus = events.NewBus()
	} else {
		natsBus, natsErr := events.NewNATSBus(logger, conf.NATSURL)
		if natsErr != nil {
			return fmt.Errorf("could not connect to NATS: %w", natsErr)
		}

		bus = natsBus
		closeBus = natsBus.Close
	}
	defer closeBus()

	botKeypair, err := botKeypair(conf.BotSeed)
	if err != nil {
		return err
	}

	accountRepo := repository.NewAccountRepository(redisStorage.Connection)
	archiveRepo := repository.NewArchiveRepository(archiveStorage.Connection)
	challengeRepo := repository.NewChallengeRepository(redisStorage.Connection)

	processor := program.NewProcessor(logger, accountRepo)
	botService := service.NewBotService(botKeypair)
	gameplayService := service.NewGamePlayService(logger, processor, accountRepo, archiveRepo, bus, botService)
	authService := service.NewAuthService(conf.JWTSecretKey, challengeRepo)

	handler := rest.NewHandler(logger, gameplayService, authService, botService)
	httpServer := rest.NewServer(logger, conf.HTTPPort, handler)
	socketServer := websocket.New(logger, gameplayService, bus)

	log.Info("bot wallet ready", "pubkey", botKeypair.Public().String())

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := httpServer.Start(); httpErr != nil {
			httpErrCh <- httpErr
		}
	}()

	// run WebSocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := socketServer.Start(ctx, conf.SocketPort); wsErr != nil {
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

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err = httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("could not shut down HTTP server", "error", err)
		}

		if err = socketServer.Shutdown(shutdownCtx); err != nil {
			log.Error("could not shut down WebSocket server", "error", err)
		}

		return nil
	}
}

// botKeypair derives the bot wallet from the configured seed, or mints a
// throwaway one when no seed is set.
func botKeypair(seed string) (*keys.Keypair, error) {
	if seed == "" {
		keypair, err := keys.Generate()
		if err != nil {
			return nil, fmt.Errorf("could not generate bot keypair: %w", err)
		}

		return keypair, nil
	}

	raw, err := base58.Decode(seed)
	if err != nil {
		return nil, fmt.Errorf("could not decode bot seed: %w", err)
	}

	keypair, err := keys.FromSeed(raw)
	if err != nil {
		return nil, fmt.Errorf("could not derive bot keypair: %w", err)
	}

	return keypair, nil
}
