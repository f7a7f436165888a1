package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	logger *slog.Logger
	server *http.Server
}

func NewServer(logger *slog.Logger, port string, handler *Handler) *Server {
	return &Server{
		logger: logger.With("component", "rest-server"),
		server: &http.Server{
			Addr:         ":" + port,
			Handler:      NewRouter(handler),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  30 * time.Second,
		},
	}
}

func NewRouter(handler *Handler) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	router.Get("/health", handler.Health)

	router.Route("/v1", func(r chi.Router) {
		r.Post("/games", handler.CreateGame)
		r.Route("/games/{pubkey}", func(r chi.Router) {
			r.Get("/", handler.GetGame)
			r.Post("/moves", handler.PlayMove)
			r.Get("/moves", handler.GetMoves)
		})

		r.Post("/auth/challenge", handler.AuthChallenge)
		r.Post("/auth/session", handler.AuthSession)

		r.Get("/bot", handler.requireWallet(handler.BotKey))
		r.Get("/wallet/games", handler.requireWallet(handler.WalletGames))
	})

	return router
}

func (that *Server) Start() error {
	that.logger.Info("starting http server", "addr", that.server.Addr)

	if err := that.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	return that.server.Shutdown(ctx) //nolint: wrapcheck // shutdown error is terminal
}
