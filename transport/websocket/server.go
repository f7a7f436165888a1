package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-chain/internal/entity"
	"github.com/rocketscienceinc/tictactoe-chain/internal/events"
	"github.com/rocketscienceinc/tictactoe-chain/internal/pkg"
)

type gameReader interface {
	GetGame(ctx context.Context, pubkey string) (*entity.Game, error)
}

// Server pushes live game state to WebSocket clients.
type Server struct {
	logger *slog.Logger
	games  gameReader
	events events.Subscriber

	server *http.Server

	handlers map[string]func(ctx context.Context, client *conn, message *Message) error
}

func New(logger *slog.Logger, games gameReader, subscriber events.Subscriber) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		games:  games,
		events: subscriber,

		handlers: make(map[string]func(context.Context, *conn, *Message) error),
	}

	server.handlers[actionConnect] = server.handleConnect
	server.handlers[actionWatch] = server.handleWatch
	server.handlers[actionState] = server.handleState
	server.handlers[actionUnwatch] = server.handleUnwatch

	return server
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(writer http.ResponseWriter, req *http.Request) {
		that.upgradeToWebSocket(ctx, writer, req)
	})

	that.server = &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := that.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown - stops accepting upgrades. Established connections run until
// their clients disconnect.
func (that *Server) Shutdown(ctx context.Context) error {
	if that.server == nil {
		return nil
	}

	//nolint: wrapcheck // shutdown error is terminal
	return that.server.Shutdown(ctx)
}

// upgradeToWebSocket - upgrades the connection and runs its message loop.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	if req.Header.Get("Upgrade") != "websocket" {
		http.Error(writer, "not a websocket upgrade", http.StatusBadRequest)
		return
	}

	session := that.sessionID(writer, req)

	key := req.Header.Get("Sec-WebSocket-Key")
	acceptKey := pkg.GenerateAcceptKey(key)

	writer.Header().Set("Upgrade", "websocket")
	writer.Header().Set("Connection", "Upgrade")
	writer.Header().Set("Sec-WebSocket-Accept", acceptKey)
	writer.WriteHeader(http.StatusSwitchingProtocols)

	hijacker, ok := writer.(http.Hijacker)
	if !ok {
		log.Error("web server does not support hijacking")
		return
	}

	netConn, bufrw, err := hijacker.Hijack()
	if err != nil {
		log.Error("failed to hijack connection", "error", err)
		return
	}

	defer netConn.Close()

	// Hijacked connections keep the server's read deadline unless cleared.
	if err = netConn.SetDeadline(time.Time{}); err != nil {
		log.Error("failed to clear deadline", "error", err)
		return
	}

	log.Info("connection established", "session", session)

	if err = that.handleMessages(ctx, newConn(session, bufrw)); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, client *conn) error {
	log := that.logger.With("method", "handleMessages", "session", client.session)

	defer client.closeWatches()

	for {
		reqBody, err := readRequest(client.bufrw)
		if errors.Is(err, errConnectionClosed) || errors.Is(err, io.EOF) {
			log.Info("client disconnected")
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to read request: %w", err)
		}

		if len(reqBody) == 0 {
			continue
		}

		var message Message
		if err = json.Unmarshal(reqBody, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)

			if err = client.send(actionError, errorPayload{Error: "unknown action: " + message.Action}); err != nil {
				return fmt.Errorf("failed to send error response: %w", err)
			}

			continue
		}

		if err = handler(ctx, client, &message); err != nil {
			log.Error("error processing message", "error", err)
		}
	}
}

// sessionID - returns the client session, minting a cookie for new clients.
func (that *Server) sessionID(writer http.ResponseWriter, req *http.Request) string {
	log := that.logger.With("method", "sessionID")

	cookie, err := req.Cookie("user_session")
	if err != nil {
		cookie = &http.Cookie{
			Name:    "user_session",
			Value:   pkg.GenerateNewSessionID(),
			Expires: time.Now().Add(24 * time.Hour),
			Path:    "/ws",
		}
		http.SetCookie(writer, cookie)
		log.Info("session cookie not found, new one created")

		return cookie.Value
	}

	return cookie.Value
}
