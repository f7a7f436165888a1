package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

const reconnectWait = 2 * time.Second

// NATSBus publishes and subscribes game events over a NATS server.
type NATSBus struct {
	logger *slog.Logger
	conn   *nats.Conn
}

// NewNATSBus - connects to the NATS server at url.
func NewNATSBus(logger *slog.Logger, url string) (*NATSBus, error) {
	log := logger.With("component", "events")

	conn, err := nats.Connect(url,
		nats.ReconnectWait(reconnectWait),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn("nats disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(conn *nats.Conn) {
			log.Info("nats reconnected", "url", conn.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSBus{logger: log, conn: conn}, nil
}

// Publish - sends the event on its game's subject as JSON.
func (that *NATSBus) Publish(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("publish canceled: %w", err)
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err = that.conn.Publish(Subject(event.Game), payload); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Subscribe - delivers every event published for the game to handler.
// Malformed payloads are logged and dropped.
func (that *NATSBus) Subscribe(game string, handler func(event Event)) (Subscription, error) {
	sub, err := that.conn.Subscribe(Subject(game), func(msg *nats.Msg) {
		var event Event
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			that.logger.Error("failed to unmarshal event", "subject", msg.Subject, "error", err)
			return
		}

		handler(event)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to game %s: %w", game, err)
	}

	return sub, nil
}

// Close - flushes outstanding publishes and drops the connection.
func (that *NATSBus) Close() {
	if err := that.conn.Flush(); err != nil {
		that.logger.Error("failed to flush nats connection", "error", err)
	}

	that.conn.Close()
}
