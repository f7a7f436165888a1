package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-chain/internal/events"
)

func (that *Server) handleConnect(_ context.Context, client *conn, message *Message) error {
	log := that.logger.With("method", "handleConnect")

	if err := client.send(message.Action, sessionPayload{Session: client.session}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("client connected", "session", client.session)

	return nil
}

// handleWatch subscribes the client to a game and replies with a snapshot.
// Subscribing before the snapshot means a move landing between the two is
// delivered twice rather than missed.
func (that *Server) handleWatch(ctx context.Context, client *conn, message *Message) error {
	log := that.logger.With("method", "handleWatch")

	var payload watchPayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.Game == "" {
		log.Error("game is missing in payload")
		return client.send(actionError, errorPayload{Error: "game is required"})
	}

	if !client.isWatching(payload.Game) {
		subscription, err := that.events.Subscribe(payload.Game, func(event events.Event) {
			if err := client.send(actionEvent, eventPayload{Event: event}); err != nil {
				log.Error("failed to push event", "game", event.Game, "error", err)
			}
		})
		if err != nil {
			log.Error("failed to subscribe", "game", payload.Game, "error", err)
			return client.send(actionError, errorPayload{Error: "failed to watch game"})
		}

		client.addWatch(payload.Game, subscription)

		log.Info("client watching game", "game", payload.Game, "session", client.session)
	}

	return that.sendSnapshot(ctx, client, payload.Game)
}

func (that *Server) handleState(ctx context.Context, client *conn, message *Message) error {
	var payload watchPayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.Game == "" {
		return client.send(actionError, errorPayload{Error: "game is required"})
	}

	return that.sendSnapshot(ctx, client, payload.Game)
}

func (that *Server) handleUnwatch(_ context.Context, client *conn, message *Message) error {
	log := that.logger.With("method", "handleUnwatch")

	var payload watchPayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if err := client.dropWatch(payload.Game); err != nil {
		log.Error("failed to drop watch", "game", payload.Game, "error", err)
	}

	if err := client.send(message.Action, watchPayload{Game: payload.Game}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

// sendSnapshot replies with the current state of one game.
func (that *Server) sendSnapshot(ctx context.Context, client *conn, game string) error {
	log := that.logger.With("method", "sendSnapshot")

	state, err := that.games.GetGame(ctx, game)
	if err != nil {
		log.Error("failed to get game", "game", game, "error", err)
		return client.send(actionError, errorPayload{Error: fmt.Sprintf("game %s: %v", game, err)})
	}

	if err = client.send(actionState, statePayload{Game: state}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}
