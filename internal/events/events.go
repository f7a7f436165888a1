package events

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-chain/internal/entity"
)

// Event types published on a game's subject.
const (
	TypeGameCreated = "game.created"
	TypeMovePlayed  = "game.move"
	TypeGameWon     = "game.won"
	TypeGameTie     = "game.tie"
)

const subjectPrefix = "tictactoe.games."

// Subject - the per-game subject events are published on.
func Subject(game string) string {
	return subjectPrefix + game
}

// Event is the envelope carried on the bus for everything that happens
// to a game account.
type Event struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Game       string            `json:"game"`
	EmittedAt  time.Time         `json:"emitted_at"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

func newEvent(eventType, game string, attributes map[string]string) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Game:       game,
		EmittedAt:  time.Now().UTC(),
		Attributes: attributes,
	}
}

// GameCreated - emitted once when setup_game initializes an account.
func GameCreated(game string, players [2]string) Event {
	return newEvent(TypeGameCreated, game, map[string]string{
		"player_one": players[0],
		"player_two": players[1],
	})
}

// MovePlayed - emitted for every accepted play instruction.
func MovePlayed(game, player string, tile entity.Tile, turn uint8) Event {
	return newEvent(TypeMovePlayed, game, map[string]string{
		"player": player,
		"row":    strconv.Itoa(int(tile.Row)),
		"column": strconv.Itoa(int(tile.Column)),
		"turn":   strconv.Itoa(int(turn)),
	})
}

// GameWon - emitted when a move completes a winning trio.
func GameWon(game, winner string) Event {
	return newEvent(TypeGameWon, game, map[string]string{
		"winner": winner,
	})
}

// GameTie - emitted when the board fills with no winner.
func GameTie(game string) Event {
	return newEvent(TypeGameTie, game, nil)
}

// Publisher pushes events onto the bus.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Subscription is an active per-game listener.
type Subscription interface {
	Unsubscribe() error
}

// Subscriber delivers every event published for a game to a handler.
type Subscriber interface {
	Subscribe(game string, handler func(event Event)) (Subscription, error)
}
