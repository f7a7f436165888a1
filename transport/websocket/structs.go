package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-chain/internal/entity"
	"github.com/rocketscienceinc/tictactoe-chain/internal/events"
)

// Actions carried in Message.Action. Clients send connect, game:watch,
// game:state and game:unwatch; the server replies with the same action
// or pushes game:state, game:event and error.
const (
	actionConnect = "connect"
	actionWatch   = "game:watch"
	actionState   = "game:state"
	actionUnwatch = "game:unwatch"
	actionEvent   = "game:event"
	actionError   = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type sessionPayload struct {
	Session string `json:"session"`
}

type watchPayload struct {
	Game string `json:"game"`
}

type statePayload struct {
	Game *entity.Game `json:"game"`
}

type eventPayload struct {
	Event events.Event `json:"event"`
}

type errorPayload struct {
	Error string `json:"error"`
}
