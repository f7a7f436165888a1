package websocket

import (
	"bufio"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-chain/internal/events"
)

// conn is one upgraded client connection. The write lock serializes
// request replies with event pushes arriving from subscription handlers.
// watches is only touched from the connection's read loop.
type conn struct {
	session string
	bufrw   *bufio.ReadWriter

	writeMutex sync.Mutex
	watches    map[string]events.Subscription
}

func newConn(session string, bufrw *bufio.ReadWriter) *conn {
	return &conn{
		session: session,
		bufrw:   bufrw,
		watches: make(map[string]events.Subscription),
	}
}

func (that *conn) send(action string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	responseBytes, err := json.Marshal(Message{Action: action, Payload: raw})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	that.writeMutex.Lock()
	defer that.writeMutex.Unlock()

	if err = writeFrame(that.bufrw, frame{
		isFin:   true,
		opCode:  opText,
		length:  uint64(len(responseBytes)),
		payload: responseBytes,
	}); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}

	return nil
}

func (that *conn) isWatching(game string) bool {
	_, ok := that.watches[game]
	return ok
}

func (that *conn) addWatch(game string, subscription events.Subscription) {
	that.watches[game] = subscription
}

func (that *conn) dropWatch(game string) error {
	subscription, ok := that.watches[game]
	if !ok {
		return nil
	}

	delete(that.watches, game)

	if err := subscription.Unsubscribe(); err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}

	return nil
}

func (that *conn) closeWatches() {
	for game, subscription := range that.watches {
		_ = subscription.Unsubscribe()
		delete(that.watches, game)
	}
}
