package client

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-chain/internal/entity"
	"github.com/rocketscienceinc/tictactoe-chain/internal/events"
	"github.com/rocketscienceinc/tictactoe-chain/internal/keys"
	"github.com/rocketscienceinc/tictactoe-chain/internal/program"
	"github.com/rocketscienceinc/tictactoe-chain/internal/repository"
	"github.com/rocketscienceinc/tictactoe-chain/internal/service"
	"github.com/rocketscienceinc/tictactoe-chain/testing/suite"
	"github.com/rocketscienceinc/tictactoe-chain/transport/rest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustKeypair(t *testing.T) *keys.Keypair {
	t.Helper()

	keypair, err := keys.Generate()
	require.NoError(t, err)

	return keypair
}

// eventLog collects bus traffic so subtests can assert emission order.
type eventLog struct {
	mu    sync.Mutex
	types []string
}

func (that *eventLog) record(event events.Event) {
	that.mu.Lock()
	defer that.mu.Unlock()
	that.types = append(that.types, event.Type)
}

func (that *eventLog) seen() []string {
	that.mu.Lock()
	defer that.mu.Unlock()
	return append([]string(nil), that.types...)
}

type stack struct {
	client *Client
	bus    *events.Bus
	bot    *keys.Keypair
}

// newStack runs the whole API on top of a dockertest Redis, an on-disk
// archive and the in-memory bus, then points a Client at it.
func newStack(t *testing.T) *stack {
	t.Helper()

	_, testSuite := suite.New(t)

	logger := testLogger()

	accounts := repository.NewAccountRepository(testSuite.Storage)
	archive := repository.NewArchiveRepository(testSuite.Archive)
	challenges := repository.NewChallengeRepository(testSuite.Storage)

	processor := program.NewProcessor(logger, accounts)
	bus := events.NewBus()

	botKeypair := mustKeypair(t)
	bot := service.NewBotService(botKeypair)

	gameplay := service.NewGamePlayService(logger, processor, accounts, archive, bus, bot)
	auth := service.NewAuthService("integration-secret", challenges)

	handler := rest.NewHandler(logger, gameplay, auth, bot)
	server := httptest.NewServer(rest.NewRouter(handler))
	t.Cleanup(server.Close)

	return &stack{client: New(server.URL), bus: bus, bot: botKeypair}
}

func (that *stack) watch(t *testing.T, game keys.PublicKey) *eventLog {
	t.Helper()

	log := &eventLog{}
	subscription, err := that.bus.Subscribe(game.String(), log.record)
	require.NoError(t, err)
	t.Cleanup(func() { _ = subscription.Unsubscribe() })

	return log
}

func TestClient_SetupGame(t *testing.T) {
	testStack := newStack(t)
	ctx := context.Background()

	t.Run("initializes the account exactly like the deployed program", func(t *testing.T) {
		// Given: a fresh game keypair and two player wallets.
		gameKeypair := mustKeypair(t)
		playerOne := mustKeypair(t)
		playerTwo := mustKeypair(t)

		// When: setup_game runs through the API.
		created, err := testStack.client.SetupGame(ctx, gameKeypair, playerOne, playerTwo.Public())
		require.NoError(t, err)

		// Then: the fetched game starts at turn one with both players,
		// an active state and an all-empty board.
		game, err := testStack.client.GetGame(ctx, gameKeypair.Public())
		require.NoError(t, err)

		assert.Equal(t, uint8(1), game.Turn)
		assert.Equal(t, [2]string{playerOne.Public().String(), playerTwo.Public().String()}, game.Players)
		assert.Equal(t, entity.StateActive, game.State)
		assert.Equal(t, [entity.BoardSize][entity.BoardSize]string{}, game.Board)
		assert.Empty(t, game.Winner)

		assert.Equal(t, game.Pubkey, created.Pubkey)
	})

	t.Run("rejects reusing an existing account", func(t *testing.T) {
		// Given: an account that setup_game already initialized.
		gameKeypair := mustKeypair(t)
		playerOne := mustKeypair(t)
		playerTwo := mustKeypair(t)

		_, err := testStack.client.SetupGame(ctx, gameKeypair, playerOne, playerTwo.Public())
		require.NoError(t, err)

		// When: setup_game runs again for the same account.
		_, err = testStack.client.SetupGame(ctx, gameKeypair, playerOne, playerTwo.Public())

		// Then: the API answers with a conflict.
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 409, apiErr.Status)
	})
}

func TestClient_FullGame(t *testing.T) {
	testStack := newStack(t)
	ctx := context.Background()

	t.Run("plays a full game to a win", func(t *testing.T) {
		// Given: a running game with a bus watcher on it.
		gameKeypair := mustKeypair(t)
		playerOne := mustKeypair(t)
		playerTwo := mustKeypair(t)

		watched := testStack.watch(t, gameKeypair.Public())

		_, err := testStack.client.SetupGame(ctx, gameKeypair, playerOne, playerTwo.Public())
		require.NoError(t, err)

		// When: player one claims the top row while player two follows.
		moves := []struct {
			player   *keys.Keypair
			row, col uint8
		}{
			{playerOne, 0, 0},
			{playerTwo, 1, 0},
			{playerOne, 0, 1},
			{playerTwo, 1, 1},
			{playerOne, 0, 2},
		}

		var game *entity.Game
		for _, move := range moves {
			game, err = testStack.client.Play(ctx, gameKeypair.Public(), move.player, move.row, move.col)
			require.NoError(t, err)
		}

		// Then: the game is won by player one and the turn counter froze
		// on the winning move.
		assert.Equal(t, entity.StateWon, game.State)
		assert.Equal(t, playerOne.Public().String(), game.Winner)
		assert.Equal(t, uint8(5), game.Turn)

		// And: the finished game is still fetchable from the archive.
		archived, err := testStack.client.GetGame(ctx, gameKeypair.Public())
		require.NoError(t, err)
		assert.Equal(t, entity.StateWon, archived.State)

		// And: the move log survives with the turns in order.
		recorded, err := testStack.client.GetMoves(ctx, gameKeypair.Public())
		require.NoError(t, err)
		require.Len(t, recorded, 5)
		for i, move := range recorded {
			assert.Equal(t, uint8(i+1), move.Turn)
		}

		// And: the bus carried the whole story in order.
		assert.Equal(t, []string{
			events.TypeGameCreated,
			events.TypeMovePlayed,
			events.TypeMovePlayed,
			events.TypeMovePlayed,
			events.TypeMovePlayed,
			events.TypeMovePlayed,
			events.TypeGameWon,
		}, watched.seen())
	})

	t.Run("plays a full game to a tie", func(t *testing.T) {
		// Given: a running game with a bus watcher on it.
		gameKeypair := mustKeypair(t)
		playerOne := mustKeypair(t)
		playerTwo := mustKeypair(t)

		watched := testStack.watch(t, gameKeypair.Public())

		_, err := testStack.client.SetupGame(ctx, gameKeypair, playerOne, playerTwo.Public())
		require.NoError(t, err)

		// When: the board fills without a winning trio.
		moves := []struct {
			player   *keys.Keypair
			row, col uint8
		}{
			{playerOne, 0, 0},
			{playerTwo, 0, 1},
			{playerOne, 0, 2},
			{playerTwo, 1, 1},
			{playerOne, 1, 0},
			{playerTwo, 1, 2},
			{playerOne, 2, 1},
			{playerTwo, 2, 0},
			{playerOne, 2, 2},
		}

		var game *entity.Game
		for _, move := range moves {
			game, err = testStack.client.Play(ctx, gameKeypair.Public(), move.player, move.row, move.col)
			require.NoError(t, err)
		}

		// Then: nobody won and the board is full.
		assert.Equal(t, entity.StateTie, game.State)
		assert.Empty(t, game.Winner)
		assert.Equal(t, uint8(9), game.Turn)

		for _, row := range game.Board {
			for _, cell := range row {
				assert.NotEmpty(t, cell)
			}
		}

		// And: the last bus event is the tie.
		seen := watched.seen()
		require.NotEmpty(t, seen)
		assert.Equal(t, events.TypeGameTie, seen[len(seen)-1])
	})
}

func TestClient_Rules(t *testing.T) {
	testStack := newStack(t)
	ctx := context.Background()

	newGame := func(t *testing.T) (*keys.Keypair, *keys.Keypair, *keys.Keypair) {
		t.Helper()

		gameKeypair := mustKeypair(t)
		playerOne := mustKeypair(t)
		playerTwo := mustKeypair(t)

		_, err := testStack.client.SetupGame(ctx, gameKeypair, playerOne, playerTwo.Public())
		require.NoError(t, err)

		return gameKeypair, playerOne, playerTwo
	}

	t.Run("rejects a move from the player whose turn it is not", func(t *testing.T) {
		// Given: a fresh game where player one holds the first turn.
		gameKeypair, _, playerTwo := newGame(t)

		// When: player two moves first.
		_, err := testStack.client.Play(ctx, gameKeypair.Public(), playerTwo, 0, 0)

		// Then: the API forbids it.
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 403, apiErr.Status)
	})

	t.Run("rejects a move onto an occupied tile", func(t *testing.T) {
		// Given: a game with the center already taken.
		gameKeypair, playerOne, playerTwo := newGame(t)

		_, err := testStack.client.Play(ctx, gameKeypair.Public(), playerOne, 1, 1)
		require.NoError(t, err)

		// When: player two aims at the same tile.
		_, err = testStack.client.Play(ctx, gameKeypair.Public(), playerTwo, 1, 1)

		// Then: the API answers with a conflict.
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 409, apiErr.Status)
	})

	t.Run("rejects a move signed by a stranger", func(t *testing.T) {
		// Given: a fresh game and a keypair that is not in it.
		gameKeypair, playerOne, _ := newGame(t)
		stranger := mustKeypair(t)

		// When: the stranger submits a move under player one's name.
		tileSigned, err := testStack.client.Play(ctx, gameKeypair.Public(), stranger, 0, 0)

		// Then: the forged signature is refused.
		require.Nil(t, tileSigned)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 403, apiErr.Status)

		// And: player one's own signature still works.
		_, err = testStack.client.Play(ctx, gameKeypair.Public(), playerOne, 0, 0)
		require.NoError(t, err)
	})

	t.Run("answers 404 for a game that never existed", func(t *testing.T) {
		// When: an unknown account is fetched.
		_, err := testStack.client.GetGame(ctx, mustKeypair(t).Public())

		// Then: the API reports it missing.
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.Status)
	})
}

func TestClient_Sessions(t *testing.T) {
	testStack := newStack(t)
	ctx := context.Background()

	t.Run("logs in and lists the wallet's games", func(t *testing.T) {
		// Given: a wallet that played one game.
		gameKeypair := mustKeypair(t)
		wallet := mustKeypair(t)
		opponent := mustKeypair(t)

		_, err := testStack.client.SetupGame(ctx, gameKeypair, wallet, opponent.Public())
		require.NoError(t, err)

		// When: the wallet signs its challenge nonce.
		require.NoError(t, testStack.client.Login(ctx, wallet))
		require.NotEmpty(t, testStack.client.Token())

		// Then: the history lists the game.
		games, err := testStack.client.WalletGames(ctx)
		require.NoError(t, err)

		require.Len(t, games, 1)
		assert.Equal(t, gameKeypair.Public().String(), games[0].Pubkey)
		assert.Equal(t, entity.StateActive, games[0].State)
	})

	t.Run("refuses authorized calls before login", func(t *testing.T) {
		// Given: a client that never logged in.
		fresh := New(testStack.client.baseURL)

		// When: it asks for the bot key.
		_, err := fresh.BotKey(ctx)

		// Then: the API wants a token first.
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 401, apiErr.Status)
	})

	t.Run("bot answers in a practice game", func(t *testing.T) {
		// Given: a logged-in wallet and the resident bot as player two.
		wallet := mustKeypair(t)
		require.NoError(t, testStack.client.Login(ctx, wallet))

		botKey, err := testStack.client.BotKey(ctx)
		require.NoError(t, err)
		assert.Equal(t, testStack.bot.Public(), botKey)

		gameKeypair := mustKeypair(t)
		_, err = testStack.client.SetupGame(ctx, gameKeypair, wallet, botKey)
		require.NoError(t, err)

		// When: the wallet plays its first move.
		game, err := testStack.client.Play(ctx, gameKeypair.Public(), wallet, 1, 1)
		require.NoError(t, err)

		// Then: the bot has already answered and it is the wallet's
		// turn again.
		assert.Equal(t, uint8(3), game.Turn)
		assert.Equal(t, entity.StateActive, game.State)

		var signs []string
		for _, row := range game.Board {
			for _, cell := range row {
				if cell != "" {
					signs = append(signs, cell)
				}
			}
		}
		assert.ElementsMatch(t, []string{entity.SignX, entity.SignO}, signs)
	})
}

func TestClient_Transport(t *testing.T) {
	t.Run("reports a server it cannot reach", func(t *testing.T) {
		// Given: a client pointed at a dead port.
		unreachable := New("http://127.0.0.1:1")

		// When: any call goes out.
		err := unreachable.Health(context.Background())

		// Then: the failure is a transport error, not an APIError.
		require.Error(t, err)

		var apiErr *APIError
		assert.False(t, errors.As(err, &apiErr))
	})
}
