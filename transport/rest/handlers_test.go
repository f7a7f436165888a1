package rest

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-chain/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-chain/internal/entity"
	"github.com/rocketscienceinc/tictactoe-chain/internal/keys"
	"github.com/rocketscienceinc/tictactoe-chain/internal/repository"
	"github.com/rocketscienceinc/tictactoe-chain/internal/service"
	mockedRest "github.com/rocketscienceinc/tictactoe-chain/mocks/rest"
	mockedService "github.com/rocketscienceinc/tictactoe-chain/mocks/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type restFixture struct {
	gameplay   *mockedRest.MockgamePlayService
	challenges *mockedService.MockchallengeRepo
	bot        service.BotService
	router     http.Handler
}

func newRestFixture(t *testing.T) *restFixture {
	t.Helper()

	gameplay := mockedRest.NewMockgamePlayService(t)
	challenges := mockedService.NewMockchallengeRepo(t)
	auth := service.NewAuthService("test-secret", challenges)

	botKeypair, err := keys.Generate()
	require.NoError(t, err)
	bot := service.NewBotService(botKeypair)

	return &restFixture{
		gameplay:   gameplay,
		challenges: challenges,
		bot:        bot,
		router:     NewRouter(NewHandler(testLogger(), gameplay, auth, bot)),
	}
}

func (that *restFixture) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	request := httptest.NewRequest(method, path, reader)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	that.router.ServeHTTP(recorder, request)

	return recorder
}

// login - walks a wallet through the challenge/session flow and returns
// its bearer token. The challenge store is scripted to hand back what
// was stored.
func (that *restFixture) login(t *testing.T, wallet *keys.Keypair) string {
	t.Helper()

	var nonce string
	that.challenges.EXPECT().
		CreateChallenge(mock.Anything, wallet.Public().String(), mock.AnythingOfType("string")).
		Run(func(_ context.Context, _ string, stored string) { nonce = stored }).
		Return(nil).
		Once()
	that.challenges.EXPECT().
		TakeChallenge(mock.Anything, wallet.Public().String()).
		RunAndReturn(func(_ context.Context, _ string) (string, error) { return nonce, nil }).
		Once()

	challengeResp := that.do(t, http.MethodPost, "/v1/auth/challenge",
		challengeRequest{Wallet: wallet.Public().String()}, "")
	require.Equal(t, http.StatusOK, challengeResp.Code)

	var challenge map[string]string
	require.NoError(t, json.NewDecoder(challengeResp.Body).Decode(&challenge))

	sessionResp := that.do(t, http.MethodPost, "/v1/auth/session", sessionRequest{
		Wallet:    wallet.Public().String(),
		Signature: base64.StdEncoding.EncodeToString(wallet.Sign([]byte(challenge["nonce"]))),
	}, "")
	require.Equal(t, http.StatusOK, sessionResp.Code)

	var session map[string]string
	require.NoError(t, json.NewDecoder(sessionResp.Body).Decode(&session))
	require.NotEmpty(t, session["token"])

	return session["token"]
}

func TestHandler_CreateGame(t *testing.T) {
	game := entity.NewGame("game-pubkey")
	require.NoError(t, game.Start([2]string{"one", "two"}))

	t.Run("Returns 201 with the created game", func(t *testing.T) {
		// Given: a gameplay service that accepts the setup
		fixture := newRestFixture(t)

		var params service.SetupGameParams
		fixture.gameplay.EXPECT().
			SetupGame(mock.Anything, mock.AnythingOfType("service.SetupGameParams")).
			Run(func(_ context.Context, p service.SetupGameParams) { params = p }).
			Return(game, nil).
			Once()

		// When: posting a setup body with base64 signatures
		response := fixture.do(t, http.MethodPost, "/v1/games", setupGameRequest{
			GamePubkey:      "game-pubkey",
			PlayerOne:       "one",
			PlayerTwo:       "two",
			GameSignature:   base64.StdEncoding.EncodeToString([]byte("sig-a")),
			PlayerSignature: base64.StdEncoding.EncodeToString([]byte("sig-b")),
		}, "")

		// Then: the game state comes back and the signatures were decoded
		require.Equal(t, http.StatusCreated, response.Code)

		var got entity.Game
		require.NoError(t, json.NewDecoder(response.Body).Decode(&got))
		assert.Equal(t, *game, got)

		assert.Equal(t, []byte("sig-a"), params.GameSignature)
		assert.Equal(t, []byte("sig-b"), params.PlayerSignature)
	})

	t.Run("Rejects signatures that are not base64", func(t *testing.T) {
		// Given: a body with a mangled signature
		fixture := newRestFixture(t)

		// When: posting it
		response := fixture.do(t, http.MethodPost, "/v1/games", setupGameRequest{
			GamePubkey:    "game-pubkey",
			GameSignature: "%%% not base64 %%%",
		}, "")

		// Then: the body is refused before the service runs
		assert.Equal(t, http.StatusBadRequest, response.Code)
	})

	t.Run("Maps a taken account to 409", func(t *testing.T) {
		// Given: a gameplay service that reports the address as used
		fixture := newRestFixture(t)

		fixture.gameplay.EXPECT().
			SetupGame(mock.Anything, mock.AnythingOfType("service.SetupGameParams")).
			Return(nil, apperror.ErrGameAlreadyExists).
			Once()

		// When: posting the setup
		response := fixture.do(t, http.MethodPost, "/v1/games", setupGameRequest{
			GamePubkey:      "game-pubkey",
			GameSignature:   base64.StdEncoding.EncodeToString([]byte("sig")),
			PlayerSignature: base64.StdEncoding.EncodeToString([]byte("sig")),
		}, "")

		// Then: the conflict maps to 409
		assert.Equal(t, http.StatusConflict, response.Code)
	})

	t.Run("Maps a forged signature to 403", func(t *testing.T) {
		// Given: a gameplay service that refuses the signature
		fixture := newRestFixture(t)

		fixture.gameplay.EXPECT().
			SetupGame(mock.Anything, mock.AnythingOfType("service.SetupGameParams")).
			Return(nil, apperror.ErrInvalidSignature).
			Once()

		// When: posting the setup
		response := fixture.do(t, http.MethodPost, "/v1/games", setupGameRequest{
			GamePubkey:      "game-pubkey",
			GameSignature:   base64.StdEncoding.EncodeToString([]byte("sig")),
			PlayerSignature: base64.StdEncoding.EncodeToString([]byte("sig")),
		}, "")

		// Then: the forgery maps to 403
		assert.Equal(t, http.StatusForbidden, response.Code)
	})
}

func TestHandler_PlayMove(t *testing.T) {
	game := entity.NewGame("game-pubkey")
	require.NoError(t, game.Start([2]string{"one", "two"}))
	require.NoError(t, game.Play(entity.Tile{Row: 1, Column: 2}))

	t.Run("Returns 200 with the updated game", func(t *testing.T) {
		// Given: a gameplay service that applies the move
		fixture := newRestFixture(t)

		var params service.PlayParams
		fixture.gameplay.EXPECT().
			Play(mock.Anything, mock.AnythingOfType("service.PlayParams")).
			Run(func(_ context.Context, p service.PlayParams) { params = p }).
			Return(game, nil).
			Once()

		// When: posting a move to the game's path
		response := fixture.do(t, http.MethodPost, "/v1/games/game-pubkey/moves", playRequest{
			Player:    "one",
			Row:       1,
			Column:    2,
			Signature: base64.StdEncoding.EncodeToString([]byte("sig")),
		}, "")

		// Then: the updated state comes back and the path named the game
		require.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, "game-pubkey", params.GamePubkey)
		assert.Equal(t, entity.Tile{Row: 1, Column: 2}, params.Tile)

		var got entity.Game
		require.NoError(t, json.NewDecoder(response.Body).Decode(&got))
		assert.Equal(t, *game, got)
	})

	t.Run("Maps an out-of-turn move to 403", func(t *testing.T) {
		fixture := newRestFixture(t)

		fixture.gameplay.EXPECT().
			Play(mock.Anything, mock.AnythingOfType("service.PlayParams")).
			Return(nil, apperror.ErrNotPlayersTurn).
			Once()

		response := fixture.do(t, http.MethodPost, "/v1/games/game-pubkey/moves", playRequest{
			Player:    "two",
			Signature: base64.StdEncoding.EncodeToString([]byte("sig")),
		}, "")

		assert.Equal(t, http.StatusForbidden, response.Code)
	})

	t.Run("Maps an occupied tile to 409", func(t *testing.T) {
		fixture := newRestFixture(t)

		fixture.gameplay.EXPECT().
			Play(mock.Anything, mock.AnythingOfType("service.PlayParams")).
			Return(nil, apperror.ErrTileAlreadySet).
			Once()

		response := fixture.do(t, http.MethodPost, "/v1/games/game-pubkey/moves", playRequest{
			Player:    "one",
			Signature: base64.StdEncoding.EncodeToString([]byte("sig")),
		}, "")

		assert.Equal(t, http.StatusConflict, response.Code)
	})

	t.Run("Maps an unknown game to 404", func(t *testing.T) {
		fixture := newRestFixture(t)

		fixture.gameplay.EXPECT().
			Play(mock.Anything, mock.AnythingOfType("service.PlayParams")).
			Return(nil, repository.ErrAccountNotFound).
			Once()

		response := fixture.do(t, http.MethodPost, "/v1/games/missing/moves", playRequest{
			Player:    "one",
			Signature: base64.StdEncoding.EncodeToString([]byte("sig")),
		}, "")

		assert.Equal(t, http.StatusNotFound, response.Code)
	})

	t.Run("Rejects a body that is not json", func(t *testing.T) {
		fixture := newRestFixture(t)

		request := httptest.NewRequest(http.MethodPost, "/v1/games/game-pubkey/moves",
			bytes.NewReader([]byte("not json")))
		recorder := httptest.NewRecorder()
		fixture.router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandler_GetGame(t *testing.T) {
	t.Run("Returns the game state", func(t *testing.T) {
		// Given: a known game
		fixture := newRestFixture(t)

		game := entity.NewGame("game-pubkey")
		require.NoError(t, game.Start([2]string{"one", "two"}))

		fixture.gameplay.EXPECT().GetGame(mock.Anything, "game-pubkey").Return(game, nil).Once()

		// When: fetching it
		response := fixture.do(t, http.MethodGet, "/v1/games/game-pubkey", nil, "")

		// Then: the fresh-game shape matches setup_game's contract
		require.Equal(t, http.StatusOK, response.Code)

		var got entity.Game
		require.NoError(t, json.NewDecoder(response.Body).Decode(&got))
		assert.Equal(t, uint8(1), got.Turn)
		assert.Equal(t, [2]string{"one", "two"}, got.Players)
		assert.Equal(t, entity.StateActive, got.State)
	})

	t.Run("Maps an unknown game to 404", func(t *testing.T) {
		fixture := newRestFixture(t)

		fixture.gameplay.EXPECT().GetGame(mock.Anything, "missing").Return(nil, repository.ErrAccountNotFound).Once()

		response := fixture.do(t, http.MethodGet, "/v1/games/missing", nil, "")

		assert.Equal(t, http.StatusNotFound, response.Code)
	})
}

func TestHandler_GetMoves(t *testing.T) {
	t.Run("Returns the move log", func(t *testing.T) {
		fixture := newRestFixture(t)

		moves := []entity.Move{{Turn: 1, Player: "one", Tile: entity.Tile{Row: 0, Column: 0}}}
		fixture.gameplay.EXPECT().GetMoves(mock.Anything, "game-pubkey").Return(moves, nil).Once()

		response := fixture.do(t, http.MethodGet, "/v1/games/game-pubkey/moves", nil, "")

		require.Equal(t, http.StatusOK, response.Code)

		var got struct {
			Items []entity.Move `json:"items"`
		}
		require.NoError(t, json.NewDecoder(response.Body).Decode(&got))
		assert.Equal(t, moves, got.Items)
	})

	t.Run("Renders an empty log as an empty array", func(t *testing.T) {
		fixture := newRestFixture(t)

		fixture.gameplay.EXPECT().GetMoves(mock.Anything, "game-pubkey").Return(nil, nil).Once()

		response := fixture.do(t, http.MethodGet, "/v1/games/game-pubkey/moves", nil, "")

		require.Equal(t, http.StatusOK, response.Code)
		assert.JSONEq(t, `{"items":[]}`, response.Body.String())
	})
}

func TestHandler_Sessions(t *testing.T) {
	t.Run("Challenge and session flow unlocks the bot endpoint", func(t *testing.T) {
		// Given: a wallet that completed the login flow
		fixture := newRestFixture(t)

		wallet, err := keys.Generate()
		require.NoError(t, err)
		token := fixture.login(t, wallet)

		// When: asking for the bot's key with the session token
		response := fixture.do(t, http.MethodGet, "/v1/bot", nil, token)

		// Then: the bot's wallet is returned
		require.Equal(t, http.StatusOK, response.Code)

		var got map[string]string
		require.NoError(t, json.NewDecoder(response.Body).Decode(&got))
		assert.Equal(t, fixture.bot.Pubkey(), got["pubkey"])
	})

	t.Run("Bot endpoint requires a session", func(t *testing.T) {
		fixture := newRestFixture(t)

		// When: calling without and with a bogus token
		missing := fixture.do(t, http.MethodGet, "/v1/bot", nil, "")
		bogus := fixture.do(t, http.MethodGet, "/v1/bot", nil, "not-a-token")

		// Then: both are refused
		assert.Equal(t, http.StatusUnauthorized, missing.Code)
		assert.Equal(t, http.StatusUnauthorized, bogus.Code)
	})

	t.Run("Wallet games endpoint scopes to the token's wallet", func(t *testing.T) {
		// Given: a logged-in wallet with one archived game
		fixture := newRestFixture(t)

		wallet, err := keys.Generate()
		require.NoError(t, err)
		token := fixture.login(t, wallet)

		summaries := []service.GameSummary{{Pubkey: "game-pubkey", State: entity.StateWon, Winner: wallet.Public().String(), Turn: 7}}
		fixture.gameplay.EXPECT().
			WalletGames(mock.Anything, wallet.Public().String()).
			Return(summaries, nil).
			Once()

		// When: listing games with the session token
		response := fixture.do(t, http.MethodGet, "/v1/wallet/games", nil, token)

		// Then: the wallet's summaries come back
		require.Equal(t, http.StatusOK, response.Code)

		var got struct {
			Items []service.GameSummary `json:"items"`
		}
		require.NoError(t, json.NewDecoder(response.Body).Decode(&got))
		assert.Equal(t, summaries, got.Items)
	})

	t.Run("Session with a wrong signature is refused", func(t *testing.T) {
		// Given: a pending challenge and a signature by another key
		fixture := newRestFixture(t)

		wallet, err := keys.Generate()
		require.NoError(t, err)
		stranger, err := keys.Generate()
		require.NoError(t, err)

		fixture.challenges.EXPECT().
			CreateChallenge(mock.Anything, wallet.Public().String(), mock.AnythingOfType("string")).
			Return(nil).
			Once()
		fixture.challenges.EXPECT().
			TakeChallenge(mock.Anything, wallet.Public().String()).
			Return("the-nonce", nil).
			Once()

		challengeResp := fixture.do(t, http.MethodPost, "/v1/auth/challenge",
			challengeRequest{Wallet: wallet.Public().String()}, "")
		require.Equal(t, http.StatusOK, challengeResp.Code)

		// When: redeeming with the stranger's signature
		response := fixture.do(t, http.MethodPost, "/v1/auth/session", sessionRequest{
			Wallet:    wallet.Public().String(),
			Signature: base64.StdEncoding.EncodeToString(stranger.Sign([]byte("the-nonce"))),
		}, "")

		// Then: the login maps to 403
		assert.Equal(t, http.StatusForbidden, response.Code)
	})
}

func TestHandler_Health(t *testing.T) {
	fixture := newRestFixture(t)

	response := fixture.do(t, http.MethodGet, "/health", nil, "")

	require.Equal(t, http.StatusOK, response.Code)
	assert.JSONEq(t, `{"status":"ok"}`, response.Body.String())
}
