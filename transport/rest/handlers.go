package rest

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-chain/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-chain/internal/entity"
	"github.com/rocketscienceinc/tictactoe-chain/internal/keys"
	"github.com/rocketscienceinc/tictactoe-chain/internal/repository"
	"github.com/rocketscienceinc/tictactoe-chain/internal/service"
)

type gamePlayService interface {
	SetupGame(ctx context.Context, params service.SetupGameParams) (*entity.Game, error)
	Play(ctx context.Context, params service.PlayParams) (*entity.Game, error)
	GetGame(ctx context.Context, pubkey string) (*entity.Game, error)
	GetMoves(ctx context.Context, pubkey string) ([]entity.Move, error)
	WalletGames(ctx context.Context, wallet string) ([]service.GameSummary, error)
}

type authService interface {
	Challenge(ctx context.Context, wallet string) (string, error)
	Login(ctx context.Context, wallet string, signature []byte) (string, error)
	ParseToken(token string) (string, error)
}

type botService interface {
	Pubkey() string
}

type Handler struct {
	logger *slog.Logger

	gameplay gamePlayService
	auth     authService
	bot      botService
}

func NewHandler(logger *slog.Logger, gameplay gamePlayService, auth authService, bot botService) *Handler {
	return &Handler{
		logger:   logger.With("component", "rest"),
		gameplay: gameplay,
		auth:     auth,
		bot:      bot,
	}
}

type setupGameRequest struct {
	GamePubkey      string `json:"game_pubkey"`
	PlayerOne       string `json:"player_one"`
	PlayerTwo       string `json:"player_two"`
	GameSignature   string `json:"game_signature"`
	PlayerSignature string `json:"player_signature"`
}

type playRequest struct {
	Player    string `json:"player"`
	Row       uint8  `json:"row"`
	Column    uint8  `json:"column"`
	Signature string `json:"signature"`
}

type challengeRequest struct {
	Wallet string `json:"wallet"`
}

type sessionRequest struct {
	Wallet    string `json:"wallet"`
	Signature string `json:"signature"`
}

// CreateGame - runs setup_game from a JSON body carrying the two
// required signatures.
func (that *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req setupGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid json body"))
		return
	}

	gameSignature, err := base64.StdEncoding.DecodeString(req.GameSignature)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("game_signature is not base64"))
		return
	}

	playerSignature, err := base64.StdEncoding.DecodeString(req.PlayerSignature)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("player_signature is not base64"))
		return
	}

	game, err := that.gameplay.SetupGame(r.Context(), service.SetupGameParams{
		GamePubkey:      req.GamePubkey,
		PlayerOne:       req.PlayerOne,
		PlayerTwo:       req.PlayerTwo,
		GameSignature:   gameSignature,
		PlayerSignature: playerSignature,
	})
	if err != nil {
		that.writeError(w, "CreateGame", err)
		return
	}

	writeJSON(w, http.StatusCreated, game)
}

// PlayMove - runs play against the game named in the path.
func (that *Handler) PlayMove(w http.ResponseWriter, r *http.Request) {
	var req playRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid json body"))
		return
	}

	signature, err := base64.StdEncoding.DecodeString(req.Signature)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("signature is not base64"))
		return
	}

	game, err := that.gameplay.Play(r.Context(), service.PlayParams{
		GamePubkey: chi.URLParam(r, "pubkey"),
		Player:     req.Player,
		Tile:       entity.Tile{Row: req.Row, Column: req.Column},
		Signature:  signature,
	})
	if err != nil {
		that.writeError(w, "PlayMove", err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

func (that *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameplay.GetGame(r.Context(), chi.URLParam(r, "pubkey"))
	if err != nil {
		that.writeError(w, "GetGame", err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

func (that *Handler) GetMoves(w http.ResponseWriter, r *http.Request) {
	moves, err := that.gameplay.GetMoves(r.Context(), chi.URLParam(r, "pubkey"))
	if err != nil {
		that.writeError(w, "GetMoves", err)
		return
	}

	if moves == nil {
		moves = []entity.Move{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": moves})
}

// AuthChallenge - mints a login nonce for a wallet.
func (that *Handler) AuthChallenge(w http.ResponseWriter, r *http.Request) {
	var req challengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid json body"))
		return
	}

	nonce, err := that.auth.Challenge(r.Context(), req.Wallet)
	if err != nil {
		that.writeError(w, "AuthChallenge", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"nonce": nonce})
}

// AuthSession - trades a signed nonce for a bearer token.
func (that *Handler) AuthSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid json body"))
		return
	}

	signature, err := base64.StdEncoding.DecodeString(req.Signature)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("signature is not base64"))
		return
	}

	token, err := that.auth.Login(r.Context(), req.Wallet, signature)
	if err != nil {
		that.writeError(w, "AuthSession", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// BotKey - the resident bot's wallet, for use as player two.
func (that *Handler) BotKey(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"pubkey": that.bot.Pubkey()})
}

// WalletGames - every game the authenticated wallet took part in.
func (that *Handler) WalletGames(w http.ResponseWriter, r *http.Request) {
	wallet := walletFrom(r.Context())

	summaries, err := that.gameplay.WalletGames(r.Context(), wallet)
	if err != nil {
		that.writeError(w, "WalletGames", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": summaries})
}

func (that *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (that *Handler) writeError(w http.ResponseWriter, method string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
	}

	writeJSON(w, status, errorBody(err.Error()))
}

// statusFor - maps domain errors onto HTTP statuses: forgeries and
// out-of-turn moves are 403, board rule violations 409, unknown
// addresses 404.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidSignature),
		errors.Is(err, apperror.ErrNotPlayersTurn):
		return http.StatusForbidden
	case errors.Is(err, apperror.ErrTileOutOfBounds),
		errors.Is(err, apperror.ErrTileAlreadySet),
		errors.Is(err, apperror.ErrGameAlreadyOver),
		errors.Is(err, apperror.ErrGameAlreadyStarted),
		errors.Is(err, apperror.ErrGameAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, repository.ErrAccountNotFound),
		errors.Is(err, repository.ErrGameNotArchived),
		errors.Is(err, repository.ErrChallengeNotFound):
		return http.StatusNotFound
	case errors.Is(err, keys.ErrBadPublicKey),
		errors.Is(err, keys.ErrBadPublicKeyLength):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorBody(message string) map[string]string {
	return map[string]string{"error": message}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
