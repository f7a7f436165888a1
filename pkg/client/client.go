// Package client talks to the HTTP API the way a wallet-holding player
// would: it builds instruction bytes locally, signs them with local
// keypairs and never sends a private key over the wire.
package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-chain/internal/codec"
	"github.com/rocketscienceinc/tictactoe-chain/internal/entity"
	"github.com/rocketscienceinc/tictactoe-chain/internal/keys"
)

const defaultTimeout = 30 * time.Second

// APIError is a non-2xx reply decoded from the error body.
type APIError struct {
	Status  int
	Message string
}

func (that *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", that.Status, that.Message)
}

// GameSummary is one row of the authenticated wallet's game history.
type GameSummary struct {
	Pubkey string `json:"pubkey"`
	State  string `json:"state"`
	Winner string `json:"winner,omitempty"`
	Turn   uint8  `json:"turn"`
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

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetupGame creates a game account. The instruction is signed by both the
// fresh game keypair and player one, mirroring the two account references
// setup_game takes on chain.
func (that *Client) SetupGame(ctx context.Context, gameKeypair, playerOne *keys.Keypair, playerTwo keys.PublicKey) (*entity.Game, error) {
	data := codec.EncodeSetupGame(playerTwo)
	payload := codec.SigningPayload(keys.ProgramID, gameKeypair.Public(), data)

	request := setupGameRequest{
		GamePubkey:      gameKeypair.Public().String(),
		PlayerOne:       playerOne.Public().String(),
		PlayerTwo:       playerTwo.String(),
		GameSignature:   base64.StdEncoding.EncodeToString(gameKeypair.Sign(payload)),
		PlayerSignature: base64.StdEncoding.EncodeToString(playerOne.Sign(payload)),
	}

	var game entity.Game
	if err := that.do(ctx, http.MethodPost, "/v1/games", request, &game); err != nil {
		return nil, err
	}

	return &game, nil
}

// Play signs a play instruction for one tile and submits it.
func (that *Client) Play(ctx context.Context, game keys.PublicKey, player *keys.Keypair, row, column uint8) (*entity.Game, error) {
	tile := entity.Tile{Row: row, Column: column}
	payload := codec.SigningPayload(keys.ProgramID, game, codec.EncodePlay(tile))

	request := playRequest{
		Player:    player.Public().String(),
		Row:       row,
		Column:    column,
		Signature: base64.StdEncoding.EncodeToString(player.Sign(payload)),
	}

	var state entity.Game
	if err := that.do(ctx, http.MethodPost, "/v1/games/"+game.String()+"/moves", request, &state); err != nil {
		return nil, err
	}

	return &state, nil
}

// GetGame fetches the current state of one game account.
func (that *Client) GetGame(ctx context.Context, game keys.PublicKey) (*entity.Game, error) {
	var state entity.Game
	if err := that.do(ctx, http.MethodGet, "/v1/games/"+game.String(), nil, &state); err != nil {
		return nil, err
	}

	return &state, nil
}

// GetMoves fetches the accepted-move log of one game.
func (that *Client) GetMoves(ctx context.Context, game keys.PublicKey) ([]entity.Move, error) {
	var response struct {
		Items []entity.Move `json:"items"`
	}
	if err := that.do(ctx, http.MethodGet, "/v1/games/"+game.String()+"/moves", nil, &response); err != nil {
		return nil, err
	}

	return response.Items, nil
}

// Challenge asks for a login nonce for the wallet.
func (that *Client) Challenge(ctx context.Context, wallet keys.PublicKey) (string, error) {
	var response struct {
		Nonce string `json:"nonce"`
	}
	if err := that.do(ctx, http.MethodPost, "/v1/auth/challenge", challengeRequest{Wallet: wallet.String()}, &response); err != nil {
		return "", err
	}

	return response.Nonce, nil
}

// Login signs the wallet's current nonce and keeps the returned token
// for authorized calls.
func (that *Client) Login(ctx context.Context, wallet *keys.Keypair) error {
	nonce, err := that.Challenge(ctx, wallet.Public())
	if err != nil {
		return err
	}

	request := sessionRequest{
		Wallet:    wallet.Public().String(),
		Signature: base64.StdEncoding.EncodeToString(wallet.Sign([]byte(nonce))),
	}

	var response struct {
		Token string `json:"token"`
	}
	if err = that.do(ctx, http.MethodPost, "/v1/auth/session", request, &response); err != nil {
		return err
	}

	that.token = response.Token

	return nil
}

// Token returns the bearer token held after a successful Login.
func (that *Client) Token() string {
	return that.token
}

// BotKey returns the resident bot's public key, for use as player two.
func (that *Client) BotKey(ctx context.Context) (keys.PublicKey, error) {
	var response struct {
		Pubkey string `json:"pubkey"`
	}
	if err := that.do(ctx, http.MethodGet, "/v1/bot", nil, &response); err != nil {
		return keys.PublicKey{}, err
	}

	pubkey, err := keys.ParsePublicKey(response.Pubkey)
	if err != nil {
		return keys.PublicKey{}, fmt.Errorf("failed to parse bot key: %w", err)
	}

	return pubkey, nil
}

// WalletGames lists every game the logged-in wallet took part in.
func (that *Client) WalletGames(ctx context.Context) ([]GameSummary, error) {
	var response struct {
		Items []GameSummary `json:"items"`
	}
	if err := that.do(ctx, http.MethodGet, "/v1/wallet/games", nil, &response); err != nil {
		return nil, err
	}

	return response.Items, nil
}

// Health reports whether the API answers at all.
func (that *Client) Health(ctx context.Context) error {
	return that.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (that *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}

		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, that.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if that.token != "" {
		req.Header.Set("Authorization", "Bearer "+that.token)
	}

	resp, err := that.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var failure struct {
			Error string `json:"error"`
		}
		if err = json.Unmarshal(raw, &failure); err != nil || failure.Error == "" {
			failure.Error = strings.TrimSpace(string(raw))
		}

		return &APIError{Status: resp.StatusCode, Message: failure.Error}
	}

	if out == nil {
		return nil
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}
