package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-chain/internal/entity"
)

var ErrAccountNotFound = errors.New("account not found")

// AccountRepository is the live store of game accounts. Values are the
// codec's account images; the decoded view is always derived from them.
type AccountRepository interface {
	SaveAccount(ctx context.Context, pubkey string, data []byte) error
	GetAccount(ctx context.Context, pubkey string) ([]byte, error)
	DeleteAccount(ctx context.Context, pubkey string) error
	AccountExists(ctx context.Context, pubkey string) (bool, error)

	AddToWalletIndex(ctx context.Context, wallet, game string) error
	GamesByWallet(ctx context.Context, wallet string) ([]string, error)

	AppendMove(ctx context.Context, game string, move entity.Move) error
	Moves(ctx context.Context, game string) ([]entity.Move, error)
	DeleteMoves(ctx context.Context, game string) error
}

type dbAccount struct {
	client *redis.Client
}

func NewAccountRepository(client *redis.Client) AccountRepository {
	return &dbAccount{
		client: client,
	}
}

func accountKey(pubkey string) string { return "account:" + pubkey }
func walletKey(wallet string) string  { return "wallet:" + wallet }
func movesKey(game string) string     { return "moves:" + game }

func (that *dbAccount) SaveAccount(ctx context.Context, pubkey string, data []byte) error {
	if err := that.client.Set(ctx, accountKey(pubkey), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set account: %w", err)
	}

	return nil
}

func (that *dbAccount) GetAccount(ctx context.Context, pubkey string) ([]byte, error) {
	data, err := that.client.Get(ctx, accountKey(pubkey)).Bytes()

	if errors.Is(err, redis.Nil) {
		return nil, ErrAccountNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return data, nil
}

func (that *dbAccount) DeleteAccount(ctx context.Context, pubkey string) error {
	if err := that.client.Del(ctx, accountKey(pubkey)).Err(); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}

func (that *dbAccount) AccountExists(ctx context.Context, pubkey string) (bool, error) {
	count, err := that.client.Exists(ctx, accountKey(pubkey)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check account: %w", err)
	}

	return count > 0, nil
}

func (that *dbAccount) AddToWalletIndex(ctx context.Context, wallet, game string) error {
	if err := that.client.SAdd(ctx, walletKey(wallet), game).Err(); err != nil {
		return fmt.Errorf("failed to index game for wallet: %w", err)
	}

	return nil
}

func (that *dbAccount) GamesByWallet(ctx context.Context, wallet string) ([]string, error) {
	games, err := that.client.SMembers(ctx, walletKey(wallet)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list games for wallet: %w", err)
	}

	return games, nil
}

func (that *dbAccount) AppendMove(ctx context.Context, game string, move entity.Move) error {
	moveJSON, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	if err = that.client.RPush(ctx, movesKey(game), moveJSON).Err(); err != nil {
		return fmt.Errorf("failed to append move: %w", err)
	}

	return nil
}

func (that *dbAccount) Moves(ctx context.Context, game string) ([]entity.Move, error) {
	entries, err := that.client.LRange(ctx, movesKey(game), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read move log: %w", err)
	}

	moves := make([]entity.Move, 0, len(entries))
	for _, entry := range entries {
		var move entity.Move
		if err = json.Unmarshal([]byte(entry), &move); err != nil {
			return nil, fmt.Errorf("failed to unmarshal move: %w", err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

func (that *dbAccount) DeleteMoves(ctx context.Context, game string) error {
	if err := that.client.Del(ctx, movesKey(game)).Err(); err != nil {
		return fmt.Errorf("failed to delete move log: %w", err)
	}

	return nil
}
