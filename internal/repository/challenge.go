package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrChallengeNotFound = errors.New("challenge not found")

// challengeTTL bounds how long a login nonce stays redeemable.
const challengeTTL = 5 * time.Minute

// ChallengeRepository stores one-shot login nonces per wallet.
type ChallengeRepository interface {
	CreateChallenge(ctx context.Context, wallet, nonce string) error
	TakeChallenge(ctx context.Context, wallet string) (string, error)
}

type dbChallenge struct {
	client *redis.Client
}

func NewChallengeRepository(client *redis.Client) ChallengeRepository {
	return &dbChallenge{
		client: client,
	}
}

func challengeKey(wallet string) string { return "challenge:" + wallet }

func (that *dbChallenge) CreateChallenge(ctx context.Context, wallet, nonce string) error {
	if err := that.client.Set(ctx, challengeKey(wallet), nonce, challengeTTL).Err(); err != nil {
		return fmt.Errorf("failed to set challenge: %w", err)
	}

	return nil
}

// TakeChallenge - returns the wallet's nonce and deletes it, so a nonce
// can be redeemed at most once.
func (that *dbChallenge) TakeChallenge(ctx context.Context, wallet string) (string, error) {
	nonce, err := that.client.GetDel(ctx, challengeKey(wallet)).Result()

	if errors.Is(err, redis.Nil) {
		return "", ErrChallengeNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to take challenge: %w", err)
	}

	return nonce, nil
}
