package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-chain/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-chain/internal/keys"
)

var ErrInvalidToken = errors.New("invalid token")

// sessionTTL bounds how long an issued session token stays valid.
const sessionTTL = time.Hour * 24

// AuthService issues wallet sessions: a wallet asks for a nonce, signs
// it and trades the signature for a bearer token.
type AuthService interface {
	Challenge(ctx context.Context, wallet string) (string, error)
	Login(ctx context.Context, wallet string, signature []byte) (string, error)
	ParseToken(token string) (string, error)
}

type challengeRepo interface {
	CreateChallenge(ctx context.Context, wallet, nonce string) error
	TakeChallenge(ctx context.Context, wallet string) (string, error)
}

type authService struct {
	secretKey  string
	challenges challengeRepo
}

func NewAuthService(secretKey string, challenges challengeRepo) AuthService {
	return &authService{
		secretKey:  secretKey,
		challenges: challenges,
	}
}

// Challenge - mints a fresh nonce for the wallet to sign.
func (that *authService) Challenge(ctx context.Context, wallet string) (string, error) {
	if _, err := keys.ParsePublicKey(wallet); err != nil {
		return "", fmt.Errorf("failed to parse wallet: %w", err)
	}

	nonce := uuid.NewString()
	if err := that.challenges.CreateChallenge(ctx, wallet, nonce); err != nil {
		return "", fmt.Errorf("failed to create challenge: %w", err)
	}

	return nonce, nil
}

// Login - redeems the wallet's pending nonce against an ed25519
// signature over it and issues a session token.
func (that *authService) Login(ctx context.Context, wallet string, signature []byte) (string, error) {
	pubkey, err := keys.ParsePublicKey(wallet)
	if err != nil {
		return "", fmt.Errorf("failed to parse wallet: %w", err)
	}

	nonce, err := that.challenges.TakeChallenge(ctx, wallet)
	if err != nil {
		return "", fmt.Errorf("failed to take challenge: %w", err)
	}

	if !keys.Verify(pubkey, []byte(nonce), signature) {
		return "", fmt.Errorf("%w: challenge", apperror.ErrInvalidSignature)
	}

	claims := jwt.MapClaims{}
	claims["sub"] = wallet
	claims["exp"] = time.Now().Add(sessionTTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(that.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ParseToken - validates a session token and returns its wallet.
func (that *authService) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(that.secretKey), nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	wallet, ok := claims["sub"].(string)
	if !ok {
		return "", fmt.Errorf("%w: no subject", ErrInvalidToken)
	}

	return wallet, nil
}
