package keys

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"
)

// PublicKeySize is the length of an ed25519 public key in bytes.
const PublicKeySize = 32

// SeedSize is the length of an ed25519 private key seed in bytes.
const SeedSize = ed25519.SeedSize

var (
	ErrBadPublicKey       = errors.New("malformed public key")
	ErrBadPublicKeyLength = errors.New("public key must be 32 bytes")
	ErrBadSeedLength      = errors.New("keypair seed must be 32 bytes")
)

// ProgramID is the address the tic-tac-toe program is deployed under.
var ProgramID = MustParsePublicKey("BwAT2NVQuxS4wuvzSd4MjPUbxMZm4yv791C7E62yYJUp")

// PublicKey is a 32-byte ed25519 public key used as an account address.
type PublicKey [PublicKeySize]byte

// ParsePublicKey - decodes a base58-encoded public key.
func ParsePublicKey(encoded string) (PublicKey, error) {
	var key PublicKey

	raw, err := base58.Decode(encoded)
	if err != nil {
		return key, fmt.Errorf("%w: %v", ErrBadPublicKey, err)
	}

	if len(raw) != PublicKeySize {
		return key, fmt.Errorf("%w: got %d", ErrBadPublicKeyLength, len(raw))
	}

	copy(key[:], raw)

	return key, nil
}

// MustParsePublicKey - like ParsePublicKey but panics on malformed input.
// Intended for fixed, known-good addresses.
func MustParsePublicKey(encoded string) PublicKey {
	key, err := ParsePublicKey(encoded)
	if err != nil {
		panic(fmt.Errorf("bad public key literal %q: %w", encoded, err))
	}

	return key
}

// String - renders the key in base58, the form used in JSON bodies,
// storage keys and logs.
func (that PublicKey) String() string {
	return base58.Encode(that[:])
}

func (that PublicKey) Bytes() []byte {
	return that[:]
}

func (that PublicKey) IsZero() bool {
	return that == PublicKey{}
}

// IsOnCurve - reports whether the key bytes decode as an edwards25519
// point. Wallet and game addresses are on-curve; derived program
// addresses are not.
func (that PublicKey) IsOnCurve() bool {
	_, err := new(edwards25519.Point).SetBytes(that[:])
	return err == nil
}

// Keypair holds an ed25519 signing identity.
type Keypair struct {
	public  PublicKey
	private ed25519.PrivateKey
}

// Generate - creates a fresh random keypair.
func Generate() (*Keypair, error) {
	public, private, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate keypair: %w", err)
	}

	var key PublicKey
	copy(key[:], public)

	return &Keypair{public: key, private: private}, nil
}

// FromSeed - derives a deterministic keypair from a 32-byte seed.
func FromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: got %d", ErrBadSeedLength, len(seed))
	}

	private := ed25519.NewKeyFromSeed(seed)

	var key PublicKey
	copy(key[:], private.Public().(ed25519.PublicKey))

	return &Keypair{public: key, private: private}, nil
}

func (that *Keypair) Public() PublicKey {
	return that.public
}

// Sign - signs a message with the keypair's private key.
func (that *Keypair) Sign(message []byte) []byte {
	return ed25519.Sign(that.private, message)
}

// Verify - reports whether sig is a valid signature of message by pub.
func Verify(pub PublicKey, message, sig []byte) bool {
	if len(sig) != ed25519.SignatureSize {
		return false
	}

	return ed25519.Verify(ed25519.PublicKey(pub[:]), message, sig)
}
