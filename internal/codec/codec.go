package codec

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-chain/internal/entity"
	"github.com/rocketscienceinc/tictactoe-chain/internal/keys"
)

// Account data and instruction data follow the Borsh layout of the
// on-chain program, each prefixed with an 8-byte discriminator, so the
// bytes stored here are the bytes the chain would store.

// AccountSize is the fixed size of an encoded game account: the
// discriminator plus two player keys, the turn counter, nine optional
// cells and the tagged state with its widest variant.
const AccountSize = 8 + 2*32 + 1 + 9*2 + 1 + 32

// Instruction names as dispatched by discriminator.
const (
	InstructionSetupGame = "setup_game"
	InstructionPlay      = "play"
)

const (
	stateTagActive = 0
	stateTagTie    = 1
	stateTagWon    = 2

	signTagX = 0
	signTagO = 1
)

var (
	ErrBadDiscriminator   = errors.New("unexpected discriminator")
	ErrBadAccountSize     = errors.New("account data has wrong size")
	ErrShortBuffer        = errors.New("buffer too short")
	ErrTrailingBytes      = errors.New("trailing bytes after payload")
	ErrBadStateTag        = errors.New("unknown state tag")
	ErrBadSignTag         = errors.New("unknown sign tag")
	ErrBadCellTag         = errors.New("unknown cell tag")
	ErrUnknownInstruction = errors.New("unknown instruction discriminator")
)

var (
	gameDiscriminator  = Discriminator("account:Game")
	setupDiscriminator = Discriminator("global:" + InstructionSetupGame)
	playDiscriminator  = Discriminator("global:" + InstructionPlay)
)

// Discriminator - the 8-byte sha256 prefix namespacing account types
// ("account:<Name>") and instructions ("global:<name>").
func Discriminator(name string) [8]byte {
	sum := sha256.Sum256([]byte(name))

	var disc [8]byte
	copy(disc[:], sum[:8])

	return disc
}

// EncodeAccount - serializes a game into its fixed-size account image.
func EncodeAccount(game *entity.Game) ([]byte, error) {
	buf := make([]byte, 0, AccountSize)
	buf = append(buf, gameDiscriminator[:]...)

	for _, player := range game.Players {
		key, err := keys.ParsePublicKey(player)
		if err != nil {
			return nil, fmt.Errorf("failed to encode player %q: %w", player, err)
		}
		buf = append(buf, key.Bytes()...)
	}

	buf = append(buf, game.Turn)

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			switch game.Board[row][col] {
			case entity.EmptyCell:
				buf = append(buf, 0)
			case entity.SignX:
				buf = append(buf, 1, signTagX)
			case entity.SignO:
				buf = append(buf, 1, signTagO)
			default:
				return nil, fmt.Errorf("%w: %q", ErrBadSignTag, game.Board[row][col])
			}
		}
	}

	switch game.State {
	case entity.StateActive:
		buf = append(buf, stateTagActive)
	case entity.StateTie:
		buf = append(buf, stateTagTie)
	case entity.StateWon:
		winner, err := keys.ParsePublicKey(game.Winner)
		if err != nil {
			return nil, fmt.Errorf("failed to encode winner %q: %w", game.Winner, err)
		}
		buf = append(buf, stateTagWon)
		buf = append(buf, winner.Bytes()...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadStateTag, game.State)
	}

	// the account is allocated at full size; unused state bytes stay zero
	for len(buf) < AccountSize {
		buf = append(buf, 0)
	}

	return buf, nil
}

// DecodeAccount - deserializes an account image fetched for the given
// address back into a game.
func DecodeAccount(pubkey string, data []byte) (*entity.Game, error) {
	if len(data) != AccountSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrBadAccountSize, len(data), AccountSize)
	}

	rd := reader{buf: data}

	disc, err := rd.take(8)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(disc, gameDiscriminator[:]) {
		return nil, fmt.Errorf("%w: not a game account", ErrBadDiscriminator)
	}

	game := entity.NewGame(pubkey)

	for i := range game.Players {
		raw, err := rd.take(keys.PublicKeySize)
		if err != nil {
			return nil, err
		}

		var key keys.PublicKey
		copy(key[:], raw)
		game.Players[i] = key.String()
	}

	turn, err := rd.takeByte()
	if err != nil {
		return nil, err
	}
	game.Turn = turn

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			cell, err := decodeCell(&rd)
			if err != nil {
				return nil, fmt.Errorf("failed to decode cell (%d,%d): %w", row, col, err)
			}
			game.Board[row][col] = cell
		}
	}

	tag, err := rd.takeByte()
	if err != nil {
		return nil, err
	}

	switch tag {
	case stateTagActive:
		game.State = entity.StateActive
	case stateTagTie:
		game.State = entity.StateTie
	case stateTagWon:
		raw, err := rd.take(keys.PublicKeySize)
		if err != nil {
			return nil, err
		}

		var winner keys.PublicKey
		copy(winner[:], raw)
		game.State = entity.StateWon
		game.Winner = winner.String()
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadStateTag, tag)
	}

	return game, nil
}

func decodeCell(rd *reader) (string, error) {
	tag, err := rd.takeByte()
	if err != nil {
		return "", err
	}

	switch tag {
	case 0:
		return entity.EmptyCell, nil
	case 1:
		sign, err := rd.takeByte()
		if err != nil {
			return "", err
		}

		switch sign {
		case signTagX:
			return entity.SignX, nil
		case signTagO:
			return entity.SignO, nil
		default:
			return "", fmt.Errorf("%w: %d", ErrBadSignTag, sign)
		}
	default:
		return "", fmt.Errorf("%w: %d", ErrBadCellTag, tag)
	}
}

// EncodeSetupGame - instruction data for setup_game with the second
// player's key as its only argument.
func EncodeSetupGame(playerTwo keys.PublicKey) []byte {
	buf := make([]byte, 0, 8+keys.PublicKeySize)
	buf = append(buf, setupDiscriminator[:]...)
	buf = append(buf, playerTwo.Bytes()...)

	return buf
}

// DecodeSetupGame - parses setup_game instruction data.
func DecodeSetupGame(data []byte) (keys.PublicKey, error) {
	var playerTwo keys.PublicKey

	rd := reader{buf: data}

	disc, err := rd.take(8)
	if err != nil {
		return playerTwo, err
	}
	if !bytes.Equal(disc, setupDiscriminator[:]) {
		return playerTwo, fmt.Errorf("%w: not setup_game", ErrBadDiscriminator)
	}

	raw, err := rd.take(keys.PublicKeySize)
	if err != nil {
		return playerTwo, err
	}
	copy(playerTwo[:], raw)

	if err = rd.end(); err != nil {
		return playerTwo, err
	}

	return playerTwo, nil
}

// EncodePlay - instruction data for play with the tile as its argument.
func EncodePlay(tile entity.Tile) []byte {
	buf := make([]byte, 0, 8+2)
	buf = append(buf, playDiscriminator[:]...)
	buf = append(buf, tile.Row, tile.Column)

	return buf
}

// DecodePlay - parses play instruction data.
func DecodePlay(data []byte) (entity.Tile, error) {
	var tile entity.Tile

	rd := reader{buf: data}

	disc, err := rd.take(8)
	if err != nil {
		return tile, err
	}
	if !bytes.Equal(disc, playDiscriminator[:]) {
		return tile, fmt.Errorf("%w: not play", ErrBadDiscriminator)
	}

	row, err := rd.takeByte()
	if err != nil {
		return tile, err
	}

	col, err := rd.takeByte()
	if err != nil {
		return tile, err
	}

	if err = rd.end(); err != nil {
		return tile, err
	}

	tile.Row = row
	tile.Column = col

	return tile, nil
}

// InstructionName - resolves instruction data to its name by
// discriminator.
func InstructionName(data []byte) (string, error) {
	if len(data) < 8 {
		return "", fmt.Errorf("%w: need 8 discriminator bytes", ErrShortBuffer)
	}

	switch {
	case bytes.Equal(data[:8], setupDiscriminator[:]):
		return InstructionSetupGame, nil
	case bytes.Equal(data[:8], playDiscriminator[:]):
		return InstructionPlay, nil
	default:
		return "", ErrUnknownInstruction
	}
}

// SigningPayload - the byte string instruction signers sign:
// program id, then the game account address, then the instruction data.
func SigningPayload(programID, game keys.PublicKey, data []byte) []byte {
	payload := make([]byte, 0, 2*keys.PublicKeySize+len(data))
	payload = append(payload, programID.Bytes()...)
	payload = append(payload, game.Bytes()...)
	payload = append(payload, data...)

	return payload
}

// reader is a bounds-checked cursor over a byte buffer.
type reader struct {
	buf []byte
	off int
}

func (that *reader) take(n int) ([]byte, error) {
	if that.off+n > len(that.buf) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d", ErrShortBuffer, n, that.off)
	}

	chunk := that.buf[that.off : that.off+n]
	that.off += n

	return chunk, nil
}

func (that *reader) takeByte() (byte, error) {
	chunk, err := that.take(1)
	if err != nil {
		return 0, err
	}

	return chunk[0], nil
}

func (that *reader) end() error {
	if that.off != len(that.buf) {
		return fmt.Errorf("%w: %d left", ErrTrailingBytes, len(that.buf)-that.off)
	}

	return nil
}
