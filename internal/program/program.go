package program

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-chain/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-chain/internal/codec"
	"github.com/rocketscienceinc/tictactoe-chain/internal/entity"
	"github.com/rocketscienceinc/tictactoe-chain/internal/events"
	"github.com/rocketscienceinc/tictactoe-chain/internal/keys"
)

var (
	ErrUnknownProgram = errors.New("instruction targets a different program")
	ErrWrongAccounts  = errors.New("wrong accounts for instruction")
	ErrMissingSigner  = errors.New("required signer is missing")
	ErrNotWritable    = errors.New("account is not writable")
)

// AccountMeta flags how an instruction touches one account. The
// processor trusts IsSigner; callers set it only after verifying the
// backing signature.
type AccountMeta struct {
	Pubkey     keys.PublicKey
	IsSigner   bool
	IsWritable bool
}

// Instruction is a single call into the program.
type Instruction struct {
	ProgramID keys.PublicKey
	Accounts  []AccountMeta
	Data      []byte
}

// Result is what one accepted instruction produced: the game's new
// state, the events to publish, and for play the recorded move.
type Result struct {
	Game   *entity.Game
	Events []events.Event
	Move   *entity.Move
}

type accountStore interface {
	SaveAccount(ctx context.Context, pubkey string, data []byte) error
	GetAccount(ctx context.Context, pubkey string) ([]byte, error)
	AccountExists(ctx context.Context, pubkey string) (bool, error)
}

// Processor executes instructions against the account store, the way
// the deployed program executes them against chain accounts.
type Processor struct {
	logger   *slog.Logger
	accounts accountStore
}

func NewProcessor(logger *slog.Logger, accounts accountStore) *Processor {
	return &Processor{
		logger:   logger.With("component", "program"),
		accounts: accounts,
	}
}

// Process - dispatches the instruction by its discriminator.
func (that *Processor) Process(ctx context.Context, ins Instruction) (*Result, error) {
	if ins.ProgramID != keys.ProgramID {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProgram, ins.ProgramID)
	}

	name, err := codec.InstructionName(ins.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve instruction: %w", err)
	}

	switch name {
	case codec.InstructionSetupGame:
		return that.setupGame(ctx, ins)
	case codec.InstructionPlay:
		return that.play(ctx, ins)
	default:
		return nil, fmt.Errorf("%w: %s", codec.ErrUnknownInstruction, name)
	}
}

// setupGame - accounts: [game (signer, writable), player one (signer)].
// The fresh game account co-signs its own creation.
func (that *Processor) setupGame(ctx context.Context, ins Instruction) (*Result, error) {
	log := that.logger.With("method", "setupGame")

	if len(ins.Accounts) != 2 {
		return nil, fmt.Errorf("%w: setup_game needs game and player one", ErrWrongAccounts)
	}

	gameMeta, playerMeta := ins.Accounts[0], ins.Accounts[1]

	if !gameMeta.IsSigner {
		return nil, fmt.Errorf("%w: game account", ErrMissingSigner)
	}
	if !playerMeta.IsSigner {
		return nil, fmt.Errorf("%w: player one", ErrMissingSigner)
	}
	if !gameMeta.IsWritable {
		return nil, fmt.Errorf("%w: game account", ErrNotWritable)
	}

	playerTwo, err := codec.DecodeSetupGame(ins.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode setup_game: %w", err)
	}

	gamePubkey := gameMeta.Pubkey.String()

	exists, err := that.accounts.AccountExists(ctx, gamePubkey)
	if err != nil {
		return nil, fmt.Errorf("failed to check game account: %w", err)
	}
	if exists {
		return nil, apperror.ErrGameAlreadyExists
	}

	game := entity.NewGame(gamePubkey)
	if err = game.Start([2]string{playerMeta.Pubkey.String(), playerTwo.String()}); err != nil {
		return nil, err
	}

	data, err := codec.EncodeAccount(game)
	if err != nil {
		return nil, fmt.Errorf("failed to encode game account: %w", err)
	}

	if err = that.accounts.SaveAccount(ctx, gamePubkey, data); err != nil {
		return nil, fmt.Errorf("failed to save game account: %w", err)
	}

	log.Info("game account initialized", "game", gamePubkey, "player_one", game.Players[0], "player_two", game.Players[1])

	return &Result{
		Game:   game,
		Events: []events.Event{events.GameCreated(gamePubkey, game.Players)},
	}, nil
}

// play - accounts: [game (writable), player (signer)].
func (that *Processor) play(ctx context.Context, ins Instruction) (*Result, error) {
	log := that.logger.With("method", "play")

	if len(ins.Accounts) != 2 {
		return nil, fmt.Errorf("%w: play needs game and player", ErrWrongAccounts)
	}

	gameMeta, playerMeta := ins.Accounts[0], ins.Accounts[1]

	if !playerMeta.IsSigner {
		return nil, fmt.Errorf("%w: player", ErrMissingSigner)
	}
	if !gameMeta.IsWritable {
		return nil, fmt.Errorf("%w: game account", ErrNotWritable)
	}

	tile, err := codec.DecodePlay(ins.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode play: %w", err)
	}

	gamePubkey := gameMeta.Pubkey.String()

	data, err := that.accounts.GetAccount(ctx, gamePubkey)
	if err != nil {
		return nil, fmt.Errorf("failed to load game account: %w", err)
	}

	game, err := codec.DecodeAccount(gamePubkey, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode game account: %w", err)
	}

	// the turn check comes before any board rule, matching the
	// deployed handler
	player := playerMeta.Pubkey.String()
	if game.CurrentPlayer() != player {
		return nil, apperror.ErrNotPlayersTurn
	}

	move := entity.Move{Turn: game.Turn, Player: player, Tile: tile}

	if err = game.Play(tile); err != nil {
		return nil, err
	}

	data, err = codec.EncodeAccount(game)
	if err != nil {
		return nil, fmt.Errorf("failed to encode game account: %w", err)
	}

	if err = that.accounts.SaveAccount(ctx, gamePubkey, data); err != nil {
		return nil, fmt.Errorf("failed to save game account: %w", err)
	}

	emitted := []events.Event{events.MovePlayed(gamePubkey, player, tile, move.Turn)}

	switch game.State {
	case entity.StateWon:
		emitted = append(emitted, events.GameWon(gamePubkey, game.Winner))
	case entity.StateTie:
		emitted = append(emitted, events.GameTie(gamePubkey))
	}

	log.Info("move accepted", "game", gamePubkey, "player", player, "turn", move.Turn, "state", game.State)

	return &Result{
		Game:   game,
		Events: emitted,
		Move:   &move,
	}, nil
}
