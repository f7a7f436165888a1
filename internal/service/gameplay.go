package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/rocketscienceinc/tictactoe-chain/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-chain/internal/codec"
	"github.com/rocketscienceinc/tictactoe-chain/internal/entity"
	"github.com/rocketscienceinc/tictactoe-chain/internal/events"
	"github.com/rocketscienceinc/tictactoe-chain/internal/keys"
	"github.com/rocketscienceinc/tictactoe-chain/internal/program"
	"github.com/rocketscienceinc/tictactoe-chain/internal/repository"
)

// SetupGameParams carries one setup_game call: the instruction fields
// plus the ed25519 signatures backing both required signers.
type SetupGameParams struct {
	GamePubkey      string
	PlayerOne       string
	PlayerTwo       string
	GameSignature   []byte
	PlayerSignature []byte
}

// PlayParams carries one play call signed by the moving player.
type PlayParams struct {
	GamePubkey string
	Player     string
	Tile       entity.Tile
	Signature  []byte
}

// GameSummary is the wallet-facing digest of one game.
type GameSummary struct {
	Pubkey string `json:"pubkey"`
	State  string `json:"state"`
	Winner string `json:"winner,omitempty"`
	Turn   uint8  `json:"turn"`
}

type GamePlayService interface {
	SetupGame(ctx context.Context, params SetupGameParams) (*entity.Game, error)
	Play(ctx context.Context, params PlayParams) (*entity.Game, error)

	GetGame(ctx context.Context, pubkey string) (*entity.Game, error)
	GetMoves(ctx context.Context, pubkey string) ([]entity.Move, error)
	WalletGames(ctx context.Context, wallet string) ([]GameSummary, error)
}

type accountRepo interface {
	GetAccount(ctx context.Context, pubkey string) ([]byte, error)
	AddToWalletIndex(ctx context.Context, wallet, game string) error
	GamesByWallet(ctx context.Context, wallet string) ([]string, error)
	AppendMove(ctx context.Context, game string, move entity.Move) error
	Moves(ctx context.Context, game string) ([]entity.Move, error)
	DeleteMoves(ctx context.Context, game string) error
}

type archiveRepo interface {
	ArchiveGame(ctx context.Context, game *entity.Game, moves []entity.Move) error
	GetArchivedGame(ctx context.Context, pubkey string) (*entity.Game, error)
	ArchivedMoves(ctx context.Context, pubkey string) ([]entity.Move, error)
	ListByPlayer(ctx context.Context, player string) ([]repository.ArchivedGame, error)
}

type instructionProcessor interface {
	Process(ctx context.Context, ins program.Instruction) (*program.Result, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type gamePlayService struct {
	logger *slog.Logger

	processor instructionProcessor
	accounts  accountRepo
	archive   archiveRepo
	publisher eventPublisher
	bot       BotService
}

func NewGamePlayService(
	logger *slog.Logger,
	processor instructionProcessor,
	accounts accountRepo,
	archive archiveRepo,
	publisher eventPublisher,
	bot BotService,
) GamePlayService {
	return &gamePlayService{
		logger:    logger.With("component", "gameplay"),
		processor: processor,
		accounts:  accounts,
		archive:   archive,
		publisher: publisher,
		bot:       bot,
	}
}

// SetupGame - verifies both signatures, runs the setup_game
// instruction and indexes the game for both wallets.
func (that *gamePlayService) SetupGame(ctx context.Context, params SetupGameParams) (*entity.Game, error) {
	gameKey, err := keys.ParsePublicKey(params.GamePubkey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse game pubkey: %w", err)
	}

	playerOne, err := keys.ParsePublicKey(params.PlayerOne)
	if err != nil {
		return nil, fmt.Errorf("failed to parse player one: %w", err)
	}

	playerTwo, err := keys.ParsePublicKey(params.PlayerTwo)
	if err != nil {
		return nil, fmt.Errorf("failed to parse player two: %w", err)
	}

	data := codec.EncodeSetupGame(playerTwo)
	payload := codec.SigningPayload(keys.ProgramID, gameKey, data)

	if !keys.Verify(gameKey, payload, params.GameSignature) {
		return nil, fmt.Errorf("%w: game account", apperror.ErrInvalidSignature)
	}
	if !keys.Verify(playerOne, payload, params.PlayerSignature) {
		return nil, fmt.Errorf("%w: player one", apperror.ErrInvalidSignature)
	}

	result, err := that.processor.Process(ctx, program.Instruction{
		ProgramID: keys.ProgramID,
		Accounts: []program.AccountMeta{
			{Pubkey: gameKey, IsSigner: true, IsWritable: true},
			{Pubkey: playerOne, IsSigner: true, IsWritable: true},
		},
		Data: data,
	})
	if err != nil {
		return nil, err
	}

	for _, wallet := range result.Game.Players {
		if err = that.accounts.AddToWalletIndex(ctx, wallet, result.Game.Pubkey); err != nil {
			return nil, fmt.Errorf("failed to index game: %w", err)
		}
	}

	that.publish(ctx, result.Events)

	return result.Game, nil
}

// Play - verifies the player's signature, runs the play instruction,
// appends the move log, archives finished games and lets the resident
// bot answer when it holds the next turn.
func (that *gamePlayService) Play(ctx context.Context, params PlayParams) (*entity.Game, error) {
	gameKey, err := keys.ParsePublicKey(params.GamePubkey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse game pubkey: %w", err)
	}

	player, err := keys.ParsePublicKey(params.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to parse player: %w", err)
	}

	data := codec.EncodePlay(params.Tile)
	payload := codec.SigningPayload(keys.ProgramID, gameKey, data)

	if !keys.Verify(player, payload, params.Signature) {
		return nil, fmt.Errorf("%w: player", apperror.ErrInvalidSignature)
	}

	result, err := that.processor.Process(ctx, program.Instruction{
		ProgramID: keys.ProgramID,
		Accounts: []program.AccountMeta{
			{Pubkey: gameKey, IsSigner: false, IsWritable: true},
			{Pubkey: player, IsSigner: true, IsWritable: false},
		},
		Data: data,
	})
	if err != nil {
		return nil, err
	}

	if err = that.accounts.AppendMove(ctx, result.Game.Pubkey, *result.Move); err != nil {
		return nil, fmt.Errorf("failed to append move: %w", err)
	}

	that.publish(ctx, result.Events)

	if result.Game.IsOver() {
		if err = that.archiveGame(ctx, result.Game); err != nil {
			return nil, err
		}

		return result.Game, nil
	}

	return that.maybeBotReply(ctx, result.Game), nil
}

// maybeBotReply - plays the bot's answer through the same signed
// instruction path as any remote player. A failed reply keeps the
// human's accepted move intact.
func (that *gamePlayService) maybeBotReply(ctx context.Context, game *entity.Game) *entity.Game {
	if that.bot == nil {
		return game
	}

	botParams, due, err := that.bot.Reply(game)
	if err != nil {
		that.logger.Error("bot failed to pick a reply", "game", game.Pubkey, "error", err)
		return game
	}

	if !due {
		return game
	}

	updated, err := that.Play(ctx, botParams)
	if err != nil {
		that.logger.Error("bot failed to play", "game", game.Pubkey, "error", err)
		return game
	}

	return updated
}

func (that *gamePlayService) archiveGame(ctx context.Context, game *entity.Game) error {
	moves, err := that.accounts.Moves(ctx, game.Pubkey)
	if err != nil {
		return fmt.Errorf("failed to read move log: %w", err)
	}

	if err = that.archive.ArchiveGame(ctx, game, moves); err != nil {
		return fmt.Errorf("failed to archive game: %w", err)
	}

	if err = that.accounts.DeleteMoves(ctx, game.Pubkey); err != nil {
		return fmt.Errorf("failed to drop move log: %w", err)
	}

	return nil
}

func (that *gamePlayService) publish(ctx context.Context, emitted []events.Event) {
	for _, event := range emitted {
		if err := that.publisher.Publish(ctx, event); err != nil {
			that.logger.Error("failed to publish event", "type", event.Type, "game", event.Game, "error", err)
		}
	}
}

// GetGame - decodes the live account, falling back to the archive for
// finished games that left the live store.
func (that *gamePlayService) GetGame(ctx context.Context, pubkey string) (*entity.Game, error) {
	data, err := that.accounts.GetAccount(ctx, pubkey)
	if err == nil {
		game, decodeErr := codec.DecodeAccount(pubkey, data)
		if decodeErr != nil {
			return nil, fmt.Errorf("failed to decode game account: %w", decodeErr)
		}

		return game, nil
	}

	game, archiveErr := that.archive.GetArchivedGame(ctx, pubkey)
	if archiveErr != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// GetMoves - the game's move log, from the archive once it finished.
func (that *gamePlayService) GetMoves(ctx context.Context, pubkey string) ([]entity.Move, error) {
	moves, err := that.accounts.Moves(ctx, pubkey)
	if err != nil {
		return nil, err
	}

	if len(moves) > 0 {
		return moves, nil
	}

	archived, err := that.archive.ArchivedMoves(ctx, pubkey)
	if err != nil {
		return nil, err
	}

	return archived, nil
}

// WalletGames - every game the wallet took part in, live games from
// the account store and finished ones from the archive.
func (that *gamePlayService) WalletGames(ctx context.Context, wallet string) ([]GameSummary, error) {
	live, err := that.accounts.GamesByWallet(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to list live games: %w", err)
	}

	seen := make(map[string]GameSummary, len(live))

	for _, pubkey := range live {
		data, err := that.accounts.GetAccount(ctx, pubkey)
		if err != nil {
			// evicted from the live store; the archive pass below covers it
			continue
		}

		game, err := codec.DecodeAccount(pubkey, data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode game account: %w", err)
		}

		seen[pubkey] = GameSummary{Pubkey: pubkey, State: game.State, Winner: game.Winner, Turn: game.Turn}
	}

	archived, err := that.archive.ListByPlayer(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived games: %w", err)
	}

	for _, row := range archived {
		if _, ok := seen[row.Pubkey]; ok {
			continue
		}

		seen[row.Pubkey] = GameSummary{Pubkey: row.Pubkey, State: row.State, Winner: row.Winner, Turn: row.Turns}
	}

	summaries := make([]GameSummary, 0, len(seen))
	for _, summary := range seen {
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Pubkey < summaries[j].Pubkey })

	return summaries, nil
}
