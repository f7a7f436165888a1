package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-chain/internal/entity"
)

var ErrGameNotArchived = errors.New("game not archived")

// ArchivedGame is a finished game's summary row.
type ArchivedGame struct {
	Pubkey     string    `json:"pubkey"`
	PlayerOne  string    `json:"player_one"`
	PlayerTwo  string    `json:"player_two"`
	State      string    `json:"state"`
	Winner     string    `json:"winner,omitempty"`
	Turns      uint8     `json:"turns"`
	FinishedAt time.Time `json:"finished_at"`
}

// ArchiveRepository is the durable record of finished games.
type ArchiveRepository interface {
	ArchiveGame(ctx context.Context, game *entity.Game, moves []entity.Move) error
	GetArchivedGame(ctx context.Context, pubkey string) (*entity.Game, error)
	ArchivedMoves(ctx context.Context, pubkey string) ([]entity.Move, error)
	ListByPlayer(ctx context.Context, player string) ([]ArchivedGame, error)
}

type dbArchive struct {
	conn *sql.DB
}

func NewArchiveRepository(conn *sql.DB) ArchiveRepository {
	return &dbArchive{
		conn: conn,
	}
}

func (that *dbArchive) ArchiveGame(ctx context.Context, game *entity.Game, moves []entity.Move) error {
	tx, err := that.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin archive transaction: %w", err)
	}
	defer tx.Rollback() //nolint: errcheck // rollback after commit is a no-op

	_, err = tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO games (pubkey, player_one, player_two, state, winner, turns, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		game.Pubkey, game.Players[0], game.Players[1], game.State, game.Winner, game.Turn, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to archive game: %w", err)
	}

	for _, move := range moves {
		_, err = tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO moves (game_pubkey, turn, player, tile_row, tile_column)
			 VALUES (?, ?, ?, ?, ?)`,
			game.Pubkey, move.Turn, move.Player, move.Tile.Row, move.Tile.Column,
		)
		if err != nil {
			return fmt.Errorf("failed to archive move %d: %w", move.Turn, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit archive: %w", err)
	}

	return nil
}

// GetArchivedGame - rebuilds a finished game by replaying its move log.
func (that *dbArchive) GetArchivedGame(ctx context.Context, pubkey string) (*entity.Game, error) {
	row := that.conn.QueryRowContext(ctx,
		`SELECT player_one, player_two FROM games WHERE pubkey = ?`, pubkey)

	var playerOne, playerTwo string
	err := row.Scan(&playerOne, &playerTwo)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGameNotArchived
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read archived game: %w", err)
	}

	rows, err := that.conn.QueryContext(ctx,
		`SELECT turn, player, tile_row, tile_column FROM moves WHERE game_pubkey = ? ORDER BY turn`, pubkey)
	if err != nil {
		return nil, fmt.Errorf("failed to read archived moves: %w", err)
	}
	defer rows.Close()

	game := entity.NewGame(pubkey)
	if err = game.Start([2]string{playerOne, playerTwo}); err != nil {
		return nil, fmt.Errorf("failed to replay game: %w", err)
	}

	for rows.Next() {
		var move entity.Move
		if err = rows.Scan(&move.Turn, &move.Player, &move.Tile.Row, &move.Tile.Column); err != nil {
			return nil, fmt.Errorf("failed to scan archived move: %w", err)
		}

		if err = game.Play(move.Tile); err != nil {
			return nil, fmt.Errorf("failed to replay move %d: %w", move.Turn, err)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate archived moves: %w", err)
	}

	return game, nil
}

func (that *dbArchive) ArchivedMoves(ctx context.Context, pubkey string) ([]entity.Move, error) {
	rows, err := that.conn.QueryContext(ctx,
		`SELECT turn, player, tile_row, tile_column FROM moves WHERE game_pubkey = ? ORDER BY turn`, pubkey)
	if err != nil {
		return nil, fmt.Errorf("failed to read archived moves: %w", err)
	}
	defer rows.Close()

	var moves []entity.Move
	for rows.Next() {
		var move entity.Move
		if err = rows.Scan(&move.Turn, &move.Player, &move.Tile.Row, &move.Tile.Column); err != nil {
			return nil, fmt.Errorf("failed to scan archived move: %w", err)
		}
		moves = append(moves, move)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate archived moves: %w", err)
	}

	return moves, nil
}

func (that *dbArchive) ListByPlayer(ctx context.Context, player string) ([]ArchivedGame, error) {
	rows, err := that.conn.QueryContext(ctx,
		`SELECT pubkey, player_one, player_two, state, winner, turns, finished_at
		 FROM games WHERE player_one = ? OR player_two = ?
		 ORDER BY finished_at DESC`, player, player)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived games: %w", err)
	}
	defer rows.Close()

	var games []ArchivedGame
	for rows.Next() {
		var game ArchivedGame
		if err = rows.Scan(&game.Pubkey, &game.PlayerOne, &game.PlayerTwo,
			&game.State, &game.Winner, &game.Turns, &game.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan archived game: %w", err)
		}
		games = append(games, game)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate archived games: %w", err)
	}

	return games, nil
}
