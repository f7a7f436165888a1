package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-chain/internal/apperror"
)

const (
	StateActive = "active"
	StateTie    = "tie"
	StateWon    = "won"

	SignX = "X"
	SignO = "O"

	EmptyCell = ""
)

// BoardSize is the side length of the board.
const BoardSize = 3

// WinningTrios lists every row, column and diagonal as board coordinates.
var WinningTrios = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Tile addresses a single board cell.
type Tile struct {
	Row    uint8 `json:"row"`
	Column uint8 `json:"column"`
}

// Game is the state of one game account. Players[0] set the game up and
// plays X; Players[1] plays O. Turn is 1-based and zero only before setup.
type Game struct {
	Pubkey  string                       `json:"pubkey"`
	Players [2]string                    `json:"players"`
	Turn    uint8                        `json:"turn"`
	Board   [BoardSize][BoardSize]string `json:"board"`
	State   string                       `json:"state"`
	Winner  string                       `json:"winner,omitempty"`
}

// NewGame - returns an account shell for the given address. It is not
// playable until Start assigns the players.
func NewGame(pubkey string) *Game {
	return &Game{Pubkey: pubkey}
}

// Start - initializes a fresh game: both players recorded, an empty
// board, and the move counter at one.
func (that *Game) Start(players [2]string) error {
	if that.Turn != 0 {
		return apperror.ErrGameAlreadyStarted
	}

	that.Players = players
	that.Turn = 1
	that.Board = [BoardSize][BoardSize]string{}
	that.State = StateActive
	that.Winner = ""

	return nil
}

func (that *Game) IsActive() bool {
	return that.State == StateActive
}

func (that *Game) IsOver() bool {
	return that.State == StateTie || that.State == StateWon
}

// CurrentPlayerIndex - index into Players of whoever moves next.
// X moves on odd turns, O on even ones.
func (that *Game) CurrentPlayerIndex() int {
	return int((that.Turn - 1) % 2)
}

func (that *Game) CurrentPlayer() string {
	return that.Players[that.CurrentPlayerIndex()]
}

func (that *Game) currentSign() string {
	if that.CurrentPlayerIndex() == 0 {
		return SignX
	}

	return SignO
}

// Play - applies the current player's move to the given tile and
// resolves the board. The move counter advances only while the game
// stays active, so a finished game's Turn still names the final move.
func (that *Game) Play(tile Tile) error {
	if !that.IsActive() {
		return apperror.ErrGameAlreadyOver
	}

	if tile.Row >= BoardSize || tile.Column >= BoardSize {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrTileOutOfBounds, tile.Row, tile.Column)
	}

	if that.Board[tile.Row][tile.Column] != EmptyCell {
		return apperror.ErrTileAlreadySet
	}

	that.Board[tile.Row][tile.Column] = that.currentSign()
	that.updateState()

	if that.IsActive() {
		that.Turn++
	}

	return nil
}

func (that *Game) updateState() {
	for _, trio := range WinningTrios {
		a := that.Board[trio[0][0]][trio[0][1]]
		b := that.Board[trio[1][0]][trio[1][1]]
		c := that.Board[trio[2][0]][trio[2][1]]

		if a != EmptyCell && a == b && b == c {
			that.State = StateWon
			that.Winner = that.CurrentPlayer()
			return
		}
	}

	// the game continues until every tile is taken
	for _, row := range that.Board {
		for _, cell := range row {
			if cell == EmptyCell {
				return
			}
		}
	}

	that.State = StateTie
}
