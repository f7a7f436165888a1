package service

import (
	"errors"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-chain/internal/codec"
	"github.com/rocketscienceinc/tictactoe-chain/internal/entity"
	"github.com/rocketscienceinc/tictactoe-chain/internal/keys"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// BotService is the resident opponent. It answers only on games where
// its own wallet holds the current turn.
type BotService interface {
	Pubkey() string
	Reply(game *entity.Game) (PlayParams, bool, error)
}

type botService struct {
	keypair *keys.Keypair
}

func NewBotService(keypair *keys.Keypair) BotService {
	return &botService{
		keypair: keypair,
	}
}

func (that *botService) Pubkey() string {
	return that.keypair.Public().String()
}

// Reply - picks a random free tile and signs the play call with the
// bot's wallet. The second return reports whether a reply is due at all.
func (that *botService) Reply(game *entity.Game) (PlayParams, bool, error) {
	if !game.IsActive() || game.CurrentPlayer() != that.Pubkey() {
		return PlayParams{}, false, nil
	}

	tile, err := that.pickTile(game)
	if err != nil {
		return PlayParams{}, false, err
	}

	gameKey, err := keys.ParsePublicKey(game.Pubkey)
	if err != nil {
		return PlayParams{}, false, err
	}

	data := codec.EncodePlay(tile)
	signature := that.keypair.Sign(codec.SigningPayload(keys.ProgramID, gameKey, data))

	return PlayParams{
		GamePubkey: game.Pubkey,
		Player:     that.Pubkey(),
		Tile:       tile,
		Signature:  signature,
	}, true, nil
}

func (that *botService) pickTile(game *entity.Game) (entity.Tile, error) {
	availableTiles := make([]entity.Tile, 0, entity.BoardSize*entity.BoardSize)
	for row := range game.Board {
		for column, cell := range game.Board[row] {
			if cell == entity.EmptyCell {
				availableTiles = append(availableTiles, entity.Tile{Row: uint8(row), Column: uint8(column)}) //nolint: gosec // board indexes fit uint8
			}
		}
	}

	if len(availableTiles) == 0 {
		return entity.Tile{}, ErrNoAvailableMoves
	}

	return availableTiles[rand.Intn(len(availableTiles))], nil //nolint: gosec // it's ok
}
