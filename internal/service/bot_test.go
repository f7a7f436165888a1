package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-chain/internal/codec"
	"github.com/rocketscienceinc/tictactoe-chain/internal/entity"
	"github.com/rocketscienceinc/tictactoe-chain/internal/keys"
)

func TestBotService_Reply(t *testing.T) {
	botKeypair := mustKeypair(t)
	bot := NewBotService(botKeypair)

	human := mustKeypair(t)
	gameKeypair := mustKeypair(t)

	t.Run("Stays quiet when the human holds the turn", func(t *testing.T) {
		// Given: a fresh game where the human moves first
		game := startedGame(t, gameKeypair.Public().String(),
			[2]string{human.Public().String(), bot.Pubkey()})

		// When: asking for a reply
		_, due, err := bot.Reply(game)

		// Then: no reply is due
		require.NoError(t, err)
		assert.False(t, due)
	})

	t.Run("Stays quiet on finished games", func(t *testing.T) {
		// Given: a game already won by the bot
		game := startedGame(t, gameKeypair.Public().String(),
			[2]string{human.Public().String(), bot.Pubkey()})
		game.State = entity.StateWon
		game.Winner = bot.Pubkey()

		// When: asking for a reply
		_, due, err := bot.Reply(game)

		// Then: no reply is due
		require.NoError(t, err)
		assert.False(t, due)
	})

	t.Run("Stays quiet on games it does not play in", func(t *testing.T) {
		// Given: a game between two humans, second player to move
		otherHuman := mustKeypair(t)
		game := startedGame(t, gameKeypair.Public().String(),
			[2]string{human.Public().String(), otherHuman.Public().String()})
		require.NoError(t, game.Play(entity.Tile{Row: 0, Column: 0}))

		// When: asking for a reply
		_, due, err := bot.Reply(game)

		// Then: no reply is due
		require.NoError(t, err)
		assert.False(t, due)
	})

	t.Run("Answers with a signed move on a free tile", func(t *testing.T) {
		// Given: the human opened and the bot holds the turn
		game := startedGame(t, gameKeypair.Public().String(),
			[2]string{human.Public().String(), bot.Pubkey()})
		require.NoError(t, game.Play(entity.Tile{Row: 1, Column: 1}))

		// When: asking for a reply
		params, due, err := bot.Reply(game)

		// Then: the reply targets a free tile and carries a valid signature
		require.NoError(t, err)
		require.True(t, due)

		assert.Equal(t, game.Pubkey, params.GamePubkey)
		assert.Equal(t, bot.Pubkey(), params.Player)
		assert.Equal(t, entity.EmptyCell, game.Board[params.Tile.Row][params.Tile.Column])

		payload := codec.SigningPayload(keys.ProgramID, gameKeypair.Public(), codec.EncodePlay(params.Tile))
		assert.True(t, keys.Verify(botKeypair.Public(), payload, params.Signature))
	})

	t.Run("Reports a board with no free tiles", func(t *testing.T) {
		// Given: a board that somehow filled without resolving
		game := startedGame(t, gameKeypair.Public().String(),
			[2]string{bot.Pubkey(), human.Public().String()})

		for row := range game.Board {
			for column := range game.Board[row] {
				game.Board[row][column] = entity.SignX
			}
		}

		// When: asking for a reply
		_, due, err := bot.Reply(game)

		// Then: the bot has nowhere to go
		require.ErrorIs(t, err, ErrNoAvailableMoves)
		assert.False(t, due)
	})
}
