package store

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/minaorangina/klondike/game"
	utils "github.com/minaorangina/klondike/internal"
	"github.com/minaorangina/klondike/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed int64) game.Options {
	return game.Options{Rand: rand.New(rand.NewSource(seed))}
}

func TestInMemoryGameStore(t *testing.T) {
	t.Run("Constructor prevents nil struct members", func(t *testing.T) {
		str := NewInMemoryGameStore()
		if str.Games == nil {
			t.Error("Games was nil")
		}
	})

	t.Run("new games get distinct IDs", func(t *testing.T) {
		str := NewInMemoryGameStore()
		a, err := str.NewGame(seeded(1))
		utils.AssertNoError(t, err)
		b, err := str.NewGame(seeded(1))
		utils.AssertNoError(t, err)

		utils.AssertNotEmptyString(t, a.ID)
		assert.NotEqual(t, a.ID, b.ID)
		utils.AssertEqual(t, str.Len(), 2)
		utils.AssertEqual(t, str.FindGame(a.ID), a)
	})

	t.Run("prevents duplicate game IDs", func(t *testing.T) {
		str := NewInMemoryGameStore()
		g, err := game.New(seeded(2))
		require.NoError(t, err)
		session := NewSession("thisISAnID", g)

		utils.AssertNoError(t, str.AddGame(session))
		utils.AssertErrored(t, str.AddGame(session))
	})

	t.Run("Handles a non-existent game", func(t *testing.T) {
		str := NewInMemoryGameStore()
		assert.Nil(t, str.FindGame("fake-id"))
		utils.AssertErrorIs(t, str.RemoveGame("fake-id"), ErrUnknownGameID)
	})

	t.Run("removes games", func(t *testing.T) {
		str := NewInMemoryGameStore()
		s, err := str.NewGame(seeded(3))
		require.NoError(t, err)

		utils.AssertNoError(t, str.RemoveGame(s.ID))
		assert.Nil(t, str.FindGame(s.ID))
		utils.AssertEqual(t, str.Len(), 0)
	})

	t.Run("a second remove reports the unknown ID", func(t *testing.T) {
		str := NewInMemoryGameStore()
		s, err := str.NewGame(seeded(3))
		require.NoError(t, err)

		utils.AssertNoError(t, str.RemoveGame(s.ID))
		utils.AssertErrorIs(t, str.RemoveGame(s.ID), ErrUnknownGameID)
	})

	t.Run("bad options are reported", func(t *testing.T) {
		str := NewInMemoryGameStore()
		l := game.DefaultLayout()
		l.CardWidth = 0

		_, err := str.NewGame(game.Options{Layout: &l})
		utils.AssertErrorIs(t, err, game.ErrInvalidLayout)
		utils.AssertEqual(t, str.Len(), 0)
	})
}

func TestSession(t *testing.T) {
	t.Run("board carries the session ID", func(t *testing.T) {
		str := NewInMemoryGameStore()
		s, err := str.NewGame(seeded(4))
		require.NoError(t, err)

		board := s.Board()
		utils.AssertEqual(t, board.GameID, s.ID)
		utils.AssertEqual(t, board.State, game.Idle.String())
		utils.AssertEqual(t, len(board.Cards), 65)
	})

	t.Run("input from many goroutines is serialised", func(t *testing.T) {
		str := NewInMemoryGameStore()
		s, err := str.NewGame(seeded(5))
		require.NoError(t, err)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := s.Receive(protocol.InboundMessage{Command: protocol.Move, X: float64(i), Y: float64(i)})
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		utils.AssertEqual(t, s.Board().State, game.Idle.String())
	})

	t.Run("errors come back with the board", func(t *testing.T) {
		str := NewInMemoryGameStore()
		s, err := str.NewGame(seeded(6))
		require.NoError(t, err)

		board, err := s.Receive(protocol.InboundMessage{Command: protocol.Cmd(99)})
		utils.AssertErrorIs(t, err, game.ErrUnknownCommand)
		utils.AssertEqual(t, board.GameID, s.ID)
	})
}
