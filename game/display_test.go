package game

import (
	"bytes"
	"strings"
	"testing"

	"github.com/minaorangina/klondike/deck"
	utils "github.com/minaorangina/klondike/internal"
	"github.com/stretchr/testify/assert"
)

func TestSendText(t *testing.T) {
	t.Run("send simple text", func(t *testing.T) {
		buffer := &bytes.Buffer{}
		SendText(buffer, "Hello")
		utils.AssertEqual(t, buffer.String(), "Hello")
	})

	t.Run("send formatted text", func(t *testing.T) {
		buffer := &bytes.Buffer{}
		SendText(buffer, "Hello, %s", "human")
		utils.AssertEqual(t, buffer.String(), "Hello, human")
	})
}

func TestWriteText(t *testing.T) {
	g := emptyGame()
	put(t, g, g.tableau[0], FaceDown, cardOf(deck.Two, deck.Clubs))
	put(t, g, g.tableau[0], FaceUp, cardOf(deck.Ten, deck.Hearts))
	put(t, g, g.foundations[1], FaceUp, cardOf(deck.Ace, deck.Spades))
	stockRest(t, g)

	buffer := &bytes.Buffer{}
	g.WriteText(buffer)
	lines := strings.Split(buffer.String(), "\n")

	assert.Equal(t, "Stock: 49 ##   Waste: --", lines[0])
	assert.Equal(t, "Foundations: -- AS -- --", lines[1])
	assert.Equal(t, "1: ## 10H", lines[3])
	assert.Equal(t, "2: --", lines[4])
	assert.Contains(t, buffer.String(), "Moves: 0")
	assert.NotContains(t, buffer.String(), "You won!")
}
