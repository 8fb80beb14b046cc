package game

import (
	"math/rand"
	"testing"

	"github.com/minaorangina/klondike/deck"
	utils "github.com/minaorangina/klondike/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed int64) Options {
	return Options{Rand: rand.New(rand.NewSource(seed))}
}

func TestNewGame(t *testing.T) {
	t.Log("Given a freshly dealt game")
	g, err := New(seeded(1))
	require.NoError(t, err)

	t.Run("tableau piles are triangular with only the top card face up", func(t *testing.T) {
		total := 0
		for i := 0; i < numTableau; i++ {
			pile := chainOf(g.pool, g.TableauHead(i))
			utils.AssertEqual(t, len(pile), i+1)
			total += len(pile)

			for k, id := range pile {
				want := FaceDown
				if k == len(pile)-1 {
					want = FaceUp
				}
				utils.AssertEqual(t, g.pool.cards[id].Visibility, want)
			}
		}
		utils.AssertEqual(t, total, 28)
	})

	t.Run("the rest of the deck is the stock, face down", func(t *testing.T) {
		stock := chainOf(g.pool, g.StockHead())
		utils.AssertEqual(t, len(stock), 24)
		for _, id := range stock {
			utils.AssertEqual(t, g.pool.cards[id].Visibility, FaceDown)
		}
		utils.AssertEqual(t, g.pool.ChainLen(g.WasteHead()), 0)
		for i := 0; i < numFoundations; i++ {
			utils.AssertEqual(t, g.pool.ChainLen(g.FoundationHead(i)), 0)
		}
	})

	t.Run("every identity is dealt exactly once", func(t *testing.T) {
		seen := map[CardID]int{}
		for _, head := range g.heads() {
			for _, id := range chainOf(g.pool, head) {
				seen[id]++
			}
		}
		utils.AssertEqual(t, len(seen), deck.Size)
		for id, n := range seen {
			assert.Equal(t, 1, n, "card %d", id)
		}
	})

	t.Run("cards keep the rank of their identity", func(t *testing.T) {
		for i := 0; i < deck.Size; i++ {
			utils.AssertEqual(t, g.pool.cards[i].Rank, deck.Rank(i%13+1))
		}
	})

	t.Run("topology is consistent", func(t *testing.T) {
		utils.AssertNoError(t, g.pool.Validate())
	})

	t.Run("cards are laid out on their piles", func(t *testing.T) {
		top := g.pool.FindTail(g.TableauHead(3))
		want := g.rectOf(g.TableauHead(3)).Translate(Point{0, 3 * g.layout.Offset})
		utils.AssertEqual(t, g.rectOf(top), want)
	})

	t.Run("game starts idle and unwon", func(t *testing.T) {
		utils.AssertEqual(t, g.State(), Idle)
		utils.AssertEqual(t, g.Moves(), 0)
		assert.False(t, g.Won())
	})
}

func TestNewGameOptions(t *testing.T) {
	t.Run("same seed deals the same game", func(t *testing.T) {
		a, err := New(seeded(5))
		require.NoError(t, err)
		b, err := New(seeded(5))
		require.NoError(t, err)

		utils.AssertDeepEqual(t, a.View(), b.View())
	})

	t.Run("rejects a broken layout", func(t *testing.T) {
		l := DefaultLayout()
		l.Tableau = nil
		_, err := New(Options{Layout: &l})
		utils.AssertErrorIs(t, err, ErrInvalidLayout)
	})

	t.Run("custom layout is used", func(t *testing.T) {
		l := DefaultLayout()
		l.Stock = Point{1000, 500}
		g, err := New(Options{Layout: &l})
		require.NoError(t, err)

		first := g.pool.cards[g.StockHead()].Next
		utils.AssertEqual(t, g.rectOf(first).X, 1000.0)
		utils.AssertEqual(t, g.rectOf(first).Y, 500.0)
	})

	t.Run("out of range heads", func(t *testing.T) {
		g, err := New(seeded(1))
		require.NoError(t, err)
		utils.AssertEqual(t, g.TableauHead(7), NoCard)
		utils.AssertEqual(t, g.FoundationHead(-1), NoCard)
	})
}

func TestWon(t *testing.T) {
	g := emptyGame()
	for s := deck.Clubs; s <= deck.Spades; s++ {
		for r := deck.Ace; r <= deck.King; r++ {
			put(t, g, g.foundations[s], FaceUp, cardOf(r, s))
		}
	}

	utils.AssertNoError(t, g.pool.Validate())
	utils.AssertTrue(t, g.Won())
}
