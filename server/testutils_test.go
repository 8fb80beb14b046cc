package server

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/klondike/game"
	"github.com/minaorangina/klondike/protocol"
	"github.com/minaorangina/klondike/store"
	"github.com/stretchr/testify/require"
)

func seededOptions() game.Options {
	return game.Options{Rand: rand.New(rand.NewSource(9))}
}

func newTestServer() (*GameServer, *store.InMemoryGameStore) {
	str := store.NewInMemoryGameStore()
	return NewServer(str, seededOptions, "./testdata"), str
}

func newGame(t *testing.T, str store.GameStore) string {
	t.Helper()

	session, err := str.NewGame(seededOptions())
	require.NoError(t, err)
	return session.ID
}

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("did not get correct status, got %d, want %d", got, want)
	}
}

func decodeBoard(t *testing.T, r *httptest.ResponseRecorder) protocol.OutboundMessage {
	t.Helper()

	var board protocol.OutboundMessage
	require.NoError(t, json.NewDecoder(r.Body).Decode(&board))
	return board
}

func dial(t *testing.T, srv *httptest.Server, gameID string) (*websocket.Conn, *http.Response, error) {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?game_id=" + gameID
	return websocket.DefaultDialer.Dial(url, nil)
}

func readBoard(t *testing.T, conn *websocket.Conn) protocol.OutboundMessage {
	t.Helper()

	var board protocol.OutboundMessage
	require.NoError(t, conn.ReadJSON(&board))
	return board
}

// stockTop is the centre of the top stock card in a fresh deal on the default layout
func stockTop() (float64, float64) {
	l := game.DefaultLayout()
	return l.Stock.X + l.CardWidth/2, l.Stock.Y + 23*l.Offset + l.CardHeight/2
}
