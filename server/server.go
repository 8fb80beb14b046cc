package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/klondike/game"
	"github.com/minaorangina/klondike/protocol"
	"github.com/minaorangina/klondike/store"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NewGameRes struct {
	GameID string                   `json:"game_id"`
	Board  protocol.OutboundMessage `json:"board"`
}

// GameServer serves solitaire sessions to browser clients
type GameServer struct {
	store      store.GameStore
	newOptions func() game.Options
	http.Server
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

// NewServer creates a new GameServer. newOptions is called once per new game.
func NewServer(str store.GameStore, newOptions func() game.Options, staticDir string) *GameServer {
	s := new(GameServer)
	s.store = str
	s.newOptions = newOptions
	if s.newOptions == nil {
		s.newOptions = func() game.Options { return game.Options{} }
	}

	router := http.NewServeMux()
	router.Handle("/", http.FileServer(http.Dir(staticDir)))
	router.Handle("/new", http.HandlerFunc(s.HandleNewGame))
	router.Handle("/game/", http.HandlerFunc(s.HandleGame))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete}),
	)
	s.Handler = handlers.LoggingHandler(os.Stdout,
		handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(cors(router)))

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleNewGame deals a new game and returns its ID and opening board
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	session, err := g.store.NewGame(g.newOptions())
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, NewGameRes{
		GameID: session.ID,
		Board:  session.Board(),
	})
}

// HandleGame returns (GET) or abandons (DELETE) the game named in the path
func (g *GameServer) HandleGame(w http.ResponseWriter, r *http.Request) {
	gameID := strings.TrimPrefix(r.URL.Path, "/game/")
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	switch r.Method {
	case http.MethodGet:
		session := g.store.FindGame(gameID)
		if session == nil {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(unknownGameIDMsg(gameID)))
			return
		}
		writeJSON(w, http.StatusOK, session.Board())

	case http.MethodDelete:
		if err := g.store.RemoveGame(gameID); err != nil {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(unknownGameIDMsg(gameID)))
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// HandleWS upgrades to a websocket that feeds pointer messages into a game.
// Every inbound message is answered with the board as it now stands.
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	if gameID == "" {
		log.Println("missing game ID")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	session := g.store.FindGame(gameID)
	if session == nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied
		log.Println(err)
		return
	}
	defer conn.Close()

	if err := conn.WriteJSON(session.Board()); err != nil {
		log.Println(err)
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("game %s: %v", gameID, err)
			}
			return
		}

		var msg protocol.InboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			board := session.Board()
			board.Error = fmt.Sprintf("could not parse message: %v", err)
			if err := conn.WriteJSON(board); err != nil {
				log.Println(err)
				return
			}
			continue
		}

		board, err := session.Receive(msg)
		if err != nil {
			board.Error = err.Error()
		}
		if werr := conn.WriteJSON(board); werr != nil {
			log.Println(werr)
			return
		}

		if err != nil && !errors.Is(err, game.ErrUnknownCommand) {
			// the chains are no longer trustworthy
			log.Printf("game %s abandoned: %v", gameID, err)
			if err := g.store.RemoveGame(gameID); err != nil {
				log.Printf("game %s: %v", gameID, err)
			}
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}
