package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/klondike/game"
	"github.com/minaorangina/klondike/protocol"
	uuid "github.com/satori/go.uuid"
)

var (
	ErrUnknownGameID = errors.New("unknown game ID")
	ErrFnGameExists  = func(gameID string) error {
		return fmt.Errorf("game with id \"%s\" already exists", gameID)
	}
)

// NewID constructs a game ID
func NewID() string {
	return uuid.NewV4().String()
}

// Session is one game and the lock that serialises input to it
type Session struct {
	ID   string
	mu   sync.Mutex
	game *game.Game
}

func NewSession(id string, g *game.Game) *Session {
	return &Session{ID: id, game: g}
}

// Receive applies a pointer message and returns the board as it now stands
func (s *Session) Receive(msg protocol.InboundMessage) (protocol.OutboundMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.game.Receive(msg)
	return s.game.Board(s.ID), err
}

func (s *Session) Board() protocol.OutboundMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.Board(s.ID)
}

type GameStore interface {
	NewGame(opts game.Options) (*Session, error)
	AddGame(s *Session) error
	FindGame(gameID string) *Session
	RemoveGame(gameID string) error
	Len() int
}

// InMemoryGameStore maps game id to session
type InMemoryGameStore struct {
	mu    sync.RWMutex
	Games map[string]*Session
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		Games: map[string]*Session{},
	}
}

// NewGame deals a new game under a fresh ID
func (s *InMemoryGameStore) NewGame(opts game.Options) (*Session, error) {
	g, err := game.New(opts)
	if err != nil {
		return nil, err
	}

	session := NewSession(NewID(), g)
	if err := s.AddGame(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *InMemoryGameStore) AddGame(session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.Games[session.ID]; exists {
		return ErrFnGameExists(session.ID)
	}
	s.Games[session.ID] = session
	return nil
}

func (s *InMemoryGameStore) FindGame(gameID string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.Games[gameID]
}

func (s *InMemoryGameStore) RemoveGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.Games[gameID]; !ok {
		return ErrUnknownGameID
	}
	delete(s.Games, gameID)
	return nil
}

func (s *InMemoryGameStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.Games)
}
