package board

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/jask/kanban/internal/storage"
)

// StorageKey is the durable slot holding the serialized board.
const StorageKey = "kanban-columns"

// Store is the single source of truth for the board. It holds the current
// value and writes the whole board through to durable storage on every Set.
type Store struct {
	kv     storage.Store
	logger *log.Logger
	board  Board
}

// NewStore wraps the durable store. Call Load before reading the board.
func NewStore(kv storage.Store, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{kv: kv, logger: logger, board: New()}
}

// Load rehydrates the board from durable storage. A missing or malformed
// value falls back to the default empty board; decode failures are logged,
// never propagated.
func (s *Store) Load() Board {
	s.board = New()
	raw, ok, err := s.kv.Get(StorageKey)
	if err != nil {
		s.logger.Warn("board load failed, using default board", "err", err)
		return s.board
	}
	if !ok {
		return s.board
	}
	b, err := Decode(raw)
	if err != nil {
		s.logger.Warn("stored board is malformed, using default board", "err", err)
		return s.board
	}
	s.board = b
	return s.board
}

// Board returns the current board value.
func (s *Store) Board() Board {
	return s.board
}

// Set replaces the board wholesale and writes it through to durable storage.
// The in-memory value is updated even when the write fails, so the UI keeps
// working against the latest state.
func (s *Store) Set(b Board) error {
	s.board = b
	raw, err := Encode(b)
	if err != nil {
		return err
	}
	if err := s.kv.Set(StorageKey, raw); err != nil {
		return fmt.Errorf("persist board: %w", err)
	}
	return nil
}
