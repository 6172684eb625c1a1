package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/session"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// UserPreferences stores user settings
type UserPreferences struct {
	Username       string    `json:"username"`
	ShowLegalMoves bool      `json:"show_legal_moves"`
	FlipBoard      bool      `json:"flip_board"`
	AnimateMoves   bool      `json:"animate_moves"`
	SoundEnabled   bool      `json:"sound_enabled"`
	LastPlayed     time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		Username:       "Player",
		ShowLegalMoves: true,
		FlipBoard:      false,
		AnimateMoves:   true,
		SoundEnabled:   true,
		LastPlayed:     time.Now(),
	}
}

// GameStats stores aggregate results of finished games
type GameStats struct {
	GamesPlayed   int           `json:"games_played"`
	WhiteWins     int           `json:"white_wins"`
	BlackWins     int           `json:"black_wins"`
	Stalemates    int           `json:"stalemates"`
	TotalPlies    int           `json:"total_plies"`
	LongestGame   int           `json:"longest_game"`
	TotalPlayTime time.Duration `json:"total_play_time"`
	LastGameID    string        `json:"last_game_id"`
}

// NewGameStats returns empty game statistics
func NewGameStats() *GameStats {
	return &GameStats{}
}

// AveragePlies returns the mean game length in plies.
func (s *GameStats) AveragePlies() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.TotalPlies) / float64(s.GamesPlayed)
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	return Open("")
}

// Open opens the database under dataDir, or the platform data directory
// when dataDir is empty.
func Open(dataDir string) (*Storage, error) {
	dbDir, err := GetDatabaseDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("database dir: %w", err)
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dbDir, err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()
	return s.put(keyPreferences, prefs)
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()
	err := s.get(keyPreferences, prefs)
	return prefs, err
}

// SaveStats saves game statistics
func (s *Storage) SaveStats(stats *GameStats) error {
	return s.put(keyStats, stats)
}

// LoadStats loads game statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := NewGameStats()
	err := s.get(keyStats, stats)
	return stats, err
}

// RecordGame folds a finished game into the statistics.
func (s *Storage) RecordGame(rec session.GameRecord) error {
	return s.db.Update(func(txn *badger.Txn) error {
		stats := NewGameStats()
		if err := readJSON(txn, keyStats, stats); err != nil {
			return err
		}

		stats.GamesPlayed++
		stats.TotalPlies += rec.Plies
		stats.TotalPlayTime += rec.Duration
		stats.LastGameID = rec.ID
		if rec.Plies > stats.LongestGame {
			stats.LongestGame = rec.Plies
		}

		switch {
		case rec.Result == session.StatusStalemate:
			stats.Stalemates++
		case rec.Winner == board.White:
			stats.WhiteWins++
		case rec.Winner == board.Black:
			stats.BlackWins++
		}

		data, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		return txn.Set([]byte(keyStats), data)
	})
}

func (s *Storage) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

func (s *Storage) get(key string, v any) error {
	return s.db.View(func(txn *badger.Txn) error {
		return readJSON(txn, key, v)
	})
}

// readJSON decodes the value at key into v, leaving v untouched when the
// key does not exist.
func readJSON(txn *badger.Txn, key string, v any) error {
	item, err := txn.Get([]byte(key))
	if err == badger.ErrKeyNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}
