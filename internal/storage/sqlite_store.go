package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/bloom/internal/models"
)

// SQLiteStore persists the snapshot relationally. Entry collections map to
// tables; scalar snapshot fields live in app_meta.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

const schema = `
CREATE TABLE IF NOT EXISTS app_meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS mood_entries (
	id       TEXT PRIMARY KEY,
	emoji    TEXT NOT NULL,
	date     TEXT NOT NULL,
	note     TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS habits (
	id                  TEXT PRIMARY KEY,
	name                TEXT NOT NULL,
	completed           INTEGER NOT NULL DEFAULT 0,
	streak              INTEGER NOT NULL DEFAULT 0,
	last_completed_date TEXT,
	position            INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS journal_entries (
	id       TEXT PRIMARY KEY,
	content  TEXT NOT NULL,
	date     TEXT NOT NULL,
	position INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS chat_messages (
	id        TEXT PRIMARY KEY,
	content   TEXT NOT NULL,
	is_user   INTEGER NOT NULL,
	timestamp TEXT NOT NULL,
	position  INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS daily_scores (
	day        TEXT PRIMARY KEY,
	mood       INTEGER NOT NULL,
	habits     INTEGER NOT NULL,
	reflection INTEGER NOT NULL,
	overall    INTEGER NOT NULL
);
`

func (s *SQLiteStore) Init(initial models.AppState) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.open(); err != nil {
		return err
	}
	return s.Save(initial)
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Load() (models.AppState, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return models.AppState{}, ErrNotInitialized
	}
	if err := s.open(); err != nil {
		return models.AppState{}, err
	}

	var state models.AppState
	state.Normalize()

	if err := s.loadMeta(&state); err != nil {
		return models.AppState{}, err
	}

	rows, err := s.db.Query(`SELECT id, emoji, date, note FROM mood_entries ORDER BY position`)
	if err != nil {
		return models.AppState{}, fmt.Errorf("failed to load mood entries: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var m models.MoodEntry
		var date string
		if err := rows.Scan(&m.ID, &m.Emoji, &date, &m.Note); err != nil {
			return models.AppState{}, err
		}
		if m.Date, err = parseTimestamp(date); err != nil {
			return models.AppState{}, err
		}
		state.MoodEntries = append(state.MoodEntries, m)
	}
	if err := rows.Err(); err != nil {
		return models.AppState{}, err
	}

	if err := s.loadHabits(&state); err != nil {
		return models.AppState{}, err
	}
	if err := s.loadJournal(&state); err != nil {
		return models.AppState{}, err
	}
	if err := s.loadChat(&state); err != nil {
		return models.AppState{}, err
	}
	if err := s.loadScores(&state); err != nil {
		return models.AppState{}, err
	}

	return state, nil
}

func (s *SQLiteStore) loadMeta(state *models.AppState) error {
	rows, err := s.db.Query(`SELECT key, value FROM app_meta`)
	if err != nil {
		return fmt.Errorf("failed to load metadata: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return err
		}
		switch key {
		case "user":
			if value != "" {
				var u models.User
				if err := json.Unmarshal([]byte(value), &u); err != nil {
					return fmt.Errorf("failed to parse user: %w", err)
				}
				state.User = &u
			}
		case "current_screen":
			state.CurrentScreen = value
		case "last_active_date":
			state.LastActiveDate = value
		case "selected_theme":
			state.SelectedTheme = value
		case "bloom_score":
			if err := json.Unmarshal([]byte(value), &state.BloomScore); err != nil {
				return fmt.Errorf("failed to parse score: %w", err)
			}
		}
	}
	return rows.Err()
}

func (s *SQLiteStore) loadHabits(state *models.AppState) error {
	rows, err := s.db.Query(`SELECT id, name, completed, streak, last_completed_date FROM habits ORDER BY position`)
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var h models.Habit
		var completed int
		var last sql.NullString
		if err := rows.Scan(&h.ID, &h.Name, &completed, &h.Streak, &last); err != nil {
			return err
		}
		h.Completed = completed != 0
		if last.Valid {
			t, err := parseTimestamp(last.String)
			if err != nil {
				return err
			}
			h.LastCompletedDate = &t
		}
		state.Habits = append(state.Habits, h)
	}
	return rows.Err()
}

func (s *SQLiteStore) loadJournal(state *models.AppState) error {
	rows, err := s.db.Query(`SELECT id, content, date FROM journal_entries ORDER BY position`)
	if err != nil {
		return fmt.Errorf("failed to load journal entries: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var j models.JournalEntry
		var date string
		if err := rows.Scan(&j.ID, &j.Content, &date); err != nil {
			return err
		}
		var perr error
		if j.Date, perr = parseTimestamp(date); perr != nil {
			return perr
		}
		state.JournalEntries = append(state.JournalEntries, j)
	}
	return rows.Err()
}

func (s *SQLiteStore) loadChat(state *models.AppState) error {
	rows, err := s.db.Query(`SELECT id, content, is_user, timestamp FROM chat_messages ORDER BY position`)
	if err != nil {
		return fmt.Errorf("failed to load chat messages: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c models.ChatMessage
		var isUser int
		var ts string
		if err := rows.Scan(&c.ID, &c.Content, &isUser, &ts); err != nil {
			return err
		}
		c.IsUser = isUser != 0
		var perr error
		if c.Timestamp, perr = parseTimestamp(ts); perr != nil {
			return perr
		}
		state.ChatMessages = append(state.ChatMessages, c)
	}
	return rows.Err()
}

func (s *SQLiteStore) loadScores(state *models.AppState) error {
	rows, err := s.db.Query(`SELECT day, mood, habits, reflection, overall FROM daily_scores`)
	if err != nil {
		return fmt.Errorf("failed to load score history: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var day string
		var score models.BloomScore
		if err := rows.Scan(&day, &score.Mood, &score.Habits, &score.Reflection, &score.Overall); err != nil {
			return err
		}
		state.DailyBloomScores[day] = score
	}
	return rows.Err()
}

// Save rewrites the snapshot in one transaction. The data set is a single
// user's daily entries, so replace-all stays well inside interactive
// latency and keeps Save trivially idempotent.
func (s *SQLiteStore) Save(state models.AppState) error {
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"app_meta", "mood_entries", "habits", "journal_entries", "chat_messages", "daily_scores"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	userJSON := ""
	if state.User != nil {
		b, err := json.Marshal(state.User)
		if err != nil {
			return fmt.Errorf("failed to serialize user: %w", err)
		}
		userJSON = string(b)
	}
	scoreJSON, err := json.Marshal(state.BloomScore)
	if err != nil {
		return fmt.Errorf("failed to serialize score: %w", err)
	}

	meta := map[string]string{
		"user":             userJSON,
		"current_screen":   state.CurrentScreen,
		"last_active_date": state.LastActiveDate,
		"selected_theme":   state.SelectedTheme,
		"bloom_score":      string(scoreJSON),
	}
	for k, v := range meta {
		if _, err := tx.Exec(`INSERT INTO app_meta (key, value) VALUES (?, ?)`, k, v); err != nil {
			return fmt.Errorf("failed to save metadata: %w", err)
		}
	}

	for i, m := range state.MoodEntries {
		if _, err := tx.Exec(`INSERT INTO mood_entries (id, emoji, date, note, position) VALUES (?, ?, ?, ?, ?)`,
			m.ID, m.Emoji, formatTimestamp(m.Date), m.Note, i); err != nil {
			return fmt.Errorf("failed to save mood entry: %w", err)
		}
	}
	for i, h := range state.Habits {
		var last any
		if h.LastCompletedDate != nil {
			last = formatTimestamp(*h.LastCompletedDate)
		}
		if _, err := tx.Exec(`INSERT INTO habits (id, name, completed, streak, last_completed_date, position) VALUES (?, ?, ?, ?, ?, ?)`,
			h.ID, h.Name, boolToInt(h.Completed), h.Streak, last, i); err != nil {
			return fmt.Errorf("failed to save habit: %w", err)
		}
	}
	for i, j := range state.JournalEntries {
		if _, err := tx.Exec(`INSERT INTO journal_entries (id, content, date, position) VALUES (?, ?, ?, ?)`,
			j.ID, j.Content, formatTimestamp(j.Date), i); err != nil {
			return fmt.Errorf("failed to save journal entry: %w", err)
		}
	}
	for i, c := range state.ChatMessages {
		if _, err := tx.Exec(`INSERT INTO chat_messages (id, content, is_user, timestamp, position) VALUES (?, ?, ?, ?, ?)`,
			c.ID, c.Content, boolToInt(c.IsUser), formatTimestamp(c.Timestamp), i); err != nil {
			return fmt.Errorf("failed to save chat message: %w", err)
		}
	}
	for day, score := range state.DailyBloomScores {
		if _, err := tx.Exec(`INSERT INTO daily_scores (day, mood, habits, reflection, overall) VALUES (?, ?, ?, ?, ?)`,
			day, score.Mood, score.Habits, score.Reflection, score.Overall); err != nil {
			return fmt.Errorf("failed to save daily score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear() error {
	if s.db != nil {
		s.db.Close()
		s.db = nil
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func formatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func parseTimestamp(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", v, err)
	}
	return t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
