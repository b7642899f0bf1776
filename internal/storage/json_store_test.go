package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/bloom/internal/models"
)

func sampleState() models.AppState {
	done := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	state := models.AppState{
		User:           &models.User{Name: "Ada", Theme: "calm-forest"},
		CurrentScreen:  "home",
		LastActiveDate: "2025-03-10",
		MoodEntries: []models.MoodEntry{
			{ID: "m1", Emoji: "😊", Date: done, Note: "slept well"},
			{ID: "m2", Emoji: "😰", Date: done.Add(2 * time.Hour)},
		},
		Habits: []models.Habit{
			{ID: "h1", Name: "Drink Water", Completed: true, Streak: 4, LastCompletedDate: &done},
			{ID: "h2", Name: "Stretch"},
		},
		JournalEntries: []models.JournalEntry{
			{ID: "j1", Content: "a good day", Date: done},
		},
		BloomScore: models.BloomScore{Mood: 60, Habits: 50, Reflection: 20, Overall: 43},
		DailyBloomScores: map[string]models.BloomScore{
			"2025-03-09": {Mood: 40, Habits: 33, Reflection: 0, Overall: 24},
			"2025-03-10": {Mood: 60, Habits: 50, Reflection: 20, Overall: 43},
		},
		ChatMessages: []models.ChatMessage{
			{ID: "c1", Content: "hi", IsUser: true, Timestamp: done},
			{ID: "c2", Content: "hello", IsUser: false, Timestamp: done.Add(time.Second)},
		},
		SelectedTheme: "calm-forest",
	}
	state.Normalize()
	return state
}

// statesEqual compares snapshots through their serialized form, which
// sidesteps time.Time internals while still checking every field.
func statesEqual(t *testing.T, a, b models.AppState) bool {
	t.Helper()
	ab, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	bb, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(ab) == string(bb)
}

func TestJSONStoreRoundTrip(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "bloom.json"))

	want := sampleState()
	if err := store.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !statesEqual(t, want, got) {
		t.Errorf("round trip mismatch:\nwant %+v\ngot  %+v", want, got)
	}
}

func TestJSONStoreLoadMissingFile(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "bloom.json"))

	_, err := store.Load()
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Load of missing file = %v, want ErrNotInitialized", err)
	}
}

func TestJSONStoreLoadDefaultsMissingCollections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bloom.json")
	payload := `{"user": null, "currentScreen": "login", "selectedTheme": "calm-forest"}`
	if err := os.WriteFile(path, []byte(payload), 0600); err != nil {
		t.Fatal(err)
	}

	got, err := NewJSONStore(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.MoodEntries == nil || got.Habits == nil || got.JournalEntries == nil ||
		got.ChatMessages == nil || got.DailyBloomScores == nil {
		t.Error("Load left a nil collection for an omitted field")
	}
	if got.User != nil {
		t.Error("Load invented a user")
	}
}

func TestJSONStoreLoadCorruptPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bloom.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := NewJSONStore(path).Load()
	if err == nil {
		t.Fatal("expected error for corrupt payload")
	}
	if errors.Is(err, ErrNotInitialized) {
		t.Error("corrupt payload must not read as uninitialized")
	}
}

func TestJSONStoreInitRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bloom.json")
	store := NewJSONStore(path)

	if err := store.Init(sampleState()); err != nil {
		t.Fatalf("first Init: %v", err)
	}
	if err := store.Init(sampleState()); err == nil {
		t.Error("second Init should refuse an existing file")
	}
}

func TestJSONStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bloom.json")
	store := NewJSONStore(path)

	if err := store.Save(sampleState()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Clear left the storage file behind")
	}
	// Clearing twice is fine.
	if err := store.Clear(); err != nil {
		t.Errorf("second Clear: %v", err)
	}
}
