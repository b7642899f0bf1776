package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "bloom.db"))
	defer store.Close()

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

func TestSQLiteStoreSaveReplacesPrevious(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "bloom.db"))
	defer store.Close()

	first := sampleState()
	if err := store.Save(first); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second := first.Clone()
	second.Normalize()
	second.MoodEntries = second.MoodEntries[:1]
	second.User.Name = "Eve"
	if err := store.Save(second); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.MoodEntries) != 1 {
		t.Errorf("mood entries = %d, want 1 (save must replace, not append)", len(got.MoodEntries))
	}
	if got.User == nil || got.User.Name != "Eve" {
		t.Errorf("user = %+v, want Eve", got.User)
	}
}

func TestSQLiteStorePreservesEntryOrder(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "bloom.db"))
	defer store.Close()

	state := sampleState()
	if err := store.Save(state); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for i, m := range state.MoodEntries {
		if got.MoodEntries[i].ID != m.ID {
			t.Errorf("mood entry %d = %q, want %q", i, got.MoodEntries[i].ID, m.ID)
		}
	}
	for i, c := range state.ChatMessages {
		if got.ChatMessages[i].ID != c.ID {
			t.Errorf("chat message %d = %q, want %q", i, got.ChatMessages[i].ID, c.ID)
		}
	}
}

func TestSQLiteStoreLoadMissingFile(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "bloom.db"))
	defer store.Close()

	_, err := store.Load()
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Load of missing file = %v, want ErrNotInitialized", err)
	}
}

func TestSQLiteStoreInitRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bloom.db")
	store := NewSQLiteStore(path)
	defer store.Close()

	if err := store.Init(sampleState()); err != nil {
		t.Fatalf("first Init: %v", err)
	}
	if err := store.Init(sampleState()); err == nil {
		t.Error("second Init should refuse an existing file")
	}
}

func TestSQLiteStoreClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bloom.db")
	store := NewSQLiteStore(path)

	if err := store.Save(sampleState()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Clear left the database file behind")
	}
}

func TestSQLiteStoreHabitWithoutCompletionDate(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "bloom.db"))
	defer store.Close()

	state := sampleState()
	if err := store.Save(state); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Habits[1].LastCompletedDate != nil {
		t.Error("never-completed habit came back with a completion date")
	}
	if got.Habits[0].LastCompletedDate == nil {
		t.Error("completed habit lost its completion date")
	}
}
