package engine

import (
	"reflect"
	"testing"
	"time"

	"github.com/julianstephens/bloom/internal/models"
	"github.com/julianstephens/bloom/internal/utils"
)

func TestRolloverNewDayClearsCompletionKeepsStreak(t *testing.T) {
	yesterday := time.Date(2025, 3, 9, 21, 0, 0, 0, time.UTC)
	today := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	state := Seed(yesterday)
	for i := range state.Habits {
		state.Habits[i].Completed = true
		state.Habits[i].Streak = i + 1
		done := yesterday
		state.Habits[i].LastCompletedDate = &done
	}

	rolled := Rollover(state, today)

	if rolled.LastActiveDate != utils.DayKey(today) {
		t.Errorf("lastActiveDate = %q, want %q", rolled.LastActiveDate, utils.DayKey(today))
	}
	for i, h := range rolled.Habits {
		if h.Completed {
			t.Errorf("habit %q still completed after rollover", h.Name)
		}
		if h.Streak != i+1 {
			t.Errorf("habit %q streak = %d, want %d (rollover must not touch streaks)", h.Name, h.Streak, i+1)
		}
		if h.LastCompletedDate == nil {
			t.Errorf("habit %q lost its last completed date", h.Name)
		}
	}
}

func TestRolloverSameDayIsNoOp(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	state := Seed(now)
	state.Habits[0].Completed = true
	state.Habits[0].Streak = 4

	rolled := Rollover(state, now.Add(6*time.Hour))

	if !rolled.Habits[0].Completed {
		t.Error("same-day rollover cleared habit completion")
	}
	if rolled.Habits[0].Streak != 4 {
		t.Errorf("same-day rollover changed streak to %d", rolled.Habits[0].Streak)
	}
	if rolled.LastActiveDate != state.LastActiveDate {
		t.Errorf("same-day rollover changed lastActiveDate to %q", rolled.LastActiveDate)
	}
}

func TestRolloverIdempotent(t *testing.T) {
	yesterday := time.Date(2025, 3, 9, 21, 0, 0, 0, time.UTC)
	today := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	state := Seed(yesterday)
	state.Habits[0].Completed = true
	state.Habits[0].Streak = 2

	once := Rollover(state, today)
	twice := Rollover(once, today)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("rollover not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestRolloverPrunesHistoryOutsideRetention(t *testing.T) {
	today := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	state := Seed(today.AddDate(0, 0, -10))
	state.DailyBloomScores = map[string]models.BloomScore{}
	for i := 0; i < 10; i++ {
		key := utils.DayKey(today.AddDate(0, 0, -i))
		state.DailyBloomScores[key] = models.BloomScore{Overall: i}
	}

	rolled := Rollover(state, today)

	if len(rolled.DailyBloomScores) != 7 {
		t.Fatalf("history has %d entries after rollover, want 7", len(rolled.DailyBloomScores))
	}
	for _, key := range utils.LastNDays(today, 7) {
		if _, ok := rolled.DailyBloomScores[key]; !ok {
			t.Errorf("history missing retained key %q", key)
		}
	}
	oldest := utils.DayKey(today.AddDate(0, 0, -7))
	if _, ok := rolled.DailyBloomScores[oldest]; ok {
		t.Errorf("history kept pruned key %q", oldest)
	}
}

func TestRolloverPreservesEntriesAndUser(t *testing.T) {
	yesterday := time.Date(2025, 3, 9, 21, 0, 0, 0, time.UTC)
	today := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	state := Seed(yesterday)
	state.User = &models.User{Name: "Ada"}
	state.MoodEntries = []models.MoodEntry{{ID: "m1", Emoji: "😊", Date: yesterday}}
	state.JournalEntries = []models.JournalEntry{{ID: "j1", Content: "notes", Date: yesterday}}
	state.ChatMessages = []models.ChatMessage{{ID: "c1", Content: "hi", IsUser: true, Timestamp: yesterday}}

	rolled := Rollover(state, today)

	if rolled.User == nil || rolled.User.Name != "Ada" {
		t.Error("rollover lost the user")
	}
	if len(rolled.MoodEntries) != 1 || len(rolled.JournalEntries) != 1 || len(rolled.ChatMessages) != 1 {
		t.Errorf("rollover dropped entries: moods=%d journals=%d chats=%d",
			len(rolled.MoodEntries), len(rolled.JournalEntries), len(rolled.ChatMessages))
	}
}
