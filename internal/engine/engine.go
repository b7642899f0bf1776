// Package engine hosts the scoring and day-rollover core: a pure reducer
// over the application snapshot. It never touches persistence; callers own
// the save after each accepted mutation.
package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/bloom/internal/models"
)

// Intent is a named state transition applied by the reducer.
type Intent interface {
	isIntent()
}

type SetUser struct {
	User models.User
}

type SetCurrentScreen struct {
	Screen string
}

type AddMoodEntry struct {
	Entry models.MoodEntry
}

type ToggleHabit struct {
	HabitID string
}

type AddJournalEntry struct {
	Entry models.JournalEntry
}

type AddChatMessage struct {
	Message models.ChatMessage
}

type SetTheme struct {
	Theme models.Theme
}

type RecomputeScore struct{}

type ResetAppState struct{}

func (SetUser) isIntent()          {}
func (SetCurrentScreen) isIntent() {}
func (AddMoodEntry) isIntent()     {}
func (ToggleHabit) isIntent()      {}
func (AddJournalEntry) isIntent()  {}
func (AddChatMessage) isIntent()   {}
func (SetTheme) isIntent()         {}
func (RecomputeScore) isIntent()   {}
func (ResetAppState) isIntent()    {}

// Engine applies intents to snapshots. The clock is injectable so rollover
// and score windowing are testable without waiting for midnight.
type Engine struct {
	now func() time.Time
}

// New returns an engine driven by the wall clock.
func New() *Engine {
	return NewWithClock(time.Now)
}

// NewWithClock returns an engine using the given clock.
func NewWithClock(clock func() time.Time) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{now: clock}
}

// Now returns the engine's current time.
func (e *Engine) Now() time.Time {
	return e.now()
}

// Apply returns the next snapshot for the given intent. The input snapshot
// is never mutated. A day-boundary check runs before every intent so a
// session that lives across midnight rolls over without a reload, and the
// score is recomputed automatically after any score-affecting intent so it
// can never drift from the data that produced it.
func (e *Engine) Apply(state models.AppState, intent Intent) models.AppState {
	now := e.now()
	next := Rollover(state, now)

	affectsScore := false
	switch in := intent.(type) {
	case SetUser:
		u := in.User
		next.User = &u
	case SetCurrentScreen:
		next.CurrentScreen = in.Screen
	case AddMoodEntry:
		next.MoodEntries = append(next.MoodEntries, in.Entry)
		affectsScore = true
	case ToggleHabit:
		affectsScore = toggleHabit(&next, in.HabitID, now)
	case AddJournalEntry:
		next.JournalEntries = append(next.JournalEntries, in.Entry)
		affectsScore = true
	case AddChatMessage:
		next.ChatMessages = append(next.ChatMessages, in.Message)
	case SetTheme:
		next.SelectedTheme = string(in.Theme)
		if next.User != nil {
			next.User.Theme = string(in.Theme)
		}
	case RecomputeScore:
		affectsScore = true
	case ResetAppState:
		next = Seed(now)
		affectsScore = true
	}

	if affectsScore {
		recompute(&next, now)
	}
	return next
}

// toggleHabit flips a habit's completion state. An unknown id is a silent
// no-op: the UI and the store can transiently disagree and that must never
// surface as an error. Unchecking a habit resets its streak to zero rather
// than decrementing; this asymmetry is deliberate and pinned by tests.
func toggleHabit(state *models.AppState, habitID string, now time.Time) bool {
	for i := range state.Habits {
		h := &state.Habits[i]
		if h.ID != habitID {
			continue
		}
		if h.Completed {
			h.Completed = false
			h.LastCompletedDate = nil
			h.Streak = 0
		} else {
			h.Completed = true
			t := now
			h.LastCompletedDate = &t
			h.Streak++
		}
		return true
	}
	return false
}

// NewMoodEntry builds a mood entry stamped with the engine clock.
func (e *Engine) NewMoodEntry(emoji, note string) models.MoodEntry {
	return models.MoodEntry{
		ID:    uuid.NewString(),
		Emoji: emoji,
		Date:  e.now(),
		Note:  note,
	}
}

// NewJournalEntry builds a journal entry stamped with the engine clock.
// Content non-emptiness is the caller's responsibility (validation happens
// at the input boundary, not here).
func (e *Engine) NewJournalEntry(content string) models.JournalEntry {
	return models.JournalEntry{
		ID:      uuid.NewString(),
		Content: content,
		Date:    e.now(),
	}
}

// NewChatMessage builds a chat message stamped with the engine clock.
func (e *Engine) NewChatMessage(content string, isUser bool) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.NewString(),
		Content:   content,
		IsUser:    isUser,
		Timestamp: e.now(),
	}
}
