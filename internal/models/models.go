package models

import "time"

// User is the local profile created at first login.
type User struct {
	Name  string `json:"name"`
	Theme string `json:"theme"`
}

// MoodEntry records a single mood check-in. Entries are append-only and
// never mutated after creation.
type MoodEntry struct {
	ID    string    `json:"id"`
	Emoji string    `json:"emoji"`
	Date  time.Time `json:"date"`
	Note  string    `json:"note,omitempty"`
}

// Habit is a daily practice. Completed is today's status only and is
// cleared at day rollover; Streak persists across days and changes only on
// completion transitions.
type Habit struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Completed         bool       `json:"completed"`
	Streak            int        `json:"streak"`
	LastCompletedDate *time.Time `json:"lastCompletedDate,omitempty"`
}

// JournalEntry is an append-only reflection entry with non-empty content.
type JournalEntry struct {
	ID      string    `json:"id"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
}

// ChatMessage is one turn of the coach conversation.
type ChatMessage struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
}

// BloomScore is the derived composite wellness score. All four fields are
// integers in [0,100] and Overall is the rounded mean of the other three.
type BloomScore struct {
	Mood       int `json:"mood"`
	Habits     int `json:"habits"`
	Reflection int `json:"reflection"`
	Overall    int `json:"overall"`
}

// AppState is the root snapshot. Exactly one in-memory snapshot is live at
// a time; the mutation engine owns transitions and the storage provider
// owns the serialized copy at rest.
type AppState struct {
	User             *User                 `json:"user"`
	CurrentScreen    string                `json:"currentScreen"`
	LastActiveDate   string                `json:"lastActiveDate,omitempty"` // YYYY-MM-DD
	MoodEntries      []MoodEntry           `json:"moodEntries"`
	Habits           []Habit               `json:"habits"`
	JournalEntries   []JournalEntry        `json:"journalEntries"`
	BloomScore       BloomScore            `json:"bloomScore"`
	DailyBloomScores map[string]BloomScore `json:"dailyBloomScores"`
	ChatMessages     []ChatMessage         `json:"chatMessages"`
	SelectedTheme    string                `json:"selectedTheme"`
}

// Normalize initializes any nil collections. Older or hand-edited payloads
// may omit fields entirely; loading must default them rather than reject.
func (s *AppState) Normalize() {
	if s.MoodEntries == nil {
		s.MoodEntries = []MoodEntry{}
	}
	if s.Habits == nil {
		s.Habits = []Habit{}
	}
	if s.JournalEntries == nil {
		s.JournalEntries = []JournalEntry{}
	}
	if s.DailyBloomScores == nil {
		s.DailyBloomScores = map[string]BloomScore{}
	}
	if s.ChatMessages == nil {
		s.ChatMessages = []ChatMessage{}
	}
}

// Clone returns a deep copy of the snapshot.
func (s AppState) Clone() AppState {
	out := s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	out.MoodEntries = append([]MoodEntry(nil), s.MoodEntries...)
	out.Habits = make([]Habit, len(s.Habits))
	for i, h := range s.Habits {
		if h.LastCompletedDate != nil {
			t := *h.LastCompletedDate
			h.LastCompletedDate = &t
		}
		out.Habits[i] = h
	}
	out.JournalEntries = append([]JournalEntry(nil), s.JournalEntries...)
	out.ChatMessages = append([]ChatMessage(nil), s.ChatMessages...)
	out.DailyBloomScores = make(map[string]BloomScore, len(s.DailyBloomScores))
	for k, v := range s.DailyBloomScores {
		out.DailyBloomScores[k] = v
	}
	return out
}

// CompletedHabits counts habits completed today.
func (s AppState) CompletedHabits() int {
	n := 0
	for _, h := range s.Habits {
		if h.Completed {
			n++
		}
	}
	return n
}
