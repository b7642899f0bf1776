package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/bloom/internal/coach"
	"github.com/julianstephens/bloom/internal/engine"
	"github.com/julianstephens/bloom/internal/models"
	"github.com/julianstephens/bloom/internal/tui/components/habitlist"
	"github.com/julianstephens/bloom/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.habitList.SetSize(msg.Width, msg.Height-6)
		m.journal.SetWidth(msg.Width - 4)
		return m, nil

	case habitlist.ToggleHabitMsg:
		state := m.sess.Dispatch(engine.ToggleHabit{HabitID: msg.ID})
		m.habitList.SetHabits(state.Habits)
		return m, nil

	case coachReplyMsg:
		m.coachTyping = false
		reply := m.sess.Engine().NewChatMessage(msg.reply, false)
		m.sess.Dispatch(engine.AddChatMessage{Message: reply})
		return m, nil
	}

	if m.state == StateLogin {
		return m.updateLogin(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Tab):
			return m.switchTo((m.state + 1) % tabCount)
		case key.Matches(keyMsg, m.keys.ShiftTab):
			return m.switchTo((m.state - 1 + tabCount) % tabCount)
		case key.Matches(keyMsg, m.keys.Help):
			if m.state != StateJournal && m.state != StateCoach {
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			}
		}
	}

	switch m.state {
	case StateMood:
		return m.updateMood(msg)
	case StateHabits:
		var cmd tea.Cmd
		m.habitList, cmd = m.habitList.Update(msg)
		return m, cmd
	case StateJournal:
		return m.updateJournal(msg)
	case StateCoach:
		return m.updateCoach(msg)
	case StateThemes:
		return m.updateThemes(msg)
	}
	return m, nil
}

// switchTo changes screens, keeping the snapshot's current-screen marker
// in sync and recomputing on entry to the score view.
func (m Model) switchTo(state SessionState) (tea.Model, tea.Cmd) {
	m.state = state
	m.moodFeedback = ""
	m.journalNote = ""
	m.sess.Dispatch(engine.SetCurrentScreen{Screen: screenNames[state]})

	var cmd tea.Cmd
	switch state {
	case StateScore:
		m.sess.Dispatch(engine.RecomputeScore{})
	case StateJournal:
		cmd = m.journal.Focus()
	case StateCoach:
		cmd = m.chatInput.Focus()
	case StateHabits:
		m.habitList.SetHabits(m.sess.State().Habits)
	}
	return m, cmd
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.loginForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.loginForm = f
	}

	if m.loginForm.State == huh.StateCompleted {
		name := strings.TrimSpace(m.loginForm.GetString("name"))
		state := m.sess.State()
		m.sess.Dispatch(engine.SetUser{User: models.User{Name: name, Theme: state.SelectedTheme}})
		return m.switchTo(StateHome)
	}
	return m, cmd
}

func (m Model) updateMood(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.moodCursor > 0 {
			m.moodCursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.moodCursor < len(models.Moods)-1 {
			m.moodCursor++
		}
	case key.Matches(keyMsg, m.keys.Enter):
		mood := models.Moods[m.moodCursor]
		entry := m.sess.Engine().NewMoodEntry(mood.Emoji, "")
		m.sess.Dispatch(engine.AddMoodEntry{Entry: entry})
		m.moodFeedback = coach.MoodResponse(mood.Value)
	}
	return m, nil
}

func (m Model) updateJournal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+s" {
		content := strings.TrimSpace(m.journal.Value())
		if err := validation.JournalContent(content); err != nil {
			m.journalNote = err.Error()
			return m, nil
		}
		entry := m.sess.Engine().NewJournalEntry(content)
		m.sess.Dispatch(engine.AddJournalEntry{Entry: entry})
		m.journal.Reset()
		m.journalNote = "Saved. 🌱"
		return m, nil
	}

	var cmd tea.Cmd
	m.journal, cmd = m.journal.Update(msg)
	return m, cmd
}

func (m Model) updateCoach(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Enter) && !m.coachTyping {
		content := strings.TrimSpace(m.chatInput.Value())
		if validation.ChatMessage(content) != nil {
			return m, nil
		}
		userMsg := m.sess.Engine().NewChatMessage(content, true)
		m.sess.Dispatch(engine.AddChatMessage{Message: userMsg})
		m.chatInput.Reset()
		m.coachTyping = true

		reply := coach.Respond(content)
		return m, tea.Tick(coachTypingDelay, func(time.Time) tea.Msg {
			return coachReplyMsg{reply: reply}
		})
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m Model) updateThemes(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.themeCursor > 0 {
			m.themeCursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.themeCursor < len(models.Themes)-1 {
			m.themeCursor++
		}
	case key.Matches(keyMsg, m.keys.Enter):
		m.sess.Dispatch(engine.SetTheme{Theme: models.Themes[m.themeCursor]})
	}
	return m, nil
}
