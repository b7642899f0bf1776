package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/bloom/internal/constants"
	"github.com/julianstephens/bloom/internal/models"
	"github.com/julianstephens/bloom/internal/utils"
)

var tabTitles = []string{"Home", "Mood", "Habits", "Journal", "Score", "Coach", "Themes"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == StateLogin {
		return m.loginForm.View()
	}

	var content string
	switch m.state {
	case StateHome:
		content = m.viewHome()
	case StateMood:
		content = m.viewMood()
	case StateHabits:
		content = m.habitList.View()
	case StateJournal:
		content = m.viewJournal()
	case StateScore:
		content = m.viewScore()
	case StateCoach:
		content = m.viewCoach()
	case StateThemes:
		content = m.viewThemes()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHome() string {
	state := m.sess.State()

	name := "there"
	if state.User != nil {
		name = state.User.Name
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Hello, %s 🌸", name)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Bloom score today: %s\n",
		scoreStyle(state.BloomScore.Overall).Render(fmt.Sprintf("%d", state.BloomScore.Overall))))
	b.WriteString(fmt.Sprintf("Habits: %d of %d completed\n", state.CompletedHabits(), len(state.Habits)))

	today := utils.DayKey(m.sess.Engine().Now())
	moodsToday := 0
	for _, e := range state.MoodEntries {
		if utils.DayKey(e.Date) == today {
			moodsToday++
		}
	}
	b.WriteString(fmt.Sprintf("Mood check-ins today: %d\n", moodsToday))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("tab through the screens to log moods, habits and reflections"))
	return b.String()
}

func (m Model) viewMood() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("How are you feeling?"))
	b.WriteString("\n\n")
	for i, mood := range models.Moods {
		line := fmt.Sprintf("%s %s", mood.Emoji, mood.Label)
		if i == m.moodCursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	if m.moodFeedback != "" {
		b.WriteString("\n" + coachStyle.Render(m.moodFeedback) + "\n")
	}
	return b.String()
}

func (m Model) viewJournal() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Journal"))
	b.WriteString("\n")
	b.WriteString(m.journal.View())
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("ctrl+s to save"))
	if m.journalNote != "" {
		b.WriteString("  " + m.journalNote)
	}
	return b.String()
}

func (m Model) viewScore() string {
	state := m.sess.State()
	score := state.BloomScore

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Bloom score: %d", score.Overall)))
	b.WriteString("\n\n")
	b.WriteString(scoreLine("Mood", score.Mood))
	b.WriteString(scoreLine("Habits", score.Habits))
	b.WriteString(scoreLine("Reflection", score.Reflection))

	b.WriteString("\n" + subtleStyle.Render("Last 7 days") + "\n")
	for _, day := range utils.LastNDays(m.sess.Engine().Now(), constants.ScoreWindowDays) {
		if s, ok := state.DailyBloomScores[day]; ok {
			b.WriteString(fmt.Sprintf("  %s  %s\n", day, scoreStyle(s.Overall).Render(bar(s.Overall))))
		} else {
			b.WriteString(fmt.Sprintf("  %s  %s\n", day, subtleStyle.Render("no data")))
		}
	}
	return b.String()
}

func scoreLine(label string, score int) string {
	return fmt.Sprintf("  %-11s %3d %s\n", label, score, scoreStyle(score).Render(bar(score)))
}

func bar(score int) string {
	const width = 20
	filled := score * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func (m Model) viewCoach() string {
	state := m.sess.State()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Coach"))
	b.WriteString("\n")

	messages := state.ChatMessages
	if len(messages) > 8 {
		messages = messages[len(messages)-8:]
	}
	for _, msg := range messages {
		if msg.IsUser {
			b.WriteString(userMsgStyle.Render("you: "+msg.Content) + "\n")
		} else {
			b.WriteString(coachStyle.Render("coach: "+msg.Content) + "\n")
		}
	}
	if m.coachTyping {
		b.WriteString(subtleStyle.Render("coach is typing...") + "\n")
	}

	b.WriteString("\n" + m.chatInput.View())
	return b.String()
}

func (m Model) viewThemes() string {
	current := m.sess.State().SelectedTheme

	var b strings.Builder
	b.WriteString(titleStyle.Render("Themes"))
	b.WriteString("\n\n")
	for i, t := range models.Themes {
		line := string(t)
		if line == current {
			line += " (current)"
		}
		if i == m.themeCursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
