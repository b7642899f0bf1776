package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/bloom/internal/session"
	"github.com/julianstephens/bloom/internal/tui/components/habitlist"
)

type SessionState int

const (
	StateHome SessionState = iota
	StateMood
	StateHabits
	StateJournal
	StateScore
	StateCoach
	StateThemes
	StateLogin

	tabCount = 7
)

var screenNames = map[SessionState]string{
	StateHome:    "home",
	StateMood:    "mood",
	StateHabits:  "habits",
	StateJournal: "journal",
	StateScore:   "score",
	StateCoach:   "coach",
	StateThemes:  "themes",
	StateLogin:   "login",
}

// coachTypingDelay simulates the coach thinking before replying. Purely
// cosmetic; the reply lands through the normal Update loop so it can never
// race a user mutation.
const coachTypingDelay = 1500 * time.Millisecond

type coachReplyMsg struct {
	reply string
}

var errEmptyName = errors.New("please enter a name")

type Model struct {
	sess  *session.Session
	state SessionState
	keys  KeyMap
	help  help.Model

	habitList habitlist.Model
	journal   textarea.Model
	chatInput textinput.Model
	loginForm *huh.Form
	loginName string

	moodCursor   int
	themeCursor  int
	moodFeedback string
	journalNote  string
	coachTyping  bool

	width    int
	height   int
	quitting bool
}

func NewModel(sess *session.Session) Model {
	state := sess.State()

	journal := textarea.New()
	journal.Placeholder = "What's on your mind today?"
	journal.CharLimit = 0

	chatInput := textinput.New()
	chatInput.Placeholder = "Tell the coach how you're doing..."

	m := Model{
		sess:      sess,
		state:     StateHome,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		habitList: habitlist.New(state.Habits),
		journal:   journal,
		chatInput: chatInput,
	}

	if state.User == nil {
		m.state = StateLogin
		m.loginForm = m.newLoginForm()
	}
	return m
}

func (m Model) newLoginForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Welcome to bloom 🌸").
				Description("What should we call you?").
				Validate(func(s string) error {
					if s == "" {
						return errEmptyName
					}
					return nil
				}),
		),
	)
}

func (m Model) Init() tea.Cmd {
	if m.loginForm != nil {
		return m.loginForm.Init()
	}
	return textinput.Blink
}
