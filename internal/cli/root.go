package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/bloom/internal/backup"
	"github.com/julianstephens/bloom/internal/config"
	"github.com/julianstephens/bloom/internal/engine"
	"github.com/julianstephens/bloom/internal/logger"
	"github.com/julianstephens/bloom/internal/session"
	"github.com/julianstephens/bloom/internal/storage"
)

// Context carries the wiring shared by all commands.
type Context struct {
	Store     storage.Provider
	Engine    *engine.Engine
	Config    config.Config
	ConfigDir string
}

// OpenSession loads the snapshot (applying the day rollover) and returns
// the live session.
func (c *Context) OpenSession() *session.Session {
	return session.Open(c.Store, c.Engine)
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ScoreBar renders a 0-100 score as a fixed-width text gauge.
func ScoreBar(score, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := score * width / 100
	return fmt.Sprintf("[%s%s]", strings.Repeat("█", filled), strings.Repeat("░", width-filled))
}

// ScoreMessage returns the encouragement shown with an overall score.
func ScoreMessage(score int) string {
	switch {
	case score >= 80:
		return "You're absolutely blooming! Your dedication shines through every aspect of your wellness journey. 🌟"
	case score >= 60:
		return "Fantastic momentum! You're cultivating beautiful habits and nurturing meaningful growth. 🌱"
	case score >= 40:
		return "Steady progress! Each mindful choice you make is building a stronger, more resilient you. 🌿"
	default:
		return "Every wellness journey begins with courage. You're here, you're trying, and that's incredibly powerful. 💚"
	}
}
