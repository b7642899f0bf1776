// Package validation holds the input-boundary checks. The mutation engine
// deliberately does not re-validate content: blank submissions are
// rejected here, before an intent is ever built.
package validation

import (
	"fmt"
	"strings"

	"github.com/julianstephens/bloom/internal/models"
)

// ErrEmptyContent is reported for blank journal or chat submissions.
type ErrEmptyContent struct {
	Field string
}

func (e ErrEmptyContent) Error() string {
	return fmt.Sprintf("%s cannot be empty", e.Field)
}

// JournalContent rejects empty or whitespace-only journal text.
func JournalContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent{Field: "journal entry"}
	}
	return nil
}

// ChatMessage rejects empty or whitespace-only chat text.
func ChatMessage(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent{Field: "message"}
	}
	return nil
}

// UserName rejects empty profile names.
func UserName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyContent{Field: "name"}
	}
	return nil
}

// Theme rejects unknown theme names.
func Theme(name string) error {
	if !models.ValidTheme(name) {
		return fmt.Errorf("unknown theme %q", name)
	}
	return nil
}

// MoodSymbol rejects symbols outside the registry. Scoring tolerates
// unknown symbols in stored data, but new check-ins must pick from the
// fixed set.
func MoodSymbol(emoji string) error {
	for _, m := range models.Moods {
		if m.Emoji == emoji {
			return nil
		}
	}
	return fmt.Errorf("unknown mood %q", emoji)
}
