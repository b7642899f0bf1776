package cli

import (
	"fmt"

	"github.com/julianstephens/bloom/internal/coach"
	"github.com/julianstephens/bloom/internal/engine"
	"github.com/julianstephens/bloom/internal/models"
	"github.com/julianstephens/bloom/internal/validation"
)

type MoodCmd struct {
	Add  MoodAddCmd  `cmd:"" help:"Record a mood check-in."`
	List MoodListCmd `cmd:"" help:"List recorded moods."`
}

type MoodAddCmd struct {
	Emoji string `arg:"" help:"Mood emoji (or its label, e.g. 'Happy')."`
	Note  string `help:"Optional note."`
}

func (c *MoodAddCmd) Run(ctx *Context) error {
	emoji := c.Emoji
	// Accept labels as a convenience on keyboards without emoji input
	for _, m := range models.Moods {
		if m.Label == c.Emoji {
			emoji = m.Emoji
			break
		}
	}
	if err := validation.MoodSymbol(emoji); err != nil {
		return err
	}

	sess := ctx.OpenSession()
	defer sess.Close()

	entry := sess.Engine().NewMoodEntry(emoji, c.Note)
	state := sess.Dispatch(engine.AddMoodEntry{Entry: entry})

	fmt.Printf("Recorded %s %s\n", emoji, models.MoodLabel(emoji))
	fmt.Println(coach.MoodResponse(models.MoodValue(emoji)))
	fmt.Printf("Bloom score: %d\n", state.BloomScore.Overall)
	return nil
}

type MoodListCmd struct {
	Limit int `default:"14" help:"Maximum entries to show, newest last."`
}

func (c *MoodListCmd) Run(ctx *Context) error {
	sess := ctx.OpenSession()
	defer sess.Close()

	entries := sess.State().MoodEntries
	if len(entries) == 0 {
		fmt.Println("No moods recorded yet.")
		return nil
	}

	start := 0
	if c.Limit > 0 && len(entries) > c.Limit {
		start = len(entries) - c.Limit
	}
	for _, m := range entries[start:] {
		line := fmt.Sprintf("%s  %s %s", m.Date.Format("2006-01-02 15:04"), m.Emoji, models.MoodLabel(m.Emoji))
		if m.Note != "" {
			line += " (" + m.Note + ")"
		}
		fmt.Println(line)
	}
	return nil
}
