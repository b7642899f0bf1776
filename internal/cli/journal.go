package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/bloom/internal/engine"
	"github.com/julianstephens/bloom/internal/validation"
)

type JournalCmd struct {
	Add  JournalAddCmd  `cmd:"" help:"Write a journal entry."`
	List JournalListCmd `cmd:"" help:"List journal entries."`
}

type JournalAddCmd struct {
	Content []string `arg:"" help:"Entry text."`
}

func (c *JournalAddCmd) Run(ctx *Context) error {
	content := strings.TrimSpace(strings.Join(c.Content, " "))
	if err := validation.JournalContent(content); err != nil {
		return err
	}

	sess := ctx.OpenSession()
	defer sess.Close()

	entry := sess.Engine().NewJournalEntry(content)
	state := sess.Dispatch(engine.AddJournalEntry{Entry: entry})

	fmt.Println("Journal entry saved.")
	fmt.Printf("Reflection score: %d, bloom score: %d\n", state.BloomScore.Reflection, state.BloomScore.Overall)
	return nil
}

type JournalListCmd struct {
	Limit int `default:"10" help:"Maximum entries to show, newest last."`
}

func (c *JournalListCmd) Run(ctx *Context) error {
	sess := ctx.OpenSession()
	defer sess.Close()

	entries := sess.State().JournalEntries
	if len(entries) == 0 {
		fmt.Println("No journal entries yet.")
		return nil
	}

	start := 0
	if c.Limit > 0 && len(entries) > c.Limit {
		start = len(entries) - c.Limit
	}
	for _, j := range entries[start:] {
		fmt.Printf("%s\n%s\n\n", j.Date.Format("2006-01-02 15:04"), j.Content)
	}
	return nil
}
