package system

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/bloom/internal/cli"
)

type DebugCmd struct {
	State DebugStateCmd `cmd:"" help:"Dump the current snapshot as JSON."`
	Path  DebugPathCmd  `cmd:"" help:"Show configuration and storage paths."`
}

type DebugStateCmd struct{}

func (c *DebugStateCmd) Run(ctx *cli.Context) error {
	state, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

type DebugPathCmd struct{}

func (c *DebugPathCmd) Run(ctx *cli.Context) error {
	fmt.Printf("Config dir:   %s\n", ctx.ConfigDir)
	fmt.Printf("Storage:      %s (%s backend)\n", ctx.Store.GetConfigPath(), ctx.Config.Storage.Backend)
	fmt.Printf("Timezone:     %s\n", ctx.Config.App.Timezone)

	state, err := ctx.Store.Load()
	if err != nil {
		fmt.Printf("Snapshot:     unavailable (%v)\n", err)
		return nil
	}
	fmt.Printf("Snapshot:     %d moods, %d habits, %d journal entries, %d chat messages, %d score days\n",
		len(state.MoodEntries), len(state.Habits), len(state.JournalEntries),
		len(state.ChatMessages), len(state.DailyBloomScores))
	return nil
}
