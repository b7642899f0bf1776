package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

type ResetCmd struct {
	Yes bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if !c.Yes {
		fmt.Print("This will erase all moods, habits, journal entries and scores. Continue? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	// A pre-reset backup is the only way back from here
	if _, err := os.Stat(ctx.Store.GetConfigPath()); err == nil {
		ctx.PerformAutomaticBackup()
	}

	sess := ctx.OpenSession()
	defer sess.Close()
	sess.Reset()

	fmt.Println("All data cleared. Fresh start!")
	return nil
}
