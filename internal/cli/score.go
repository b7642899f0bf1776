package cli

import (
	"fmt"

	"github.com/julianstephens/bloom/internal/constants"
	"github.com/julianstephens/bloom/internal/engine"
	"github.com/julianstephens/bloom/internal/utils"
)

type ScoreCmd struct {
	History bool `help:"Show the 7-day score history."`
}

func (c *ScoreCmd) Run(ctx *Context) error {
	sess := ctx.OpenSession()
	defer sess.Close()

	// Entering the score view always recomputes, so the display can never
	// lag behind the data.
	state := sess.Dispatch(engine.RecomputeScore{})
	score := state.BloomScore

	fmt.Printf("Bloom score: %d\n\n", score.Overall)
	fmt.Printf("  Mood        %3d %s\n", score.Mood, ScoreBar(score.Mood, 20))
	fmt.Printf("  Habits      %3d %s\n", score.Habits, ScoreBar(score.Habits, 20))
	fmt.Printf("  Reflection  %3d %s\n", score.Reflection, ScoreBar(score.Reflection, 20))
	fmt.Printf("\n%s\n", ScoreMessage(score.Overall))

	if c.History {
		fmt.Println("\nLast 7 days:")
		for _, day := range utils.LastNDays(sess.Engine().Now(), constants.ScoreWindowDays) {
			if s, ok := state.DailyBloomScores[day]; ok {
				fmt.Printf("  %s  %3d %s\n", day, s.Overall, ScoreBar(s.Overall, 20))
			} else {
				fmt.Printf("  %s    - no score recorded\n", day)
			}
		}
	}
	return nil
}
