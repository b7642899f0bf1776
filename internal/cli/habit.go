package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/bloom/internal/engine"
	"github.com/julianstephens/bloom/internal/models"
)

type HabitCmd struct {
	List   HabitListCmd   `cmd:"" help:"Show today's habits."`
	Toggle HabitToggleCmd `cmd:"" help:"Toggle a habit's completion for today."`
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	sess := ctx.OpenSession()
	defer sess.Close()

	state := sess.State()
	if len(state.Habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, h := range state.Habits {
		mark := "○"
		if h.Completed {
			mark = "✓"
		}
		line := fmt.Sprintf("%s %s", mark, h.Name)
		if h.Streak > 0 {
			line += fmt.Sprintf("  🔥 %d day streak", h.Streak)
		}
		fmt.Println(line)
	}
	fmt.Printf("\n%d of %d completed today\n", state.CompletedHabits(), len(state.Habits))
	return nil
}

type HabitToggleCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	sess := ctx.OpenSession()
	defer sess.Close()

	habit, ok := findHabit(sess.State().Habits, c.Habit)
	if !ok {
		return fmt.Errorf("no habit matching %q", c.Habit)
	}

	state := sess.Dispatch(engine.ToggleHabit{HabitID: habit.ID})
	updated, _ := findHabit(state.Habits, habit.ID)
	if updated.Completed {
		fmt.Printf("Completed %q (streak: %d)\n", updated.Name, updated.Streak)
	} else {
		fmt.Printf("Unchecked %q (streak reset)\n", updated.Name)
	}
	fmt.Printf("Bloom score: %d\n", state.BloomScore.Overall)
	return nil
}

// findHabit matches by exact id first, then case-insensitive name.
func findHabit(habits []models.Habit, key string) (models.Habit, bool) {
	for _, h := range habits {
		if h.ID == key {
			return h, true
		}
	}
	for _, h := range habits {
		if strings.EqualFold(h.Name, key) {
			return h, true
		}
	}
	return models.Habit{}, false
}
