package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/bloom/internal/constants"
	"github.com/julianstephens/bloom/internal/models"
	"github.com/julianstephens/bloom/internal/utils"
)

// StarterHabits are seeded at first run.
var StarterHabits = []string{"Drink Water", "Stretch", "Journal"}

// Seed returns a fresh first-run snapshot: no user, the starter habit set,
// empty collections, a zeroed score, and the default theme.
func Seed(now time.Time) models.AppState {
	habits := make([]models.Habit, 0, len(StarterHabits))
	for _, name := range StarterHabits {
		habits = append(habits, models.Habit{
			ID:   uuid.NewString(),
			Name: name,
		})
	}

	state := models.AppState{
		CurrentScreen:  constants.InitialScreen,
		LastActiveDate: utils.DayKey(now),
		Habits:         habits,
		SelectedTheme:  constants.DefaultTheme,
	}
	state.Normalize()
	return state
}
