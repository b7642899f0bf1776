package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/bloom/internal/engine"
	"github.com/julianstephens/bloom/internal/models"
	"github.com/julianstephens/bloom/internal/validation"
)

type LoginCmd struct {
	Name []string `arg:"" help:"Your name."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	name := strings.TrimSpace(strings.Join(c.Name, " "))
	if err := validation.UserName(name); err != nil {
		return err
	}

	sess := ctx.OpenSession()
	defer sess.Close()

	state := sess.State()
	theme := state.SelectedTheme
	sess.Dispatch(engine.SetUser{User: models.User{Name: name, Theme: theme}})
	sess.Dispatch(engine.SetCurrentScreen{Screen: "home"})

	fmt.Printf("Welcome, %s! 🌸\n", name)
	return nil
}
