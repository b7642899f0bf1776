package cli

import (
	"fmt"

	"github.com/julianstephens/bloom/internal/engine"
	"github.com/julianstephens/bloom/internal/models"
	"github.com/julianstephens/bloom/internal/validation"
)

type ThemeCmd struct {
	List ThemeListCmd `cmd:"" help:"List available themes."`
	Set  ThemeSetCmd  `cmd:"" help:"Select a theme."`
}

type ThemeListCmd struct{}

func (c *ThemeListCmd) Run(ctx *Context) error {
	sess := ctx.OpenSession()
	defer sess.Close()

	current := sess.State().SelectedTheme
	for _, t := range models.Themes {
		marker := " "
		if string(t) == current {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, t)
	}
	return nil
}

type ThemeSetCmd struct {
	Name string `arg:"" help:"Theme name."`
}

func (c *ThemeSetCmd) Run(ctx *Context) error {
	if err := validation.Theme(c.Name); err != nil {
		return err
	}

	sess := ctx.OpenSession()
	defer sess.Close()

	sess.Dispatch(engine.SetTheme{Theme: models.Theme(c.Name)})
	fmt.Printf("Theme set to %s\n", c.Name)
	return nil
}
