package system

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/bloom/internal/cli"
	"github.com/julianstephens/bloom/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	sess := ctx.OpenSession()
	defer sess.Close()

	p := tea.NewProgram(tui.NewModel(sess), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
