package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/bloom/internal/cli"
	"github.com/julianstephens/bloom/internal/engine"
)

type InitCmd struct {
	Force bool `help:"Delete existing storage before initializing."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()

	if c.Force {
		if _, err := os.Stat(path); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := ctx.Store.Clear(); err != nil {
				return err
			}
			fmt.Printf("Deleted existing storage at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(engine.Seed(ctx.Engine.Now())); err != nil {
		return err
	}

	fmt.Printf("Initialized bloom storage at: %s\n", path)
	return nil
}
