package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/bloom/internal/coach"
	"github.com/julianstephens/bloom/internal/engine"
	"github.com/julianstephens/bloom/internal/validation"
)

type CoachCmd struct {
	Message []string `arg:"" optional:"" help:"Message for the coach."`
}

func (c *CoachCmd) Run(ctx *Context) error {
	message := strings.TrimSpace(strings.Join(c.Message, " "))
	if message == "" {
		fmt.Println("Try one of:")
		for _, p := range coach.QuickPrompts {
			fmt.Printf("  bloom coach %q\n", p)
		}
		return nil
	}
	if err := validation.ChatMessage(message); err != nil {
		return err
	}

	sess := ctx.OpenSession()
	defer sess.Close()

	eng := sess.Engine()
	sess.Dispatch(engine.AddChatMessage{Message: eng.NewChatMessage(message, true)})
	reply := coach.Respond(message)
	sess.Dispatch(engine.AddChatMessage{Message: eng.NewChatMessage(reply, false)})

	fmt.Println(reply)
	return nil
}

type TipCmd struct{}

func (c *TipCmd) Run(ctx *Context) error {
	tip := coach.RandomTip()
	fmt.Printf("%s %s\n%s\n", tip.Icon, tip.Category, tip.Text)
	return nil
}
