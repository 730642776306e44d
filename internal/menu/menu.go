// Package menu implements the numbered action loop shared by every tool
// menu and by the toolbox screen.
package menu

import (
	"context"
	"fmt"
	"strconv"

	"github.com/osse101/Toolbox_Go/internal/console"
	"github.com/osse101/Toolbox_Go/internal/logger"
)

// Option is one numbered entry
type Option struct {
	// Key overrides the default 1-based key
	Key   string
	Label string
	Run   func(ctx context.Context) error
}

// Menu is a single rendering of a menu. The loop rebuilds it before every
// redisplay so banners and labels reflect current tool state.
type Menu struct {
	Banner  string
	Title   string
	Options []Option

	// ExitKey defaults to len(Options)+1 and ExitLabel to "Back"
	ExitKey   string
	ExitLabel string

	// Prompt, Invalid and InvalidPause override the default operator text
	Prompt       string
	Invalid      string
	InvalidPause string
}

func (m Menu) key(i int) string {
	if m.Options[i].Key != "" {
		return m.Options[i].Key
	}
	return strconv.Itoa(i + 1)
}

func (m Menu) exitKey() string {
	if m.ExitKey != "" {
		return m.ExitKey
	}
	return strconv.Itoa(len(m.Options) + 1)
}

func (m Menu) exitLabel() string {
	if m.ExitLabel != "" {
		return m.ExitLabel
	}
	return DefaultExitLabel
}

func (m Menu) prompt() string {
	if m.Prompt != "" {
		return m.Prompt
	}
	return fmt.Sprintf(MsgPromptFormat, m.exitKey())
}

func (m Menu) invalid() string {
	if m.Invalid != "" {
		return m.Invalid
	}
	return fmt.Sprintf(MsgInvalidChoiceFormat, m.exitKey())
}

func (m Menu) invalidPause() string {
	if m.InvalidPause != "" {
		return m.InvalidPause
	}
	return MsgReturnToMenu
}

// Lookup returns the option bound to choice
func (m Menu) Lookup(choice string) (Option, bool) {
	for i := range m.Options {
		if m.key(i) == choice {
			return m.Options[i], true
		}
	}
	return Option{}, false
}

// Loop presents menus on a console and dispatches selections
type Loop struct {
	console *console.Console
}

// NewLoop creates a loop bound to c
func NewLoop(c *console.Console) *Loop {
	return &Loop{console: c}
}

// Run shows build() repeatedly and runs the selected option until the exit
// key is chosen. Invalid input is reported and the menu redisplayed without
// running anything. Errors from options, end of input and context
// cancellation end the loop and are returned.
func (l *Loop) Run(ctx context.Context, build func() Menu) error {
	log := logger.FromContext(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m := build()
		l.render(m)

		choice, err := l.console.Prompt(m.prompt())
		if err != nil {
			return err
		}

		if choice == m.exitKey() {
			return nil
		}

		opt, ok := m.Lookup(choice)
		if !ok {
			log.Debug(LogMsgInvalidChoice, "menu", m.Title, "choice", choice)
			l.console.Error(m.invalid())
			if err := l.console.PauseWith(m.invalidPause()); err != nil {
				return err
			}
			continue
		}

		log.Debug(LogMsgOptionSelected, "menu", m.Title, "option", opt.Label)
		if err := opt.Run(ctx); err != nil {
			return err
		}
	}
}

func (l *Loop) render(m Menu) {
	l.console.Clear()
	if m.Banner != "" {
		l.console.Println(m.Banner)
	}
	l.console.Header(m.Title)
	for i, opt := range m.Options {
		l.console.Printf("%s. %s\n", m.key(i), opt.Label)
	}
	l.console.Printf("%s. %s\n", m.exitKey(), m.exitLabel())
}
