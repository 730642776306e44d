package workshop

import (
	"context"
	"fmt"

	"github.com/osse101/Toolbox_Go/internal/catalog"
	"github.com/osse101/Toolbox_Go/internal/domain"
	"github.com/osse101/Toolbox_Go/internal/history"
	"github.com/osse101/Toolbox_Go/internal/menu"
)

// LastActions looks up the most recent action recorded for a toolbox key
type LastActions interface {
	Last(key string) (history.Entry, bool)
}

// Toolbox is the top-level screen listing every tool by key
type Toolbox struct {
	workshop *Workshop
	entries  []catalog.Entry
	history  LastActions
}

// NewToolbox creates the toolbox screen. last may be nil.
func NewToolbox(w *Workshop, entries []catalog.Entry, last LastActions) *Toolbox {
	return &Toolbox{
		workshop: w,
		entries:  entries,
		history:  last,
	}
}

// Run shows the toolbox until the operator exits
func (tb *Toolbox) Run(ctx context.Context) error {
	if err := tb.workshop.loop.Run(ctx, tb.menu); err != nil {
		return err
	}
	tb.workshop.console.Println(MsgGoodbye)
	return nil
}

func (tb *Toolbox) menu() menu.Menu {
	options := make([]menu.Option, 0, len(tb.entries))
	for _, entry := range tb.entries {
		options = append(options, menu.Option{
			Key:   entry.Key,
			Label: tb.label(entry),
			Run: func(ctx context.Context) error {
				return tb.manage(ctx, entry)
			},
		})
	}

	return menu.Menu{
		Title:        ToolboxTitle,
		Options:      options,
		ExitKey:      ToolboxExitKey,
		ExitLabel:    ToolboxExitLabel,
		Prompt:       ToolboxPrompt,
		Invalid:      ToolboxInvalid,
		InvalidPause: ToolboxInvalidPause,
	}
}

func (tb *Toolbox) label(entry catalog.Entry) string {
	label := fmt.Sprintf(ToolboxEntryFormat, entry.Tool.Name(), entry.Tool.Durability())
	if tb.history == nil {
		return label
	}
	if last, ok := tb.history.Last(entry.Key); ok {
		label = fmt.Sprintf(ToolboxHistoryFormat, label, last.Summary())
	}
	return label
}

// manage shows the Use / Repair / Back menu for one tool
func (tb *Toolbox) manage(ctx context.Context, entry catalog.Entry) error {
	w := tb.workshop
	return w.loop.Run(ctx, func() menu.Menu {
		return menu.Menu{
			Title: fmt.Sprintf(ToolMenuTitleFormat, entry.Tool.Name()),
			Options: []menu.Option{
				{Label: domain.ActionUse, Run: func(ctx context.Context) error {
					return w.Use(ctx, entry.Key, entry.Tool)
				}},
				{Label: domain.ActionRepair, Run: func(ctx context.Context) error {
					return w.Repair(ctx, entry.Key, entry.Tool)
				}},
			},
		}
	})
}
