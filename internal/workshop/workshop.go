// Package workshop drives tools from the console: the per-variant action
// menus, repair, and the toolbox screen that dispatches between them.
package workshop

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/Toolbox_Go/internal/console"
	"github.com/osse101/Toolbox_Go/internal/domain"
	"github.com/osse101/Toolbox_Go/internal/event"
	"github.com/osse101/Toolbox_Go/internal/logger"
	"github.com/osse101/Toolbox_Go/internal/menu"
	"github.com/osse101/Toolbox_Go/internal/tool"
	"github.com/osse101/Toolbox_Go/internal/utils"
)

// Workshop runs tool menus on a console and publishes what happens to them
type Workshop struct {
	console *console.Console
	loop    *menu.Loop
	bus     event.Bus
	rng     utils.Rand
}

// New creates a workshop. A nil bus gets a private in-memory bus.
func New(c *console.Console, bus event.Bus, rng utils.Rand) *Workshop {
	if bus == nil {
		bus = event.NewMemoryBus()
	}
	return &Workshop{
		console: c,
		loop:    menu.NewLoop(c),
		bus:     bus,
		rng:     rng,
	}
}

// Use opens the action menu for t. A broken tool refuses to open its menu
// and reports the damage instead.
func (w *Workshop) Use(ctx context.Context, key string, t tool.Tool) error {
	if err := tool.Guard(t, tool.ActivityUse); err != nil {
		w.reportError(ctx, key, t, domain.ActionUse, err)
		return w.console.Pause()
	}

	var build func() menu.Menu
	switch v := t.(type) {
	case *tool.Hammer:
		build = w.hammerMenu(key, v)
	case *tool.Drill:
		build = w.drillMenu(key, v)
	case *tool.Saw:
		build = w.sawMenu(key, v)
	case *tool.Screwdriver:
		build = w.screwdriverMenu(key, v)
	case *tool.MeasuringTape:
		build = w.tapeMenu(key, v)
	case *tool.Wrench:
		build = w.wrenchMenu(key, v)
	default:
		return fmt.Errorf("%w: %T", domain.ErrUnknownToolKind, t)
	}

	return w.loop.Run(ctx, build)
}

// Repair restores t to full durability and confirms it to the operator
func (w *Workshop) Repair(ctx context.Context, key string, t tool.Tool) error {
	before := t.Durability()
	t.Repair()

	w.console.Success("%s", tool.RepairMessage(t))
	w.publish(ctx, event.ToolRepaired, key, t, domain.ActionRepair, before)
	logger.FromContext(ctx).Info(LogMsgToolRepaired, "key", key, "tool", t.Name(), "durability_before", before)

	return w.console.Pause()
}

// action binds a menu label to a tool operation run through perform
func (w *Workshop) action(key string, t tool.Tool, label string, fn func() error) menu.Option {
	return menu.Option{
		Label: label,
		Run: func(ctx context.Context) error {
			return w.perform(ctx, key, t, label, fn)
		},
	}
}

// perform runs fn, publishes the outcome and waits for Enter. Tool errors
// are reported to the operator; console errors end the menu.
func (w *Workshop) perform(ctx context.Context, key string, t tool.Tool, action string, fn func() error) error {
	before := t.Durability()
	err := fn()

	if err == nil || t.Durability() != before {
		w.publish(ctx, event.ToolActionPerformed, key, t, action, before)
		logger.FromContext(ctx).Debug(LogMsgActionPerformed,
			"key", key, "action", action, "durability", t.Durability())
	}

	if err != nil {
		if !isToolError(err) {
			return err
		}
		w.reportError(ctx, key, t, action, err)
	}

	return w.console.Pause()
}

func isToolError(err error) bool {
	return errors.Is(err, domain.ErrToolBroken) ||
		errors.Is(err, domain.ErrInvalidSelection) ||
		errors.Is(err, domain.ErrInvalidInput)
}

// reportError prints the operator message for a tool error
func (w *Workshop) reportError(ctx context.Context, key string, t tool.Tool, action string, err error) {
	log := logger.FromContext(ctx)

	var broken *tool.BrokenError
	if errors.As(err, &broken) {
		w.console.Error(MsgDamagedFormat, broken.Kind.Noun(), broken.Activity)
		w.publish(ctx, event.ToolActionRefused, key, t, action, t.Durability())
		log.Info(LogMsgActionRefused, "key", key, "action", action)
		return
	}

	var msg string
	switch {
	case errors.Is(err, domain.ErrInvalidSelection):
		msg = tool.MsgInvalidSelection
	case errors.Is(err, tool.ErrSpeedNotPositive):
		msg = tool.MsgRPMNotPositive
	case errors.Is(err, tool.ErrSpeedNotNumeric):
		msg = tool.MsgRPMNotNumeric
	case errors.Is(err, tool.ErrIntervalNotNumeric), errors.Is(err, tool.ErrIntervalOutOfRange):
		msg = tool.MsgIntervalInvalid
	case errors.Is(err, tool.ErrTooManyMarks):
		msg = fmt.Sprintf(tool.MsgIntervalTooFine, tool.MaxMarks)
	default:
		msg = err.Error()
	}

	log.Debug(LogMsgInvalidInput, "key", key, "action", action, "error", err)
	w.console.Error("%s", msg)
}

func (w *Workshop) publish(ctx context.Context, eventType event.Type, key string, t tool.Tool, action string, before int) {
	payload := domain.ToolActionPayload{
		Key:              key,
		Tool:             t.Name(),
		Kind:             t.Kind(),
		Action:           action,
		DurabilityBefore: before,
		DurabilityAfter:  t.Durability(),
	}
	if err := w.bus.Publish(ctx, event.NewToolEvent(eventType, payload)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", eventType, "error", err)
	}
}

// render prints a timed action: start line, countdown, completion line
func (w *Workshop) render(report tool.Report) {
	w.console.Println(report.Start)
	w.console.Countdown(report.Countdown)
	w.console.Success("%s", report.Done)
}

// pick lists labels as a numbered picker and reads the operator's choice
func (w *Workshop) pick(header, prompt string, labels []string) (string, error) {
	w.console.Println(header)
	for i, label := range labels {
		w.console.Printf("%d. %s\n", i+1, label)
	}
	return w.console.Prompt(prompt)
}

func optionLabels[T comparable](set tool.OptionSet[T], format string) []string {
	values := set.Values()
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = fmt.Sprintf(format, v)
	}
	return labels
}

func useMenuTitle(t tool.Tool) string {
	return fmt.Sprintf(UseMenuTitleFormat, t.Kind().DisplayName())
}
