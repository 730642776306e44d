package menu

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Toolbox_Go/internal/console"
)

func newLoop(input string) (*Loop, *bytes.Buffer) {
	var out bytes.Buffer
	c := console.New(strings.NewReader(input), &out, console.Options{})
	return NewLoop(c), &out
}

func countingMenu(calls map[string]int) func() Menu {
	return func() Menu {
		return Menu{
			Banner: "Using the test tool",
			Title:  "Test Menu",
			Options: []Option{
				{Label: "First", Run: func(context.Context) error { calls["first"]++; return nil }},
				{Label: "Second", Run: func(context.Context) error { calls["second"]++; return nil }},
			},
		}
	}
}

func TestRun_DispatchesUntilBack(t *testing.T) {
	calls := map[string]int{}
	loop, out := newLoop("1\n2\n1\n3\n")

	err := loop.Run(context.Background(), countingMenu(calls))

	require.NoError(t, err)
	assert.Equal(t, 2, calls["first"])
	assert.Equal(t, 1, calls["second"])
	assert.Contains(t, out.String(), "Using the test tool\n\nTest Menu\n=========\n1. First\n2. Second\n3. Back\n")
	assert.Contains(t, out.String(), "Enter your choice (1-3): ")
}

func TestRun_InvalidChoiceRedisplaysWithoutDispatch(t *testing.T) {
	calls := map[string]int{}
	// invalid choice, pause, then back
	loop, out := newLoop("9\n\nabc\n\n3\n")

	err := loop.Run(context.Background(), countingMenu(calls))

	require.NoError(t, err)
	assert.Empty(t, calls)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid choice. Please select a number from 1 to 3."))
	assert.Equal(t, 3, strings.Count(out.String(), "Test Menu\n"))
}

func TestRun_RebuildsMenuEachIteration(t *testing.T) {
	n := 0
	build := func() Menu {
		return Menu{
			Title:   "Counter",
			Banner:  strings.Repeat("*", n),
			Options: []Option{{Label: "Bump", Run: func(context.Context) error { n++; return nil }}},
		}
	}
	loop, out := newLoop("1\n1\n2\n")

	require.NoError(t, loop.Run(context.Background(), build))
	assert.Equal(t, 2, n)
	assert.Contains(t, out.String(), "**\n")
}

func TestRun_CustomKeysAndExit(t *testing.T) {
	picked := ""
	build := func() Menu {
		return Menu{
			Title: "Toolbox",
			Options: []Option{
				{Key: "1", Label: "Hammer", Run: func(context.Context) error { picked = "hammer"; return nil }},
			},
			ExitKey:   "0",
			ExitLabel: "Exit",
			Prompt:    "\nSelect a tool to manage: ",
			Invalid:   "Invalid option.",
		}
	}
	loop, out := newLoop("2\n\n1\n0\n")

	require.NoError(t, loop.Run(context.Background(), build))
	assert.Equal(t, "hammer", picked)
	assert.Contains(t, out.String(), "0. Exit\n")
	assert.Contains(t, out.String(), "Invalid option.")
}

func TestRun_EndOfInput(t *testing.T) {
	loop, _ := newLoop("1\n")
	err := loop.Run(context.Background(), countingMenu(map[string]int{}))
	assert.ErrorIs(t, err, io.EOF)
}

func TestRun_PropagatesOptionError(t *testing.T) {
	boom := errors.New("boom")
	build := func() Menu {
		return Menu{Title: "T", Options: []Option{{Label: "Fail", Run: func(context.Context) error { return boom }}}}
	}
	loop, _ := newLoop("1\n")
	assert.ErrorIs(t, loop.Run(context.Background(), build), boom)
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loop, out := newLoop("1\n")
	assert.ErrorIs(t, loop.Run(ctx, countingMenu(map[string]int{})), context.Canceled)
	assert.Empty(t, out.String())
}
