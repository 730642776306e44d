// Package console is the line-based operator interface: prompts, status
// lines and paced countdowns over an io.Reader/io.Writer pair.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// Options controls presentation and pacing
type Options struct {
	// TickInterval is the pause between countdown ticks. Zero renders instantly.
	TickInterval time.Duration
	ClearScreen  bool
	Color        bool
	// Sleep replaces time.Sleep, mainly for tests
	Sleep func(time.Duration)
}

// Ticker is a descending countdown rendered one line per tick
type Ticker interface {
	Ticks() []int
	Line(remaining int) string
}

// Console reads operator lines and writes prompts and messages
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	opts    Options
}

// New creates a console reading from in and writing to out
func New(in io.Reader, out io.Writer, opts Options) *Console {
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
		opts:    opts,
	}
}

// Printf writes formatted text without a trailing newline
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

// Println writes a line
func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

// Prompt writes msg and returns the next input line with surrounding
// whitespace removed. It returns io.EOF once input is exhausted.
func (c *Console) Prompt(msg string) (string, error) {
	fmt.Fprint(c.out, msg)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		fmt.Fprintln(c.out)
		return "", io.EOF
	}
	return strings.TrimSpace(c.scanner.Text()), nil
}

// Pause waits for the operator to press Enter
func (c *Console) Pause() error {
	return c.PauseWith(MsgPressEnter)
}

// PauseWith waits for Enter after showing msg
func (c *Console) PauseWith(msg string) error {
	_, err := c.Prompt(msg)
	return err
}

// Clear wipes the terminal when ClearScreen is enabled
func (c *Console) Clear() {
	if c.opts.ClearScreen {
		fmt.Fprint(c.out, clearSequence)
	}
}

// Header writes a title underlined with '='
func (c *Console) Header(title string) {
	fmt.Fprintf(c.out, "\n%s\n%s\n", title, strings.Repeat("=", len(title)))
}

// Countdown renders each tick and waits TickInterval between them.
// A countdown always runs to completion once started.
func (c *Console) Countdown(t Ticker) {
	for _, remaining := range t.Ticks() {
		if line := t.Line(remaining); line != "" {
			fmt.Fprintln(c.out, line)
		}
		if c.opts.TickInterval > 0 {
			c.opts.Sleep(c.opts.TickInterval)
		}
	}
}

// Info writes an informational line
func (c *Console) Info(format string, a ...interface{}) {
	c.status(colorBlue, format, a...)
}

// Success writes a success line
func (c *Console) Success(format string, a ...interface{}) {
	c.status(colorGreen, format, a...)
}

// Warning writes a warning line
func (c *Console) Warning(format string, a ...interface{}) {
	c.status(colorYellow, format, a...)
}

// Error writes an error line
func (c *Console) Error(format string, a ...interface{}) {
	c.status(colorRed, format, a...)
}

func (c *Console) status(color, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if c.opts.Color {
		msg = color + msg + colorReset
	}
	fmt.Fprintln(c.out, msg)
}
