package tool

import "fmt"

// Countdown is a whole number of one-second ticks rendered by the caller.
// Format receives the remaining seconds first, followed by Args. An empty
// Format is a silent wait.
type Countdown struct {
	Seconds int
	Format  string
	Args    []any
}

// Ticks returns the remaining-seconds values in descending order, e.g. [3 2 1]
func (c Countdown) Ticks() []int {
	if c.Seconds <= 0 {
		return nil
	}
	ticks := make([]int, 0, c.Seconds)
	for i := c.Seconds; i > 0; i-- {
		ticks = append(ticks, i)
	}
	return ticks
}

// Line renders the message for a single tick
func (c Countdown) Line(remaining int) string {
	if c.Format == "" {
		return ""
	}
	return fmt.Sprintf(c.Format, append([]any{remaining}, c.Args...)...)
}

// Report describes a completed destructive action
type Report struct {
	Start     string
	Countdown Countdown
	Done      string
}
