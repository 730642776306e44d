package tool

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Toolbox_Go/internal/domain"
)

func newTestWrench() *Wrench {
	return NewWrench("Wrench", "Chrome-Vanadium", 0.8, 17, true)
}

func TestTightenAndLoosen(t *testing.T) {
	w := newTestWrench()

	report, err := w.Tighten()
	require.NoError(t, err)
	assert.Equal(t, "Tightening a bolt with a 17mm wrench.", report.Start)
	assert.Equal(t, "Bolt tightened.", report.Done)
	assert.Equal(t, []int{2, 1}, report.Countdown.Ticks())
	assert.Equal(t, 97, w.Durability())

	report, err = w.Loosen()
	require.NoError(t, err)
	assert.Equal(t, "Bolt loosened.", report.Done)
	assert.Equal(t, 94, w.Durability())
}

func TestTightenAndLoosen_RefusedWhenBroken(t *testing.T) {
	w := newTestWrench()
	breakTool(w)

	_, err := w.Tighten()
	assert.True(t, errors.Is(err, domain.ErrToolBroken))
	_, err = w.Loosen()
	assert.True(t, errors.Is(err, domain.ErrToolBroken))
	assert.Equal(t, 0, w.Durability())
}

func TestChangeSize(t *testing.T) {
	w := newTestWrench()

	size, err := w.ChangeSize("8")
	require.NoError(t, err)
	assert.Equal(t, 24, size)
	assert.Equal(t, 24, w.Size)

	_, err = w.ChangeSize("17")
	assert.True(t, errors.Is(err, domain.ErrInvalidSelection), "sizes are chosen by index, not value")
	assert.Equal(t, 24, w.Size)
}

func TestToggleRatcheting(t *testing.T) {
	w := newTestWrench()

	assert.False(t, w.ToggleRatcheting())
	assert.True(t, w.ToggleRatcheting())
	assert.Equal(t, 100, w.Durability())
}
