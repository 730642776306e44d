package tool

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Toolbox_Go/internal/domain"
)

func newTestDrill() *Drill {
	return NewDrill("Drill", "Steel", 1.5, 500, true, 1500)
}

func TestNewDrill_Defaults(t *testing.T) {
	d := newTestDrill()
	assert.Equal(t, "Standard", d.Bit)
	assert.Equal(t, 1500, d.Speed)

	fallback := NewDrill("Drill", "Steel", 1.5, 500, true, 0)
	assert.Equal(t, DefaultDrillSpeed, fallback.Speed)
}

func TestDrillTime(t *testing.T) {
	tests := []struct {
		speed     int
		wantTime  float64
		wantTicks []int
	}{
		{speed: 1500, wantTime: 10.0 / 3, wantTicks: []int{3, 2, 1}},
		{speed: 3000, wantTime: 5.0 / 3, wantTicks: []int{1}},
		{speed: 500, wantTime: 10, wantTicks: []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}},
		{speed: 10000, wantTime: 2.5 / 3, wantTicks: nil},
	}

	for _, tt := range tests {
		d := newTestDrill()
		d.Speed = tt.speed
		assert.InDelta(t, tt.wantTime, d.DrillTime(), 1e-9, "speed %d", tt.speed)

		report, err := d.DrillHole()
		require.NoError(t, err)
		assert.Equal(t, tt.wantTicks, report.Countdown.Ticks(), "speed %d", tt.speed)
	}
}

func TestDrillHole(t *testing.T) {
	d := newTestDrill()

	report, err := d.DrillHole()
	require.NoError(t, err)
	assert.Equal(t, "Drilling a hole with Standard bit at 1500 RPM...", report.Start)
	assert.Equal(t, "Hole drilled using Standard bit!", report.Done)
	assert.Equal(t, 97, d.Durability())

	breakTool(d)
	_, err = d.DrillHole()
	assert.True(t, errors.Is(err, domain.ErrToolBroken))
	assert.Equal(t, 0, d.Durability())
}

func TestChangeBit(t *testing.T) {
	d := newTestDrill()

	bit, err := d.ChangeBit("2")
	require.NoError(t, err)
	assert.Equal(t, "Masonry", bit)
	assert.Equal(t, "Masonry", d.Bit)

	_, err = d.ChangeBit("9")
	assert.True(t, errors.Is(err, domain.ErrInvalidSelection))
	assert.Equal(t, "Masonry", d.Bit)

	_, err = d.ChangeBit("glass")
	assert.True(t, errors.Is(err, domain.ErrInvalidSelection))
	assert.Equal(t, "Masonry", d.Bit)

	assert.Equal(t, 100, d.Durability(), "configuration never degrades")
}

func TestChangeBit_AllowedWhileBroken(t *testing.T) {
	d := newTestDrill()
	breakTool(d)

	_, err := d.ChangeBit("5")
	require.NoError(t, err)
	assert.Equal(t, "Glass", d.Bit)
}

func TestAdjustSpeed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{name: "valid", input: "3000", want: 3000},
		{name: "no upper bound", input: "250000", want: 250000},
		{name: "whitespace", input: " 750 ", want: 750},
		{name: "zero", input: "0", want: 1500, wantErr: ErrSpeedNotPositive},
		{name: "negative", input: "-20", want: 1500, wantErr: ErrSpeedNotPositive},
		{name: "not a number", input: "fast", want: 1500, wantErr: ErrSpeedNotNumeric},
		{name: "decimal", input: "1500.5", want: 1500, wantErr: ErrSpeedNotNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDrill()
			got, err := d.AdjustSpeed(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, d.Speed)
			assert.Equal(t, 100, d.Durability())
		})
	}
}
