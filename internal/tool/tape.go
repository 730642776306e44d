package tool

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/osse101/Toolbox_Go/internal/domain"
	"github.com/osse101/Toolbox_Go/internal/utils"
)

// Tape input errors
var (
	ErrIntervalNotNumeric = fmt.Errorf("%w: interval must be a number", domain.ErrInvalidInput)
	ErrIntervalOutOfRange = fmt.Errorf("%w: interval must be within the tape's length", domain.ErrInvalidInput)
	ErrTooManyMarks       = fmt.Errorf("%w: interval needs more than %d marks", domain.ErrInvalidInput, MaxMarks)
)

// MeasuringTape measures boards and marks intervals up to its length
type MeasuringTape struct {
	Base
	Length float64

	// WearOnInvalidInterval keeps the legacy behavior where an out-of-range
	// interval still costs one wear.
	WearOnInvalidInterval bool
}

// NewMeasuringTape creates a tape that measures up to length meters
func NewMeasuringTape(name, material string, weight, length float64) *MeasuringTape {
	return &MeasuringTape{
		Base:   NewBase(domain.ToolKindMeasuringTape, name, material, weight),
		Length: length,
	}
}

// Mark is one interval mark along the tape
type Mark struct {
	Index    int
	Distance float64
}

// Measure draws a board length uniformly from (0, Length]
func (m *MeasuringTape) Measure(rng utils.Rand) (float64, error) {
	if err := m.guard(ActivityMeasure); err != nil {
		return 0, err
	}
	length := utils.RandomFloatUpTo(rng, m.Length)
	m.degradeOnce()
	return length, nil
}

// MarkIntervals places a mark at every multiple of the interval in input, up
// to floor(Length / interval) marks. The interval must satisfy 0 < interval <= Length
// and produce at most MaxMarks marks.
func (m *MeasuringTape) MarkIntervals(input string) ([]Mark, error) {
	if err := m.guard(ActivityMarkIntervals); err != nil {
		return nil, err
	}

	interval, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return nil, ErrIntervalNotNumeric
	}
	if !(interval > 0 && interval <= m.Length) {
		return nil, m.rejectInterval(ErrIntervalOutOfRange)
	}
	ratio := m.Length / interval
	if ratio > MaxMarks {
		return nil, m.rejectInterval(ErrTooManyMarks)
	}

	count := int(math.Floor(ratio))
	marks := make([]Mark, 0, count)
	for i := 1; i <= count; i++ {
		marks = append(marks, Mark{Index: i, Distance: float64(i) * interval})
	}
	m.degradeOnce()
	return marks, nil
}

func (m *MeasuringTape) rejectInterval(err error) error {
	if m.WearOnInvalidInterval {
		m.degradeOnce()
	}
	return err
}

// FormatMeters renders a distance without trailing zeros ("5", "2.5")
func FormatMeters(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
