package tool

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/osse101/Toolbox_Go/internal/domain"
)

// Drill input errors
var (
	ErrSpeedNotNumeric  = fmt.Errorf("%w: speed must be a whole number", domain.ErrInvalidInput)
	ErrSpeedNotPositive = fmt.Errorf("%w: speed must be positive", domain.ErrInvalidInput)
)

// Drill bores holes with a selectable bit at an adjustable speed
type Drill struct {
	Base
	PowerRating float64
	Cordless    bool
	Bit         string
	Speed       int
	bits        OptionSet[string]
}

// NewDrill creates a drill fitted with the first bit. A non-positive speed
// falls back to DefaultDrillSpeed.
func NewDrill(name, material string, weight, powerRating float64, cordless bool, speed int) *Drill {
	if speed <= 0 {
		speed = DefaultDrillSpeed
	}
	bits := NewOptionSet(domain.DrillBits...)
	return &Drill{
		Base:        NewBase(domain.ToolKindDrill, name, material, weight),
		PowerRating: powerRating,
		Cordless:    cordless,
		Bit:         bits.Values()[0],
		Speed:       speed,
		bits:        bits,
	}
}

// Bits returns the available bit options
func (d *Drill) Bits() OptionSet[string] { return d.bits }

// DrillTime returns the drilling duration in seconds for the current speed:
// 5.0 * max(0.5, 3000/speed) / 3
func (d *Drill) DrillTime() float64 {
	factor := math.Max(drillMinRPMFactor, drillReferenceRPM/float64(d.Speed))
	return drillBaseSeconds * factor / drillTimeDivisor
}

// DrillHole bores one hole. The countdown length is the truncated DrillTime.
func (d *Drill) DrillHole() (Report, error) {
	if err := d.guard(ActivityDrill); err != nil {
		return Report{}, err
	}
	report := Report{
		Start:     fmt.Sprintf(MsgDrillStart, d.Bit, d.Speed),
		Countdown: Countdown{Seconds: int(d.DrillTime()), Format: MsgDrillTick},
		Done:      fmt.Sprintf(MsgDrillDone, d.Bit),
	}
	d.degradeOnce()
	return report, nil
}

// ChangeBit fits the bit at the 1-based index in choice
func (d *Drill) ChangeBit(choice string) (string, error) {
	bit, err := d.bits.Select(choice)
	if err != nil {
		return d.Bit, err
	}
	d.Bit = bit
	return bit, nil
}

// AdjustSpeed sets the RPM from operator input. There is no upper bound.
func (d *Drill) AdjustSpeed(input string) (int, error) {
	speed, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return d.Speed, ErrSpeedNotNumeric
	}
	if speed <= 0 {
		return d.Speed, ErrSpeedNotPositive
	}
	d.Speed = speed
	return speed, nil
}
