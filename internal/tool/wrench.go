package tool

import (
	"fmt"

	"github.com/osse101/Toolbox_Go/internal/domain"
)

// Wrench turns bolts of a selectable size
type Wrench struct {
	Base
	Size       int
	Ratcheting bool
	sizes      OptionSet[int]
}

// NewWrench creates a wrench set to size millimeters
func NewWrench(name, material string, weight float64, size int, ratcheting bool) *Wrench {
	return &Wrench{
		Base:       NewBase(domain.ToolKindWrench, name, material, weight),
		Size:       size,
		Ratcheting: ratcheting,
		sizes:      NewOptionSet(domain.WrenchSizes...),
	}
}

// Sizes returns the available size options in millimeters
func (w *Wrench) Sizes() OptionSet[int] { return w.sizes }

// Tighten tightens one bolt
func (w *Wrench) Tighten() (Report, error) {
	return w.turn(ActivityTightenBolt, MsgTightenBoltStart, MsgTightenBoltDone)
}

// Loosen loosens one bolt
func (w *Wrench) Loosen() (Report, error) {
	return w.turn(ActivityLoosenBolt, MsgLoosenBoltStart, MsgLoosenBoltDone)
}

func (w *Wrench) turn(activity, start, done string) (Report, error) {
	if err := w.guard(activity); err != nil {
		return Report{}, err
	}
	report := Report{
		Start:     fmt.Sprintf(start, w.Size),
		Countdown: Countdown{Seconds: WrenchTurnSeconds},
		Done:      done,
	}
	w.degradeOnce()
	return report, nil
}

// ChangeSize selects the size at the 1-based index in choice
func (w *Wrench) ChangeSize(choice string) (int, error) {
	size, err := w.sizes.Select(choice)
	if err != nil {
		return w.Size, err
	}
	w.Size = size
	return size, nil
}

// ToggleRatcheting flips ratcheting mode and returns the new state
func (w *Wrench) ToggleRatcheting() bool {
	w.Ratcheting = !w.Ratcheting
	return w.Ratcheting
}
