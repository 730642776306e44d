package tool

import (
	"fmt"

	"github.com/osse101/Toolbox_Go/internal/domain"
)

// Screwdriver drives screws with an interchangeable tip
type Screwdriver struct {
	Base
	TipType    string
	Length     float64
	Magnetized bool
	tips       OptionSet[string]
}

// NewScrewdriver creates a screwdriver fitted with tipType
func NewScrewdriver(name, material string, weight float64, tipType string, length float64, magnetized bool) *Screwdriver {
	return &Screwdriver{
		Base:       NewBase(domain.ToolKindScrewdriver, name, material, weight),
		TipType:    tipType,
		Length:     length,
		Magnetized: magnetized,
		tips:       NewOptionSet(domain.ScrewdriverTips...),
	}
}

// Tips returns the available tip options
func (s *Screwdriver) Tips() OptionSet[string] { return s.tips }

// TightenLoosen turns a screw for ScrewdriverTurnSeconds
func (s *Screwdriver) TightenLoosen() (Report, error) {
	if err := s.guard(ActivityTurnScrew); err != nil {
		return Report{}, err
	}
	report := Report{
		Start:     fmt.Sprintf(MsgTurnStart, s.TipType),
		Countdown: Countdown{Seconds: ScrewdriverTurnSeconds, Format: MsgTurnTick, Args: []any{s.TipType}},
		Done:      fmt.Sprintf(MsgTurnDone, s.TipType),
	}
	s.degradeOnce()
	return report, nil
}

// ChangeTip fits the tip at the 1-based index in choice
func (s *Screwdriver) ChangeTip(choice string) (string, error) {
	tip, err := s.tips.Select(choice)
	if err != nil {
		return s.TipType, err
	}
	s.TipType = tip
	return tip, nil
}

// ToggleMagnetization flips the magnetized flag and returns the new state
func (s *Screwdriver) ToggleMagnetization() bool {
	s.Magnetized = !s.Magnetized
	return s.Magnetized
}
