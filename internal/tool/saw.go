package tool

import (
	"fmt"

	"github.com/osse101/Toolbox_Go/internal/domain"
	"github.com/osse101/Toolbox_Go/internal/utils"
)

// Saw cuts wood with a replaceable blade
type Saw struct {
	Base
	BladeType string
	Length    float64
	Corded    bool
	blades    OptionSet[string]
}

// NewSaw creates a saw fitted with bladeType
func NewSaw(name, material string, weight float64, bladeType string, length float64, corded bool) *Saw {
	return &Saw{
		Base:      NewBase(domain.ToolKindSaw, name, material, weight),
		BladeType: bladeType,
		Length:    length,
		Corded:    corded,
		blades:    NewOptionSet(domain.SawBlades...),
	}
}

// Blades returns the available blade options
func (s *Saw) Blades() OptionSet[string] { return s.blades }

// Cut saws through a board in a random [SawMinCutSeconds, SawMaxCutSeconds] seconds
func (s *Saw) Cut(rng utils.Rand) (Report, error) {
	if err := s.guard(ActivityCut); err != nil {
		return Report{}, err
	}
	seconds := utils.RandomInt(rng, SawMinCutSeconds, SawMaxCutSeconds)
	report := Report{
		Start:     fmt.Sprintf(MsgCutStart, s.BladeType),
		Countdown: Countdown{Seconds: seconds, Format: MsgCutTick, Args: []any{s.BladeType}},
		Done:      fmt.Sprintf(MsgCutDone, s.BladeType),
	}
	s.degradeOnce()
	return report, nil
}

// ReplaceBlade fits the blade at the 1-based index in choice
func (s *Saw) ReplaceBlade(choice string) (string, error) {
	blade, err := s.blades.Select(choice)
	if err != nil {
		return s.BladeType, err
	}
	s.BladeType = blade
	return blade, nil
}
