package tool

import (
	"fmt"

	"github.com/osse101/Toolbox_Go/internal/domain"
	"github.com/osse101/Toolbox_Go/internal/utils"
)

// Hammer drives and pulls nails
type Hammer struct {
	Base
	HeadType     string
	ClawType     string
	HandleLength int
}

// NewHammer creates a hammer at full durability
func NewHammer(name, material string, weight float64, headType, clawType string, handleLength int) *Hammer {
	return &Hammer{
		Base:         NewBase(domain.ToolKindHammer, name, material, weight),
		HeadType:     headType,
		ClawType:     clawType,
		HandleLength: handleLength,
	}
}

// StrikeStep is one blow of a Strike sequence
type StrikeStep struct {
	Number int
	Depth  string
	Final  bool
}

// Message renders the step outcome
func (s StrikeStep) Message() string {
	if s.Final {
		return fmt.Sprintf(MsgStrikeFinal, s.Depth)
	}
	return fmt.Sprintf(MsgStrikeContinue, s.Depth)
}

// StrikeReport is the full sequence produced by one Strike call
type StrikeReport struct {
	Start string
	Steps []StrikeStep
}

// Strike drives a nail in a random number of blows within
// [HammerMinStrikes, HammerMaxStrikes]. Each blow draws an independent depth
// class and degrades the hammer once, so one call costs wear * len(Steps).
func (h *Hammer) Strike(rng utils.Rand) (StrikeReport, error) {
	if err := h.guard(ActivityStrike); err != nil {
		return StrikeReport{}, err
	}

	needed := utils.RandomInt(rng, HammerMinStrikes, HammerMaxStrikes)
	report := StrikeReport{
		Start: fmt.Sprintf(MsgStrikeStart, h.HeadType),
		Steps: make([]StrikeStep, 0, needed),
	}
	for i := 1; i <= needed; i++ {
		class := utils.RandomInt(rng, 1, hammerDepthClasses)
		report.Steps = append(report.Steps, StrikeStep{
			Number: i,
			Depth:  depthLabels[class],
			Final:  i == needed,
		})
		h.degradeOnce()
	}
	return report, nil
}

// RemoveNails pulls nails with the claw
func (h *Hammer) RemoveNails() (Report, error) {
	if err := h.guard(ActivityRemoveNails); err != nil {
		return Report{}, err
	}
	h.degradeOnce()
	return Report{
		Start: fmt.Sprintf(MsgRemoveNails, h.ClawType),
		Done:  MsgRemoveNailsDone,
	}, nil
}
