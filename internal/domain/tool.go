package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToolKind identifies one of the closed set of tool variants
type ToolKind string

// Tool kind constants - stable identifiers used by the catalog, events and metrics
const (
	ToolKindHammer        ToolKind = "hammer"
	ToolKindDrill         ToolKind = "drill"
	ToolKindSaw           ToolKind = "saw"
	ToolKindScrewdriver   ToolKind = "screwdriver"
	ToolKindMeasuringTape ToolKind = "measuring_tape"
	ToolKindWrench        ToolKind = "wrench"
)

// ToolKinds lists every supported kind in catalog order
var ToolKinds = []ToolKind{
	ToolKindHammer,
	ToolKindDrill,
	ToolKindSaw,
	ToolKindScrewdriver,
	ToolKindMeasuringTape,
	ToolKindWrench,
}

// Valid reports whether k is one of the known kinds
func (k ToolKind) Valid() bool {
	for _, known := range ToolKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Noun returns the lower-case noun used in operator messages ("measuring tape")
func (k ToolKind) Noun() string {
	if k == ToolKindMeasuringTape {
		return "measuring tape"
	}
	return string(k)
}

// DisplayName returns the title-cased noun ("Measuring Tape")
func (k ToolKind) DisplayName() string {
	return cases.Title(language.English).String(k.Noun())
}

// Durability bounds and wear
const (
	MinDurability = 0
	MaxDurability = 100
	DefaultWear   = 3
)

// Option sets for selectable tool fields, chosen by 1-based index
var (
	DrillBits       = []string{"Standard", "Masonry", "Wood", "Metal", "Glass"}
	SawBlades       = []string{"Wood", "Metal", "Plastic", "Ceramic"}
	ScrewdriverTips = []string{"Flathead", "Phillips", "Torx", "Hex", "Square"}
	WrenchSizes     = []int{8, 10, 12, 14, 17, 19, 22, 24}
)

// Action labels shown in the per-tool menus. Also used as the action label in events and metrics.
const (
	ActionStrikeNail       = "Strike a Nail"
	ActionRemoveNails      = "Remove Nails"
	ActionDrillHole        = "Drill Hole"
	ActionChangeBit        = "Change Bit"
	ActionAdjustSpeed      = "Adjust Speed"
	ActionCutWood          = "Cut Wood"
	ActionReplaceBlade     = "Replace Blade"
	ActionTightenLoosen    = "Tighten/Loosen Screw"
	ActionChangeTip        = "Change Tip"
	ActionToggleMagnetize  = "Magnetize/Unmagnetize"
	ActionMeasureWood      = "Measure Wood Length"
	ActionMarkIntervals    = "Mark Intervals"
	ActionTightenBolt      = "Tighten Bolt"
	ActionLoosenBolt       = "Loosen Bolt"
	ActionChangeSize       = "Change Size"
	ActionToggleRatcheting = "Toggle Ratcheting Mode"
	ActionUse              = "Use"
	ActionRepair           = "Repair"
)
