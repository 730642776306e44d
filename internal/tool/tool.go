package tool

import (
	"fmt"

	"github.com/osse101/Toolbox_Go/internal/domain"
	"github.com/osse101/Toolbox_Go/internal/utils"
)

// Tool is the capability shared by every variant.
// The six implementations are *Hammer, *Drill, *Saw, *Screwdriver, *MeasuringTape and *Wrench.
type Tool interface {
	Name() string
	Material() string
	Weight() float64
	Kind() domain.ToolKind
	Durability() int
	Degrade(amount int)
	CheckDurability() bool
	Repair()
}

// Base holds the state common to all tools. Durability is always within
// [domain.MinDurability, domain.MaxDurability].
type Base struct {
	kind       domain.ToolKind
	name       string
	material   string
	weight     float64
	durability int
	wear       int
}

// NewBase creates the shared state for a new tool at full durability
func NewBase(kind domain.ToolKind, name, material string, weight float64) Base {
	return Base{
		kind:       kind,
		name:       name,
		material:   material,
		weight:     weight,
		durability: domain.MaxDurability,
		wear:       domain.DefaultWear,
	}
}

func (b *Base) Name() string          { return b.name }
func (b *Base) Material() string      { return b.material }
func (b *Base) Weight() float64       { return b.weight }
func (b *Base) Kind() domain.ToolKind { return b.kind }
func (b *Base) Durability() int       { return b.durability }

// Wear returns the amount a successful destructive action degrades the tool by
func (b *Base) Wear() int { return b.wear }

// SetWear overrides the per-action wear. Non-positive amounts are ignored.
func (b *Base) SetWear(amount int) {
	if amount > 0 {
		b.wear = amount
	}
}

// Degrade subtracts amount from durability, flooring at zero.
// Negative amounts are treated as zero so Degrade never raises durability.
func (b *Base) Degrade(amount int) {
	if amount < 0 {
		amount = 0
	}
	b.durability = utils.Clamp(b.durability-amount, domain.MinDurability, domain.MaxDurability)
}

// CheckDurability reports whether the tool can still perform destructive actions
func (b *Base) CheckDurability() bool {
	return b.durability > domain.MinDurability
}

// Repair restores durability to full
func (b *Base) Repair() {
	b.durability = domain.MaxDurability
}

func (b *Base) degradeOnce() {
	b.Degrade(b.wear)
}

// guard is checked first by every destructive action
func (b *Base) guard(activity string) error {
	if b.CheckDurability() {
		return nil
	}
	return &BrokenError{Kind: b.kind, Activity: activity}
}

// Guard returns a *BrokenError for activity when durability is exhausted
func Guard(t Tool, activity string) error {
	if t.CheckDurability() {
		return nil
	}
	return &BrokenError{Kind: t.Kind(), Activity: activity}
}

// BrokenError reports that a tool refused an activity because it is broken
type BrokenError struct {
	Kind     domain.ToolKind
	Activity string
}

func (e *BrokenError) Error() string {
	return fmt.Sprintf("the %s is too damaged to %s", e.Kind.Noun(), e.Activity)
}

// Unwrap lets errors.Is match domain.ErrToolBroken
func (e *BrokenError) Unwrap() error {
	return domain.ErrToolBroken
}

// RepairMessage is the confirmation shown after t is repaired
func RepairMessage(t Tool) string {
	return fmt.Sprintf(MsgRepaired, t.Name(), t.Kind().Noun())
}
