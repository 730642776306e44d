package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "tool.repaired")
const (
	// EventTypeToolActionPerformed is published after a tool action completes
	EventTypeToolActionPerformed = "tool.action.performed"

	// EventTypeToolActionRefused is published when a broken tool refuses an action or its menu
	EventTypeToolActionRefused = "tool.action.refused"

	// EventTypeToolRepaired is published after a tool is repaired
	EventTypeToolRepaired = "tool.repaired"
)

// ToolActionPayload is the typed payload shared by all tool events
type ToolActionPayload struct {
	Key              string   `json:"key"`
	Tool             string   `json:"tool"`
	Kind             ToolKind `json:"kind"`
	Action           string   `json:"action"`
	DurabilityBefore int      `json:"durability_before"`
	DurabilityAfter  int      `json:"durability_after"`
}

// Wear returns how much durability the action consumed
func (p ToolActionPayload) Wear() int {
	if p.DurabilityAfter >= p.DurabilityBefore {
		return 0
	}
	return p.DurabilityBefore - p.DurabilityAfter
}
