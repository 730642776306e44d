package history

// DefaultSize is used when a non-positive size is configured
const DefaultSize = 16

// Summary formats shown next to a tool on the toolbox screen
const (
	SummaryPerformedFormat = "last: %s (%d%% -> %d%%)"
	SummaryRefusedFormat   = "last: %s refused, tool broken"
)

// Log messages
const (
	LogMsgEntryRecorded = "History entry recorded"
	LogMsgPayloadSkip   = "History skipped event with unexpected payload"
)
