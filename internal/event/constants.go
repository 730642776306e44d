package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Error format constants
const (
	// LogMsgHandlerErrorFormat is the error format for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
