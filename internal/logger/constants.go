package logger

// LogLevelWarning is accepted as an alias for slog's "warn"
const LogLevelWarning = "warning"

// LogFormatJSON selects the JSON handler; anything else is text
const LogFormatJSON = "json"

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeySessionID   = "session_id"
)

const logFilePerm = 0o644
const logDirPerm = 0o755
