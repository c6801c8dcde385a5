package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "debug"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	// TraceIDField is attached to every line whose context carries a trace id.
	TraceIDField = "trace_id"
)
