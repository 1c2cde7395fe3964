package logger

import "go.uber.org/zap/zapcore"

// Verbosity level constants for embedding applications.
//
// These mirror conventional -v flag counts so callers can map their own
// CLI or config verbosity straight onto zap levels.
const (
	VerbosityUser  = 0 // results and errors only
	VerbosityInfo  = 1 // + registrations, startup
	VerbosityDebug = 2 // + route computations, cache activity
	VerbosityTrace = 3 // + per-step parser execution
)

// VerbosityToLevel maps verbosity counts to zap log levels
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch verbosity {
	case VerbosityUser:
		return zapcore.WarnLevel
	case VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
