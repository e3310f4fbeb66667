package folio

import "log/slog"

// discardLogger is the default for every controller. Logging is diagnostics
// only; nothing in the core changes behavior based on it.
var discardLogger = slog.New(slog.DiscardHandler)

// logged is embedded by controllers that accept a logger.
type logged struct {
	log   *slog.Logger
	debug bool
}

// SetLogger replaces the logger. A nil logger restores the discard default.
func (l *logged) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = discardLogger
	}
	l.log = logger
}

func (l *logged) logger() *slog.Logger {
	if l.log == nil {
		return discardLogger
	}
	return l.log
}

// stale records an operation on a torn-down handle. Stale handles are never
// fatal; the warning exists so content bugs show up in debug runs.
func (l *logged) stale(op string, id uint32) {
	if !l.debug {
		return
	}
	l.logger().Warn("stale handle ignored", "op", op, "id", id)
}

// SetDebugMode enables warnings for operations on stale handles.
func (l *logged) SetDebugMode(enabled bool) {
	l.debug = enabled
}
