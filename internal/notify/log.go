package notify

// Logger is the logging interface used by notifiers.
// Compatible with logging.Logger and slog.Logger.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

// Log renders events as structured log entries. This is the default
// rendering of the notification side channel.
type Log struct {
	logger Logger
}

// NewLog creates a log-backed notifier.
func NewLog(logger Logger) *Log {
	return &Log{logger: logger}
}

// Notify logs the event at info level.
func (l *Log) Notify(event Event) {
	args := []any{
		"device", event.Name,
		"kind", event.Status.Kind,
		"active", event.Status.Active,
	}
	if event.Status.Temperature != nil {
		args = append(args, "temperature", *event.Status.Temperature)
	}
	l.logger.Info(event.Status.Detail, args...)
}
