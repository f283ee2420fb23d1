package notify

import "github.com/gofiber/fiber/v2/log"

// Notifier is the toast sink the core reports user-facing messages to.
// Implementations must be cheap; callers batch messages themselves.
type Notifier interface {
	Error(msg string)
	Warning(msg string)
}

// LogNotifier writes notifications to the application log. It is the
// default sink for headless hosts (CLI, tests without assertions).
type LogNotifier struct {
	// Prefix identifies the emitting component, e.g. "[Gallery]".
	Prefix string
}

func (n LogNotifier) Error(msg string) {
	log.Errorf("%s %s", n.Prefix, msg)
}

func (n LogNotifier) Warning(msg string) {
	log.Warnf("%s %s", n.Prefix, msg)
}
