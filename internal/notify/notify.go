// Package notify delivers the short user-facing messages that follow a record
// operation.
package notify

import (
	"context"
	"sync"

	"github.com/Amrutha2803/employee-list/internal/logger"
)

type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Info    Severity = "info"
	Warning Severity = "warning"
)

type Notification struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Notifier is fire-and-forget; delivery problems never reach the caller.
type Notifier interface {
	Notify(ctx context.Context, message string, severity Severity)
}

type LogNotifier struct {
	log *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, message string, severity Severity) {
	switch severity {
	case Error:
		n.log.Warn(message, "severity", severity)
	default:
		n.log.Info(message, "severity", severity)
	}
}

// Recorder keeps every notification in order.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(_ context.Context, message string, severity Severity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, Notification{Message: message, Severity: severity})
}

func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}
