package notify

import (
	"context"

	"github.com/google/uuid"
	"github.com/novamart/storefront/internal/port"
	"github.com/sirupsen/logrus"
)

// logNotifier renders user-facing toasts as structured log lines. A real
// frontend would swap in its own port.Notifier.
type logNotifier struct {
	log *logrus.Logger
}

func NewLog(log *logrus.Logger) port.Notifier {
	return &logNotifier{log: log}
}

func (n *logNotifier) Success(ctx context.Context, message string) {
	n.entry().Info(message)
}

func (n *logNotifier) Error(ctx context.Context, message string) {
	n.entry().Warn(message)
}

func (n *logNotifier) entry() *logrus.Entry {
	return n.log.WithFields(logrus.Fields{
		"kind":            "toast",
		"notification_id": uuid.NewString(),
	})
}
