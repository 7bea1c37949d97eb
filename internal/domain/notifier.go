package domain

import (
	"context"

	"go.uber.org/zap"
)

// Notifier is the collaborator informed after a committed balance change.
// Delivery is best-effort: the TransferEngine logs a failed Notify and moves
// on, it never rolls back the transfer or reports the failure to the caller.
type Notifier interface {
	Notify(ctx context.Context, accountID, message string) error
}

// LogNotifier is a Notifier that writes notifications to the structured log.
// Used when no message broker is configured.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a LogNotifier backed by the given logger.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the notification. Never fails.
func (n *LogNotifier) Notify(_ context.Context, accountID, message string) error {
	n.logger.Info("account notification",
		zap.String("account_id", accountID),
		zap.String("message", message),
	)
	return nil
}
