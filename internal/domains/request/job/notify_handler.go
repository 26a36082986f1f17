package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/spycraft69/GAMA-Product-Request/internal/infrastructure/email"
	"github.com/spycraft69/GAMA-Product-Request/pkg/logger"
)

// NotifyHandler processes the "request:created_email" task in the
// worker process.
type NotifyHandler struct {
	emails email.EmailService
}

func NewNotifyHandler(emails email.EmailService) *NotifyHandler {
	return &NotifyHandler{emails: emails}
}

func (h *NotifyHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data email.RequestNotificationData
	if err := json.Unmarshal(t.Payload(), &data); err != nil {
		// A payload that cannot unmarshal will never succeed, skip the
		// retries.
		return fmt.Errorf("unmarshal request notification: %w: %w", err, asynq.SkipRetry)
	}

	if err := h.emails.SendRequestNotification(ctx, data); err != nil {
		return fmt.Errorf("send request notification: %w", err)
	}

	logger.Info("Request notification processed", map[string]interface{}{
		"to":      data.To,
		"product": data.ProductName,
	})

	return nil
}
