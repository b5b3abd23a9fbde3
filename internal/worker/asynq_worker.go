package worker

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/supply-hub/supply-hub/internal/logger"
	"github.com/supply-hub/supply-hub/internal/provider"
	"github.com/supply-hub/supply-hub/internal/queue"
	"github.com/supply-hub/supply-hub/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderEmail, c.handleOrderEmail)
}

func (c *Consumer) handleOrderEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_email_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	if c.NotificationService == nil {
		logger.Warnw("worker_order_email_skip_notification_service_nil", "order_id", payload.OrderID)
		return nil
	}
	if _, err := c.NotificationService.SendOrderEmail(payload.OrderID, payload.SentByID); err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			logger.Debugw("worker_order_email_skip_order_not_found", "order_id", payload.OrderID)
			return nil
		case errors.Is(err, service.ErrEmailServiceDisabled),
			errors.Is(err, service.ErrEmailServiceNotConfigured):
			logger.Debugw("worker_order_email_skip_email_disabled", "order_id", payload.OrderID)
			return nil
		default:
			logger.Warnw("worker_order_email_send_failed", "order_id", payload.OrderID, "error", err)
			return err
		}
	}
	return nil
}
