package queue

import (
	"encoding/json"

	"github.com/supply-hub/supply-hub/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderEmail 订货邮件发送任务
	TaskOrderEmail = constants.TaskOrderEmail
)

// OrderEmailPayload 订货邮件任务载荷
type OrderEmailPayload struct {
	OrderID  uint `json:"orderId"`
	SentByID uint `json:"sentById"`
}

// NewOrderEmailTask 创建订货邮件任务
func NewOrderEmailTask(payload OrderEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderEmail, body), nil
}
