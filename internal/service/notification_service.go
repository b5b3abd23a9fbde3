package service

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/supply-hub/supply-hub/internal/constants"
	"github.com/supply-hub/supply-hub/internal/logger"
	"github.com/supply-hub/supply-hub/internal/models"
	"github.com/supply-hub/supply-hub/internal/repository"
)

// NotificationService 订货邮件通知服务。加载订单关联图、渲染
// 订货邮件并投递，每次尝试都落一条邮件记录；成功后回写订单的
// 邮件发送时间并追加审计记录。
type NotificationService struct {
	orderRepo    repository.OrderRepository
	emailLogRepo repository.EmailLogRepository
	emailService *EmailService
	auditService *AuditService
	appURL       string
}

// NewNotificationService 创建通知服务
func NewNotificationService(orderRepo repository.OrderRepository, emailLogRepo repository.EmailLogRepository, emailService *EmailService, auditService *AuditService, appURL string) *NotificationService {
	return &NotificationService{
		orderRepo:    orderRepo,
		emailLogRepo: emailLogRepo,
		emailService: emailService,
		auditService: auditService,
		appURL:       strings.TrimRight(strings.TrimSpace(appURL), "/"),
	}
}

// SendOrderEmail 发送订货邮件。capture 通道不外发，仅落库并返回
// 预览链接；smtp 通道实际投递。返回预览链接（仅 capture 有值）。
func (s *NotificationService) SendOrderEmail(orderID uint, sentByID uint) (string, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return "", err
	}
	if order == nil {
		return "", ErrOrderNotFound
	}
	if order.Supplier == nil || order.Employee == nil {
		return "", ErrOrderNotFound
	}

	subject := fmt.Sprintf("New Order %s - %s", order.OrderNumber, order.Supplier.Name)
	body := buildOrderEmailHTML(order)
	cc := append([]string{}, order.Supplier.CCEmails...)
	if order.Employee.Email != "" {
		cc = append(cc, order.Employee.Email)
	}

	provider := s.emailService.Provider()
	emailLog := &models.EmailLog{
		Type:      constants.EmailTypeOrder,
		Subject:   subject,
		Recipient: order.Supplier.Email,
		CC:        models.StringArray(cc),
		OrderID:   &order.ID,
		Provider:  provider,
		Body:      body,
		SentAt:    time.Now(),
	}
	if sentByID != 0 {
		emailLog.SentByID = &sentByID
	}

	var sendErr error
	if provider == constants.EmailProviderCapture {
		// capture 通道只留档不外发，预览链接指向邮件记录详情
		sendErr = nil
	} else {
		sendErr = s.emailService.SendHTMLEmail(order.Supplier.Email, cc, subject, body)
	}

	if sendErr != nil {
		emailLog.Status = constants.EmailStatusFailed
		emailLog.Error = sendErr.Error()
		if err := s.emailLogRepo.Create(emailLog); err != nil {
			logger.Errorw("email_log_write_failed", "order_id", order.ID, "error", err)
		}
		return "", sendErr
	}

	emailLog.Status = constants.EmailStatusSent
	if err := s.emailLogRepo.Create(emailLog); err != nil {
		logger.Errorw("email_log_write_failed", "order_id", order.ID, "error", err)
	}

	previewURL := ""
	if provider == constants.EmailProviderCapture && emailLog.ID != 0 {
		previewURL = fmt.Sprintf("%s/api/v1/emails/%d", s.appURL, emailLog.ID)
		if err := s.emailLogRepo.UpdatePreviewURL(emailLog.ID, previewURL); err != nil {
			logger.Warnw("email_log_preview_url_update_failed", "email_log_id", emailLog.ID, "error", err)
		}
	}

	// 只回写时间戳。邮件发送与收货可能并发，状态以库内为准。
	if err := s.orderRepo.UpdateEmailSentAt(order.ID, time.Now()); err != nil {
		logger.Warnw("order_email_sent_at_update_failed", "order_id", order.ID, "error", err)
	}

	s.auditService.RecordBestEffort(AuditInput{
		UserID:     sentByID,
		Action:     constants.AuditActionOrderEmailSent,
		EntityType: constants.EntityTypeOrder,
		EntityID:   fmt.Sprintf("%d", order.ID),
		Details: models.JSON{
			"orderNumber": order.OrderNumber,
			"recipient":   order.Supplier.Email,
			"provider":    provider,
		},
	})

	logger.Infow("order_email_sent",
		"order_id", order.ID,
		"order_number", order.OrderNumber,
		"recipient", order.Supplier.Email,
		"provider", provider,
	)
	return previewURL, nil
}

// buildOrderEmailHTML 渲染订货邮件正文
func buildOrderEmailHTML(order *models.Order) string {
	var rows strings.Builder
	for i := range order.Items {
		item := &order.Items[i]
		name := ""
		articleCode := ""
		if item.Product != nil {
			name = item.Product.Name
			articleCode = item.Product.ArticleCode
		}
		rows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="border: 1px solid #ddd; padding: 8px;">%s</td>
        <td style="border: 1px solid #ddd; padding: 8px;">%s</td>
        <td style="border: 1px solid #ddd; padding: 8px; text-align: right;">%d</td>
        <td style="border: 1px solid #ddd; padding: 8px;">%s</td>
      </tr>`,
			html.EscapeString(name),
			html.EscapeString(articleCode),
			item.Quantity,
			html.EscapeString(constants.UnitLabel(item.Unit)),
		))
	}

	notesSection := ""
	if strings.TrimSpace(order.Notes) != "" {
		notesSection = fmt.Sprintf(`<p style="margin-top: 16px;"><strong>Notes:</strong> %s</p>`, html.EscapeString(order.Notes))
	}

	return fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
      <h2 style="color: #333;">New Order %s</h2>
      <p>Dear %s,</p>
      <p>A new order has been placed by %s.</p>
      <table style="width: 100%%; border-collapse: collapse; margin-top: 16px;">
        <thead>
          <tr style="background-color: #f4f4f4;">
            <th style="border: 1px solid #ddd; padding: 8px; text-align: left;">Product</th>
            <th style="border: 1px solid #ddd; padding: 8px; text-align: left;">Article Code</th>
            <th style="border: 1px solid #ddd; padding: 8px; text-align: right;">Quantity</th>
            <th style="border: 1px solid #ddd; padding: 8px; text-align: left;">Unit</th>
          </tr>
        </thead>
        <tbody>%s
        </tbody>
      </table>
      %s
      <p style="margin-top: 24px; color: #666; font-size: 12px;">
        This is an automated message from the packaging materials ordering system.
      </p>
    </div>`,
		html.EscapeString(order.OrderNumber),
		html.EscapeString(order.Supplier.Name),
		html.EscapeString(order.Employee.FullName()),
		rows.String(),
		notesSection,
	)
}
