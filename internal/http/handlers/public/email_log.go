package public

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/supply-hub/supply-hub/internal/http/response"
	"github.com/supply-hub/supply-hub/internal/repository"
	"github.com/supply-hub/supply-hub/internal/service"

	"github.com/gin-gonic/gin"
)

// ListEmails 查询邮件发送记录，普通员工只能看到自己触发的邮件
func (h *Handler) ListEmails(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.EmailLogListFilter{
		Page:     page,
		PageSize: pageSize,
		Type:     strings.TrimSpace(c.Query("type")),
		Status:   strings.TrimSpace(c.Query("status")),
	}
	if orderID, err := strconv.ParseUint(c.Query("orderId"), 10, 64); err == nil {
		filter.OrderID = uint(orderID)
	}

	logs, total, err := h.EmailLogService.List(actor, filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch email logs", err)
		return
	}

	response.SuccessWithPage(c, logs, response.NewPagination(page, pageSize, total))
}

// GetEmail 获取邮件发送记录详情（capture 通道的预览链接指向这里）
func (h *Handler) GetEmail(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	logID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || logID == 0 {
		respondError(c, http.StatusBadRequest, "Invalid email log id", nil)
		return
	}

	log, err := h.EmailLogService.Get(actor, uint(logID))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Email log not found", nil)
			return
		}
		if errors.Is(err, service.ErrForbidden) {
			respondError(c, http.StatusForbidden, "Forbidden", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch email log", err)
		return
	}

	response.Success(c, log)
}
