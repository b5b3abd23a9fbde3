package admin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/supply-hub/supply-hub/internal/http/response"
	"github.com/supply-hub/supply-hub/internal/repository"
	"github.com/supply-hub/supply-hub/internal/service"

	"github.com/gin-gonic/gin"
)

// SupplierRequest 供应商写入请求
type SupplierRequest struct {
	Name         string   `json:"name" binding:"required"`
	Email        string   `json:"email" binding:"required"`
	CCEmails     []string `json:"ccEmails"`
	ContactName  string   `json:"contactName"`
	Phone        string   `json:"phone"`
	ArticleGroup string   `json:"articleGroup" binding:"required"`
	IsActive     *bool    `json:"isActive"`
}

func (r SupplierRequest) toInput() service.SupplierInput {
	return service.SupplierInput{
		Name:         r.Name,
		Email:        r.Email,
		CCEmails:     r.CCEmails,
		ContactName:  r.ContactName,
		Phone:        r.Phone,
		ArticleGroup: r.ArticleGroup,
		IsActive:     r.IsActive,
	}
}

// ListSuppliers 供应商列表（含停用）
func (h *Handler) ListSuppliers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	suppliers, total, err := h.SupplierService.List(repository.SupplierListFilter{
		Page:         page,
		PageSize:     pageSize,
		Search:       strings.TrimSpace(c.Query("search")),
		ArticleGroup: strings.TrimSpace(c.Query("articleGroup")),
		OnlyActive:   c.Query("onlyActive") == "true",
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch suppliers", err)
		return
	}

	response.SuccessWithPage(c, suppliers, response.NewPagination(page, pageSize, total))
}

// GetSupplier 供应商详情
func (h *Handler) GetSupplier(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	supplier, err := h.SupplierService.Get(id)
	if err != nil {
		respondMasterDataError(c, err, "Supplier not found")
		return
	}

	response.Success(c, supplier)
}

// CreateSupplier 创建供应商
func (h *Handler) CreateSupplier(c *gin.Context) {
	actorID, ok := getActorID(c)
	if !ok {
		return
	}

	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	supplier, err := h.SupplierService.Create(actorID, req.toInput())
	if err != nil {
		respondMasterDataError(c, err, "Supplier not found")
		return
	}

	response.Created(c, supplier)
}

// UpdateSupplier 更新供应商
func (h *Handler) UpdateSupplier(c *gin.Context) {
	actorID, ok := getActorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	supplier, err := h.SupplierService.Update(actorID, id, req.toInput())
	if err != nil {
		respondMasterDataError(c, err, "Supplier not found")
		return
	}

	response.Success(c, supplier)
}

// DeleteSupplier 删除供应商
func (h *Handler) DeleteSupplier(c *gin.Context) {
	actorID, ok := getActorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.SupplierService.Delete(actorID, id); err != nil {
		respondMasterDataError(c, err, "Supplier not found")
		return
	}

	response.NoContent(c)
}
