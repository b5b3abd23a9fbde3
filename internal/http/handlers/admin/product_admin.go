package admin

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/supply-hub/supply-hub/internal/http/response"
	"github.com/supply-hub/supply-hub/internal/models"
	"github.com/supply-hub/supply-hub/internal/repository"
	"github.com/supply-hub/supply-hub/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductRequest 商品写入请求
type ProductRequest struct {
	Name             string        `json:"name" binding:"required"`
	ArticleCode      string        `json:"articleCode" binding:"required"`
	SupplierID       uint          `json:"supplierId" binding:"required"`
	ProductTypeID    *uint         `json:"productTypeId"`
	UnitsPerBox      *int          `json:"unitsPerBox"`
	UnitsPerPallet   *int          `json:"unitsPerPallet"`
	PricePerUnit     *models.Money `json:"pricePerUnit"`
	CSRDRequirements string        `json:"csrdRequirements"`
	IsActive         *bool         `json:"isActive"`
}

func (r ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:             r.Name,
		ArticleCode:      r.ArticleCode,
		SupplierID:       r.SupplierID,
		ProductTypeID:    r.ProductTypeID,
		UnitsPerBox:      r.UnitsPerBox,
		UnitsPerPallet:   r.UnitsPerPallet,
		PricePerUnit:     r.PricePerUnit,
		CSRDRequirements: r.CSRDRequirements,
		IsActive:         r.IsActive,
	}
}

// respondProductWriteError 商品写入接口的错误映射。
// 引用的供应商或商品类型不存在视为请求错误而非 404。
func respondProductWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSupplierNotFound):
		respondError(c, http.StatusBadRequest, "Supplier not found", nil)
	case errors.Is(err, service.ErrProductTypeNotFound):
		respondError(c, http.StatusBadRequest, "Product type not found", nil)
	default:
		respondMasterDataError(c, err, "Product not found")
	}
}

// ListProducts 商品列表（含停用）
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		Search:     strings.TrimSpace(c.Query("search")),
		OnlyActive: c.Query("onlyActive") == "true",
	}
	if supplierID, err := strconv.ParseUint(c.Query("supplierId"), 10, 64); err == nil {
		filter.SupplierID = uint(supplierID)
	}
	if productTypeID, err := strconv.ParseUint(c.Query("productTypeId"), 10, 64); err == nil {
		filter.ProductTypeID = uint(productTypeID)
	}

	products, total, err := h.ProductService.List(filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch products", err)
		return
	}

	response.SuccessWithPage(c, products, response.NewPagination(page, pageSize, total))
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	product, err := h.ProductService.Get(id)
	if err != nil {
		respondMasterDataError(c, err, "Product not found")
		return
	}

	response.Success(c, product)
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	actorID, ok := getActorID(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product, err := h.ProductService.Create(actorID, req.toInput())
	if err != nil {
		respondProductWriteError(c, err)
		return
	}

	response.Created(c, product)
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	actorID, ok := getActorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product, err := h.ProductService.Update(actorID, id, req.toInput())
	if err != nil {
		respondProductWriteError(c, err)
		return
	}

	response.Success(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	actorID, ok := getActorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.ProductService.Delete(actorID, id); err != nil {
		respondMasterDataError(c, err, "Product not found")
		return
	}

	response.NoContent(c)
}
