package public

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/supply-hub/supply-hub/internal/http/response"
	"github.com/supply-hub/supply-hub/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListSuppliers 查询可下单的供应商列表
func (h *Handler) ListSuppliers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	suppliers, total, err := h.SupplierService.List(repository.SupplierListFilter{
		Page:         page,
		PageSize:     pageSize,
		Search:       strings.TrimSpace(c.Query("search")),
		ArticleGroup: strings.TrimSpace(c.Query("articleGroup")),
		OnlyActive:   true,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch suppliers", err)
		return
	}

	response.SuccessWithPage(c, suppliers, response.NewPagination(page, pageSize, total))
}

// ListProducts 查询可下单的商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		Search:     strings.TrimSpace(c.Query("search")),
		OnlyActive: true,
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

// ListProductTypes 查询商品类型列表
func (h *Handler) ListProductTypes(c *gin.Context) {
	productTypes, err := h.ProductTypeService.List(true)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch product types", err)
		return
	}

	response.Success(c, productTypes)
}
