package admin

import (
	"net/http"

	"github.com/supply-hub/supply-hub/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ProductTypeRequest 商品类型写入请求
type ProductTypeRequest struct {
	Name     string `json:"name" binding:"required"`
	IsActive *bool  `json:"isActive"`
}

// ListProductTypes 商品类型列表（含停用）
func (h *Handler) ListProductTypes(c *gin.Context) {
	productTypes, err := h.ProductTypeService.List(c.Query("onlyActive") == "true")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch product types", err)
		return
	}

	response.Success(c, productTypes)
}

// GetProductType 商品类型详情
func (h *Handler) GetProductType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	productType, err := h.ProductTypeService.Get(id)
	if err != nil {
		respondMasterDataError(c, err, "Product type not found")
		return
	}

	response.Success(c, productType)
}

// CreateProductType 创建商品类型
func (h *Handler) CreateProductType(c *gin.Context) {
	actorID, ok := getActorID(c)
	if !ok {
		return
	}

	var req ProductTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	productType, err := h.ProductTypeService.Create(actorID, req.Name, req.IsActive)
	if err != nil {
		respondMasterDataError(c, err, "Product type not found")
		return
	}

	response.Created(c, productType)
}

// UpdateProductType 更新商品类型
func (h *Handler) UpdateProductType(c *gin.Context) {
	actorID, ok := getActorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req ProductTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	productType, err := h.ProductTypeService.Update(actorID, id, req.Name, req.IsActive)
	if err != nil {
		respondMasterDataError(c, err, "Product type not found")
		return
	}

	response.Success(c, productType)
}

// DeleteProductType 删除商品类型
func (h *Handler) DeleteProductType(c *gin.Context) {
	actorID, ok := getActorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.ProductTypeService.Delete(actorID, id); err != nil {
		respondMasterDataError(c, err, "Product type not found")
		return
	}

	response.NoContent(c)
}
