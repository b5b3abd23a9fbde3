package public

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/supply-hub/supply-hub/internal/http/response"
	"github.com/supply-hub/supply-hub/internal/models"
	"github.com/supply-hub/supply-hub/internal/repository"
	"github.com/supply-hub/supply-hub/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderItemRequest 下单订单项请求
type OrderItemRequest struct {
	ProductID uint   `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
	Unit      string `json:"unit" binding:"required"`
}

// PlaceOrderRequest 下单请求
type PlaceOrderRequest struct {
	SupplierID uint               `json:"supplierId" binding:"required"`
	Notes      string             `json:"notes"`
	Items      []OrderItemRequest `json:"items" binding:"required"`
}

// PlaceOrderResponse 下单响应。订单字段平铺输出，capture 通道下
// 附带 etherealUrl 预览链接。
type PlaceOrderResponse struct {
	*models.Order
	EtherealURL string `json:"etherealUrl,omitempty"`
}

// PlaceOrder 下单
func (h *Handler) PlaceOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var items []service.PlaceOrderItem
	for _, item := range req.Items {
		items = append(items, service.PlaceOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
		})
	}

	result, err := h.OrderService.PlaceOrder(service.PlaceOrderInput{
		EmployeeID: uid,
		SupplierID: req.SupplierID,
		Notes:      req.Notes,
		Items:      items,
	})
	if err != nil {
		respondPlaceOrderError(c, err)
		return
	}

	response.Created(c, PlaceOrderResponse{
		Order:       result.Order,
		EtherealURL: result.PreviewURL,
	})
}

// ListOrders 查询订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.OrderListFilter{
		Page:        page,
		PageSize:    pageSize,
		Status:      strings.TrimSpace(c.Query("status")),
		OrderNumber: strings.TrimSpace(c.Query("orderNumber")),
		Receivable:  c.Query("receivable") == "true",
	}
	if supplierID, err := strconv.ParseUint(c.Query("supplierId"), 10, 64); err == nil {
		filter.SupplierID = uint(supplierID)
	}
	if from, err := time.Parse(time.RFC3339, c.Query("createdFrom")); err == nil {
		filter.CreatedFrom = &from
	}
	if to, err := time.Parse(time.RFC3339, c.Query("createdTo")); err == nil {
		filter.CreatedTo = &to
	}

	orders, total, err := h.OrderService.ListOrders(actor, filter)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			respondError(c, http.StatusBadRequest, "Invalid order status filter", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch orders", err)
		return
	}

	response.SuccessWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

// GetOrder 获取订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, http.StatusBadRequest, "Invalid order id", nil)
		return
	}

	order, err := h.OrderService.GetOrder(actor, uint(orderID))
	if err != nil {
		respondOrderAccessError(c, err)
		return
	}

	response.Success(c, order)
}

// ReceiveItemRequest 收货订单项请求
type ReceiveItemRequest struct {
	ItemID           uint       `json:"orderItemId" binding:"required"`
	QuantityReceived int        `json:"quantityReceived"`
	ReceivedDate     *time.Time `json:"receivedDate"`
}

// ReceiveGoodsRequest 收货请求
type ReceiveGoodsRequest struct {
	Notes string               `json:"notes"`
	Items []ReceiveItemRequest `json:"items" binding:"required"`
}

// ReceiveGoods 登记收货
func (h *Handler) ReceiveGoods(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, http.StatusBadRequest, "Invalid order id", nil)
		return
	}

	var req ReceiveGoodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var items []service.ReceiveGoodsItem
	for _, item := range req.Items {
		items = append(items, service.ReceiveGoodsItem{
			ItemID:           item.ItemID,
			QuantityReceived: item.QuantityReceived,
			ReceivedDate:     item.ReceivedDate,
		})
	}

	order, err := h.ReceivingService.ReceiveGoods(actor, service.ReceiveGoodsInput{
		OrderID: uint(orderID),
		Notes:   req.Notes,
		Items:   items,
	})
	if err != nil {
		respondReceiveGoodsError(c, err)
		return
	}

	response.Success(c, order)
}
