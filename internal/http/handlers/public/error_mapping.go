package public

import (
	"errors"
	"net/http"

	"github.com/supply-hub/supply-hub/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	status int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackStatus int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.status, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackStatus, fallbackMsg, err)
}

var orderAccessErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, status: http.StatusNotFound, msg: "Order not found"},
	{target: service.ErrForbidden, status: http.StatusForbidden, msg: "Forbidden"},
}

var placeOrderErrorRules = []mappedHandlerError{
	{target: service.ErrOrderItemsRequired, status: http.StatusBadRequest, msg: "Order must contain at least one item"},
	{target: service.ErrInvalidOrderItem, status: http.StatusBadRequest, msg: "Invalid order item"},
	{target: service.ErrSupplierNotFound, status: http.StatusBadRequest, msg: "Supplier not found"},
	{target: service.ErrSupplierInactive, status: http.StatusBadRequest, msg: "Supplier is inactive"},
	{target: service.ErrProductNotFound, status: http.StatusBadRequest, msg: "Product not found"},
	{target: service.ErrProductInactive, status: http.StatusBadRequest, msg: "Product is inactive"},
	{target: service.ErrProductSupplierMismatch, status: http.StatusBadRequest, msg: "Product does not belong to the selected supplier"},
	{target: service.ErrValidation, status: http.StatusBadRequest, msg: "Validation failed"},
	{target: service.ErrQueueUnavailable, status: http.StatusInternalServerError, msg: "Queue unavailable"},
}

var receiveGoodsErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, status: http.StatusNotFound, msg: "Order not found"},
	{target: service.ErrForbidden, status: http.StatusForbidden, msg: "Forbidden"},
	{target: service.ErrOrderCancelled, status: http.StatusBadRequest, msg: "Cannot receive goods for a cancelled order"},
	{target: service.ErrOrderAlreadyClosed, status: http.StatusBadRequest, msg: "Order is already fully received"},
	{target: service.ErrItemNotInOrder, status: http.StatusBadRequest, msg: "Item does not belong to this order"},
	{target: service.ErrInvalidReceiveQty, status: http.StatusBadRequest, msg: "Received quantity must not be negative"},
	{target: service.ErrValidation, status: http.StatusBadRequest, msg: "Validation failed"},
}

func respondPlaceOrderError(c *gin.Context, err error) {
	respondWithMappedError(c, err, placeOrderErrorRules, http.StatusInternalServerError, "Failed to place order")
}

func respondReceiveGoodsError(c *gin.Context, err error) {
	respondWithMappedError(c, err, receiveGoodsErrorRules, http.StatusInternalServerError, "Failed to register goods receipt")
}

func respondOrderAccessError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderAccessErrorRules, http.StatusInternalServerError, "Failed to fetch order")
}
