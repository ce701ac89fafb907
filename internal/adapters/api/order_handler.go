package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"shopapi.app/internal/core/order"
	"shopapi.app/internal/ports"
)

// CreateOrderRequest represents the body of POST /api/orders/create
type CreateOrderRequest struct {
	ShippingAddress order.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                `json:"paymentMethod"`
}

// UpdateOrderStatusRequest represents the body of PUT /api/orders/:id/status
type UpdateOrderStatusRequest struct {
	OrderStatus   *string `json:"orderStatus"`
	PaymentStatus *string `json:"paymentStatus"`
}

// OrderResponse is the body of a single order
type OrderResponse struct {
	Success bool         `json:"success"`
	Order   *order.Order `json:"order"`
	Message string       `json:"message,omitempty"`
}

// OrderListResponse is the body of the caller's order history
type OrderListResponse struct {
	Success bool           `json:"success"`
	Orders  []*order.Order `json:"orders"`
}

// listOrders handles GET /api/orders requests
func (s *HTTPServerAdapter) listOrders(c *gin.Context) {
	userID, _, err := caller(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	orders, err := s.orderUseCase.List(c.Request.Context(), userID)
	if err != nil {
		s.handleError(c, err)
		return
	}
	if orders == nil {
		orders = []*order.Order{}
	}

	c.JSON(http.StatusOK, OrderListResponse{Success: true, Orders: orders})
}

// getOrder handles GET /api/orders/:id requests
func (s *HTTPServerAdapter) getOrder(c *gin.Context) {
	userID, role, err := caller(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	o, err := s.orderUseCase.Get(c.Request.Context(), userID, role, c.Param("id"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, OrderResponse{Success: true, Order: o})
}

// createOrder handles POST /api/orders/create requests
func (s *HTTPServerAdapter) createOrder(c *gin.Context) {
	userID, _, err := caller(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	var httpReq CreateOrderRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	o, err := s.orderUseCase.Create(c.Request.Context(), userID, order.CreateRequest{
		ShippingAddress: httpReq.ShippingAddress,
		PaymentMethod:   httpReq.PaymentMethod,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	s.logger.Info("Order placed", ports.F("orderID", o.ID), ports.F("userID", userID))
	c.JSON(http.StatusCreated, OrderResponse{Success: true, Order: o, Message: "Order created successfully"})
}

// updateOrderStatus handles PUT /api/orders/:id/status requests
func (s *HTTPServerAdapter) updateOrderStatus(c *gin.Context) {
	_, role, err := caller(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	var httpReq UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	o, err := s.orderUseCase.UpdateStatus(c.Request.Context(), role, c.Param("id"), order.StatusUpdate{
		OrderStatus:   httpReq.OrderStatus,
		PaymentStatus: httpReq.PaymentStatus,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, OrderResponse{Success: true, Order: o})
}

// cancelOrder handles DELETE /api/orders/:id requests
func (s *HTTPServerAdapter) cancelOrder(c *gin.Context) {
	userID, _, err := caller(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	if err := s.orderUseCase.Cancel(c.Request.Context(), userID, c.Param("id")); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Order cancelled"})
}
