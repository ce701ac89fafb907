package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"shopapi.app/internal/core/cart"
)

// AddToCartRequest represents the body of POST /api/cart/add
type AddToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest represents the body of PUT /api/cart/update/:productId
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse is the body of a cart
type CartResponse struct {
	Success bool       `json:"success"`
	Cart    *cart.Cart `json:"cart"`
}

// getCart handles GET /api/cart requests
func (s *HTTPServerAdapter) getCart(c *gin.Context) {
	s.withCaller(c, func(userID string) (*cart.Cart, error) {
		return s.cartUseCase.Get(c.Request.Context(), userID)
	})
}

// addToCart handles POST /api/cart/add requests
func (s *HTTPServerAdapter) addToCart(c *gin.Context) {
	var httpReq AddToCartRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	s.withCaller(c, func(userID string) (*cart.Cart, error) {
		return s.cartUseCase.Add(c.Request.Context(), userID, cart.AddItemRequest{
			ProductID: httpReq.ProductID,
			Quantity:  httpReq.Quantity,
		})
	})
}

// updateCartItem handles PUT /api/cart/update/:productId requests
func (s *HTTPServerAdapter) updateCartItem(c *gin.Context) {
	var httpReq UpdateCartItemRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	s.withCaller(c, func(userID string) (*cart.Cart, error) {
		return s.cartUseCase.UpdateQuantity(c.Request.Context(), userID, c.Param("productId"), httpReq.Quantity)
	})
}

// removeCartItem handles DELETE /api/cart/remove/:productId requests
func (s *HTTPServerAdapter) removeCartItem(c *gin.Context) {
	s.withCaller(c, func(userID string) (*cart.Cart, error) {
		return s.cartUseCase.Remove(c.Request.Context(), userID, c.Param("productId"))
	})
}

// clearCart handles DELETE /api/cart/clear requests
func (s *HTTPServerAdapter) clearCart(c *gin.Context) {
	userID, _, err := caller(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	if err := s.cartUseCase.Clear(c.Request.Context(), userID); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Cart cleared"})
}

func (s *HTTPServerAdapter) withCaller(c *gin.Context, op func(userID string) (*cart.Cart, error)) {
	userID, _, err := caller(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	result, err := op(userID)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, CartResponse{Success: true, Cart: result})
}
