package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeCart(t *testing.T, s *testServer, method, path, token string, body interface{}) CartResponse {
	t.Helper()

	w := s.do(t, method, path, token, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp CartResponse
	decode(t, w, &resp)
	return resp
}

func TestCartHandler_Lifecycle(t *testing.T) {
	s := newTestServer(t)
	token, userID := s.register(t, "Alice", "alice@example.com")
	phone := s.createProduct(t, token, sampleProduct("Phone", 100))
	cable := s.createProduct(t, token, sampleProduct("Cable", 7.5))

	resp := decodeCart(t, s, http.MethodGet, "/api/cart", token, nil)
	assert.Equal(t, userID, resp.Cart.UserID)
	assert.Empty(t, resp.Cart.Items)

	decodeCart(t, s, http.MethodPost, "/api/cart/add", token, AddToCartRequest{ProductID: phone.ID, Quantity: 1})
	decodeCart(t, s, http.MethodPost, "/api/cart/add", token, AddToCartRequest{ProductID: cable.ID, Quantity: 2})
	resp = decodeCart(t, s, http.MethodPost, "/api/cart/add", token, AddToCartRequest{ProductID: phone.ID, Quantity: 1})

	require.Len(t, resp.Cart.Items, 2)
	assert.Equal(t, phone.ID, resp.Cart.Items[0].ProductID)
	assert.Equal(t, 2, resp.Cart.Items[0].Quantity)
	assert.Equal(t, "Phone", resp.Cart.Items[0].Name)
	assert.InDelta(t, 215.0, resp.Cart.TotalPrice, 0.001)

	resp = decodeCart(t, s, http.MethodPut, "/api/cart/update/"+cable.ID, token, UpdateCartItemRequest{Quantity: 4})
	assert.InDelta(t, 230.0, resp.Cart.TotalPrice, 0.001)

	resp = decodeCart(t, s, http.MethodDelete, "/api/cart/remove/"+phone.ID, token, nil)
	require.Len(t, resp.Cart.Items, 1)
	assert.InDelta(t, 30.0, resp.Cart.TotalPrice, 0.001)

	w := s.do(t, http.MethodDelete, "/api/cart/clear", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var msg MessageResponse
	decode(t, w, &msg)
	assert.Equal(t, "Cart cleared", msg.Message)

	resp = decodeCart(t, s, http.MethodGet, "/api/cart", token, nil)
	assert.Empty(t, resp.Cart.Items)
	assert.Zero(t, resp.Cart.TotalPrice)
}

func TestCartHandler_Errors(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.register(t, "Alice", "alice@example.com")
	phone := s.createProduct(t, token, sampleProduct("Phone", 100))

	tests := []struct {
		name        string
		method      string
		path        string
		body        interface{}
		wantStatus  int
		wantMessage string
	}{
		{"add unknown product", http.MethodPost, "/api/cart/add", AddToCartRequest{ProductID: "missing", Quantity: 1},
			http.StatusNotFound, "product not found"},
		{"add zero quantity", http.MethodPost, "/api/cart/add", AddToCartRequest{ProductID: phone.ID},
			http.StatusBadRequest, "please provide product ID and quantity"},
		{"update without cart", http.MethodPut, "/api/cart/update/" + phone.ID, UpdateCartItemRequest{Quantity: 2},
			http.StatusNotFound, "cart not found"},
		{"remove without cart", http.MethodDelete, "/api/cart/remove/" + phone.ID, nil,
			http.StatusNotFound, "cart not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, tt.method, tt.path, token, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)

			var resp ErrorResponse
			decode(t, w, &resp)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}

	t.Run("update missing line", func(t *testing.T) {
		decodeCart(t, s, http.MethodGet, "/api/cart", token, nil)

		w := s.do(t, http.MethodPut, "/api/cart/update/"+phone.ID, token, UpdateCartItemRequest{Quantity: 2})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("requires a token", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/cart", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
