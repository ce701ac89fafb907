package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"shopapi.app/internal/core/product"
	"shopapi.app/internal/ports"
	"shopapi.app/pkg/errors"
)

// ListProductsRequest represents the query of GET /api/products
type ListProductsRequest struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Page     *int   `form:"page"`
	Limit    *int   `form:"limit"`
}

// CreateProductRequest represents the body of POST /api/products
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Image       string   `json:"image" binding:"required"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category" binding:"omitempty,category"`
	Stock       int      `json:"stock" binding:"gte=0"`
	Rating      *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
}

// UpdateProductRequest represents the body of PUT /api/products/:id; absent fields are unchanged
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Brand       *string  `json:"brand"`
	Category    *string  `json:"category" binding:"omitempty,category"`
	Stock       *int     `json:"stock"`
	Rating      *float64 `json:"rating"`
}

// Pagination describes the position of a product page
type Pagination struct {
	Total       int64 `json:"total"`
	Pages       int   `json:"pages"`
	CurrentPage int   `json:"currentPage"`
}

// ProductListResponse is the body of a product listing
type ProductListResponse struct {
	Success    bool               `json:"success"`
	Products   []*product.Product `json:"products"`
	Pagination Pagination         `json:"pagination"`
}

// ProductResponse is the body of a single product
type ProductResponse struct {
	Success bool             `json:"success"`
	Product *product.Product `json:"product"`
}

// listProducts handles GET /api/products requests
func (s *HTTPServerAdapter) listProducts(c *gin.Context) {
	var httpReq ListProductsRequest
	if err := c.ShouldBindQuery(&httpReq); err != nil {
		s.handleError(c, errors.NewValidationError("page and limit must be integers"))
		return
	}

	query := product.NewListQuery()
	query.Category = httpReq.Category
	query.Search = httpReq.Search
	if httpReq.Page != nil {
		query.Page = *httpReq.Page
	}
	if httpReq.Limit != nil {
		query.Limit = *httpReq.Limit
	}

	page, err := s.productUseCase.List(c.Request.Context(), query)
	if err != nil {
		s.handleError(c, err)
		return
	}

	items := page.Items
	if items == nil {
		items = []*product.Product{}
	}

	c.JSON(http.StatusOK, ProductListResponse{
		Success:  true,
		Products: items,
		Pagination: Pagination{
			Total:       page.Total,
			Pages:       page.PageCount,
			CurrentPage: page.CurrentPage,
		},
	})
}

// getProduct handles GET /api/products/:id requests
func (s *HTTPServerAdapter) getProduct(c *gin.Context) {
	p, err := s.productUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProductResponse{Success: true, Product: p})
}

// createProduct handles POST /api/products requests
func (s *HTTPServerAdapter) createProduct(c *gin.Context) {
	var httpReq CreateProductRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	p, err := s.productUseCase.Create(c.Request.Context(), product.CreateParams{
		Name:        httpReq.Name,
		Description: httpReq.Description,
		Price:       httpReq.Price,
		Image:       httpReq.Image,
		Brand:       httpReq.Brand,
		Category:    httpReq.Category,
		Stock:       httpReq.Stock,
		Rating:      httpReq.Rating,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ProductResponse{Success: true, Product: p})
}

// updateProduct handles PUT /api/products/:id requests
func (s *HTTPServerAdapter) updateProduct(c *gin.Context) {
	var httpReq UpdateProductRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	id := c.Param("id")
	p, err := s.productUseCase.Update(c.Request.Context(), id, product.UpdateParams{
		Name:        httpReq.Name,
		Description: httpReq.Description,
		Price:       httpReq.Price,
		Image:       httpReq.Image,
		Brand:       httpReq.Brand,
		Category:    httpReq.Category,
		Stock:       httpReq.Stock,
		Rating:      httpReq.Rating,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	s.logger.Debug("Product updated", ports.F("id", id))
	c.JSON(http.StatusOK, ProductResponse{Success: true, Product: p})
}

// deleteProduct handles DELETE /api/products/:id requests
func (s *HTTPServerAdapter) deleteProduct(c *gin.Context) {
	if _, err := s.productUseCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Product deleted"})
}
