package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/easymart/pos-backend/internal/api/handler/v1/request"
	"github.com/easymart/pos-backend/internal/api/handler/v1/response"
	"github.com/easymart/pos-backend/internal/domain"
	"github.com/easymart/pos-backend/internal/service"
)

type ProductService interface {
	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListLowStockProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, id string, input service.UpdateProductInput) (domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type ProductHandler struct {
	svc ProductService
}

func NewProductHandler(svc ProductService) *ProductHandler {
	return &ProductHandler{
		svc: svc,
	}
}

// HandleListProducts godoc
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      500  {object}  response.Err
// @Router       /products [get]
func (h *ProductHandler) HandleListProducts(ctx *gin.Context) {
	products, err := h.svc.ListProducts(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListProducts -> h.svc.ListProducts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, products)
}

// HandleListLowStock godoc
// @Summary      List products at or below their reorder level
// @Tags         products
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      500  {object}  response.Err
// @Router       /products/inventory/low-stock [get]
func (h *ProductHandler) HandleListLowStock(ctx *gin.Context) {
	products, err := h.svc.ListLowStockProducts(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListLowStock -> h.svc.ListLowStockProducts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, products)
}

// HandleGetProduct godoc
// @Summary      Get a product by ID
// @Tags         products
// @Produce      json
// @Param        productID  path      string  true  "Product ID"
// @Success      200        {object}  domain.Product
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /products/{productID} [get]
func (h *ProductHandler) HandleGetProduct(ctx *gin.Context) {
	id := ctx.Param("productID")

	product, err := h.svc.GetProduct(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("product", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetProduct -> h.svc.GetProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// HandleCreateProduct godoc
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateProductRequest  true  "request body"
// @Success      201      {object}  domain.Product
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /products [post]
func (h *ProductHandler) HandleCreateProduct(ctx *gin.Context) {
	var req request.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reorderLevel := req.ReorderLevel
	if reorderLevel == 0 {
		reorderLevel = 10
	}

	product, err := h.svc.CreateProduct(ctx.Request.Context(), domain.Product{
		Name:          req.Name,
		SKU:           req.SKU,
		Category:      req.Category,
		Price:         *req.Price,
		CostPrice:     req.CostPrice,
		StockQuantity: req.StockQuantity,
		ReorderLevel:  reorderLevel,
		ImageURL:      req.ImageURL,
		Description:   req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrProductSKUExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrProductSKUExists))
			return
		}

		err = fmt.Errorf("v1.HandleCreateProduct -> h.svc.CreateProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

// HandleUpdateProduct godoc
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        productID  path      string                        true  "Product ID"
// @Param        request    body      request.UpdateProductRequest  true  "request body"
// @Success      200        {object}  domain.Product
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /products/{productID} [put]
func (h *ProductHandler) HandleUpdateProduct(ctx *gin.Context) {
	id := ctx.Param("productID")

	var req request.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	product, err := h.svc.UpdateProduct(ctx.Request.Context(), id, service.UpdateProductInput{
		Name:          req.Name,
		SKU:           req.SKU,
		Category:      req.Category,
		Price:         req.Price,
		CostPrice:     req.CostPrice,
		StockQuantity: req.StockQuantity,
		ReorderLevel:  req.ReorderLevel,
		ImageURL:      req.ImageURL,
		Description:   req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("product", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateProduct -> h.svc.UpdateProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// HandleDeleteProduct godoc
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        productID  path      string  true  "Product ID"
// @Success      200        {object}  response.Deleted
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /products/{productID} [delete]
func (h *ProductHandler) HandleDeleteProduct(ctx *gin.Context) {
	id := ctx.Param("productID")

	if err := h.svc.DeleteProduct(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("product", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteProduct -> h.svc.DeleteProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Deleted{
		Message: "Product deleted successfully",
		ID:      id,
	})
}
