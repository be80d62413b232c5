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

type InventoryService interface {
	GetLevels(ctx context.Context) ([]domain.Product, error)
	GetAlerts(ctx context.Context) ([]domain.Product, error)
	GetMovements(ctx context.Context) ([]domain.Movement, error)
	Restock(ctx context.Context, productID string, quantity int, notes string) (domain.Product, error)
	Adjust(ctx context.Context, productID string, quantity int, reason string) (domain.Product, error)
}

type InventoryHandler struct {
	svc InventoryService
}

func NewInventoryHandler(svc InventoryService) *InventoryHandler {
	return &InventoryHandler{
		svc: svc,
	}
}

// HandleGetLevels godoc
// @Summary      Current stock levels for all products
// @Tags         inventory
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      500  {object}  response.Err
// @Router       /inventory/levels [get]
func (h *InventoryHandler) HandleGetLevels(ctx *gin.Context) {
	products, err := h.svc.GetLevels(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetLevels -> h.svc.GetLevels -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, products)
}

// HandleGetAlerts godoc
// @Summary      Products currently at or below their reorder level
// @Tags         inventory
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      500  {object}  response.Err
// @Router       /inventory/alerts [get]
func (h *InventoryHandler) HandleGetAlerts(ctx *gin.Context) {
	products, err := h.svc.GetAlerts(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetAlerts -> h.svc.GetAlerts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, products)
}

// HandleGetMovements godoc
// @Summary      Most recent inventory movements
// @Tags         inventory
// @Produce      json
// @Success      200  {array}   domain.Movement
// @Failure      500  {object}  response.Err
// @Router       /inventory/movements [get]
func (h *InventoryHandler) HandleGetMovements(ctx *gin.Context) {
	movements, err := h.svc.GetMovements(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMovements -> h.svc.GetMovements -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, movements)
}

// HandleRestock godoc
// @Summary      Add stock to a product
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request  body      request.RestockRequest  true  "request body"
// @Success      200      {object}  domain.Product
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /inventory/restock [post]
func (h *InventoryHandler) HandleRestock(ctx *gin.Context) {
	var req request.RestockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	product, err := h.svc.Restock(ctx.Request.Context(), req.ProductID, req.Quantity, req.Notes)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("product", "id", req.ProductID))
			return
		}

		err = fmt.Errorf("v1.HandleRestock -> h.svc.Restock -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// HandleAdjust godoc
// @Summary      Apply a signed stock adjustment to a product
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request  body      request.AdjustRequest  true  "request body"
// @Success      200      {object}  domain.Product
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /inventory/adjust [post]
func (h *InventoryHandler) HandleAdjust(ctx *gin.Context) {
	var req request.AdjustRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	product, err := h.svc.Adjust(ctx.Request.Context(), req.ProductID, *req.Quantity, req.Reason)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("product", "id", req.ProductID))
			return
		}

		err = fmt.Errorf("v1.HandleAdjust -> h.svc.Adjust -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, product)
}
