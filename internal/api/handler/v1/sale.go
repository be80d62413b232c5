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

type SaleService interface {
	CreateSale(ctx context.Context, sale domain.Sale, items []service.CreateSaleInput) (domain.Sale, error)
	ListSales(ctx context.Context) ([]domain.Sale, error)
	GetSale(ctx context.Context, id string) (domain.Sale, error)
	GetDailySummary(ctx context.Context) ([]domain.DailySummary, error)
}

type SaleHandler struct {
	svc SaleService
}

func NewSaleHandler(svc SaleService) *SaleHandler {
	return &SaleHandler{
		svc: svc,
	}
}

// HandleListSales godoc
// @Summary      List all sales with line-item counts
// @Tags         sales
// @Produce      json
// @Success      200  {array}   domain.Sale
// @Failure      500  {object}  response.Err
// @Router       /sales [get]
func (h *SaleHandler) HandleListSales(ctx *gin.Context) {
	sales, err := h.svc.ListSales(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListSales -> h.svc.ListSales -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, sales)
}

// HandleGetSale godoc
// @Summary      Get a sale with its line items
// @Tags         sales
// @Produce      json
// @Param        saleID  path      string  true  "Sale ID"
// @Success      200     {object}  domain.Sale
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /sales/{saleID} [get]
func (h *SaleHandler) HandleGetSale(ctx *gin.Context) {
	id := ctx.Param("saleID")

	sale, err := h.svc.GetSale(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSaleNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("sale", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetSale -> h.svc.GetSale -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, sale)
}

// HandleCreateSale godoc
// @Summary      Create a sale
// @Description  Persists the sale, its line items and one negative inventory movement per line, then decrements stock.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateSaleRequest  true  "request body"
// @Success      201      {object}  domain.Sale
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /sales [post]
func (h *SaleHandler) HandleCreateSale(ctx *gin.Context) {
	var req request.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	items := make([]service.CreateSaleInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.CreateSaleInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	sale, err := h.svc.CreateSale(ctx.Request.Context(), domain.Sale{
		CustomerID:    req.CustomerID,
		CashierID:     req.CashierID,
		PaymentMethod: req.PaymentMethod,
	}, items)
	if err != nil {
		var missing *service.MissingProductError
		if errors.As(err, &missing) {
			response.RenderErr(ctx, response.ErrNotFound("product", "id", missing.ProductID))
			return
		}

		err = fmt.Errorf("v1.HandleCreateSale -> h.svc.CreateSale -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, sale)
}

// HandleDailySummary godoc
// @Summary      Daily sales summary for the last 30 days
// @Tags         sales
// @Produce      json
// @Success      200  {array}   domain.DailySummary
// @Failure      500  {object}  response.Err
// @Router       /sales/summary/daily [get]
func (h *SaleHandler) HandleDailySummary(ctx *gin.Context) {
	summary, err := h.svc.GetDailySummary(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleDailySummary -> h.svc.GetDailySummary -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
