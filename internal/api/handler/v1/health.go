package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/easymart/pos-backend/internal/api/handler/v1/response"
)

// HandleHealthcheck godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Health
// @Router       /health [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.Health{
		Status:    "ok",
		Message:   "Backend service is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
