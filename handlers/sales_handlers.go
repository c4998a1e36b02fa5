// handlers/sales_handlers.go
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/H4estu/OpenSeer/sales"
	"github.com/H4estu/OpenSeer/utils"
)

// reportTimeout bounds one pipeline run from the web surface. It sits
// above the outbound client timeout so the client gives up first.
const reportTimeout = 15 * time.Second

type SalesHandlers struct {
	SalesService *sales.Service
	Logger       *zap.Logger
}

func NewSalesHandlers(service *sales.Service, logger *zap.Logger) *SalesHandlers {
	return &SalesHandlers{
		SalesService: service,
		Logger:       logger,
	}
}

// GetSalesReport runs one pipeline pass for the requested number of
// sales and returns the full report. Each call is independent; nothing
// is cached between requests.
func (h *SalesHandlers) GetSalesReport(c *gin.Context) {
	numSalesParam := c.Query("num_sales")
	if numSalesParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "num_sales query parameter is required"})
		return
	}

	numSales, err := strconv.Atoi(numSalesParam)
	if err != nil || !utils.IsValidNumSales(numSales) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid 'num_sales' parameter. Must be an integer between %d and %d.", utils.MinNumSales, utils.MaxNumSales),
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), reportTimeout)
	defer cancel()

	report, err := h.SalesService.Report(ctx, numSales)
	if err != nil {
		h.Logger.Error("sales report failed", zap.Int("num_sales", numSales), zap.Error(err))
		c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": sales.UserMessage(err)})
		return
	}

	c.JSON(http.StatusOK, report)
}

// Index serves the submission form and the empty render targets the
// client script fills in after each run.
func (h *SalesHandlers) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"minNumSales": utils.MinNumSales,
		"maxNumSales": utils.MaxNumSales,
	})
}
