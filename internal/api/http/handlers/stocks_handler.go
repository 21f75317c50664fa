package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/company-research/internal/service"
)

// StocksHandler exposes price lookups.
type StocksHandler struct {
	stocks *service.StockService
}

// NewStocksHandler constructs handler.
func NewStocksHandler(stocks *service.StockService) *StocksHandler {
	return &StocksHandler{stocks: stocks}
}

// Chart handles GET /stocks/:stockCode/chart?period=30.
func (h *StocksHandler) Chart(c *fiber.Ctx) error {
	stockCode := c.Params("stockCode")
	if stockCode == "" {
		return fiber.NewError(http.StatusBadRequest, "stock code required")
	}
	period := c.QueryInt("period", 30)

	candles, err := h.stocks.Chart(c.UserContext(), stockCode, period)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"stock_code": stockCode,
		"period":     period,
		"candles":    candles,
	})
}

// Current handles GET /stocks/:stockCode/current.
func (h *StocksHandler) Current(c *fiber.Ctx) error {
	stockCode := c.Params("stockCode")
	if stockCode == "" {
		return fiber.NewError(http.StatusBadRequest, "stock code required")
	}

	quote, err := h.stocks.Quote(c.UserContext(), stockCode)
	if err != nil {
		return err
	}
	return c.JSON(quote)
}
