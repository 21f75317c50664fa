package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/company-research/internal/service"
)

// ExchangeHandler exposes exchange-rate lookups.
type ExchangeHandler struct {
	rates *service.ExchangeRateService
}

// NewExchangeHandler constructs handler.
func NewExchangeHandler(rates *service.ExchangeRateService) *ExchangeHandler {
	return &ExchangeHandler{rates: rates}
}

// List handles GET /exchange-rates.
func (h *ExchangeHandler) List(c *fiber.Ctx) error {
	rates, err := h.rates.Latest(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"rates": rates})
}

// Get handles GET /exchange-rates/:curUnit.
func (h *ExchangeHandler) Get(c *fiber.Ctx) error {
	curUnit := c.Params("curUnit")
	if curUnit == "" {
		return fiber.NewError(http.StatusBadRequest, "currency unit required")
	}

	rate, err := h.rates.ByCurrency(c.UserContext(), curUnit)
	if err != nil {
		return err
	}
	return c.JSON(rate)
}

// Historical handles GET /exchange-rates/:curUnit/historical?days=30.
func (h *ExchangeHandler) Historical(c *fiber.Ctx) error {
	curUnit := c.Params("curUnit")
	if curUnit == "" {
		return fiber.NewError(http.StatusBadRequest, "currency unit required")
	}
	days := c.QueryInt("days", 30)

	history, err := h.rates.Historical(c.UserContext(), curUnit, days)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"currency": curUnit,
		"history":  history,
	})
}
