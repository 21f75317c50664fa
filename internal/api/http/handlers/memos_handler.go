package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/company-research/internal/api/dto"
	"github.com/spec-kit/company-research/internal/auth"
	"github.com/spec-kit/company-research/internal/service"
)

// MemosHandler exposes per-stock notes for the authenticated member.
type MemosHandler struct {
	memos *service.MemoService
}

// NewMemosHandler constructs handler.
func NewMemosHandler(memos *service.MemoService) *MemosHandler {
	return &MemosHandler{memos: memos}
}

// Get handles GET /favorites/:stockCode/memo.
func (h *MemosHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromRequest(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	stockCode := c.Params("stockCode")
	if stockCode == "" {
		return fiber.NewError(http.StatusBadRequest, "stock code required")
	}

	memo, err := h.memos.Get(c.UserContext(), principal.SubjectID, stockCode)
	if err != nil {
		return err
	}
	return c.JSON(dto.MemoResponse{
		StockCode: memo.StockCode,
		Content:   memo.Content,
		UpdatedAt: memo.UpdatedAt,
	})
}

// Save handles POST /favorites/:stockCode/memo.
func (h *MemosHandler) Save(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromRequest(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	stockCode := c.Params("stockCode")
	if stockCode == "" {
		return fiber.NewError(http.StatusBadRequest, "stock code required")
	}

	var req dto.MemoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	memo, err := h.memos.Save(c.UserContext(), principal.SubjectID, stockCode, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(dto.MemoResponse{
		StockCode: memo.StockCode,
		Content:   memo.Content,
		UpdatedAt: memo.UpdatedAt,
	})
}
