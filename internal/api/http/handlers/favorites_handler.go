package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/company-research/internal/api/dto"
	"github.com/spec-kit/company-research/internal/auth"
	"github.com/spec-kit/company-research/internal/service"
)

// FavoritesHandler exposes the authenticated member's tracked companies.
type FavoritesHandler struct {
	favorites *service.FavoritesService
}

// NewFavoritesHandler constructs handler.
func NewFavoritesHandler(favorites *service.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites}
}

// List handles GET /favorites.
func (h *FavoritesHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromRequest(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	favorites, err := h.favorites.List(c.UserContext(), principal.SubjectID)
	if err != nil {
		return err
	}

	rows := make([]dto.FavoriteResponse, 0, len(favorites))
	for _, favorite := range favorites {
		rows = append(rows, toFavoriteResponse(favorite))
	}
	return c.JSON(fiber.Map{"favorites": rows})
}

// Add handles POST /favorites.
func (h *FavoritesHandler) Add(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromRequest(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.AddFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	favorite, err := h.favorites.Add(c.UserContext(), principal.SubjectID, req.CorpCode, req.StockCode)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(toFavoriteResponse(favorite))
}

// Delete handles DELETE /favorites/:stockCode.
func (h *FavoritesHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromRequest(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	stockCode := c.Params("stockCode")
	if stockCode == "" {
		return fiber.NewError(http.StatusBadRequest, "stock code required")
	}

	if err := h.favorites.Delete(c.UserContext(), principal.SubjectID, stockCode); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"deleted": stockCode})
}

func toFavoriteResponse(favorite *service.FavoriteWithCompany) dto.FavoriteResponse {
	resp := dto.FavoriteResponse{
		CorpCode:     favorite.Favorite.CorpCode,
		CorpName:     favorite.Company.CorpName,
		RegisteredAt: favorite.Favorite.RegisteredAt,
	}
	if favorite.Favorite.StockCode != nil {
		resp.StockCode = *favorite.Favorite.StockCode
	}
	return resp
}
