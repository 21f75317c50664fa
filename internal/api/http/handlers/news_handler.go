package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/company-research/internal/service"
)

// NewsHandler exposes news search.
type NewsHandler struct {
	news *service.NewsService
}

// NewNewsHandler constructs handler.
func NewNewsHandler(news *service.NewsService) *NewsHandler {
	return &NewsHandler{news: news}
}

// Search handles GET /news/search?query=&display=&start=&sort=.
func (h *NewsHandler) Search(c *fiber.Ctx) error {
	query := c.Query("query")
	display := c.QueryInt("display", 10)
	start := c.QueryInt("start", 1)
	sort := c.Query("sort", "date")

	result, err := h.news.Search(c.UserContext(), query, display, start, sort)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
