package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/company-research/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Companies *handlers.CompaniesHandler
	Stocks    *handlers.StocksHandler
	Exchange  *handlers.ExchangeHandler
	News      *handlers.NewsHandler
	Favorites *handlers.FavoritesHandler
	Memos     *handlers.MemosHandler
}

// RegisterRoutes wires HTTP routes. Which of these require a token is
// decided by the access policy consulted in the authenticator, not by
// per-route middleware.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"service": "company-research"})
	})
	app.Get("/health", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/verify", cfg.Auth.Verify)

	companies := app.Group("/companies")
	companies.Get("/", cfg.Companies.List)
	companies.Get("/:corpCode", cfg.Companies.Get)
	companies.Get("/:corpCode/disclosures", cfg.Companies.Disclosures)

	stocks := app.Group("/stocks")
	stocks.Get("/:stockCode/chart", cfg.Stocks.Chart)
	stocks.Get("/:stockCode/current", cfg.Stocks.Current)

	rates := app.Group("/exchange-rates")
	rates.Get("/", cfg.Exchange.List)
	rates.Get("/:curUnit", cfg.Exchange.Get)
	rates.Get("/:curUnit/historical", cfg.Exchange.Historical)

	// Alias kept for clients of the old economy endpoints.
	economy := app.Group("/economy")
	economy.Get("/exchange-rates", cfg.Exchange.List)
	economy.Get("/exchange-rates/:curUnit/detail", cfg.Exchange.Get)

	app.Get("/news/search", cfg.News.Search)

	favorites := app.Group("/favorites")
	favorites.Get("/", cfg.Favorites.List)
	favorites.Post("/", cfg.Favorites.Add)
	favorites.Delete("/:stockCode", cfg.Favorites.Delete)
	favorites.Get("/:stockCode/memo", cfg.Memos.Get)
	favorites.Post("/:stockCode/memo", cfg.Memos.Save)
}
