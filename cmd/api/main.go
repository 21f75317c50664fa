package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/company-research/internal/api/http"
	"github.com/spec-kit/company-research/internal/api/http/handlers"
	"github.com/spec-kit/company-research/internal/auth"
	"github.com/spec-kit/company-research/internal/cache"
	"github.com/spec-kit/company-research/internal/config"
	"github.com/spec-kit/company-research/internal/events"
	"github.com/spec-kit/company-research/internal/observability"
	"github.com/spec-kit/company-research/internal/persistence"
	"github.com/spec-kit/company-research/internal/providers"
	"github.com/spec-kit/company-research/internal/repository"
	"github.com/spec-kit/company-research/internal/service"
	"github.com/spec-kit/company-research/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// A missing JWT secret lands here: refuse to serve any traffic.
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(dispatcher, logger, metrics)

	pool := pg.PoolHandle()
	memberRepo := repository.NewMemberRepository(pool)
	companyRepo := repository.NewCompanyRepository(pool)
	favoriteRepo := repository.NewFavoriteRepository(pool)
	memoRepo := repository.NewMemoRepository(pool)

	dartClient := providers.NewDartClient(cfg.Providers.Dart)
	financeClient := providers.NewFinanceClient(cfg.Providers.Finance)
	exchangeClient := providers.NewExchangeRateClient(cfg.Providers.ExchangeRate)
	newsClient := providers.NewNewsClient(cfg.Providers.News)
	cacheStore := cache.NewStore(redis.Client)

	authService := service.NewAuthService(cfg.Auth, memberRepo, dispatcher)
	companyService := service.NewCompanyService(companyRepo, dartClient, logger)
	stockService := service.NewStockService(financeClient)
	exchangeService := service.NewExchangeRateService(exchangeClient, cacheStore, cfg.Cache, logger)
	newsService := service.NewNewsService(newsClient, cacheStore, cfg.Cache, logger)
	favoritesService := service.NewFavoritesService(favoriteRepo, companyService, dispatcher)
	memoService := service.NewMemoService(memoRepo, dispatcher)

	identityLookup := auth.NewStoreIdentityLookup(memberRepo)
	authenticator := auth.NewAuthenticator(
		authService.TokenManager(),
		identityLookup,
		auth.DefaultAccessPolicy(),
		logger,
		metrics,
	)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), authenticator)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:      handlers.NewAuthHandler(authService),
		Companies: handlers.NewCompaniesHandler(companyService),
		Stocks:    handlers.NewStocksHandler(stockService),
		Exchange:  handlers.NewExchangeHandler(exchangeService),
		News:      handlers.NewNewsHandler(newsService),
		Favorites: handlers.NewFavoritesHandler(favoritesService),
		Memos:     handlers.NewMemosHandler(memoService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
