package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/ecosort/backend/internal/auth"
	"github.com/ecosort/backend/internal/config"
	"github.com/ecosort/backend/internal/handler"
	"github.com/ecosort/backend/internal/metrics"
	appmw "github.com/ecosort/backend/internal/middleware"
	"github.com/ecosort/backend/internal/repository"
	"github.com/ecosort/backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

type Server struct {
	e *echo.Echo
}

func New(db *gorm.DB, cfg *config.Config) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
				return true, nil
			}
			return low == strings.ToLower(cfg.FrontendURL), nil
		},
	}))
	e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RateLimitRPS),
			Burst:     int(cfg.RateLimitRPS) * 2,
			ExpiresIn: 3 * time.Minute,
		}),
	}))

	metrics.Init()
	e.Use(metrics.Middleware())

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewWasteItemRepository(db)
	logRepo := repository.NewWasteLogRepository(db)
	binRepo := repository.NewBinRepository(db)
	priceRepo := repository.NewScrapPriceRepository(db)
	materialRepo := repository.NewValuableMaterialRepository(db)

	authSvc := service.NewAuthService(userRepo, tokens)
	userSvc := service.NewUserService(userRepo, logRepo)
	itemSvc := service.NewWasteItemService(itemRepo, logRepo)
	logSvc := service.NewWasteLogService(logRepo, itemRepo)
	binSvc := service.NewBinService(binRepo)
	priceSvc := service.NewScrapPriceService(priceRepo)
	materialSvc := service.NewValuableMaterialService(materialRepo)
	dashSvc := service.NewDashboardService(logRepo, binRepo, userRepo, itemRepo)

	authHandler := handler.NewAuthHandler(authSvc)
	userHandler := handler.NewUserHandler(userSvc)
	itemHandler := handler.NewWasteItemHandler(itemSvc)
	logHandler := handler.NewWasteLogHandler(logSvc)
	binHandler := handler.NewBinHandler(binSvc)
	priceHandler := handler.NewScrapPriceHandler(priceSvc)
	materialHandler := handler.NewValuableMaterialHandler(materialSvc)
	dashHandler := handler.NewDashboardHandler(dashSvc)

	authMw := appmw.NewAuthMiddleware(tokens, userRepo)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	api := e.Group("/api")

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/verify-token", authHandler.VerifyToken)

	api.GET("/users/me", userHandler.GetMe, authMw.RequireAuth)
	api.PUT("/users/me", userHandler.UpdateMe, authMw.RequireAuth)
	api.GET("/users/me/stats", userHandler.GetMyStats, authMw.RequireAuth)
	api.GET("/users/me/waste-logs", logHandler.List, authMw.RequireAuth)
	api.GET("/users/leaderboard", userHandler.GetLeaderboard)

	api.GET("/waste-items", itemHandler.List)
	api.GET("/waste-items/stats/categories", itemHandler.CategoryStats)
	api.GET("/waste-items/search/:query", itemHandler.Search)
	api.GET("/waste-items/:id", itemHandler.Get)

	api.GET("/bins", binHandler.List)
	api.GET("/bins/stats/overview", binHandler.StatsOverview)
	api.GET("/bins/type/:type", binHandler.ListByType)
	api.GET("/bins/nearby/:lat/:lng", binHandler.Nearby)
	api.GET("/bins/:id", binHandler.Get)
	api.PATCH("/bins/:id/report-full", binHandler.ReportFull, authMw.RequireAuth)

	api.POST("/waste-logs", logHandler.Create, authMw.RequireAuth)
	api.GET("/waste-logs", logHandler.List, authMw.RequireAuth)
	api.GET("/waste-logs/stats/overview", logHandler.StatsOverview, authMw.RequireAuth)
	api.GET("/waste-logs/:id", logHandler.Get, authMw.RequireAuth)
	api.DELETE("/waste-logs/:id", logHandler.Delete, authMw.RequireAuth)

	api.GET("/scrap-prices", priceHandler.List)
	api.GET("/scrap-prices/:id", priceHandler.Get)
	api.PATCH("/scrap-prices/:id", priceHandler.Update, authMw.RequireAuth)

	api.GET("/valuable-materials", materialHandler.List)
	api.GET("/valuable-materials/:id", materialHandler.Get)

	api.GET("/dashboard/metrics", dashHandler.Metrics, authMw.RequireAuth)
	api.GET("/dashboard/bin-status", dashHandler.BinStatus, authMw.RequireAuth)
	api.GET("/dashboard/waste-feed", dashHandler.WasteFeed, authMw.RequireAuth)

	return &Server{e: e}, nil
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// Echo exposes the underlying router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.e
}
