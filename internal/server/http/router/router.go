package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/finpoint/finpoint/internal/server/http/handlers"
	"github.com/finpoint/finpoint/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.FinanceFacade, logger *slog.Logger, registry *prometheus.Registry) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	metrics := middleware.NewHTTPMetrics(registry)

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(metrics.Handler())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	ledgerHandler := handlers.NewLedgerHandler(facade)
	debtHandler := handlers.NewDebtHandler(facade)
	pointsHandler := handlers.NewPointsHandler(facade)
	withdrawalHandler := handlers.NewWithdrawalHandler(facade)
	checkInHandler := handlers.NewCheckInHandler(facade)
	notificationHandler := handlers.NewNotificationHandler(facade)

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := engine.Group("/api")
	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.POST("/transactions", ledgerHandler.Record)
	userAuth.GET("/transactions", ledgerHandler.List)
	userAuth.GET("/balance", ledgerHandler.Balance)
	userAuth.POST("/debts", debtHandler.Create)
	userAuth.GET("/debts", debtHandler.List)
	userAuth.POST("/debts/:id/payments", debtHandler.Pay)
	userAuth.POST("/debts/settle", debtHandler.Settle)
	userAuth.GET("/points/history", pointsHandler.History)
	userAuth.POST("/points/ad-task", pointsHandler.CompleteAdTask)
	userAuth.POST("/points/subscription", pointsHandler.PurchaseSubscription)
	userAuth.POST("/withdrawals", withdrawalHandler.Request)
	userAuth.GET("/withdrawals", withdrawalHandler.List)
	userAuth.POST("/withdrawals/:id/approve", withdrawalHandler.Approve)
	userAuth.POST("/withdrawals/:id/reject", withdrawalHandler.Reject)
	userAuth.GET("/checkin", checkInHandler.Status)
	userAuth.POST("/checkin", checkInHandler.CheckIn)
	userAuth.GET("/notifications", notificationHandler.List)
	userAuth.POST("/notifications/:id/read", notificationHandler.MarkRead)

	return engine
}
