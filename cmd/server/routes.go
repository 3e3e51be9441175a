package main

import (
	"granazap/internal/config"
	"granazap/internal/database"
	"granazap/internal/handlers"
	"granazap/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type routeDependencies struct {
	config              *config.Config
	db                  *database.DB
	dashboardHandler    *handlers.DashboardHandler
	limitsHandler       *handlers.LimitsHandler
	profileHandler      *handlers.ProfileHandler
	subscriptionHandler *handlers.SubscriptionHandler
	checkoutHandler     *handlers.CheckoutHandler
	authHandler         *handlers.AuthHandler
	healthHandler       *handlers.HealthCheckHandler
}

func setupRoutes(e *echo.Echo, deps *routeDependencies) {
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	// Global middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(
		deps.config.Security.RateLimitPerSecond,
		deps.config.Security.RateLimitBurst,
	))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: deps.config.Server.CORSAllowOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// Public endpoints
	e.GET("/health", deps.healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.POST("/auth/sign-in", deps.authHandler.SignIn)
	e.POST("/auth/recover", deps.authHandler.RecoverPassword)
	e.POST("/checkout/start", deps.checkoutHandler.StartCheckout)

	// Everything below requires a verified session token
	api := e.Group("", middleware.RequireSession(&deps.config.Identity))

	api.GET("/dashboard", deps.dashboardHandler.GetDashboard)
	api.POST("/transactions/delete", deps.dashboardHandler.DeleteTransactions)

	api.GET("/limits", deps.limitsHandler.GetLimits)
	api.POST("/limits", deps.limitsHandler.SaveLimits)
	api.GET("/limits/utilization", deps.limitsHandler.GetUtilization)

	api.GET("/profile", deps.profileHandler.GetProfile)
	api.PUT("/profile", deps.profileHandler.UpdateProfile)
	api.PUT("/profile/phone", deps.profileHandler.SavePhone)

	api.GET("/subscription", deps.subscriptionHandler.GetStatus)
	api.GET("/subscription/checkout-url", deps.subscriptionHandler.GetCheckoutURL)

	api.POST("/auth/sign-out", deps.authHandler.SignOut)
	api.PUT("/auth/password", deps.authHandler.UpdatePassword)
	api.GET("/auth/user", deps.authHandler.GetUser)
}
