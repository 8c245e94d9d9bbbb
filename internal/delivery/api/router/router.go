// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"carvalue/config"
	"carvalue/internal/delivery/api/middleware"
	"carvalue/internal/delivery/api/router/handler"
	"carvalue/internal/domain/entity"
	"carvalue/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AppHandler     *handler.AppHandler
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	ReportHandler  *handler.ReportHandler
	MessageHandler *handler.MessageHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	appHandler     *handler.AppHandler
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	reportHandler  *handler.ReportHandler
	messageHandler *handler.MessageHandler
	authMiddleware *middleware.AuthMiddleware
	signinLimiter  *ratelimit.MapLimiter
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	r := &router{
		appHandler:     params.AppHandler,
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		reportHandler:  params.ReportHandler,
		messageHandler: params.MessageHandler,
		authMiddleware: params.AuthMiddleware,
	}
	if params.Config != nil && params.Config.Auth != nil {
		limit := params.Config.Auth.SigninRateLimit
		r.signinLimiter = ratelimit.New(limit.RPS, limit.Burst, limit.IdleTTL)
	}

	return r
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.appHandler.HealthCheck)

	appGroup := e.Group("/app")
	{
		appGroup.GET("/hi", r.appHandler.Hi)
		appGroup.GET("/bye", r.appHandler.Bye)
	}

	messagesGroup := e.Group("/messages")
	{
		messagesGroup.GET("", r.messageHandler.ListMessages)
		messagesGroup.GET("/:id", r.messageHandler.GetMessage)
		messagesGroup.POST("", r.messageHandler.CreateMessage)
	}

	throttled := middleware.RateLimit(r.signinLimiter, nil)
	authenticated := r.authMiddleware.Authenticate

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup, throttled)
		authGroup.POST("/signin", r.authHandler.Signin, throttled)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/signout", r.authHandler.Signout, authenticated)
		authGroup.GET("/whoami", r.authHandler.WhoAmI, authenticated)

		authGroup.GET("", r.userHandler.FindUsers, authenticated)
		authGroup.GET("/:id", r.userHandler.GetUser, authenticated)
		authGroup.PATCH("/:id", r.userHandler.UpdateUser, authenticated)
		authGroup.DELETE("/:id", r.userHandler.RemoveUser, authenticated)
	}

	reportsGroup := e.Group("/reports")
	{
		reportsGroup.GET("", r.reportHandler.Estimate)
		reportsGroup.POST("", r.reportHandler.CreateReport, authenticated)
		reportsGroup.PATCH("/:id", r.reportHandler.ChangeApproval, authenticated, r.authMiddleware.RequireRole(entity.RoleAdmin))
	}
}
