package api

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/way-campus/way/internal/api/handler"
	"github.com/way-campus/way/internal/api/middleware"
	"github.com/way-campus/way/internal/core/domain"
	"github.com/way-campus/way/internal/core/ports"
)

// Services bundles what the API needs from the core.
type Services struct {
	Auth        ports.AuthService
	Ledger      ports.LedgerService
	Catalog     ports.CatalogService
	Preferences ports.PreferenceService
	Assistant   ports.AssistantService
}

// Register mounts the /v1 routes on e and installs the validator and the
// error handler.
func Register(e *echo.Echo, svc Services, jwtSecret string, log zerolog.Logger) {
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	authHandler := handler.NewAuthHandler(svc.Auth)
	channelHandler := handler.NewChannelHandler(svc.Catalog, svc.Ledger)
	walletHandler := handler.NewWalletHandler(svc.Ledger)
	announcementHandler := handler.NewAnnouncementHandler(svc.Catalog)
	professorHandler := handler.NewProfessorHandler(svc.Catalog)
	assistantHandler := handler.NewAssistantHandler(svc.Assistant)
	preferenceHandler := handler.NewPreferenceHandler(svc.Preferences)

	v1 := e.Group("/v1")

	// --- Public routes ---
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/auth/session", authHandler.Session)
	v1.GET("/preferences/theme", preferenceHandler.GetTheme)

	// --- Authenticated routes ---
	authed := v1.Group("", middleware.Auth(jwtSecret))
	authed.POST("/auth/logout", authHandler.Logout)
	authed.GET("/me", authHandler.Me)
	authed.PUT("/preferences/theme", preferenceHandler.SetTheme)

	authed.GET("/channels", channelHandler.List)
	authed.GET("/channels/:id", channelHandler.Get)
	authed.POST("/channels", channelHandler.Create, middleware.RBAC(domain.RoleProfessor))
	authed.POST("/channels/:id/subscribe", channelHandler.Subscribe, middleware.RBAC(domain.RoleStudent))

	authed.GET("/wallet", walletHandler.Get, middleware.RBAC(domain.RoleStudent))
	authed.POST("/wallet/recharge", walletHandler.Recharge, middleware.RBAC(domain.RoleStudent))

	authed.GET("/announcements", announcementHandler.List)
	authed.POST("/announcements", announcementHandler.Publish, middleware.RBAC(domain.RoleProfessor))

	authed.GET("/professors/:id/standing", professorHandler.Standing)
	authed.POST("/assistant/ask", assistantHandler.Ask)

	authed.POST("/admin/professors/:id/approve", authHandler.ApproveProfessor, middleware.RBAC(domain.RoleAdmin))
}
