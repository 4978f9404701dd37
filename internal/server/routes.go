package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints (no auth required)
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.GET("/version", s.handleVersion)

	// Root - redirect to the static frontend
	s.echo.GET("/", func(c echo.Context) error {
		return c.Redirect(302, "/static/index.html")
	})
	s.echo.Static("/static", s.config.StaticDir)

	// Auth routes
	s.echo.POST("/login", s.handleLogin)
	s.echo.POST("/logout", s.handleLogout)
	s.echo.GET("/auth/status", s.handleAuthStatus)

	// Activity routes (mutations require a teacher session)
	s.echo.GET("/activities", s.handleListActivities)
	s.echo.POST("/activities/:name/signup", s.handleSignup, s.requireAuth)
	s.echo.DELETE("/activities/:name/unregister", s.handleUnregister, s.requireAuth)
}
