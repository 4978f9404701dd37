package server

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/mergington/activities/internal/domain"
	apperrors "github.com/mergington/activities/internal/errors"
)

func (s *Server) handleLogin(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		username = c.FormValue("username")
	}
	password := c.QueryParam("password")
	if password == "" {
		password = c.FormValue("password")
	}

	if username == "" || password == "" {
		return apperrors.ValidationError("username and password are required")
	}

	token, err := s.app.Login(c.Request().Context(), username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return apperrors.UnauthorizedError("Invalid credentials")
		}
		return apperrors.InternalError("failed to log in", err)
	}

	session, err := s.sessionStore.Get(c.Request(), sessionName)
	if err != nil {
		slog.Warn("Failed to decode existing session cookie, issuing a fresh one", "error", err)
		session, err = s.sessionStore.New(c.Request(), sessionName)
		if err != nil {
			return apperrors.InternalError("failed to create session cookie", err)
		}
	}
	session.Values[sessionKeyToken] = token
	if err := session.Save(c.Request(), c.Response().Writer); err != nil {
		return apperrors.InternalError("failed to save session cookie", err)
	}

	if err := c.JSON(200, map[string]any{
		"message":       "Login successful",
		"authenticated": true,
	}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleLogout(c echo.Context) error {
	token := s.sessionToken(c)
	if err := s.app.Logout(c.Request().Context(), token); err != nil {
		return apperrors.InternalError("failed to log out", err)
	}

	session, err := s.sessionStore.Get(c.Request(), sessionName)
	if err != nil {
		session, err = s.sessionStore.New(c.Request(), sessionName)
		if err != nil {
			return apperrors.InternalError("failed to clear session cookie", err)
		}
	}
	session.Options.MaxAge = -1
	if err := session.Save(c.Request(), c.Response().Writer); err != nil {
		return apperrors.InternalError("failed to clear session cookie", err)
	}

	if err := c.JSON(200, map[string]any{
		"message":       "Logged out successfully",
		"authenticated": false,
	}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleAuthStatus(c echo.Context) error {
	token := s.sessionToken(c)

	status, err := s.app.Status(c.Request().Context(), token)
	if err != nil {
		return apperrors.InternalError("failed to resolve session", err)
	}

	if err := c.JSON(200, status); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
