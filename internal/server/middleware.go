package server

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	apperrors "github.com/mergington/activities/internal/errors"
)

// sessionToken extracts the opaque session token from the request cookie.
// Returns "" when no session cookie is present or it cannot be decoded.
func (s *Server) sessionToken(c echo.Context) string {
	session, err := s.sessionStore.Get(c.Request(), sessionName)
	if err != nil {
		return ""
	}

	token, ok := session.Values[sessionKeyToken].(string)
	if !ok {
		return ""
	}
	return token
}

// requireAuth rejects requests that do not carry a valid teacher session.
// On success the teacher's username is stored in the echo context.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := s.sessionToken(c)
		if token == "" {
			return apperrors.UnauthorizedError("Teacher authentication required")
		}

		status, err := s.app.Status(c.Request().Context(), token)
		if err != nil {
			return apperrors.InternalError("failed to resolve session", err)
		}
		if !status.Authenticated {
			return apperrors.UnauthorizedError("Teacher authentication required")
		}

		c.Set("username", *status.Username)
		return next(c)
	}
}

// ErrorHandlingMiddleware converts structured errors into JSON responses and
// logs them with request context.
func ErrorHandlingMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				return err
			}

			structuredErr := apperrors.AsStructuredError(err)
			logError(c, structuredErr)

			if err := c.JSON(structuredErr.HTTPStatus(), structuredErr.ToResponse()); err != nil {
				return fmt.Errorf("failed to write error response: %w", err)
			}
			return nil
		}
	}
}

func logError(c echo.Context, err *apperrors.Error) {
	attrs := []any{
		"error_type", err.Type,
		"message", err.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"status", err.HTTPStatus(),
	}

	for k, v := range err.Context {
		attrs = append(attrs, k, v)
	}

	if username := c.Get("username"); username != nil {
		attrs = append(attrs, "username", username)
	}

	switch err.Type {
	case apperrors.TypeValidation:
		slog.Info("Validation error", attrs...)
	case apperrors.TypeUnauthorized:
		slog.Info("Unauthorized", attrs...)
	case apperrors.TypeNotFound:
		slog.Info("Not found", attrs...)
	case apperrors.TypeConflict:
		slog.Warn("Conflict", attrs...)
	case apperrors.TypeInternal:
		if err.Cause != nil {
			attrs = append(attrs, "cause", err.Cause)
		}
		slog.Error("Internal error", attrs...)
	default:
		slog.Error("Unknown error type", attrs...)
	}
}
