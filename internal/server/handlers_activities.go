package server

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/mergington/activities/internal/domain"
	apperrors "github.com/mergington/activities/internal/errors"
)

func (s *Server) handleListActivities(c echo.Context) error {
	activities, err := s.app.ListActivities(c.Request().Context())
	if err != nil {
		return apperrors.InternalError("failed to list activities", err)
	}

	if err := c.JSON(200, activities); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleSignup(c echo.Context) error {
	name := c.Param("name")
	email := c.QueryParam("email")
	if email == "" {
		return apperrors.ValidationError("email is required")
	}

	if err := s.app.Signup(c.Request().Context(), name, email); err != nil {
		return rosterError(err, name, email)
	}

	if err := c.JSON(200, map[string]string{
		"message": fmt.Sprintf("Signed up %s for %s", email, name),
	}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleUnregister(c echo.Context) error {
	name := c.Param("name")
	email := c.QueryParam("email")
	if email == "" {
		return apperrors.ValidationError("email is required")
	}

	if err := s.app.Unregister(c.Request().Context(), name, email); err != nil {
		return rosterError(err, name, email)
	}

	if err := c.JSON(200, map[string]string{
		"message": fmt.Sprintf("Unregistered %s from %s", email, name),
	}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

// rosterError maps domain roster errors onto the structured error taxonomy.
func rosterError(err error, activity, email string) error {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		return apperrors.NotFoundError("Activity not found").WithField("activity", activity)
	case errors.Is(err, domain.ErrAlreadySignedUp):
		return apperrors.ConflictError("Student is already signed up").
			WithField("activity", activity).
			WithField("email", email)
	case errors.Is(err, domain.ErrNotSignedUp):
		return apperrors.ConflictError("Student is not signed up for this activity").
			WithField("activity", activity).
			WithField("email", email)
	default:
		return apperrors.InternalError("roster operation failed", err).
			WithField("activity", activity)
	}
}
