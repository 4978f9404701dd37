package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/mergington/activities/internal/domain"
	apperrors "github.com/mergington/activities/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- sessionToken ---

func TestSessionToken_NoCookie(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := srv.echo.NewContext(req, rec)

	assert.Empty(t, srv.sessionToken(c))
}

func TestSessionToken_RoundTrip(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range sessionCookies(t, srv, "token-123") {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := srv.echo.NewContext(req, rec)

	assert.Equal(t, "token-123", srv.sessionToken(c))
}

func TestSessionToken_TamperedCookie(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionName, Value: "garbage"})
	rec := httptest.NewRecorder()
	c := srv.echo.NewContext(req, rec)

	assert.Empty(t, srv.sessionToken(c))
}

// --- requireAuth ---

func TestRequireAuth_SetsUsername(t *testing.T) {
	app := &mockAppService{statusFn: authenticatedStatus("token-123", "mrodriguez")}
	srv := newTestServer(t, app)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range sessionCookies(t, srv, "token-123") {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := srv.echo.NewContext(req, rec)

	var gotUsername string
	handler := srv.requireAuth(func(c echo.Context) error {
		gotUsername = c.Get("username").(string)
		return c.String(200, "ok")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "mrodriguez", gotUsername)
}

func TestRequireAuth_ResolveFailure(t *testing.T) {
	app := &mockAppService{
		statusFn: func(context.Context, string) (domain.AuthStatus, error) {
			return domain.AuthStatus{}, errors.New("backend down")
		},
	}
	srv := newTestServer(t, app)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range sessionCookies(t, srv, "token-123") {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := srv.echo.NewContext(req, rec)

	handler := srv.requireAuth(func(c echo.Context) error {
		return c.String(200, "ok")
	})

	err := handler(c)
	require.Error(t, err)
	structured := apperrors.AsStructuredError(err)
	assert.Equal(t, apperrors.TypeInternal, structured.Type)
}

// --- ErrorHandlingMiddleware ---

func TestErrorHandlingMiddleware_StructuredError(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})
	srv.echo.GET("/boom", func(c echo.Context) error {
		return apperrors.NotFoundError("Activity not found").WithField("activity", "Knitting Circle")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := doRequest(srv, req)

	assert.Equal(t, 404, rec.Code)
	assert.Contains(t, rec.Body.String(), "Activity not found")
	assert.Contains(t, rec.Body.String(), "not_found")
	assert.Contains(t, rec.Body.String(), "Knitting Circle")
}

func TestErrorHandlingMiddleware_PlainError(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})
	srv.echo.GET("/boom", func(c echo.Context) error {
		return errors.New("unexpected")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := doRequest(srv, req)

	assert.Equal(t, 500, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
	// Internal details never leak to clients
	assert.NotContains(t, rec.Body.String(), "unexpected")
}
