package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/domain"
	"github.com/stretchr/testify/require"
)

// --- Mock implementations ---

type mockAppService struct {
	loginFn          func(ctx context.Context, username, password string) (string, error)
	logoutFn         func(ctx context.Context, token string) error
	statusFn         func(ctx context.Context, token string) (domain.AuthStatus, error)
	listActivitiesFn func(ctx context.Context) (map[string]domain.Activity, error)
	signupFn         func(ctx context.Context, activityName, email string) error
	unregisterFn     func(ctx context.Context, activityName, email string) error
}

func (m *mockAppService) Login(ctx context.Context, username, password string) (string, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, username, password)
	}
	return "", fmt.Errorf("not implemented")
}

func (m *mockAppService) Logout(ctx context.Context, token string) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, token)
	}
	return nil
}

func (m *mockAppService) Status(ctx context.Context, token string) (domain.AuthStatus, error) {
	if m.statusFn != nil {
		return m.statusFn(ctx, token)
	}
	return domain.AuthStatus{}, nil
}

func (m *mockAppService) ListActivities(ctx context.Context) (map[string]domain.Activity, error) {
	if m.listActivitiesFn != nil {
		return m.listActivitiesFn(ctx)
	}
	return map[string]domain.Activity{}, nil
}

func (m *mockAppService) Signup(ctx context.Context, activityName, email string) error {
	if m.signupFn != nil {
		return m.signupFn(ctx, activityName, email)
	}
	return nil
}

func (m *mockAppService) Unregister(ctx context.Context, activityName, email string) error {
	if m.unregisterFn != nil {
		return m.unregisterFn(ctx, activityName, email)
	}
	return nil
}

// authenticatedStatus builds a Status func reporting username as logged in
// for the expected token.
func authenticatedStatus(expectedToken, username string) func(context.Context, string) (domain.AuthStatus, error) {
	return func(_ context.Context, token string) (domain.AuthStatus, error) {
		if token == expectedToken {
			u := username
			return domain.AuthStatus{Authenticated: true, Username: &u}, nil
		}
		return domain.AuthStatus{}, nil
	}
}

// --- Test server setup ---

func newTestServer(t *testing.T, app domain.AppService) *Server {
	t.Helper()
	cfg := &config.Config{
		AppEnv:         "test",
		Port:           "0",
		SessionSecret:  "test-secret",
		SessionBackend: config.SessionBackendMemory,
		StaticDir:      t.TempDir(),
	}
	return NewServer(cfg, app, nil)
}

// sessionCookies issues a session cookie holding token, returning the cookies
// to attach to subsequent requests.
func sessionCookies(t *testing.T, srv *Server, token string) []*http.Cookie {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	session, err := srv.sessionStore.Get(req, sessionName)
	require.NoError(t, err)
	session.Values[sessionKeyToken] = token
	require.NoError(t, session.Save(req, rec))

	return rec.Result().Cookies()
}

// doRequest runs a request through the full echo middleware chain.
func doRequest(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}
