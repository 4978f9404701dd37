package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/domain"
	goredis "github.com/redis/go-redis/v9"
)

// Session cookie keys
const (
	sessionName     = "mergington-session"
	sessionKeyToken = "token"
)

type Server struct {
	echo         *echo.Echo
	config       *config.Config
	app          domain.AppService
	sessionStore *sessions.CookieStore
	redisClient  *goredis.Client
	startTime    time.Time
}

// NewServer builds the HTTP server. redisClient may be nil when the in-memory
// session backend is configured; readiness checks then skip Redis.
func NewServer(cfg *config.Config, app domain.AppService, redisClient *goredis.Client) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(ErrorHandlingMiddleware())

	// Cookie store carrying the opaque session token. MaxAge 0 keeps it a
	// browser-session cookie; server-side session state is the authority.
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
		Secure:   cfg.AppEnv == "production",
		SameSite: http.SameSiteLaxMode,
	}

	srv := &Server{
		echo:         e,
		config:       cfg,
		app:          app,
		sessionStore: sessionStore,
		redisClient:  redisClient,
		startTime:    time.Now(),
	}

	// Register routes
	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
