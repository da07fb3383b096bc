package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
)

const (
	TasksPrefix = "/api/tasks"
	AuthPrefix  = "/api/auth"
)

type Route struct {
	Method      string
	Path        string
	Middlewares []echo.MiddlewareFunc
	Handler     echo.HandlerFunc
}

// TaskRoutes lists the task endpoints in registration order. /stats comes
// before /:id so it is never read as a task id.
func TaskRoutes(h *Handler, authGate echo.MiddlewareFunc) []Route {
	protected := []echo.MiddlewareFunc{authGate}

	return []Route{
		{Method: http.MethodGet, Path: "/stats", Middlewares: protected, Handler: h.GetTaskStats},
		{Method: http.MethodGet, Path: "/", Middlewares: protected, Handler: h.ListTasks},
		{Method: http.MethodGet, Path: "/:id", Middlewares: protected, Handler: h.GetTask},
		{Method: http.MethodPost, Path: "/", Middlewares: protected, Handler: h.CreateTask},
		{Method: http.MethodPut, Path: "/:id", Middlewares: protected, Handler: h.UpdateTask},
		{Method: http.MethodDelete, Path: "/:id", Middlewares: protected, Handler: h.DeleteTask},
	}
}

func AuthRoutes(h *AuthHandler, authGate echo.MiddlewareFunc) []Route {
	return []Route{
		{Method: http.MethodPost, Path: "/register", Handler: h.Register},
		{Method: http.MethodPost, Path: "/login", Handler: h.Login},
		{Method: http.MethodGet, Path: "/me", Middlewares: []echo.MiddlewareFunc{authGate}, Handler: h.Me},
	}
}

type Server struct {
	Tasks         *Handler
	Auth          *AuthHandler
	Authenticator middleware.Authenticator
	Limiter       middleware.Limiter
	Logger        *log.Logger
}

// Register installs the error handler, global middleware and every route
// table on e.
func Register(e *echo.Echo, s Server) {
	e.HTTPErrorHandler = ErrorHandler
	e.Pre(echomw.RemoveTrailingSlash())

	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(s.Logger))
	e.Use(echomw.Recover())
	if s.Limiter != nil {
		e.Use(middleware.RateLimiter(s.Limiter))
	}

	authGate := middleware.Auth(s.Authenticator)
	Mount(e, TasksPrefix, TaskRoutes(s.Tasks, authGate))
	Mount(e, AuthPrefix, AuthRoutes(s.Auth, authGate))
}

func Mount(e *echo.Echo, prefix string, routes []Route) {
	for _, r := range routes {
		e.Add(r.Method, joinPath(prefix, r.Path), r.Handler, r.Middlewares...)
	}
}

// joinPath drops the trailing slash so paths line up with RemoveTrailingSlash.
func joinPath(prefix, path string) string {
	full := strings.TrimSuffix(prefix+path, "/")
	if full == "" {
		return "/"
	}
	return full
}
