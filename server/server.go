package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/gorilla/mux"
	"github.com/sagarsuperuser/todos/errdefs"
	"github.com/sagarsuperuser/todos/internal/httputil"
	"github.com/sagarsuperuser/todos/internal/metrics"
	"github.com/sagarsuperuser/todos/internal/router"
	"github.com/sagarsuperuser/todos/server/controllers"
	"github.com/sagarsuperuser/todos/server/httpstatus"
	"github.com/sagarsuperuser/todos/server/middlewares"
	"github.com/sagarsuperuser/todos/server/routes"
	"github.com/sagarsuperuser/todos/server/settings"
	"github.com/sagarsuperuser/todos/store"
)

// versionMatcher defines a variable matcher to be parsed by the router
// when a request is about to be served.
const versionMatcher = "/v{version:[0-9.]+}"

const healthPath = "/health"

type Server struct {
	router      *mux.Router
	handler     http.Handler
	settings    *settings.Settings
	store       *store.Store
	metrics     *metrics.Manager
	httpServer  *http.Server
	httpAddress string
	mu          sync.Mutex
	stopOnce    sync.Once
	stopped     chan struct{}
	middlewares []middlewares.Middleware
	// routerMiddlewares run for every request, matched or not.
	routerMiddlewares []mux.MiddlewareFunc
}

// NewServer builds the HTTP server. A nil metrics manager disables the
// metrics middleware and endpoint.
func NewServer(settings *settings.Settings, store *store.Store, ctrls *controllers.Controllers, m *metrics.Manager) *Server {
	ret := new(Server)
	ret.settings = settings
	ret.store = store
	ret.metrics = m
	ret.stopped = make(chan struct{})
	mRouter := mux.NewRouter()

	// Global Middlewares --
	ret.routerMiddlewares = []mux.MiddlewareFunc{
		middlewares.Recovery(),

		// Inject zerolog logger into request context
		hlog.NewHandler(log.Logger),

		// Every request log carries these fields.
		hlog.RemoteAddrHandler("ip"),
		hlog.UserAgentHandler("user_agent"),
		hlog.RefererHandler("referer"),
		hlog.RequestIDHandler("req_id", "Request-Id"),

		// access logger, called after each request
		hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Info().
				Str("method", r.Method).
				Stringer("url", r.URL).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				Msg("")
		}),
	}
	if m != nil {
		ret.routerMiddlewares = append(ret.routerMiddlewares, m.Middleware())
		mRouter.Methods(http.MethodGet).Path(settings.MetricsPath).Handler(m.Handler())
	}
	mRouter.Use(ret.routerMiddlewares...)

	// setup listen addresses
	ret.httpAddress = net.JoinHostPort(settings.Host, strconv.Itoa(settings.Port))

	versionMW, err := middlewares.NewVersionMiddleware(settings.ServiceName, settings.ServerVersion, settings.APIVersion, settings.MinAPIVersion)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid API version configuration")
	}
	ret.UseMiddleware(versionMW)

	mRouter.Methods(http.MethodGet).Path(healthPath).Handler(
		ret.makeHTTPHandler(router.NewGetRoute(healthPath, ret.health)))

	// register api routes
	table := router.NewTable()
	routes.RegisterRoutes(table, ctrls)
	ret.router = ret.CreateMux(context.Background(), mRouter, table)

	// CORS wraps the whole router so preflight requests reach it even
	// though no route is registered for OPTIONS.
	c := cors.New(cors.Options{
		AllowedOrigins: settings.Origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	ret.handler = c.Handler(ret.router)
	return ret
}

// Handler returns the root handler served by Start.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// UseMiddleware registers a global APIFunc middleware.
// They are executed in the order that they are applied to the Router.
func (s *Server) UseMiddleware(mw middlewares.Middleware) {
	s.middlewares = append(s.middlewares, mw)
}

func (s *Server) health(ctx context.Context, w http.ResponseWriter, r *http.Request, vars map[string]string) error {
	if err := s.store.Ping(ctx); err != nil {
		return errdefs.Unavailable(fmt.Errorf("database unreachable: %w", err))
	}
	hlog.FromRequest(r).Debug().Msg("health ok")
	return httputil.WriteRawJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func (s *Server) makeHTTPHandler(r router.Route) http.HandlerFunc {
	handler := r.Handler()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		//  Build APIFunc middleware chain.
		handlerFunc := s.handlerWithGlobalMiddlewares(handler)
		vars := mux.Vars(r)
		if vars == nil {
			vars = make(map[string]string)
		}

		if err := handlerFunc(ctx, w, r, vars); err != nil {
			statusCode := httpstatus.FromError(err)
			respMsg := err.Error()
			if statusCode >= http.StatusInternalServerError {
				// In case of InternalServerError, message sent to client are standard HTTP code messages.
				respMsg = http.StatusText(statusCode)
				zerolog.Ctx(ctx).Error().Err(err).Msgf("Handler for %s %s returned error", r.Method, r.URL.Path)
			}
			_ = httputil.WriteRawJSON(w, statusCode, map[string]string{
				"message": respMsg,
			})
		}
	})
}

// CreateMux returns a new mux with all the routers registered.
func (s *Server) CreateMux(ctx context.Context, m *mux.Router, routers ...router.Router) *mux.Router {
	log.Debug().Msg("Registering routers")
	for _, apiRouter := range routers {
		for _, r := range apiRouter.Routes() {
			if ctx.Err() != nil {
				return m
			}
			log.Debug().Str("method", r.Method()).Str("path", r.Path()).Msg("Registering route")
			f := s.makeHTTPHandler(r)
			m.Path(versionMatcher + r.Path()).Methods(r.Method()).Handler(f)
			m.Path(r.Path()).Methods(r.Method()).Handler(f)
		}
	}

	// Undefined paths and methods. mux skips Use middlewares for these,
	// so the chain is applied here.
	notFoundHandler := s.withRouterMiddlewares(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = httputil.WriteRawJSON(w, http.StatusNotFound, map[string]string{
			"message": "page not found",
		})
	}))

	m.NotFoundHandler = notFoundHandler
	m.MethodNotAllowedHandler = notFoundHandler

	return m
}

// Start serves HTTP until Stop is called, then returns once shutdown completes.
func (server *Server) Start() {
	server.handleGracefulShutdown()

	log.Info().Str("address", server.httpAddress).Msg("Listening for HTTP on")
	list, err := net.Listen("tcp", server.httpAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open HTTP listener")
	}

	srv := &http.Server{
		Handler:           server.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	server.mu.Lock()
	server.httpServer = srv
	server.mu.Unlock()
	err = srv.Serve(list)

	if err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("failed to serve HTTP server")
	}

	<-server.stopped
}

// Stop drains in-flight requests for up to the configured shutdown timeout,
// then closes remaining connections.
func (server *Server) Stop() {
	server.mu.Lock()
	srv := server.httpServer
	server.mu.Unlock()

	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), server.settings.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown did not finish, closing connections")
			_ = srv.Close()
		}
	}
	server.stopOnce.Do(func() { close(server.stopped) })
}

func (server *Server) handleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		sig := <-sigs

		log.Info().Interface("signal", sig).Msg("Server received signal, shutting down gracefully")
		server.Stop()
	}()
}
