package internal

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/mcp"
	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config   *config.Config
	storage  *Storage
	services *Services

	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()

	// background jobs, stopped when Serve's context is done
	jobs sync.WaitGroup
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	PostgresPassword        string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	storage, err := OpenStorage(ctx, StorageParams{
		Config:           params.Config,
		RedisPassword:    params.RedisPassword,
		PostgresPassword: params.PostgresPassword,
		TracingEnabled:   params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, err
	}

	promRegistry := metrics.SetupPrometheus(storage.Collectors()...)
	metricsManager := metrics.NewManager("fittrack", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fittrack")
	if err != nil {
		storage.Close()
		return nil, err
	}

	return &Server{
		versionInfo:    params.VersionInfo,
		config:         params.Config,
		storage:        storage,
		services:       NewServices(storage.Accessor(metricsManager), params.Config, metricsManager),
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fittrack-router"))

	apiHandler := api.NewHandler(
		s.services.Tracker,
		s.services.Stats,
		s.services.Reminders,
		s.services.Backup,
		s.services.Tracker,
	)
	apiHandler.SetupRoutes(r)

	mcpServer := mcp.NewServer(s.services.Tracker, s.services.Stats, s.services.Reminders)
	r.PathPrefix("/mcp").Handler(mcp.NewHTTPHandler(mcpServer)).Name("mcp")

	r.HandleFunc("/version", s.handleVersion).Methods("GET", "OPTIONS").Name("version")

	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	version := s.versionInfo
	if version == "" {
		version = "dev"
	}
	pkg.WriteTextResponseOK(w, version)
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:     otelhttp.NewHandler(s.routerSetup(), "fittrack"),
		Addr:        ipAndPort,
		ReadTimeout: time.Minute,
		ConnState:   s.connStateMetrics,
		// no write timeout, /events streams stay open until ctx is done
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{Registry: s.promRegistry},
	))
	metricsAddr := net.JoinHostPort(s.config.MetricsHost, s.config.MetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.jobs.Add(1)
	go func() {
		defer s.jobs.Done()
		s.runModeSwitch(ctx, s.config.ModeSwitchInterval)
	}()

	s.jobs.Add(1)
	go func() {
		defer s.jobs.Done()
		s.runStoreWatch(ctx, s.config.ChangePollInterval)
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

// runModeSwitch checks once right away, then every interval, whether
// ramadan is over and the program should go back to normal mode.
func (s *Server) runModeSwitch(ctx context.Context, interval time.Duration) {
	s.switchModeIfDue(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Debugln("mode switch job stopped")
			return
		case <-ticker.C:
			s.switchModeIfDue(ctx)
		}
	}
}

// runStoreWatch republishes writes made by other processes on the same
// store, like the stdio MCP server, to /events subscribers.
func (s *Server) runStoreWatch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		log.Warnf("store watch disabled, change poll interval: %s", interval)
		return
	}
	s.services.Store.Watch(ctx, interval)
	log.Debugln("store watch job stopped")
}

func (s *Server) switchModeIfDue(ctx context.Context) {
	switched, err := s.services.Tracker.ApplyAutoModeSwitch(ctx)
	if err != nil {
		log.Errorf("auto mode switch: %s", err)
		return
	}
	if switched {
		log.Infoln("program mode switched back to normal")
	}
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown http server: %s", err)
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown metrics http server: %s", err)
		}
		log.Warnln("metrics server shut down")
	}

	s.jobs.Wait()
	s.services.Close()
	s.storage.Close()

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed, http.StateHijacked:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
