package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/backup"
	"github.com/2beens/liftlog/internal/catalog"
	"github.com/2beens/liftlog/internal/config"
	"github.com/2beens/liftlog/internal/dashboard"
	"github.com/2beens/liftlog/internal/db"
	"github.com/2beens/liftlog/internal/drafts"
	"github.com/2beens/liftlog/internal/geoip"
	"github.com/2beens/liftlog/internal/middleware"
	"github.com/2beens/liftlog/internal/profile"
	"github.com/2beens/liftlog/internal/telemetry/metrics"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/workouts"
	"github.com/2beens/liftlog/pkg"
)

const sessionsCleanupInterval = 8 * time.Hour

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	geoIp       *geoip.Api

	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	IpInfoAPIKey            string
	VersionInfo             string
	RedisPassword           string
	PostgresPassword        string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	} else if err := db.ApplySchema(ctx, dbPool); err != nil {
		return nil, err
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("liftlog", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "liftlog-backend", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Timeout:   10 * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	authService := auth.NewAuthService(auth.NewUsersRepo(dbPool), params.Config.SessionTTL(), rdb)
	go authService.RunCleanup(ctx, sessionsCleanupInterval)

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		redisClient: rdb,
		geoIp:       geoip.NewApi(params.IpInfoAPIKey, tracedHttpClient, rdb),
		versionInfo: params.VersionInfo,

		authService:  authService,
		loginChecker: auth.NewLoginChecker(params.Config.SessionTTL(), rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("liftlog-router"))

	r.HandleFunc("/", s.handleRoot).Methods("GET").Name("root")

	authLimiter := middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		"auth",
		s.config.LoginRateLimitAllowedPerMin,
		s.metricsManager,
	)
	auth.NewHandler(s.authService, s.metricsManager).SetupRoutes(r, authLimiter)

	catalogService := catalog.NewService(
		catalog.NewRepo(s.dbPool),
		s.config.CatalogCacheSizeMB,
		catalog.DefaultPredefinedTTL,
	)
	catalog.NewHandler(catalogService).SetupRoutes(r)

	workoutsService := workouts.NewService(
		workouts.NewRepo(s.dbPool),
		catalogService,
		s.metricsManager,
	)
	workouts.NewHandler(workoutsService, s.geoIp).SetupRoutes(r)

	draftsService := drafts.NewService(
		drafts.NewStore(s.redisClient, s.config.DraftTTL()),
		catalogService,
		workoutsService,
	)
	drafts.NewHandler(draftsService).SetupRoutes(r)

	dashboard.NewHandler(
		dashboard.NewService(dashboard.NewRepo(s.dbPool)),
		s.geoIp,
	).SetupRoutes(r)

	profile.NewHandler(
		profile.NewService(profile.NewRepo(s.dbPool)),
	).SetupRoutes(r)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.CorsAllowedOrigins))
	r.Use(middleware.NewAuthMiddlewareHandler(s.loginChecker).AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	if s.versionInfo == "" {
		pkg.WriteTextResponseOK(w, "liftlog ok")
		return
	}
	pkg.WriteTextResponseOK(w, fmt.Sprintf("liftlog ok, version: %s", s.versionInfo))
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
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

	s.metricsManager.GaugeLifeSignal.Set(1)

	s.setBackupUnixSocket(ctx)
}

func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	var shutdownErr error

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("close redis client: %w", err))
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if s.config.BackupUnixSocketAddrDir != "" {
		log.Debugln("removing workouts backup unix socket ...")
		if err := os.RemoveAll(s.config.BackupUnixSocketAddrDir); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("cleanup backup unix socket dir: %w", err))
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("shutdown http server: %w", err))
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("shutdown metrics http server: %w", err))
		}
		log.Warnln("metrics server shut down")
	}

	return shutdownErr
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}

func (s *Server) setBackupUnixSocket(ctx context.Context) {
	if s.config.BackupUnixSocketAddrDir == "" {
		log.Warnln("workouts backup unix socket dir not set, backup reports will not be received")
		return
	}

	if err := os.MkdirAll(s.config.BackupUnixSocketAddrDir, os.ModePerm); err != nil {
		log.Errorf("failed to create workouts backup unix socket dir: %s", err)
		return
	}

	if addr, err := backup.UnixSocketListenerSetup(
		ctx,
		s.config.BackupUnixSocketAddrDir,
		s.config.BackupUnixSocketFileName,
		s.metricsManager,
	); err != nil {
		log.Errorf("failed to create workouts backup unix socket: %s", err)
	} else {
		log.Debugf("workouts backup unix socket: %s", addr)
	}
}
