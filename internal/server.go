package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/dashboard"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/geoip"
	"github.com/2beens/fittrack/internal/history"
	"github.com/2beens/fittrack/internal/localday"
	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/routines"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

const (
	sessionCleanupSpec   = "@every 8h"
	notifierRetryBackoff = 5 * time.Second
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config   *config.Config
	dbPool   *pgxpool.Pool
	geoIp    *geoip.Api
	ipReader *pkg.ClientIPReader
	avatars  *profile.AvatarDiskStore

	redisClient    *redis.Client
	authService    *auth.Service
	sessionCleaner *cron.Cron

	dashboardService  *dashboard.Service
	dashboardHub      *dashboard.Hub
	dashboardNotifier *dashboard.Notifier

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config        *config.Config
	Secrets       *config.Secrets
	VersionInfo   string
	MigrateSchema bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	secrets := params.Secrets

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     secrets.PostgresPassword,
		TracingEnabled: secrets.HoneycombEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if params.MigrateSchema {
		if err := db.Migrate(ctx, dbPool); err != nil {
			return nil, err
		}
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fittrack", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: secrets.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(secrets.HoneycombEnabled, secrets.OtelServiceName, rdb)
	if err != nil {
		return nil, err
	}

	authService := auth.NewService(auth.NewUsersRepo(dbPool), cfg.SessionTTL.Duration, rdb)
	sessionCleaner, err := authService.ScheduleCleanup(ctx, sessionCleanupSpec)
	if err != nil {
		return nil, err
	}

	avatars, err := profile.NewAvatarDiskStore(cfg.AvatarsRootPath)
	if err != nil {
		return nil, fmt.Errorf("avatars store: %w", err)
	}

	ipReader, err := pkg.NewClientIPReader(cfg.TrustedProxies)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   10 * time.Second,
	}

	dashboardService := dashboard.NewService(
		history.NewRepo(dbPool),
		routines.NewRepo(dbPool),
		cfg.DashboardCacheSizeMB,
		metricsManager,
	)
	dashboardHub := dashboard.NewHub(dashboardService)

	s := &Server{
		config:      cfg,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,
		geoIp:       geoip.NewApi(secrets.IpInfoToken, tracedHttpClient, rdb).WithIPReader(ipReader),
		ipReader:    ipReader,
		avatars:     avatars,

		redisClient:    rdb,
		authService:    authService,
		sessionCleaner: sessionCleaner,

		dashboardService:  dashboardService,
		dashboardHub:      dashboardHub,
		dashboardNotifier: dashboard.NewNotifier(rdb).WithLocalNotify(dashboardHub.Notify),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", s.handleRoot).Methods("GET").Name("root")
	r.HandleFunc("/version", s.handleVersion).Methods("GET").Name("version")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	authRouter := r.PathPrefix("/auth").Subrouter()
	authRouter.Use(middleware.RateLimit(
		reqRateLimiter,
		s.ipReader,
		"auth",
		s.config.SignInRateLimitAllowedPerMin,
		s.metricsManager,
	))
	authHandler := auth.NewHandler(s.authService, s.metricsManager)
	authHandler.SetupRoutes(authRouter)

	days := localday.NewResolver(s.geoIp)

	routinesHandler := routines.NewHandler(
		routines.NewRepo(s.dbPool),
		s.dashboardNotifier,
		s.metricsManager,
	)
	routinesHandler.SetupRoutes(r)

	historyHandler := history.NewHandler(
		history.NewRepo(s.dbPool),
		s.dashboardNotifier,
		days,
		s.metricsManager,
	)
	historyHandler.SetupRoutes(r.PathPrefix("/history").Subrouter())

	profileHandler := profile.NewHandler(profile.NewRepo(s.dbPool), s.avatars)
	profileHandler.SetupRoutes(r.PathPrefix("/profile").Subrouter())

	dashboardHandler := dashboard.NewHandler(
		s.dashboardService,
		s.dashboardHub,
		days,
		s.config.DashboardPollInterval.Duration,
		s.metricsManager,
	)
	dashboardHandler.SetupRoutes(r)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.authService)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "fittrack")
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, s.versionInfo)
}

// listenForUpdates refreshes the open dashboards whenever another instance
// publishes a workout or routine change.
func (s *Server) listenForUpdates(ctx context.Context) {
	dashboard.Follow(ctx, s.dashboardNotifier, notifierRetryBackoff, func(userID uuid.UUID) {
		log.Tracef("dashboard update for %s", userID)
		s.dashboardHub.Notify(userID)
	})
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go s.listenForUpdates(ctx)

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
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	if s.sessionCleaner != nil {
		s.sessionCleaner.Stop()
		log.Trace("session cleaner stopped ...")
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// open dashboard streams end when the serve context is cancelled
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}
