package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/purlyedit/vastu-vision/internal/database"
	"github.com/purlyedit/vastu-vision/internal/facades"
	"github.com/purlyedit/vastu-vision/internal/handlers"
	jwtpkg "github.com/purlyedit/vastu-vision/internal/jwt"
	"github.com/purlyedit/vastu-vision/internal/logger"
	"github.com/purlyedit/vastu-vision/internal/metrics"
	"github.com/purlyedit/vastu-vision/internal/middlewares"
	"github.com/purlyedit/vastu-vision/internal/repositories"
	"github.com/purlyedit/vastu-vision/internal/services"
	"github.com/purlyedit/vastu-vision/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// allowedUploadTypes are the content types accepted for floor plan uploads.
var allowedUploadTypes = []string{"image/jpeg", "image/png", "application/pdf"}

// @title vastu-vision API
// @version 1.0.0
// @description Backend for Vastu consultation: accounts, saved spaces, floor plan uploads and analysis
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, baseURL, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		analyzerURL, analyzerTimeoutSecond,
		uploadDir, maxUploadSizeBytes,
		sessionName, sessionLifetimeSecond,
		jwtSecretKey, passwordMinLength, bcryptCost,
		rateLimitRPS, rateLimitBurst,
		analysisCacheTTLSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, baseURL, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		analyzerURL, analyzerTimeoutSecond,
		uploadDir, maxUploadSizeBytes,
		sessionName, sessionLifetimeSecond,
		jwtSecretKey, passwordMinLength, bcryptCost,
		rateLimitRPS, rateLimitBurst,
		analysisCacheTTLSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, analyzer, upload, session, auth
// and rate limiting configuration.
func parseConfig(path string) (
	appHost, appPort, baseURL, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	analyzerURL string, analyzerTimeoutSecond int,
	uploadDir string, maxUploadSizeBytes int64,
	sessionName string, sessionLifetimeSecond int,
	jwtSecretKey string, passwordMinLength, bcryptCost int,
	rateLimitRPS float64, rateLimitBurst int,
	analysisCacheTTLSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	baseURL = getEnv("APP_BASE_URL", "")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "vastu_vision")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config; audit events are skipped when no address is set
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "vastu-activity")

	// Analyzer config
	analyzerURL = getEnv("ANALYZER_URL", "http://localhost:5001")
	if analyzerTimeoutSecond, err = strconv.Atoi(getEnv("ANALYZER_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	// Upload config
	uploadDir = getEnv("UPLOAD_DIR", "uploads")
	if maxUploadSizeBytes, err = strconv.ParseInt(getEnv("MAX_UPLOAD_SIZE_BYTES", "5242880"), 10, 64); err != nil {
		return
	}

	// Session config
	sessionName = getEnv("SESSION_NAME", "vastu_session")
	if sessionLifetimeSecond, err = strconv.Atoi(getEnv("SESSION_LIFETIME_SECOND", "86400")); err != nil {
		return
	}

	// Auth config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if passwordMinLength, err = strconv.Atoi(getEnv("PASSWORD_MIN_LENGTH", "8")); err != nil {
		return
	}
	if bcryptCost, err = strconv.Atoi(getEnv("BCRYPT_COST", "12")); err != nil {
		return
	}

	// Rate limiting config
	if rateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "5"), 64); err != nil {
		return
	}
	if rateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "10")); err != nil {
		return
	}

	// Cache config
	if analysisCacheTTLSecond, err = strconv.Atoi(getEnv("ANALYSIS_CACHE_TTL_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, analyzer client and
// HTTP server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, baseURL, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	analyzerURL string, analyzerTimeoutSecond int,
	uploadDir string, maxUploadSizeBytes int64,
	sessionName string, sessionLifetimeSecond int,
	jwtSecretKey string, passwordMinLength, bcryptCost int,
	rateLimitRPS float64, rateLimitBurst int,
	analysisCacheTTLSecond int,
) error {
	// Initialize logger
	zl, err := logger.New(logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer zl.Sync()
	zl.Infof("Logger initialized with level %s", logLevel)

	if baseURL == "" {
		baseURL = fmt.Sprintf("http://%s:%s", appHost, appPort)
	}

	// Connect to PostgreSQL and apply migrations
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	zl.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

	db, err := database.Connect(ctx, dsn, pgMaxOpenConns, pgMaxIdleConns)
	if err != nil {
		zl.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()

	if err := database.RunMigrations(dsn); err != nil {
		zl.Fatal("migration error:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		zl.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for audit events, optional
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		kafkaWriter = kw
	}

	// Analyzer client
	analyzerFacade := facades.NewAnalysisHTTPFacade(analyzerURL, time.Duration(analyzerTimeoutSecond)*time.Second)

	// Local blob store for floor plans
	blobStore, err := storage.NewLocalStore(uploadDir)
	if err != nil {
		zl.Fatal("upload directory error:", err)
	}

	// Initialize JWT service
	sessionTTL := time.Duration(sessionLifetimeSecond) * time.Second
	jwt := jwtpkg.New(jwtSecretKey, sessionTTL, sessionName)

	// Initialize metrics
	collector := metrics.NewCollector()

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	spaceWriteRepo := repositories.NewSpaceWriteRepository(db)
	spaceReadRepo := repositories.NewSpaceReadRepository(db)
	floorPlanWriteRepo := repositories.NewFloorPlanWriteRepository(db)
	floorPlanReadRepo := repositories.NewFloorPlanReadRepository(db)
	activityRepo := repositories.NewActivityLogRepository(db)
	sessionRepo := repositories.NewSessionTokenRepository(db)
	analysisWriteRepo := repositories.NewAnalysisResultWriteRepository(db)
	analysisReadRepo := repositories.NewAnalysisResultReadRepository(db)
	analysisCacheRepo := repositories.NewAnalysisCacheRepository(rdb, time.Duration(analysisCacheTTLSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, sessionRepo, activityRepo, jwt, kafkaWriter, passwordMinLength, bcryptCost)
	spaceService := services.NewSpaceService(spaceWriteRepo, spaceReadRepo, userReadRepo, floorPlanReadRepo, analysisReadRepo, kafkaWriter)
	uploadService := services.NewUploadService(blobStore, floorPlanWriteRepo, activityRepo, kafkaWriter, maxUploadSizeBytes, allowedUploadTypes, baseURL)
	analysisService := services.NewAnalysisService(analyzerFacade, analysisCacheRepo, analysisWriteRepo, activityRepo, collector, kafkaWriter, maxUploadSizeBytes)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService, sessionName, sessionTTL)
	tokenLoginHandler := handlers.NewTokenLoginHandler(authService, sessionName, sessionTTL)
	logoutHandler := handlers.NewLogoutHandler(authService, jwt, sessionName)
	spaceHandler := handlers.NewSpaceHandler(spaceService)
	uploadHandler := handlers.NewUploadHandler(uploadService, maxUploadSizeBytes)
	userDataHandler := handlers.NewUserDataHandler(spaceService)
	analyzeHandler := handlers.NewAnalyzeHandler(analysisService)
	analyzeImageHandler := handlers.NewAnalyzeImageHandler(analysisService, maxUploadSizeBytes)
	healthHandler := handlers.NewHealthHandler()

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(zl))
	r.Use(collector.Middleware)

	// Public routes, rate limited per client IP
	rateLimiter := middlewares.NewRateLimiter(rateLimitRPS, rateLimitBurst)
	r.Group(func(r chi.Router) {
		r.Use(rateLimiter.Middleware)
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)
		r.Post("/login/token", tokenLoginHandler)
	})

	r.Get("/logout", logoutHandler)

	// Protected routes
	authMiddleware := middlewares.AuthMiddleware(jwt, authService)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/space", spaceHandler)
		r.Post("/upload", uploadHandler)
		r.Get("/user-data", userDataHandler)
		r.Post("/analyze", analyzeHandler)
		r.Post("/analyze/image", analyzeImageHandler)
	})

	// Stored floor plans
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	r.Get("/health", healthHandler)
	r.Handle("/metrics", collector.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Periodic purge of expired remember-me token rows, stopped on shutdown
	go authService.RunSessionCleanup(ctxShutdown, time.Hour)

	go func() {
		zl.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		zl.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Errorw("HTTP server shutdown error", "error", err)
	}

	zl.Info("HTTP server stopped gracefully")
	return nil
}
