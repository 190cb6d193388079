package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/mock-register-server/docs"
	"github.com/sbilibin2017/mock-register-server/internal/handlers"
	"github.com/sbilibin2017/mock-register-server/internal/logger"
	"github.com/sbilibin2017/mock-register-server/internal/middlewares"
	"github.com/sbilibin2017/mock-register-server/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything run needs to start the server.
type config struct {
	appHost        string
	appPort        string
	logLevel       string
	swaggerEnabled bool
}

// @title mock-register-server API
// @version 1.0.0
// @description Mock registration endpoint for local client development
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// parseConfig loads environment variables from a file and returns
// the listen address, log level and swagger settings.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	cfg.appHost = getEnv("APP_HOST", "")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	if cfg.swaggerEnabled, err = strconv.ParseBool(getEnv("APP_SWAGGER_ENABLED", "false")); err != nil {
		return
	}

	return
}

// newRouter wires middlewares and routes. An empty swaggerURL leaves the
// Swagger UI unmounted.
func newRouter(svc handlers.Registerer, swaggerURL string) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares.CORSMiddleware)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.PreflightMiddleware)

	notFound := handlers.NewNotFoundHandler()
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	r.With(middlewares.RejectQueryMiddleware(notFound)).
		Post("/api/auth/register", handlers.NewRegisterHandler(svc))

	if swaggerURL != "" {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))
	}

	return r
}

// run initializes the logger and the HTTP server.
// It blocks until ctx is done or a termination signal arrives.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	hintHost := cfg.appHost
	if hintHost == "" {
		hintHost = "localhost"
	}
	hintAddr := net.JoinHostPort(hintHost, cfg.appPort)

	var swaggerURL string
	if cfg.swaggerEnabled {
		docs.SwaggerInfo.Host = hintAddr
		swaggerURL = fmt.Sprintf("http://%s/swagger/doc.json", hintAddr)
	}

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.appHost, cfg.appPort),
		Handler: newRouter(services.NewRegistrationService(), swaggerURL),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infow("Mock registration server listening",
			"addr", srv.Addr,
			"port", cfg.appPort,
			"url", fmt.Sprintf("http://%s/api/auth/register", hintAddr),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
