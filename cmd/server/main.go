package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gobusters/ectoenv"
	"github.com/Gobusters/ectoinject"
	"github.com/Gobusters/ectologger/zapadapter"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/zap"

	"github.com/Ramsey-B/fern/config"
	"github.com/Ramsey-B/fern/pkg/events"
	"github.com/Ramsey-B/fern/pkg/fixtures"
	"github.com/Ramsey-B/fern/pkg/kafka"
	"github.com/Ramsey-B/fern/pkg/middleware"
	"github.com/Ramsey-B/fern/pkg/routes/analytics"
	"github.com/Ramsey-B/fern/pkg/routes/calendarevent"
	"github.com/Ramsey-B/fern/pkg/routes/communication"
	"github.com/Ramsey-B/fern/pkg/routes/customer"
	"github.com/Ramsey-B/fern/pkg/routes/health"
	"github.com/Ramsey-B/fern/pkg/routes/hydrate"
	"github.com/Ramsey-B/fern/pkg/routes/opportunity"
	"github.com/Ramsey-B/fern/pkg/routes/options"
	"github.com/Ramsey-B/fern/pkg/routes/report"
	"github.com/Ramsey-B/fern/pkg/routes/session"
	"github.com/Ramsey-B/fern/pkg/routes/task"
	"github.com/Ramsey-B/fern/pkg/startup"
	"github.com/Ramsey-B/fern/pkg/store"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/Ramsey-B/fern/pkg/tracing/exporters"
)

var Version = "dev"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	var cfg config.Config
	if err := ectoenv.BindEnv(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapLogger, err := newZapLogger(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zapLogger.Sync()
	logger := zapadapter.NewZapEctoLogger(zapLogger, nil)

	ctx := context.Background()

	tp, err := initTracing(ctx, cfg)
	if err != nil {
		logger.WithError(err).Error("Failed to init tracing")
		os.Exit(1)
	}
	defer tp.Shutdown(ctx)

	container, err := ectoinject.NewDIDefaultContainer()
	if err != nil {
		logger.WithError(err).Error("Failed to create DI container")
		os.Exit(1)
	}

	domainStore := store.New()
	if err := ectoinject.RegisterInstance[*store.Store](container, domainStore); err != nil {
		logger.WithError(err).Error("Failed to register store")
		os.Exit(1)
	}

	var source fixtures.Source
	if cfg.FixtureDir != "" {
		source = fixtures.NewFileSource(cfg.FixtureDir)
	} else {
		source = fixtures.NewHTTPSource(fixtures.HTTPSourceConfig{
			BaseURL: cfg.FixtureBaseURL,
			Timeout: cfg.FixtureRequestTimeout,
		}, logger)
	}
	loader := fixtures.NewLoader(source, logger)
	if err := ectoinject.RegisterInstance[*fixtures.Loader](container, loader); err != nil {
		logger.WithError(err).Error("Failed to register fixture loader")
		os.Exit(1)
	}

	var producer *kafka.Producer
	if cfg.KafkaProducerEnabled {
		producer = kafka.NewProducer(kafka.ProducerConfig{
			Brokers:      cfg.KafkaBrokers,
			Topic:        cfg.KafkaOutputTopic,
			BatchSize:    cfg.KafkaBatchSize,
			BatchTimeout: time.Duration(cfg.KafkaBatchTimeout) * time.Millisecond,
			RequiredAcks: cfg.KafkaRequiredAcks,
			Compression:  cfg.KafkaCompression,
		}, logger)
	}
	emitter := events.NewEmitter(producer, logger)
	if err := ectoinject.RegisterInstance[*events.Emitter](container, emitter); err != nil {
		logger.WithError(err).Error("Failed to register event emitter")
		os.Exit(1)
	}

	boot := startup.NewStartup(logger, cfg.StartupMaxAttempts)
	if cfg.HydrateOnStartup {
		boot.AddDependency(&hydrateDependency{loader: loader, store: domainStore, emitter: emitter})
	}
	if err := boot.Start(ctx); err != nil {
		// The store stays in load_failed; POST /hydrate can retry without a restart
		logger.WithError(err).Error("Startup hydration failed, serving with an empty store")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.Error(logger)
	e.Use(otelecho.Middleware(cfg.AppName))
	e.Use(middleware.Context())
	e.Use(middleware.Logger(logger))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: cfg.AllowMethods,
	}))

	api := e.Group("/api/v1")
	customer.Register(api.Group("/customers"))
	opportunity.Register(api.Group("/opportunities"))
	communication.Register(api.Group("/communications"))
	task.Register(api.Group("/tasks"))
	calendarevent.Register(api.Group("/events"))
	report.Register(api.Group("/reports"))
	analytics.Register(api.Group("/analytics"))
	session.Register(api.Group("/session"))
	options.Register(api.Group("/options"))
	hydrate.Register(api.Group("/hydrate"))

	checker := health.NewChecker(domainStore, Version)
	checker.RegisterRoutes(e)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		ReadTimeout:       time.Duration(cfg.HttpServerReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(cfg.HttpServerWriteTimeoutSeconds) * time.Second,
		IdleTimeout:       time.Duration(cfg.HttpServerIdleTimeoutSeconds) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.ReadHeaderTimeoutSeconds) * time.Second,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		logger.WithField("port", cfg.Port).Infof("Starting %s on port %d", cfg.AppName, cfg.Port)
		if err := e.StartServer(srv); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("Server stopped unexpectedly")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Failed to shut down server cleanly")
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.WithError(err).Error("Failed to close kafka producer")
		}
	}
}

func newZapLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.PrettyLogs {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// initTracing wires the tracer provider behind the tracing facade. When
// tracing is disabled the provider exports to a discard exporter, so spans
// stay cheap but trace ids still flow into logs and error responses.
func initTracing(ctx context.Context, cfg config.Config) (*sdktrace.TracerProvider, error) {
	var exporter sdktrace.SpanExporter = &exporters.ConsoleExporter{}
	if cfg.TracingEnabled {
		otlp, err := exporters.NewOTLPExporter(ctx, exporters.OTLPConfig{
			Endpoint: cfg.OTLPEndpoint,
			Protocol: cfg.OTLPProtocol,
			Insecure: cfg.OTLPInsecure,
			Timeout:  10 * time.Second,
		})
		if err != nil {
			return nil, err
		}
		exporter = otlp
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.AppName),
			semconv.ServiceVersion(Version),
		)),
	)
	otel.SetTracerProvider(tp)
	tracing.SetTracer(tp.Tracer(cfg.AppName))
	return tp, nil
}

// hydrateDependency loads the fixture dataset as a startup dependency so the
// fetch gets the same retry/backoff treatment as any other boot requirement.
type hydrateDependency struct {
	loader  *fixtures.Loader
	store   *store.Store
	emitter *events.Emitter
}

func (d *hydrateDependency) GetName() string     { return "fixture-hydration" }
func (d *hydrateDependency) DependsOn() []string { return nil }

func (d *hydrateDependency) Start(ctx context.Context) error {
	if err := d.loader.Hydrate(ctx, d.store); err != nil {
		return err
	}
	d.emitter.EmitStoreHydrated(ctx, map[string]int{
		"customers":      len(d.store.Customers()),
		"opportunities":  len(d.store.Opportunities()),
		"communications": len(d.store.Communications()),
		"tasks":          len(d.store.Tasks()),
		"events":         len(d.store.Events()),
		"reports":        len(d.store.Reports()),
	})
	return nil
}

func (d *hydrateDependency) Stop(ctx context.Context) error { return nil }
