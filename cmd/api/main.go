package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/totegamma/charsheet"
	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/x/background"
	"github.com/totegamma/charsheet/x/character"
	"github.com/totegamma/charsheet/x/class"
	"github.com/totegamma/charsheet/x/equipment"
	"github.com/totegamma/charsheet/x/request"
	"github.com/totegamma/charsheet/x/species"
	"github.com/totegamma/charsheet/x/spell"
	"github.com/totegamma/charsheet/x/srd"
	"github.com/totegamma/charsheet/x/util"
	"github.com/totegamma/charsheet/x/validation"

	"github.com/bradfitz/gomemcache/memcache"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/plugin/opentelemetry/tracing"
)

type CustomHandler struct {
	slog.Handler
}

func (h *CustomHandler) Handle(ctx context.Context, r slog.Record) error {

	r.AddAttrs(slog.String("type", "app"))

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(slog.String("traceID", span.SpanContext().TraceID().String()))
		r.AddAttrs(slog.String("spanID", span.SpanContext().SpanID().String()))
	}

	if requestID := core.RequestIDFromContext(ctx); requestID != "" {
		r.AddAttrs(slog.String("requestID", requestID))
	}

	return h.Handler.Handle(ctx, r)
}

func main() {

	handler := &CustomHandler{Handler: slog.NewJSONHandler(os.Stdout, nil)}
	slogger := slog.New(handler)
	slog.SetDefault(slogger)

	version := util.ReadBuild().String()
	slog.Info(fmt.Sprintf("charsheet %s starting...", version))

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true

	config := core.DefaultConfig()
	configPath := os.Getenv("CHARSHEET_CONFIG")
	if configPath == "" {
		configPath = "/etc/charsheet/config.yaml"
	}

	err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("Config loaded!", slog.String("path", configPath))

	if config.Server.EnableTrace {
		cleanup, err := setupTraceProvider(config.Server.TraceEndpoint, "charsheet", version)
		if err != nil {
			panic(err)
		}
		defer cleanup()

		skipper := otelecho.WithSkipper(
			func(c echo.Context) bool {
				return c.Path() == "/metrics" || c.Path() == "/health"
			},
		)
		e.Use(otelecho.Middleware("api", skipper))
	}

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace: "charsheet",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	e.Use(request.RequestID())
	e.Use(request.AccessLog(os.Stdout))
	e.Use(middleware.Recover())

	e.Validator = validation.New()
	e.HTTPErrorHandler = request.ErrorHandler

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             300 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(config.Server.Dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		panic("failed to connect database")
	}
	sqlDB, err := db.DB() // for pinging
	if err != nil {
		panic("failed to connect database")
	}
	defer sqlDB.Close()

	err = db.Use(tracing.NewPlugin(
		tracing.WithDBName("postgres"),
	))
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	// Migrate the schema
	slog.Info("start migrate")
	err = db.AutoMigrate(core.Models()...)
	if err != nil {
		panic(fmt.Sprintf("failed to migrate: %v", err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Server.RedisAddr,
		Password: "", // no password set
		DB:       config.Server.RedisDB,
	})
	err = redisotel.InstrumentTracing(
		rdb,
		redisotel.WithAttributes(
			attribute.KeyValue{
				Key:   "db.name",
				Value: attribute.StringValue("redis"),
			},
		),
	)
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	mc := memcache.New(config.Server.MemcachedAddr)
	defer mc.Close()

	classService := charsheet.SetupClassService(db, rdb, mc, config)
	classHandler := class.NewHandler(classService)

	speciesService := charsheet.SetupSpeciesService(db, rdb, mc, config)
	speciesHandler := species.NewHandler(speciesService)

	backgroundService := charsheet.SetupBackgroundService(db)
	backgroundHandler := background.NewHandler(backgroundService)

	itemService := charsheet.SetupItemService(db)
	itemHandler := equipment.NewHandler(itemService)

	spellService := charsheet.SetupSpellService(db)
	spellHandler := spell.NewHandler(spellService)

	characterService := charsheet.SetupCharacterService(db, rdb, mc, config)
	characterHandler := character.NewHandler(characterService)

	srdService := charsheet.SetupSRDService(db, rdb, mc, config)
	srdHandler := srd.NewHandler(srdService)

	// class
	e.GET("/classes", classHandler.List)
	e.POST("/classes", classHandler.Create)
	e.GET("/classes/:id", classHandler.Get)
	e.PUT("/classes/:id", classHandler.Update)
	e.DELETE("/classes/:id", classHandler.Delete)
	e.GET("/classes/:id/subclasses", classHandler.ListSubclasses)
	e.POST("/classes/:id/subclasses", classHandler.CreateSubclass)
	e.DELETE("/classes/:id/subclasses/:subclassId", classHandler.DeleteSubclass)

	// species
	e.GET("/species", speciesHandler.List)
	e.POST("/species", speciesHandler.Create)
	e.GET("/species/:id", speciesHandler.Get)
	e.PUT("/species/:id", speciesHandler.Update)
	e.DELETE("/species/:id", speciesHandler.Delete)

	// background
	e.GET("/backgrounds", backgroundHandler.List)
	e.POST("/backgrounds", backgroundHandler.Create)
	e.GET("/backgrounds/:id", backgroundHandler.Get)
	e.PUT("/backgrounds/:id", backgroundHandler.Update)
	e.DELETE("/backgrounds/:id", backgroundHandler.Delete)

	// equipment
	e.GET("/items", itemHandler.List)
	e.POST("/items", itemHandler.Create)
	e.GET("/items/:id", itemHandler.Get)
	e.PUT("/items/:id", itemHandler.Update)
	e.DELETE("/items/:id", itemHandler.Delete)

	// spell
	e.GET("/spells", spellHandler.List)
	e.POST("/spells", spellHandler.Create)
	e.GET("/spells/:id", spellHandler.Get)
	e.PUT("/spells/:id", spellHandler.Update)
	e.DELETE("/spells/:id", spellHandler.Delete)

	// character
	e.GET("/characters", characterHandler.List)
	e.POST("/characters", characterHandler.Create)
	e.GET("/characters/:id", characterHandler.Get)
	e.PATCH("/characters/:id", characterHandler.Update)
	e.DELETE("/characters/:id", characterHandler.Delete)
	e.PUT("/characters/:id/ability-scores", characterHandler.UpdateAbilityScores)
	e.GET("/characters/:id/items", characterHandler.ListItems)
	e.POST("/characters/:id/items", characterHandler.AddItem)
	e.PUT("/characters/:id/items/:itemId", characterHandler.UpdateItem)
	e.DELETE("/characters/:id/items/:itemId", characterHandler.RemoveItem)
	e.GET("/characters/:id/spells", characterHandler.ListSpells)
	e.POST("/characters/:id/spells", characterHandler.LearnSpell)
	e.PUT("/characters/:id/spells/:spellId", characterHandler.UpdateSpell)
	e.DELETE("/characters/:id/spells/:spellId", characterHandler.ForgetSpell)

	// admin
	e.POST("/admin/srd/import", srdHandler.Import)

	// misc
	e.GET("/info", func(c echo.Context) error {
		profile := config.Profile
		profile.Version = version
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": profile})
	})
	e.GET("/health", func(c echo.Context) (err error) {
		ctx := c.Request().Context()

		err = sqlDB.Ping()
		if err != nil {
			return c.String(http.StatusInternalServerError, "db error")
		}

		err = rdb.Ping(ctx).Err()
		if err != nil {
			return c.String(http.StatusInternalServerError, "redis error")
		}

		return c.String(http.StatusOK, "ok")
	})

	var resourceCountMetrics = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "charsheet",
			Name:      "resources_count",
			Help:      "resources count",
		},
		[]string{"type"},
	)
	prometheus.MustRegister(resourceCountMetrics)
	prometheus.MustRegister(character.Collectors()...)

	counters := map[string]func(context.Context) (int64, error){
		"character":  characterService.Count,
		"class":      classService.Count,
		"species":    speciesService.Count,
		"background": backgroundService.Count,
		"item":       itemService.Count,
		"spell":      spellService.Count,
	}

	go func() {
		for {
			time.Sleep(15 * time.Second)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			for name, count := range counters {
				value, err := count(ctx)
				if err != nil {
					slog.Error(fmt.Sprintf("failed to count %s: %v", name, err))
					continue
				}
				resourceCountMetrics.WithLabelValues(name).Set(float64(value))
			}
			cancel()
		}
	}()

	e.GET("/metrics", echoprometheus.NewHandler())

	e.Logger.Fatal(e.Start(config.Server.ListenAddr))
}

func setupTraceProvider(endpoint string, serviceName string, serviceVersion string) (func(), error) {

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)

	if err != nil {
		return nil, err
	}

	resource := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(serviceVersion),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource),
	)
	otel.SetTracerProvider(tracerProvider)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagator)

	cleanup := func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error(fmt.Sprintf("Failed to shutdown tracer provider: %v", err))
		}
	}
	return cleanup, nil
}
