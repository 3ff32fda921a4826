package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Prakash-Banjade/smart-tutor/config"
	"github.com/Prakash-Banjade/smart-tutor/internal/catalog"
	"github.com/Prakash-Banjade/smart-tutor/internal/container"
	pginfra "github.com/Prakash-Banjade/smart-tutor/internal/infrastructure/postgres"
	"github.com/Prakash-Banjade/smart-tutor/internal/interface/middleware"
	"github.com/Prakash-Banjade/smart-tutor/internal/messaging"
	"github.com/Prakash-Banjade/smart-tutor/internal/router"
	"github.com/Prakash-Banjade/smart-tutor/internal/schedule"
	"github.com/Prakash-Banjade/smart-tutor/internal/search"
	"github.com/Prakash-Banjade/smart-tutor/internal/session"
	"github.com/Prakash-Banjade/smart-tutor/pkg/helpers"
	"github.com/Prakash-Banjade/smart-tutor/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	// Redis is optional: session store, rate limiting and the credential
	// mirror degrade to in-memory or no-op without it.
	var rdb *redis.Client
	if cfg.RedisEnabled {
		rdb = helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer func() { _ = rdb.Close() }()
		container.SetRedis(rdb)
	}

	// Listing catalog: Postgres rows when enabled, built-in fixtures
	// otherwise.
	cat := catalog.NewFromFixtures()
	if cfg.DBEnabled {
		pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		defer pool.Close()
		container.SetPGPool(pool)

		if err := runMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
			log.Fatalf("migration failed: %v", err)
		}

		repo := pginfra.NewListingRepository(pool)
		tutors, err := repo.Tutors(ctx)
		if err != nil {
			log.Fatalf("failed to load tutor listings: %v", err)
		}
		groups, err := repo.Groups(ctx)
		if err != nil {
			log.Fatalf("failed to load study group listings: %v", err)
		}
		if len(tutors) > 0 || len(groups) > 0 {
			cat = catalog.New(tutors, groups)
			logger.Infof("catalog hydrated from postgres: %d tutors, %d groups", len(tutors), len(groups))
		} else {
			logger.Warn("postgres catalog empty, serving built-in fixtures (run cmd/seed)")
		}
	}
	container.SetCatalog(cat)

	// Session service: memory or redis backend behind the same interface.
	var provider session.StoreProvider = session.NewMemoryProvider()
	if cfg.SessionBackend == "redis" {
		if rdb == nil {
			log.Fatal("SESSION_BACKEND=redis requires REDIS_ENABLED=true")
		}
		provider = session.NewRedisProvider(rdb, cfg.SessionTTL)
	}
	var creds session.CredentialRecorder
	if rdb != nil {
		creds = session.NewRedisCredentialRecorder(rdb)
	}
	gateway := session.NewMockGateway(cfg.SessionLatency, creds, logger)
	container.SetSessions(session.NewService(provider, gateway, cfg.SessionKeyPrefix, logger))

	// GCS (avatar uploads)
	if cfg.GCSEnabled {
		gcsClient, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			log.Fatalf("failed to init GCS client: %v", err)
		}
		defer func() { _ = gcsClient.Close() }()
		container.SetGCS(gcsClient)
	}

	// Elasticsearch listing mirror
	mirror := search.NewMirror(nil, "", logger)
	if cfg.ESEnabled {
		esClient, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
		if err != nil {
			log.Fatalf("failed to init elasticsearch client: %v", err)
		}
		container.SetES(esClient)
		mirror = search.NewMirror(esClient, cfg.ESListingsIndex, logger)
		if err := mirror.IndexCatalog(ctx, cat); err != nil {
			logger.WithError(err).Warn("initial catalog indexing failed")
		}
	}
	container.SetSearchMirror(mirror)

	// RabbitMQ publisher (notification queue)
	if cfg.RabbitMQEnabled {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQNotifyQueue)
		if err != nil {
			log.Fatalf("failed to init rabbitmq publisher: %v", err)
		}
		defer pub.Close()
		container.SetRabbitPub(pub)
	}

	// JWT
	jwtManager := helpers.NewJWTManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.AccessTTL, cfg.RefreshTTL)

	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetJWT(jwtManager)
	container.SetSchedule(schedule.NewBook())
	container.SetMessaging(messaging.NewService())

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())

	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsCfg))
	if cfg.HTTPLogEnabled || cfg.Env == "development" {
		r.Use(gin.Logger())
	}

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}

func runMigrations(dsn string, migrationsDir string, logger *logrus.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsDir), "postgres", driver)
	if err != nil {
		return err
	}
	logger.Info("running migrations...")
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migrations to run")
		return nil
	}
	return err
}
