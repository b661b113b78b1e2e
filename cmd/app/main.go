package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pizzastore/cmd"
	pizzahttp "pizzastore/internal/adapters/in/http"
	"pizzastore/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	gormDB, err := openDatabase(config)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	var redisClient *goredis.Client
	if config.RedisAddr != "" {
		redisClient = goredis.NewClient(&goredis.Options{Addr: config.RedisAddr})
		defer func() { _ = redisClient.Close() }()
	}

	app, err := cmd.NewCompositionRoot(config, gormDB, redisClient, logger)
	if err != nil {
		log.Fatalf("compose application: %v", err)
	}

	if err = run(app, gormDB, config.HTTPPort, logger); err != nil {
		log.Fatalf("%v", err)
	}
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(gormpostgres.Open(config.PostgresDSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return gormDB, nil
}

func run(app *cmd.CompositionRoot, gormDB *gorm.DB, port string, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	server := pizzahttp.NewServer(sqlDB, app.Registry())

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", "port", port)
		if err := server.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
