package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artshare/internal/handlers"
	"artshare/internal/logger"
	"artshare/internal/repository"
	"artshare/internal/repository/db"
	"artshare/internal/server"
	"artshare/internal/service"
	"artshare/internal/token"

	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// load config.yml
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger at the configured level
	log := logger.Get(logLevel())

	// open DB
	sqlDB, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// token manager; an unset jwt.secret is a configuration error and
	// must stop the process before any login can be served
	tokens, err := token.NewManager(viper.GetString("jwt.secret"), viper.GetDuration("jwt.ttl"))
	if err != nil {
		log.Fatalw("failed to init token manager", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, tokens)
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// logLevel reads log.level from config, defaulting to info when unset.
func logLevel() string {
	if lvl := viper.GetString("log.level"); lvl != "" {
		return lvl
	}
	return logger.InfoLevel
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "artshare.db")
		dbPath = "artshare.db"
	}
	return db.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); fatalServeError(err) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// fatalServeError reports whether the serve loop ended for a reason
// other than a graceful shutdown.
func fatalServeError(err error) bool {
	return err != nil && !errors.Is(err, http.ErrServerClosed)
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
