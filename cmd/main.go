package main

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/bistro/config"
	"github.com/ray-remotestate/bistro/database"
	"github.com/ray-remotestate/bistro/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	cfg, err := config.Load()
	if err != nil {
		logrus.Panicf("failed to load configuration, error: %v", err)
	}

	if err := config.InitLogger(cfg.LogLevel); err != nil {
		logrus.Panicf("failed to initialize logger, error: %v", err)
	}

	if err := database.ConnectAndMigrate(cfg); err != nil {
		logrus.Panicf("failed to initialize database, error: %v", err)
	}
	logrus.Println("migration is successful")

	svr := server.SetupRoutes()
	go func() {
		if err := svr.Run(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Panic("server stopped unexpectedly")
		}
	}()
	logrus.Infof("listening on :%s", cfg.ServerPort)

	<-done

	logrus.Info("shutting down...")
	if err := svr.Shutdown(shutdownTimeout); err != nil {
		logrus.WithError(err).Error("failed to shut down server gracefully!")
	}
	if err := database.Shutdown(); err != nil {
		logrus.WithError(err).Error("failed to close database connection!")
	}
	logrus.Info("system is shut ..zzz")
}
