package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/akulagin/media-store/config"
	"github.com/akulagin/media-store/internal/controller/restapi"
	"github.com/akulagin/media-store/internal/repo/persistent"
	"github.com/akulagin/media-store/internal/usecase/media"
	"github.com/akulagin/media-store/pkg/httpserver"
	"github.com/akulagin/media-store/pkg/logger"
	"github.com/akulagin/media-store/pkg/postgres"
)

func Run(cfg *config.Config) {
	// Logger
	l := logger.New(cfg.Log.Level)

	// Repository

	// postgres
	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.PoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pg.Close()

	// schema
	err = persistent.Migrate(cfg.PG.URL)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - persistent.Migrate: %w", err))
	}

	// file store
	filesRepo, err := persistent.NewFilesRepo(cfg.Store.UploadDir)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - persistent.NewFilesRepo: %w", err))
	}

	// Use-Case
	mediaUseCase := media.New(
		persistent.NewMediaRepo(pg),
		filesRepo,
		pg,
		l,
	)

	// HTTP Server
	httpServer := httpserver.New(l, httpserver.Port(cfg.HTTP.Port), httpserver.Prefork(cfg.HTTP.UsePreforkMode))
	restapi.NewRouter(httpServer.App, cfg, mediaUseCase, l)

	httpServer.Start()

	// Waiting Signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: %s", s.String())
	case err = <-httpServer.Notify():
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	// Shutdown
	err = httpServer.Shutdown()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}
