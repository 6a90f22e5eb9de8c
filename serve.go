package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/studieren/blogly/config"
	"github.com/studieren/blogly/gormtool"
	"github.com/studieren/blogly/repository"
	"github.com/studieren/blogly/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the database and serve the web interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}
		return serve(cfg)
	},
}

func serve(cfg config.Config) error {
	gin.SetMode(cfg.GinMode)
	logger := gormtool.NewLogger(os.Stdout, cfg.Debug)
	ctx := context.Background()

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer closeDB(db)

	if err := gormtool.Migrate(db); err != nil {
		return err
	}

	rdb, err := gormtool.OpenRedis(cfg.RedisURL)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn(ctx, "redis unreachable, health checks will report it", map[string]interface{}{"error": err.Error()})
		}
	}

	tool := gormtool.NewCRUDTool(db, rdb, logger)
	repos := repository.New(tool, cfg.DefaultImageURL)
	router := web.NewRouter(web.NewHandler(repos, tool), web.Options{CORSOrigins: cfg.CORSOrigins})

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "listening", map[string]interface{}{"addr": cfg.Addr, "driver": cfg.DBDriver})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info(ctx, "shutting down", map[string]interface{}{"signal": sig.String()})
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "shutdown error", map[string]interface{}{"error": err.Error()})
		return err
	}
	return nil
}
