// Command mazeserver serves the maze solving HTTP API.
//
// Configuration comes from the environment or a .env file: HTTP_ADDR,
// GIN_MODE, LOG_LEVEL, LOG_FORMAT and MAZE_FILE (the maze served when a
// request does not post one). SIGINT or SIGTERM shuts the server down
// gracefully.
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
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	log := config.NewLogger(cfg)
	if err != nil {
		log.WithError(err).Fatal("configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("mazeserver")
	}
}

// serve runs the API until ctx is cancelled or the listener fails.
func serve(ctx context.Context, cfg config.Config, log *logrus.Logger) error {
	gin.SetMode(cfg.GinMode)

	maze, err := cfg.Maze()
	if err != nil {
		return err
	}
	srv, err := server.New(server.Config{Logger: log, Maze: maze})
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithFields(logrus.Fields{"addr": cfg.HTTPAddr, "gin_mode": cfg.GinMode}).Info("listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return httpSrv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
