package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	httpadapter "luchik.app/trainers/internal/adapters/http"
	"luchik.app/trainers/internal/telemetry"
)

func (a *app) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the trainer JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

// handler builds the routed API wrapped in request logging.
func (a *app) handler() http.Handler {
	mux := http.NewServeMux()
	httpadapter.New(a.service(), a.validator(), a.logger).Register(mux)
	return httpadapter.RequestLogger(a.logger, mux)
}

// serve runs the HTTP server until ctx is done, then drains it within the
// configured shutdown timeout.
func (a *app) serve(ctx context.Context) error {
	shutdownTracing, err := telemetry.Setup(ctx, a.cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			a.logger.Warn("tracing shutdown", zap.Error(err))
		}
	}()

	ln, err := net.Listen("tcp", a.cfg.Server.Addr)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           a.handler(),
		ReadHeaderTimeout: a.cfg.Server.ReadHeaderTimeout,
	}
	a.logger.Info("listening",
		zap.String("addr", ln.Addr().String()),
		zap.Int("max_trials", a.cfg.Generator.MaxTrials),
		zap.Int("max_passes", a.cfg.Generator.MaxPasses),
		zap.Bool("tracing", a.cfg.Telemetry.Endpoint != ""),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down")
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}
