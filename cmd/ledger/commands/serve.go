package commands

import (
	"context"
	"copytrade/cmd"
	"copytrade/internal/logger"
	"copytrade/internal/scheduler"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd() *cobra.Command {
	var port int
	var noValuation bool

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the http api and the valuation scheduler",
		RunE: func(c *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, port, noValuation)
		},
	}
	c.Flags().IntVar(&port, "port", 0, "port to listen on, overrides PORT")
	c.Flags().BoolVar(&noValuation, "no-valuation", false, "don't run the simulated valuation feed")

	return c
}

func serve(ctx context.Context, port int, noValuation bool) error {
	log := logger.FromContext(ctx)

	deps, err := cmd.InitializeDependencies(ctx)
	if err != nil {
		return err
	}
	defer cmd.CloseDependencies(deps)

	if port == 0 {
		port = deps.Secrets.Port
	}
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           deps.ApiHandler.InitializeRouterEngine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	if !noValuation {
		s := scheduler.New(log)
		err := s.AddJob(deps.Secrets.ValuationSchedule, scheduler.NewJob("valuation", func(ctx context.Context) error {
			_, err := deps.ValuationService.Tick(ctx)
			return err
		}))
		if err != nil {
			return err
		}
		g.Go(func() error {
			return s.Run(gctx)
		})
	}

	g.Go(func() error {
		log.Infow("http server started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("shut down")
	return nil
}
