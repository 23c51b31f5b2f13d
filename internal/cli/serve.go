package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dennisxing/garden/internal/metrics"
	"github.com/dennisxing/garden/internal/server"
	"github.com/dennisxing/garden/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gallery web server",
	Long: `Start the gallery web server.

Examples:
  garden serve                             # Listen on GARDEN_ADDR (default :8080)
  garden serve --port 3000                 # Listen on port 3000
  garden serve --projects ./projects.json  # Serve a collection from disk`,
	RunE: runServe,
}

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides GARDEN_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}

	addr := app.Config.Addr
	if servePort > 0 {
		addr = fmt.Sprintf(":%d", servePort)
	}

	app.Logger.Info("loaded projects", zap.Int("count", app.Projects.Len()))

	router := server.NewRouter(app.Gallery, metrics.NewHTTP("garden"), app.Logger)
	srv := web.NewServer(addr, router, app.Config.ShutdownTimeout, app.Logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		app.Logger.Info("shutting down")
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return app.Close(closeCtx)
	})
	return g.Wait()
}
