package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/rpgo/pac-simulator/internal/calculation"
	"github.com/rpgo/pac-simulator/internal/config"
	"github.com/rpgo/pac-simulator/internal/server"
	"github.com/rpgo/pac-simulator/internal/tracing"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection API and HTML report",
		Long: "Serve the JSON API, the HTML report and Prometheus metrics.\n" +
			"Settings come from PACSIM_* variables, optionally loaded from a .env file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if opts.lang != "" {
				cfg.DefaultLanguage = opts.lang
			}
			if cfg.ReleaseMode() {
				gin.SetMode(gin.ReleaseMode)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
			defer func() { _ = logger.Sync() }()
			shutdown, err := tracing.Init(ctx, cfg.OTELServiceName, version, cfg.OTELEndpoint)
			if err != nil {
				return err
			}
			defer func() {
				flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(flushCtx); err != nil {
					logger.Warnf("tracer shutdown: %v", err)
				}
			}()

			engine := calculation.NewCalculationEngine()
			engine.SetLogger(logger)
			return server.New(cfg, engine).Run(ctx)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "Listen port, overrides PACSIM_PORT")
	return cmd
}
