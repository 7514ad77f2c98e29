package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/hrsite/pkg/config"
	"github.com/mchmarny/hrsite/pkg/logger"
	"github.com/mchmarny/hrsite/pkg/metric"
	"github.com/mchmarny/hrsite/pkg/server"
	"github.com/mchmarny/hrsite/pkg/session"
	"github.com/mchmarny/hrsite/pkg/site"
	"github.com/mchmarny/hrsite/pkg/site/content"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port     int
	MenuFile string
	EnvFile  string
}

func newServeCommand(version string) *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the website",
		Long:  "Run the website until interrupted. Flags override the environment.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var files []string
			if opts.EnvFile != "" {
				files = append(files, opts.EnvFile)
			}
			cfg, err := config.Load(files...)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = opts.Port
			}
			if cmd.Flags().Changed("menu") {
				cfg.MenuFile = opts.MenuFile
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cfg, version)
		},
	}

	cmd.Flags().IntVarP(&opts.Port, "port", "p", server.DefaultPort, "Port to listen on")
	cmd.Flags().StringVarP(&opts.MenuFile, "menu", "m", "", "Navigation menu YAML file (default: embedded)")
	cmd.Flags().StringVar(&opts.EnvFile, "env-file", "", "Env file to load (default: .env when present)")

	return cmd
}

func loadTrees(menuFile, countriesFile string) (session.Trees, error) {
	nav, err := content.Navigation(menuFile)
	if err != nil {
		return session.Trees{}, fmt.Errorf("failed to load navigation: %w", err)
	}
	countries, err := content.Countries(countriesFile)
	if err != nil {
		return session.Trees{}, fmt.Errorf("failed to load countries: %w", err)
	}
	return session.Trees{Nav: nav, Countries: countries}, nil
}

// runServe runs the server and the session sweeper until ctx is canceled.
func runServe(ctx context.Context, cfg *config.Config, version string) error {
	logger.SetDefaultLoggerWithLevel(Module, version, cfg.LogLevel)
	slog.Info("starting "+Module, "port", cfg.Port, "tls", cfg.TLSEnabled())

	trees, err := loadTrees(cfg.MenuFile, cfg.CountriesFile)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()

	storeOpts := []session.Option{
		session.WithTTL(cfg.Session.TTL),
		session.WithSweepInterval(cfg.Session.Sweep),
		session.WithFormRate(cfg.Forms.RatePerMinute, cfg.Forms.Burst),
		session.WithObserver(session.NewMetrics(reg)),
		session.WithActiveGauge(metric.NewGaugeWithRegistry(reg, "sessions_active", "Live visitor sessions.")),
	}
	if cfg.TLSEnabled() {
		storeOpts = append(storeOpts, session.WithSecureCookie())
	}
	store := session.NewStore(trees, storeOpts...)

	s, err := site.New(store, trees, reg, site.WithPromo(cfg.PromoEnabled))
	if err != nil {
		return fmt.Errorf("failed to create site: %w", err)
	}

	srvOpts := []server.Option{
		server.WithPort(cfg.Port),
		server.WithReadTimeout(cfg.ReadTimeout),
		server.WithWriteTimeout(cfg.WriteTimeout),
		server.WithIdleTimeout(cfg.IdleTimeout),
		server.WithShutdownTimeout(cfg.ShutdownTimeout),
		server.WithRegistry(reg),
		server.WithPrometheusMetrics(),
		server.WithSimpleHealth(),
		server.WithReadiness(s),
		server.WithHandler("/", s.Routes()),
	}
	if cfg.TLSEnabled() {
		srvOpts = append(srvOpts, server.WithTLS(server.TLSConfig{
			CertFile: cfg.TLSCertFile,
			KeyFile:  cfg.TLSKeyFile,
		}))
	}
	srv := server.New(srvOpts...)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Serve(gCtx)
	})
	g.Go(func() error {
		return store.Run(gCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info(Module + " stopped")
	return nil
}
