package main

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/jackielii/pageshell"
	"github.com/jackielii/pageshell/internal/app"
	"github.com/jackielii/pageshell/internal/config"
	"github.com/jackielii/pageshell/internal/metrics"
	"github.com/jackielii/pageshell/internal/server"
)

func newRootCmd() *cobra.Command {
	cfg, loadErr := config.Load()

	root := &cobra.Command{
		Use:           "pageshell",
		Short:         "Serve or render the page shell",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if loadErr != nil {
				return loadErr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			slog.SetDefault(cfg.Logger())
			return nil
		},
	}
	cfg.BindFlags(root.PersistentFlags())

	root.AddCommand(newServeCmd(&cfg), newRenderCmd(&cfg), newRoutesCmd(&cfg))
	return root
}

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the shell over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()
			opts := []pageshell.Option{pageshell.WithLogger(logger), pageshell.WithSiteTitle(cfg.SiteTitle)}
			srvOpts := server.Options{Logger: logger}
			if cfg.Metrics {
				reg := prometheus.NewRegistry()
				reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
				rec, err := metrics.New(reg)
				if err != nil {
					return fmt.Errorf("register metrics: %w", err)
				}
				opts = append(opts, pageshell.WithObserver(rec))
				srvOpts.Gatherer = reg
			}
			shell, err := app.New(cfg.Person, opts...)
			if err != nil {
				return err
			}
			return server.Run(cmd.Context(), cfg.Addr, server.NewHandler(shell, srvOpts), logger)
		},
	}
}

func newRenderCmd(cfg *config.Config) *cobra.Command {
	var partial, document bool
	cmd := &cobra.Command{
		Use:   "render PATH",
		Short: "Write the composed output for PATH to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, err := app.New(cfg.Person, pageshell.WithSiteTitle(cfg.SiteTitle))
			if err != nil {
				return err
			}
			path := args[0]
			comp := shell.Component(path)
			switch {
			case partial:
				comp = shell.Region(path)
			case document:
				comp = shell.Document(path)
			}
			if err := comp.Render(cmd.Context(), cmd.OutOrStdout()); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().BoolVar(&partial, "partial", false, "render only the page region")
	cmd.Flags().BoolVar(&document, "document", false, "wrap the output in the HTML document")
	cmd.MarkFlagsMutuallyExclusive("partial", "document")
	return cmd
}

func newRoutesCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table in priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := app.Routes(cfg.Person)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), pageshell.PrintRoutes(table))
			return err
		},
	}
}
