package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/lean-widgets/reconciler/internal/config"
	"github.com/lean-widgets/reconciler/internal/telemetry"
	"github.com/lean-widgets/reconciler/pkg/middleware"
	"github.com/lean-widgets/reconciler/pkg/server"
	"github.com/lean-widgets/reconciler/pkg/taskqueue"
)

func serveCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the widget session server",
		Long: `Start an HTTP server that upgrades /widget/{id}/ws connections
to a WebSocket, mounts a fresh component instance per connection, and
drives it through the reconcile loop as client events arrive.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.ConfigFileName, "Path to widgetd.json")

	return cmd
}

func runServe(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := telemetry.NewLogger(cfg.LogLevel)
	middleware.Init(middleware.WithNamespace(namespaceOrDefault(cfg.MetricsNamespace)))

	pool := taskqueue.NewPool(cfg.TaskConcurrency, logger)
	defer pool.Close()

	router := server.NewRouter(server.Config{
		Mounter:           demoMounter,
		Queue:             pool,
		CollectorCapacity: cfg.CollectorCapacity,
		Logger:            logger,
	})

	logger.Info("widgetd listening", "addr", cfg.ListenAddr)
	return http.ListenAndServe(cfg.ListenAddr, router)
}

func namespaceOrDefault(ns string) string {
	if ns == "" {
		return "widgetd"
	}
	return ns
}
