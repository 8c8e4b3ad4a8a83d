package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	httpAdapter "github.com/rankery/rankery/pkg/adapters/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP intent server",
	Long:  `Starts the bot behind a JSON API: POST intents to /v1/intents and receive replies. Prometheus metrics are exposed on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("listen"); addr != "" {
			cfg.Listen = addr
		}

		metrics, registry := newMetrics()
		bot, err := buildBot(cfg, metrics)
		if err != nil {
			return err
		}

		mux := http.NewServeMux()
		mux.Handle("/", httpAdapter.NewHandler(bot))
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

		srv := &http.Server{
			Addr:    cfg.Listen,
			Handler: mux,
		}

		serverErrors := make(chan error, 1)
		go func() {
			fmt.Printf("Starting rankery server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			fmt.Printf("\nShutting down... signal: %v\n", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				_ = srv.Close()
				return fmt.Errorf("graceful shutdown failed: %w", err)
			}
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("listen", "", "Bind address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
