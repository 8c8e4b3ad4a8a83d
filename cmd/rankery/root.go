package main

import (
	"fmt"
	"os"

	backend "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/rankery/rankery"
	"github.com/rankery/rankery/internal/config"
	"github.com/rankery/rankery/internal/i18n"
	"github.com/rankery/rankery/internal/logging"
	redisAdapter "github.com/rankery/rankery/pkg/adapters/redis"
	"github.com/rankery/rankery/pkg/observability"

	"github.com/prometheus/client_golang/prometheus"
)

var rootCmd = &cobra.Command{
	Use:   "rankery",
	Short: "Rankery is a lists-and-ratings conversation bot",
	Long:  `Rankery keeps named lists of items per user and drives multi-step chat flows for rating them from 0 to 10 with optional comments.`,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("lang", "", "Message catalog language (en, es), overrides config")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// loadConfig resolves the effective config from file and flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return cfg, err
		}
	}
	if lang, _ := cmd.Flags().GetString("lang"); lang != "" {
		cfg.Language = lang
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// buildBot assembles a Bot from the config, including the optional Redis
// flow store and the Prometheus registry.
func buildBot(cfg config.Config, metrics *observability.Metrics, extra ...rankery.Option) (*rankery.Bot, error) {
	logger := logging.New(logging.ParseLevel(cfg.LogLevel))

	opts := []rankery.Option{
		rankery.WithLogger(logger),
		rankery.WithLanguage(cfg.Language),
		rankery.WithReplyLimit(cfg.ReplyLimit),
	}
	if metrics != nil {
		opts = append(opts, rankery.WithMetrics(metrics))
	}

	if cfg.RedisURL != "" {
		redisOpts, err := backend.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis URL: %w", err)
		}
		client := backend.NewClient(redisOpts)
		opts = append(opts,
			rankery.WithFlowStore(redisAdapter.NewFlowStore(client)),
			rankery.WithLocker(redisAdapter.NewLocker(client, "rankery:")),
		)
	}

	if cfg.Messages != "" {
		overrides, err := i18n.LoadOverrides(cfg.Messages)
		if err != nil {
			return nil, err
		}
		opts = append(opts, rankery.WithMessageOverrides(overrides))
	}

	opts = append(opts, extra...)
	return rankery.New(opts...)
}

// newMetrics registers the bot collectors on a fresh registry so serve
// can expose exactly what it owns.
func newMetrics() (*observability.Metrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return observability.NewMetrics(reg), reg
}
