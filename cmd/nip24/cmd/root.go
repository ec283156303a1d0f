package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rezonia/nip24-client/internal/cache"
	"github.com/rezonia/nip24-client/internal/client"
	"github.com/rezonia/nip24-client/internal/config"
	"github.com/rezonia/nip24-client/internal/logger"
	"github.com/rezonia/nip24-client/internal/metrics"
	"github.com/rezonia/nip24-client/internal/signature"
)

var (
	version = signature.Version

	// Global flags
	verbose      bool
	outputFormat string
	serviceURL   string
	keyID        string
	key          string
	appName      string
	testMode     bool
	timeout      time.Duration
	logLevel     string

	cfg *config.Config
	log *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "nip24",
	Short: "Query the NIP24 Polish company registry service",
	Long: `nip24 is a CLI client for the NIP24 company and tax registry service.

Supports:
  - Offline validation of NIP, REGON, KRS, EU VAT and IBAN numbers
  - Firm activity, invoice data, full registry records and VAT status
  - VIES, bank account ownership and VAT whitelist checks
  - VAT registry search and account status

Examples:
  # Validate numbers without calling the service
  nip24 validate nip 123-456-32-18 7171642051

  # Fetch invoice data from the test service
  nip24 invoice nip 7171642051 --test

  # Check a bank account against the whitelist
  nip24 whitelist nip 7171642051 PL61109010140000071219812874 --date 2024-05-01`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

// Execute runs the root command; SIGINT and SIGTERM cancel in-flight requests
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json, table)")
	rootCmd.PersistentFlags().StringVar(&serviceURL, "url", "", "Service base URL (env: NIP24_URL)")
	rootCmd.PersistentFlags().StringVar(&keyID, "id", "", "API key identifier (env: NIP24_KEY_ID)")
	rootCmd.PersistentFlags().StringVar(&key, "key", "", "API key (env: NIP24_KEY)")
	rootCmd.PersistentFlags().StringVar(&appName, "app", "", "Application name sent in the User-Agent (env: NIP24_APP)")
	rootCmd.PersistentFlags().BoolVar(&testMode, "test", false, "Use the test service and its public key (env: NIP24_TEST)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Request timeout (env: NIP24_TIMEOUT)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (env: LOG_LEVEL)")
}

// initConfig loads .env and the environment; flags set on the command line win
func initConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	flags := cmd.Flags()
	if serviceURL != "" {
		cfg.Service.URL = serviceURL
	}
	if keyID != "" {
		cfg.Service.KeyID = keyID
	}
	if key != "" {
		cfg.Service.Key = key
	}
	if appName != "" {
		cfg.Service.App = appName
	}
	if flags.Changed("test") {
		cfg.Service.Test = testMode
	}
	if timeout > 0 {
		cfg.Service.Timeout = timeout
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if verbose && logLevel == "" {
		cfg.Log.Level = logrus.DebugLevel.String()
	}

	log = logger.New(cfg.Log.Level, cfg.Log.Format)
	return nil
}

// newClient builds a registry client from the loaded configuration. The
// release function frees the cache connection and must be called once
// the client is no longer used.
func newClient(m *metrics.Metrics) (*client.Client, func(), error) {
	release := func() {}
	opts := []client.Option{
		client.WithApp(cfg.Service.App),
		client.WithTimeout(cfg.Service.Timeout),
		client.WithLogger(log),
		client.WithMetrics(m),
	}
	if cfg.Service.RateLimit > 0 {
		opts = append(opts, client.WithRateLimit(cfg.Service.RateLimit, 1))
	}
	if cfg.Service.CacheTTL > 0 {
		var c cache.Cache
		c, release = newCache()
		opts = append(opts, client.WithCache(c))
	}

	c, err := buildClient(opts)
	if err != nil {
		release()
		return nil, nil, err
	}
	return c, release, nil
}

func buildClient(opts []client.Option) (*client.Client, error) {
	if cfg.Service.Test {
		if cfg.Service.URL != "" {
			return client.New(cfg.Service.URL, client.TestID, client.TestKey, opts...)
		}
		return client.NewTest(opts...)
	}

	if err := cfg.Service.RequireCredentials(); err != nil {
		return nil, err
	}
	if cfg.Service.URL != "" {
		return client.New(cfg.Service.URL, cfg.Service.KeyID, cfg.Service.Key, opts...)
	}
	return client.NewProduction(cfg.Service.KeyID, cfg.Service.Key, opts...)
}

// newCache returns the response cache and a function closing its Redis pool
func newCache() (cache.Cache, func()) {
	if cfg.Redis.URL == "" {
		return cache.NewMemoryCache(cfg.Service.CacheTTL), func() {}
	}

	rdb, err := cache.NewRedisClient(cfg.Redis.URL)
	if err != nil {
		log.WithError(err).Warn("Invalid REDIS_URL, using in-memory cache")
		return cache.NewMemoryCache(cfg.Service.CacheTTL), func() {}
	}

	rc := cache.NewRedisCache(rdb, cfg.Service.CacheTTL, log)
	return rc, func() {
		if err := rc.Close(); err != nil {
			log.WithError(err).Warn("Failed to close Redis cache")
		}
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
