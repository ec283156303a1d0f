package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rezonia/nip24-client/internal/metrics"
	"github.com/rezonia/nip24-client/internal/server"
)

var (
	serverAddr  string
	serverDebug bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API gateway",
	Long: `Start an HTTP gateway that answers registry lookups as JSON.

The API provides endpoints for:
  - GET  /api/v1/validate/:kind/:number           - Validate offline
  - GET  /api/v1/active/:kind/:number             - Activity check
  - GET  /api/v1/invoice/:kind/:number            - Invoice data
  - GET  /api/v1/all/:kind/:number                - Full registry record
  - GET  /api/v1/vat/:kind/:number                - VAT payer status
  - GET  /api/v1/vies/:euvat                      - VIES check
  - GET  /api/v1/iban/:kind/:number/:iban         - Bank account ownership
  - GET  /api/v1/whitelist/:kind/:number/:iban    - VAT whitelist check
  - GET  /api/v1/search/:kind/:number             - VAT registry search
  - GET  /api/v1/account                          - Account status
  - POST /api/v1/decode                           - Decode a stored response
  - GET  /health                                  - Health check
  - GET  /metrics                                 - Prometheus metrics

Examples:
  # Start the gateway against the test service
  nip24 serve --test

  # Start on a custom address in debug mode
  nip24 serve --address :9090 --debug`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", "", "Server listen address (env: SERVER_ADDRESS)")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if serverAddr != "" {
		cfg.Server.Address = serverAddr
	}

	m := metrics.New(nil)
	c, release, err := newClient(m)
	if err != nil {
		return err
	}
	defer release()

	srv := server.NewServer(&server.Config{
		Address:      cfg.Server.Address,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		RateLimit:    cfg.Server.RateLimit,
		Debug:        serverDebug,
	}, c, server.WithLogger(log), server.WithMetrics(m))

	log.WithFields(logrus.Fields{
		"address": cfg.Server.Address,
		"service": c.BaseURL(),
	}).Info("Starting gateway")

	err = srv.Run(cmd.Context())
	log.Info("Gateway stopped")
	return err
}
