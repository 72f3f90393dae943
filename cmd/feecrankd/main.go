// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// feecrankd - Permissionless Crank Daemon
//
// A standalone operator process for the on-chain feepos module: polls
// configured vaults, submits MsgDistribute pages, and exposes metrics.
// Anyone may run this against any vault; the chain enforces the
// at-most-once-per-window and cursor-ordering rules regardless of who
// submits.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "feecrankd",
	Short: "Permissionless crank daemon for the feepos fee distribution module",
	Long: `feecrankd polls configured vaults' distribution windows and submits
MsgDistribute pages on their behalf until each day closes.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "feecrankd.yaml", "Path to configuration file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "feecrankd: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := newLogger(cfg.LogLevel)
	log.WithFields(logrus.Fields{
		"rpc_endpoint": cfg.RPCEndpoint,
		"vaults":       len(cfg.Vaults),
		"page_size":    cfg.PageSize,
	}).Info("starting feecrankd")

	manifests := make(map[string]cohortManifest, len(cfg.Vaults))
	for _, vc := range cfg.Vaults {
		manifest, err := loadCohortManifest(vc.CohortManifest)
		if err != nil {
			return fmt.Errorf("loading cohort manifest for vault %s: %w", vc.VaultID, err)
		}
		manifests[vc.VaultID] = manifest
	}

	client := newHTTPClient(cfg.RPCEndpoint, cfg.RequestTimeout)
	poller := NewPoller(cfg, client, manifests, log.WithField("component", "poller"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info("shutdown signal received")
		cancel()
	}()

	httpSrv := newHTTPServer(cfg.MetricsAddr)
	go func() {
		log.WithField("addr", cfg.MetricsAddr).Info("starting health/metrics server")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("health/metrics server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		_ = httpSrv.Close()
	}()

	return poller.Run(ctx, cfg.PollCron)
}

func newLogger(level string) *logrus.Entry {
	logger := logrus.New()
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logrus.NewEntry(logger)
}

func newHTTPServer(addr string) *http.Server {
	router := mux.NewRouter()
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:    addr,
		Handler: router,
	}
}
