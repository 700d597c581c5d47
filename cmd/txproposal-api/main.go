// Package main runs the transaction proposal HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/txproposal-backend/internal/metrics"
	"github.com/goodnatureofminers/txproposal-backend/internal/transport"
	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/bitcoin"
	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/repository/clickhouse"
	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/service"
)

var config struct {
	Addr               string        `long:"addr" env:"TXPROPOSAL_ADDR" description:"http api addr" default:":8001"`
	MetricsAddr        string        `long:"metrics-addr" env:"TXPROPOSAL_METRICS_ADDR" description:"prometheus metrics addr" default:":9090"`
	ClickhouseDSN      string        `long:"clickhouse-dsn" env:"TXPROPOSAL_CLICKHOUSE_DSN" description:"clickhouse dsn" default:"clickhouse://localhost:9000/default"`
	AllowedOrigins     []string      `long:"allowed-origin" env:"TXPROPOSAL_ALLOWED_ORIGINS" env-delim:"," description:"CORS allowed origin, repeatable"`
	VerifySignatures   bool          `long:"verify-signatures" env:"TXPROPOSAL_VERIFY_SIGNATURES" description:"verify copayer signatures against the proposal inputs"`
	SignerWorkers      int           `long:"signer-workers" env:"TXPROPOSAL_SIGNER_WORKERS" description:"parallel input signature workers" default:"4"`
	AuditBatchSize     int           `long:"audit-batch-size" env:"TXPROPOSAL_AUDIT_BATCH_SIZE" description:"actions per audit insert" default:"100"`
	AuditFlushInterval time.Duration `long:"audit-flush-interval" env:"TXPROPOSAL_AUDIT_FLUSH_INTERVAL" description:"audit flush interval" default:"5s"`
	AuditRPS           int           `long:"audit-rps" env:"TXPROPOSAL_AUDIT_RPS" description:"max audit inserts per second" default:"10"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	repo, err := clickhouse.NewRepository(config.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		logger.Fatal("Failed to init clickhouse repository", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("Failed to close clickhouse repository", zap.Error(err))
		}
	}()
	if err := repo.Ping(ctx); err != nil {
		logger.Fatal("Failed to ping clickhouse", zap.Error(err))
	}

	audit := service.NewAuditWriter(repo, service.AuditWriterConfig{
		BatchSize:     config.AuditBatchSize,
		FlushInterval: config.AuditFlushInterval,
		RPS:           config.AuditRPS,
	}, logger, metrics.NewBatcher("audit"))
	proposals := service.NewProposalService(
		repo,
		bitcoin.NewSigner(config.SignerWorkers),
		audit,
		metrics.NewProposalService(),
		logger,
		service.WithSignatureVerification(config.VerifySignatures),
	)
	proposals.Start(ctx)
	defer proposals.Stop()

	handler := transport.NewHandler(proposals, metrics.NewHTTP(), logger)

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{
		Addr:              config.MetricsAddr,
		Handler:           metricsMux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("Starting metrics server", zap.String("addr", config.MetricsAddr))
		if err := metricsServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to serve metrics", zap.Error(err))
		}
	}()

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           handler.Router(config.AllowedOrigins),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http servers")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown metrics server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
