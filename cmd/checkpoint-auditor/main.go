// Package main runs the checkpoint auditor against a bdsmcoin node.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/koharjidan/bdsmcoin/internal/bitcoin"
	"github.com/koharjidan/bdsmcoin/internal/checkpoint"
	"github.com/koharjidan/bdsmcoin/internal/metrics"
	"github.com/koharjidan/bdsmcoin/internal/model"
	"github.com/koharjidan/bdsmcoin/internal/service"
)

type config struct {
	Network       model.Network `long:"network" env:"CHECKPOINT_AUDITOR_NETWORK" description:"network name (mainnet, testnet)" default:"mainnet"`
	NoCheckpoints bool          `long:"no-checkpoints" env:"CHECKPOINT_AUDITOR_NO_CHECKPOINTS" description:"disable checkpoint enforcement"`
	RPCURL        string        `long:"rpc-url" env:"CHECKPOINT_AUDITOR_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser       string        `long:"rpc-user" env:"CHECKPOINT_AUDITOR_RPC_USER" description:"node RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"CHECKPOINT_AUDITOR_RPC_PASSWORD" description:"node RPC password"`
	RPCRPS        int           `long:"rpc-rps" env:"CHECKPOINT_AUDITOR_RPC_RPS" description:"max RPC requests per second, 0 for unlimited" default:"50"`
	Interval      time.Duration `long:"interval" env:"CHECKPOINT_AUDITOR_INTERVAL" description:"time between audits" default:"1m"`
	Workers       int           `long:"workers" env:"CHECKPOINT_AUDITOR_WORKERS" description:"concurrent checkpoint hash fetches" default:"4"`
	Once          bool          `long:"once" env:"CHECKPOINT_AUDITOR_ONCE" description:"run a single audit and exit"`
	Metrics       metricsConfig `group:"Metrics server" namespace:"metrics" env-namespace:"CHECKPOINT_AUDITOR_METRICS"`
}

type metricsConfig struct {
	Addr              string        `long:"addr" env:"ADDR" description:"address for metrics server" default:":2112"`
	ReadTimeout       time.Duration `long:"read-timeout" env:"READ_TIMEOUT" description:"metrics request read timeout" default:"15s"`
	ReadHeaderTimeout time.Duration `long:"read-header-timeout" env:"READ_HEADER_TIMEOUT" description:"metrics request header read timeout" default:"5s"`
	WriteTimeout      time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" description:"metrics response write timeout" default:"15s"`
	IdleTimeout       time.Duration `long:"idle-timeout" env:"IDLE_TIMEOUT" description:"metrics keep-alive idle timeout" default:"60s"`
	ShutdownTimeout   time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" description:"grace period for in-flight scrapes on exit" default:"5s"`
}

// parseConfig reads flags and environment. Group options are spelled --metrics-<name>.
func parseConfig(args []string) (config, error) {
	var cfg config
	parser := flags.NewParser(&cfg, flags.Default)
	parser.NamespaceDelimiter = "-"
	parser.EnvNamespaceDelimiter = "_"
	if _, err := parser.ParseArgs(args); err != nil {
		return config{}, err
	}
	return cfg, nil
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

	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("checkpoint auditor failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	toggle := checkpoint.NewToggle(!cfg.NoCheckpoints)
	checker := checkpoint.NewChecker(
		checkpoint.ForNetwork(cfg.Network),
		toggle,
		checkpoint.WithLogger(logger.Named("checkpoint")),
		checkpoint.WithMetrics(metrics.NewChecker(cfg.Network)),
	)

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()

	rpc := bitcoin.NewRPCClient(rpcClient, metrics.NewRPCClient(cfg.Network), cfg.RPCRPS)
	svc, err := service.NewCheckpointAuditor(
		bitcoin.NewNodeSource(rpc),
		checker,
		metrics.NewAuditor(cfg.Network),
		cfg.Network,
		logger.Named("auditor"),
		service.AuditorConfig{
			Interval:    cfg.Interval,
			WorkerCount: cfg.Workers,
		},
	)
	if err != nil {
		return err
	}

	if cfg.Once {
		_, err := svc.Audit(ctx)
		return err
	}

	stopped := startMetricsServer(ctx, cfg.Metrics, logger)
	err = svc.Run(ctx)
	<-stopped
	return err
}

// startMetricsServer serves /metrics until ctx is done. The returned channel closes once the
// server has shut down.
func startMetricsServer(ctx context.Context, cfg metricsConfig, logger *zap.Logger) <-chan struct{} {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
	return stopped
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
