package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/spf13/cobra"
	"github.com/tomz197/hearts/internal/config"
	loopconfig "github.com/tomz197/hearts/internal/loop/config"
	"github.com/tomz197/hearts/internal/loop/server"
)

type flags struct {
	configPath string
	host       string
	port       string
	hostKey    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "hearts-ssh",
		Short: "Serve the hearts sketch over SSH",
		Long: `Start an SSH server where every connection plays its own hearts
sketch with the terminal mouse. Connect with: ssh -t <host> -p <port>`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}

	cmd.Flags().StringVar(&f.configPath, "config", config.GetEnv("HEARTS_CONFIG", ""), "path to a YAML config file")
	cmd.Flags().StringVar(&f.host, "host", "", "listen host (overrides config and SSH_HOST)")
	cmd.Flags().StringVar(&f.port, "port", "", "listen port (overrides config and SSH_PORT)")
	cmd.Flags().StringVar(&f.hostKey, "host-key", "", "host key path (overrides config and SSH_HOST_KEY)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error (overrides config and LOG_LEVEL)")
	return cmd
}

// resolveConfig layers explicitly set flags over the file and environment.
func resolveConfig(cmd *cobra.Command, f flags) (config.ServerConfig, error) {
	cfg, err := config.LoadServerConfig(f.configPath)
	if err != nil {
		return config.ServerConfig{}, err
	}
	if cmd.Flags().Changed("host") {
		cfg.Host = f.host
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = f.port
	}
	if cmd.Flags().Changed("host-key") {
		cfg.HostKeyPath = f.hostKey
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	return cfg, cfg.Validate()
}

func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "hearts",
	}), nil
}

func serve(cfg config.ServerConfig) error {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("ssh config", "host", cfg.Host, "port", cfg.Port, "hostKey", cfg.HostKeyPath, "workingDir", workingDir)

	hub := server.NewHub(logger.WithPrefix("hub"))

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithMiddleware(
			sketchMiddleware(hub, logger),
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger.WithPrefix("ssh"), log.InfoLevel),
		),
		// Pointer reports arrive as many small writes
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if cfg.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.HostKeyPath))
	}
	if cfg.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.IdleTimeout))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	logger.Info("starting ssh server", "addr", s.Addr)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-done:
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	}

	logger.Info("shutting down", "clients", hub.Count())
	remaining := hub.Shutdown(loopconfig.ShutdownGracePeriod)
	if remaining > 0 {
		logger.Warn("clients still connected after grace period", "count", remaining)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
