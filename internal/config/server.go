package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults for the SSH server.
const (
	DefaultSSHHost     = "::"
	DefaultSSHPort     = "2222"
	DefaultHostKeyPath = "/app/keys/host_key"
	DefaultLogLevel    = "info"
)

// ServerConfig holds the SSH server settings.
type ServerConfig struct {
	Host        string        `yaml:"host"`
	Port        string        `yaml:"port"`
	HostKeyPath string        `yaml:"host_key"`
	LogLevel    string        `yaml:"log_level"`
	IdleTimeout time.Duration `yaml:"idle_timeout"` // SSH connection idle timeout; 0 disables
}

// DefaultServerConfig returns the built-in settings.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:        DefaultSSHHost,
		Port:        DefaultSSHPort,
		HostKeyPath: DefaultHostKeyPath,
		LogLevel:    DefaultLogLevel,
	}
}

// LoadServerConfig builds the server settings from the defaults, the YAML
// file at path (skipped when path is empty) and then the SSH_HOST,
// SSH_PORT, SSH_HOST_KEY, LOG_LEVEL and SSH_IDLE_TIMEOUT (seconds)
// environment variables.
func LoadServerConfig(path string) (ServerConfig, error) {
	cfg := DefaultServerConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return ServerConfig{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.Host = GetEnv("SSH_HOST", cfg.Host)
	cfg.Port = GetEnv("SSH_PORT", cfg.Port)
	cfg.HostKeyPath = GetEnv("SSH_HOST_KEY", cfg.HostKeyPath)
	cfg.LogLevel = GetEnv("LOG_LEVEL", cfg.LogLevel)
	idle := GetEnvInt("SSH_IDLE_TIMEOUT", int(cfg.IdleTimeout/time.Second))
	cfg.IdleTimeout = time.Duration(idle) * time.Second

	if err := cfg.Validate(); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot work.
func (c ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("config: port is required")
	}
	if c.IdleTimeout < 0 {
		return fmt.Errorf("config: idle_timeout must not be negative, got %s", c.IdleTimeout)
	}
	return nil
}
