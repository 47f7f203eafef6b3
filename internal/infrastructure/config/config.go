package config

import (
	"fmt"
	"time"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
)

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Vault       VaultConfig     `mapstructure:"vault"`
	Ledger      LedgerConfig    `mapstructure:"ledger"`
	Auth        AuthConfig      `mapstructure:"auth"`
	Scheduler   SchedulerConfig `mapstructure:"scheduler"`
	Metrics     MetricsConfig   `mapstructure:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// VaultConfig names the vault and its administrator and tunes per-depositor sequencing
type VaultConfig struct {
	Account            string `mapstructure:"account"`
	AdminAccount       string `mapstructure:"adminAccount"`
	WithdrawMemo       string `mapstructure:"withdrawMemo"`
	OwnerLockTimeoutMs int64  `mapstructure:"ownerLockTimeoutMs"`
	QueueSize          int    `mapstructure:"queueSize"`
	MaxRetries         int    `mapstructure:"maxRetries"`
}

// OwnerLockTimeout returns the owner lease duration
func (v VaultConfig) OwnerLockTimeout() time.Duration {
	return time.Duration(v.OwnerLockTimeoutMs) * time.Millisecond
}

// LedgerConfig locates the external ledger
type LedgerConfig struct {
	BaseURL string        `mapstructure:"baseURL"`
	Timeout time.Duration `mapstructure:"timeout"` // seconds
	APIKey  string        `mapstructure:"apiKey"`
}

// AuthConfig verifies the bearer tokens that carry caller identity
type AuthConfig struct {
	SigningKey string `mapstructure:"signingKey"`
	Issuer     string `mapstructure:"issuer"`
	Audience   string `mapstructure:"audience"`
}

// SchedulerConfig holds cron specs of background jobs
type SchedulerConfig struct {
	MaturitySweepSpec string `mapstructure:"maturitySweepSpec"`
	LockCleanupSpec   string `mapstructure:"lockCleanupSpec"`
}

// MetricsConfig exposes prometheus metrics
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Validate checks the settings the service can't start without
func (c *Config) Validate() error {
	if err := entity.ValidateAccountName(c.Vault.Account); err != nil {
		return fmt.Errorf("vault.account: %w", err)
	}
	if err := entity.ValidateAccountName(c.Vault.AdminAccount); err != nil {
		return fmt.Errorf("vault.adminAccount: %w", err)
	}
	if c.Ledger.BaseURL == "" {
		return fmt.Errorf("ledger.baseURL is required")
	}
	if c.Auth.SigningKey == "" {
		return fmt.Errorf("auth.signingKey is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	return nil
}
