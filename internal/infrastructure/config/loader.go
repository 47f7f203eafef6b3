package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override, e.g. SK_DB_PASSWORD
const EnvPrefix = "SK"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	config, _, err := load()
	return config, err
}

// LoadAndWatch loads the configuration and calls onChange with a freshly decoded
// copy every time the config file is written
func LoadAndWatch(onChange func(*Config, error)) (*Config, error) {
	config, v, err := load()
	if err != nil {
		return nil, err
	}

	v.OnConfigChange(func(fsnotify.Event) {
		onChange(decode(v, config.Environment))
	})
	v.WatchConfig()

	return config, nil
}

func load() (*Config, *viper.Viper, error) {
	// a missing .env file is normal outside local development
	_ = loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	config, err := decode(v, env)
	if err != nil {
		return nil, nil, err
	}
	return config, v, nil
}

// decode applies env overrides and unmarshals v
func decode(v *viper.Viper, env string) (*Config, error) {
	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// loadDotEnvFile loads the first .env file found
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("vault.withdrawMemo", "withdraw token")
	v.SetDefault("vault.ownerLockTimeoutMs", 5000)
	v.SetDefault("vault.queueSize", 100)
	v.SetDefault("vault.maxRetries", 5)

	v.SetDefault("ledger.timeout", 10) // seconds

	v.SetDefault("scheduler.maturitySweepSpec", "@every 1m")
	v.SetDefault("scheduler.lockCleanupSpec", "@every 5m")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// getEnvironment determines the environment from SK_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides lets explicit environment variables win over the file
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"SK_DB_HOST":              "database.host",
		"SK_DB_PORT":              "database.port",
		"SK_DB_USERNAME":          "database.username",
		"SK_DB_PASSWORD":          "database.password",
		"SK_DB_NAME":              "database.database",
		"SK_DB_SSL_MODE":          "database.sslMode",
		"SK_SERVER_HOST":          "server.host",
		"SK_LOGGER_LEVEL":         "logger.level",
		"SK_VAULT_ACCOUNT":        "vault.account",
		"SK_VAULT_ADMIN_ACCOUNT":  "vault.adminAccount",
		"SK_VAULT_WITHDRAW_MEMO":  "vault.withdrawMemo",
		"SK_LEDGER_BASE_URL":      "ledger.baseURL",
		"SK_LEDGER_API_KEY":       "ledger.apiKey",
		"SK_AUTH_SIGNING_KEY":     "auth.signingKey",
		"SK_AUTH_ISSUER":          "auth.issuer",
		"SK_AUTH_AUDIENCE":        "auth.audience",
		"SK_SCHEDULER_SWEEP_SPEC": "scheduler.maturitySweepSpec",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"SK_SERVER_PORT":                  "server.port",
		"SK_DB_MAX_OPEN_CONNS":            "database.maxOpenConns",
		"SK_DB_MAX_IDLE_CONNS":            "database.maxIdleConns",
		"SK_DB_CONN_MAX_LIFETIME_MINUTES": "database.connMaxLifetime",
		"SK_DB_QUERY_TIMEOUT_SECONDS":     "database.queryTimeout",
		"SK_DB_RETRY_ATTEMPTS":            "database.retryAttempts",
		"SK_VAULT_OWNER_LOCK_TIMEOUT_MS":  "vault.ownerLockTimeoutMs",
		"SK_VAULT_QUEUE_SIZE":             "vault.queueSize",
		"SK_VAULT_MAX_RETRIES":            "vault.maxRetries",
		"SK_LEDGER_TIMEOUT_SECONDS":       "ledger.timeout",
	}
	for env, key := range intOverrides {
		if value := getEnvInt(env, -1); value >= 0 {
			v.Set(key, value)
		}
	}
}

// getEnvInt reads an integer environment variable, falling back on absence or garbage
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations turns the raw second/minute counts into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Ledger.Timeout = time.Duration(config.Ledger.Timeout) * time.Second
}
