package database

import (
	"testing"
	"time"

	appconfig "github.com/amirhossein-jamali/safekeep/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
)

func TestFromAppConfig(t *testing.T) {
	conf := &appconfig.Config{
		Database: appconfig.DatabaseConfig{
			Host:         "db",
			Port:         "6543",
			Username:     "safekeep",
			Password:     "secret",
			Database:     "safekeep",
			MaxOpenConns: 40,
			QueryTimeout: 3 * time.Second,
		},
		Logger: appconfig.LoggerConfig{Level: "warn"},
	}

	dbConf := FromAppConfig(conf)

	assert.Equal(t, 6543, dbConf.Port)
	assert.Equal(t, 40, dbConf.MaxOpenConns)
	assert.Equal(t, 25, dbConf.MaxIdleConns)
	assert.Equal(t, 3*time.Second, dbConf.QueryTimeout)
	assert.Equal(t, "warn", dbConf.LogLevel)
	assert.Equal(t, "host=db port=6543 user=safekeep password=secret dbname=safekeep sslmode=disable", dbConf.DSN())
	assert.NoError(t, dbConf.Validate())
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		c := DefaultConfig()
		c.Host, c.Username, c.Database = "db", "u", "d"
		return c
	}

	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"MissingHost", func(c *Config) { c.Host = "" }},
		{"BadPort", func(c *Config) { c.Port = 70000 }},
		{"MissingUser", func(c *Config) { c.Username = "" }},
		{"OtherDriver", func(c *Config) { c.Driver = "mysql" }},
		{"BadSSLMode", func(c *Config) { c.SSLMode = "maybe" }},
		{"NoTimeout", func(c *Config) { c.QueryTimeout = 0 }},
	}

	assert.NoError(t, valid().Validate())
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 0, ParsePort("abc"))
	assert.Equal(t, 0, ParsePort("0"))
}
