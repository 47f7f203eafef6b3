package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
server:
  port: 9090
database:
  host: localhost
  username: safekeep
  password: secret
  database: safekeep
vault:
  account: safekeep
  adminAccount: vaultadmin
  ownerLockTimeoutMs: 2500
ledger:
  baseURL: http://ledger.local
  timeout: 3
auth:
  signingKey: test-key
`

func withConfigDir(t *testing.T, env, content string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(content), 0o600))

	oldPaths, oldDotEnv := ConfigPaths, DotEnvPaths
	ConfigPaths = []string{dir}
	DotEnvPaths = nil
	t.Cleanup(func() {
		ConfigPaths, DotEnvPaths = oldPaths, oldDotEnv
	})
	t.Setenv("SK_ENV", env)
}

func TestLoadConfig(t *testing.T) {
	withConfigDir(t, Test, testConfigYAML)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 3, cfg.Database.RetryAttempts)
	assert.Equal(t, "safekeep", cfg.Vault.Account)
	assert.Equal(t, "vaultadmin", cfg.Vault.AdminAccount)
	assert.Equal(t, "withdraw token", cfg.Vault.WithdrawMemo)
	assert.Equal(t, 2500*time.Millisecond, cfg.Vault.OwnerLockTimeout())
	assert.Equal(t, 3*time.Second, cfg.Ledger.Timeout)
	assert.Equal(t, "@every 1m", cfg.Scheduler.MaturitySweepSpec)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	withConfigDir(t, Test, testConfigYAML)
	t.Setenv("SK_VAULT_ADMIN_ACCOUNT", "newadmin")
	t.Setenv("SK_DB_PASSWORD", "from-env")
	t.Setenv("SK_SERVER_PORT", "7070")
	t.Setenv("SK_VAULT_QUEUE_SIZE", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "newadmin", cfg.Vault.AdminAccount)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 100, cfg.Vault.QueueSize)
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		withConfigDir(t, Test, testConfigYAML)
		t.Setenv("SK_ENV", "staging")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("Malformed admin account", func(t *testing.T) {
		withConfigDir(t, Test, testConfigYAML)
		t.Setenv("SK_VAULT_ADMIN_ACCOUNT", "Not.Valid!")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "vault.adminAccount")
	})
}

func TestIdentity(t *testing.T) {
	identity := NewIdentity(VaultConfig{Account: "safekeep", AdminAccount: "vaultadmin"})
	assert.Equal(t, "safekeep", identity.VaultAccount())
	assert.Equal(t, "vaultadmin", identity.AdminAccount())

	changed, ignored := identity.Update(VaultConfig{Account: "safekeep", AdminAccount: "otheradmin"})
	assert.True(t, changed)
	assert.False(t, ignored)
	assert.Equal(t, "otheradmin", identity.AdminAccount())

	changed, ignored = identity.Update(VaultConfig{Account: "elsewhere", AdminAccount: "otheradmin"})
	assert.False(t, changed)
	assert.True(t, ignored)
	assert.Equal(t, "safekeep", identity.VaultAccount())

	changed, _ = identity.Update(VaultConfig{Account: "safekeep", AdminAccount: "BAD"})
	assert.False(t, changed)
	assert.Equal(t, "otheradmin", identity.AdminAccount())
}
