package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "a-long-enough-secret")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 5002, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:5002", cfg.Server.Addr())
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, 24*time.Hour, cfg.Auth.Jwt.Expiry)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "*", cfg.Cors.AllowOrigins)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("AUTH_JWT_SECRET"))
	t.Chdir(t.TempDir())

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_EnvFileInParentDirectory(t *testing.T) {
	root := t.TempDir()
	child := filepath.Join(root, "nested")
	require.NoError(t, os.Mkdir(child, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env.test"),
		[]byte("AUTH_JWT_SECRET=from-file-secret\nDATABASE_DRIVER=memory\nSERVER_PORT=8080\n"), 0o600))
	t.Chdir(child)
	// godotenv never overrides variables that are already set.
	for _, key := range []string{"AUTH_JWT_SECRET", "DATABASE_DRIVER", "SERVER_PORT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load(".env.missing", ".env.test")
	require.NoError(t, err)
	assert.Equal(t, "from-file-secret", cfg.Auth.Jwt.Secret)
	assert.Equal(t, DriverMemory, cfg.DB.Driver)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestFindEnvFile(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	child := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(child, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("X=1\n"), 0o600))
	// a directory named like the file is skipped
	require.NoError(t, os.Mkdir(filepath.Join(root, "a", ".env"), 0o755))
	t.Chdir(child)

	found, err := FindEnvFile("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".env"), found)

	_, err = FindEnvFile(".env.nowhere")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "****", maskValue("short"))
	assert.Equal(t, "po****able", maskValue("postgres://user:pw@host/db?sslmode=disable"))
}
