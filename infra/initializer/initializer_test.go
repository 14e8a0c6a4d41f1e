package initializer

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/briancito0432-afk/gestomoney-proyect/infra/repository/memory"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(driver string) *config.App {
	return &config.App{
		Env: "test",
		Log: &config.Log{Format: "text"},
		DB:  &config.DB{Driver: driver},
	}
}

func TestOpenUnitOfWork_Memory(t *testing.T) {
	uow, cleanup, err := OpenUnitOfWork(testConfig(config.DriverMemory), slog.Default())
	require.NoError(t, err)
	defer cleanup()
	assert.IsType(t, &memory.Store{}, uow)
}

func TestOpenUnitOfWork_Errors(t *testing.T) {
	_, _, err := OpenUnitOfWork(testConfig("sqlite"), slog.Default())
	assert.EqualError(t, err, `unknown database driver "sqlite"`)

	_, _, err = OpenUnitOfWork(testConfig(config.DriverPostgres), slog.Default())
	assert.EqualError(t, err, "DATABASE_URL is not set")
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"json", `"msg":"ready"`},
		{"logfmt", "msg=ready"},
		{"text", "ready"},
		{"unknown", "ready"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&config.Log{Format: tt.format, Prefix: "[test]"}, &buf)
			logger.Info("ready", "userID", 7)
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "7")
		})
	}
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&config.Log{Format: "text", Level: 8}, &buf)
	logger.Info("hidden")
	logger.Error("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
