package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/briancito0432-afk/gestomoney-proyect/webapi/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_MemoryDriver(t *testing.T) {
	cfg := testutils.TestConfig()
	cfg.Log.Level = 8

	fiberApp, cleanup, err := build(cfg)
	require.NoError(t, err)
	defer cleanup()

	resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestBuild_UnknownDriver(t *testing.T) {
	cfg := testutils.TestConfig()
	cfg.Log.Level = 8
	cfg.DB.Driver = "mongo"

	_, _, err := build(cfg)
	assert.ErrorContains(t, err, `unknown database driver "mongo"`)
}
