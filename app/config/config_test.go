package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./data/badger", cfg.DBPath)
	assert.Equal(t, "localhost:8080", cfg.ServerAddr())
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("BLOG_DB_PATH", "/tmp/blogdb")
	t.Setenv("BLOG_SERVER_PORT", "9090")
	t.Setenv("BLOG_ENV", "production")
	t.Setenv("BLOG_ADMIN_EMAIL", "owner@example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/blogdb", cfg.DBPath)
	assert.Equal(t, "localhost:9090", cfg.ServerAddr())
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "owner@example.com", cfg.AdminEmail)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("BLOG_SERVER_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}
