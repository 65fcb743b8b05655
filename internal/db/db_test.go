package database

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/mindful-miles/internal/pkg/config"
)

func TestNewDatabaseConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Repositories.Postgres = config.PostgresConfig{
		Host: "db", Port: "5432", DB: "mindful", Username: "mm", Password: "p@ss/word",
	}

	dbCfg, err := NewDatabaseConfig(cfg, zap.NewNop())
	require.NoError(t, err)

	u, err := url.Parse(dbCfg.ConnectionURL)
	require.NoError(t, err)
	assert.Equal(t, "postgresql", u.Scheme)
	assert.Equal(t, "db:5432", u.Host)
	assert.Equal(t, "/mindful", u.Path)
	pw, _ := u.User.Password()
	assert.Equal(t, "p@ss/word", pw)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
}

func TestNewDatabaseConfig_MissingHost(t *testing.T) {
	_, err := NewDatabaseConfig(&config.Config{}, zap.NewNop())
	assert.Error(t, err)

	_, err = NewDatabaseConfig(nil, zap.NewNop())
	assert.Error(t, err)
}

func TestMigrationFiles(t *testing.T) {
	names, err := MigrationFiles()
	require.NoError(t, err)
	assert.Contains(t, names, "000001_planner_entries.up.sql")
	assert.Contains(t, names, "000001_planner_entries.down.sql")
}

func TestRunMigrations_RejectsScheme(t *testing.T) {
	err := RunMigrations("mysql://localhost/db", zap.NewNop())
	assert.Error(t, err)
}
