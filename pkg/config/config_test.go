package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dahill/invoice-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "invoice-api", cfg.App.Name)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "invoice_api", cfg.DB.DBName)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "invoice-api", cfg.JWT.Issuer)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_EnvVarsTienenPrioridad(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("JWT_SECRET", "super-secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 5433, cfg.DB.Port)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "super-secret", cfg.JWT.Secret)
}

func TestDSN_PasswordConCaracteresEspeciales(t *testing.T) {
	db := config.DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:w/rd",
		DBName:   "invoice_api",
		SSLMode:  "disable",
	}
	dsn := db.DSN()

	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "p%40ss%3Aw%2Frd", "la contraseña debe ir URL-encoded")
	assert.Contains(t, dsn, "localhost:5432/invoice_api")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	db := config.DBConfig{
		DatabaseURL: "postgres://u:p@remote:5432/other",
		Host:        "localhost",
		Port:        5432,
	}
	assert.Equal(t, "postgres://u:p@remote:5432/other", db.ConnectionString())
}
