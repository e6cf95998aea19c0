package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("PORT", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("DB_NAME", "health")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("S3_REGION", "")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("S3_BUCKET", "meals")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "staging", s.Env)
	assert.Equal(t, "8080", s.Port)
	assert.Equal(t, "eu-west-1", s.S3Region)
	assert.True(t, s.ImagesEnabled())
	assert.Equal(t, "host=localhost user=app password=pw dbname=health port=5432 sslmode=disable", s.DSN())
}

func TestValidate(t *testing.T) {
	ok := Settings{Env: "development", JWTSecret: "x", DBName: "d", DBUser: "u"}
	assert.NoError(t, ok.Validate())

	badEnv := ok
	badEnv.Env = "prod"
	assert.Error(t, badEnv.Validate())

	noSecret := ok
	noSecret.JWTSecret = ""
	assert.Error(t, noSecret.Validate())

	noDB := ok
	noDB.DBName = ""
	assert.Error(t, noDB.Validate())
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(&Settings{Env: "production", LogLevel: "not-a-level"})
	require.NoError(t, err)
	assert.NotNil(t, log)
}
