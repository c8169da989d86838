package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPublic = `
http:
  host: 127.0.0.1
  port: 5000
jwt_ttl: 3h
log_level: debug
cors_origins: ["http://localhost:3000"]
`

const validPrivate = `
jwt_key: 'secret'
pg:
  host: localhost
  port: 5432
  user: forum
  password: forum
  dbname: forumapi
`

func writeConfig(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600))
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeConfig(t, validPublic, validPrivate)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:5000", cfg.Public.Http.Addr())
	assert.Equal(t, 3*time.Hour, cfg.JwtTTL())
	assert.Equal(t, "secret", cfg.JwtKey())
	assert.Equal(t, "debug", cfg.Public.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Public.CorsOrigins)
	assert.Equal(t, 10*time.Second, cfg.Public.Http.ShutdownTimeout, "default shutdown timeout")
	assert.Equal(t, "forumapi", cfg.Private.Pg.Dbname)
}

func TestLoad_EnvOverridesYaml(t *testing.T) {
	dir := writeConfig(t, validPublic, validPrivate)
	t.Setenv("PG_HOST", "db.internal")
	t.Setenv("JWT_KEY", "from-env")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Private.Pg.Host)
	assert.Equal(t, "from-env", cfg.JwtKey())
}

func TestMustLoad_RequiredFields(t *testing.T) {
	// jwt_key is intentionally missing
	private := "pg:\n  host: localhost\n  port: 5432\n  user: forum\n  dbname: forumapi\n"
	dir := writeConfig(t, validPublic, private)

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic due to missing required field, got none")
		}
	}()

	_ = MustLoad(dir)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}
