package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()
	require.Equal(t, DefaultServerPort, cfg.Server.Port)
	require.Equal(t, DefaultMongoURI, cfg.Mongo.URI)
	require.Equal(t, DefaultUploadsDir, cfg.Uploads.Dir)
	require.Equal(t, DefaultUploadsURLPrefix, cfg.Uploads.URLPrefix)
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("MONGO_DB", "roster-test")
	t.Setenv("UPLOADS_DIR", "/tmp/roster-uploads")

	cfg := New()
	require.Equal(t, "9999", cfg.Server.Port)
	require.Equal(t, "roster-test", cfg.Mongo.Database)
	require.Equal(t, "/tmp/roster-uploads", cfg.Uploads.Dir)
}

func TestServerConfig_Address(t *testing.T) {
	c := ServerConfig{Host: "127.0.0.1", Port: "8080"}
	require.Equal(t, "127.0.0.1:8080", c.Address())
}
