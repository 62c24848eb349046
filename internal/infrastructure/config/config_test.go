package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("BLOB_DRIVER", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, StorageDynamoDB, cfg.StorageDriver)
	assert.Equal(t, BlobMemory, cfg.BlobDriver)
	assert.Equal(t, 168*time.Hour, cfg.BlobURLExpiry)
	assert.Equal(t, "agreements", cfg.AgreementsTbl)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/cfp.db")
	t.Setenv("BLOB_DRIVER", "minio")
	t.Setenv("BLOB_ENDPOINT", "localhost:9000")
	t.Setenv("BLOB_USE_SSL", "false")
	t.Setenv("PUBLIC_BASE_URL", "https://agreements.example/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, StorageSQLite, cfg.StorageDriver)
	assert.Equal(t, "/tmp/cfp.db", cfg.SQLitePath)
	assert.False(t, cfg.BlobUseSSL)
	assert.Equal(t, "https://agreements.example/agreement?draft=tok", cfg.DraftURL("tok"))
}

func TestValidate(t *testing.T) {
	base := Config{Port: 8080, StorageDriver: StorageSQLite, BlobDriver: BlobMemory}
	require.NoError(t, base.Validate())

	bad := base
	bad.StorageDriver = "postgres"
	assert.Error(t, bad.Validate())

	bad = base
	bad.BlobDriver = BlobMinio
	assert.Error(t, bad.Validate(), "minio needs an endpoint")

	bad = base
	bad.Port = 0
	assert.Error(t, bad.Validate())
}
