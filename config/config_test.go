package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultRefreshTokenTTL, cfg.Auth.RefreshTokenTTL)
	require.NotNil(t, cfg.Storage)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.EqualValues(t, defaultMaxUploadSize, cfg.Storage.MaxUploadSize)
	require.NotNil(t, cfg.QRCode)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:    &AuthConfig{AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour},
		Storage: &StorageConfig{BucketURL: "file:///tmp/media", MaxUploadSize: 1024},
		QRCode:  &QRCodeConfig{Size: 512},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	applyDefaults(cfg)

	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, "file:///tmp/media", cfg.Storage.BucketURL)
	assert.EqualValues(t, 1024, cfg.Storage.MaxUploadSize)
	assert.Equal(t, 512, cfg.QRCode.Size)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-1")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "5433", replicas[0].Port)
	assert.Equal(t, "reader", replicas[0].UserName)
}
