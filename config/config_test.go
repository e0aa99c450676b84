package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "apparel",
			},
		},
		"pricing": map[string]any{
			"defaultShippingFee": "10.00",
		},
		"storage": map[string]any{
			"bucketUrl": "mem://",
		},
		"pubsub": map[string]any{
			"pushAudience": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PRICING_DEFAULTSHIPPINGFEE", want: "pricing.defaultShippingFee"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "PUBSUB_PUSHAUDIENCE", want: "pubsub.pushAudience"},
		{envKey: "MAIL_PROVIDER", want: "mail.provider"},
		{envKey: "IDENTIFIER__FLOOR", want: "identifier.floor"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultShippingFee, cfg.Pricing.DefaultShippingFee)
	assert.Equal(t, defaultEstimatedDeliveryDays, cfg.Pricing.EstimatedDeliveryDays)
	assert.Equal(t, int64(defaultIdentifierFloor), cfg.Identifier.Floor)
	assert.Equal(t, time.Hour, cfg.Auth.PasswordResetTTL)
	assert.Equal(t, 10*time.Minute, cfg.Auth.OTPTTL)
	assert.Equal(t, "log", cfg.Mail.Provider)
	assert.Equal(t, defaultBucketURL, cfg.Storage.BucketURL)
	assert.Equal(t, defaultFrontendBaseURL, cfg.QRCode.BaseURL, "QR links point at the frontend by default")
	assert.Equal(t, defaultWorkerPort, cfg.Worker.Port)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Pricing:    &PricingConfig{DefaultShippingFee: "4.99", EstimatedDeliveryDays: 3},
		Identifier: &IdentifierConfig{Floor: 5000},
		QRCode:     &QRCodeConfig{Size: 512, BaseURL: "https://track.example.com"},
	}

	applyDefaults(cfg)

	assert.Equal(t, "4.99", cfg.Pricing.DefaultShippingFee)
	assert.Equal(t, 3, cfg.Pricing.EstimatedDeliveryDays)
	assert.Equal(t, int64(5000), cfg.Identifier.Floor)
	assert.Equal(t, 512, cfg.QRCode.Size)
	assert.Equal(t, "https://track.example.com", cfg.QRCode.BaseURL)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, validate(cfg))

	cfg.SecretKey.Access = "same"
	cfg.SecretKey.Refresh = "same"
	assert.ErrorContains(t, validate(cfg), "must differ")

	cfg.SecretKey.Refresh = "other"
	assert.NoError(t, validate(cfg))
}

func TestReplicasFromEnv(t *testing.T) {
	vars := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-a",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-b",
		"POSTGRES_REPLICAS_1_PORT":     "5433",
		"POSTGRES_REPLICAS_3_HOST":     "unreachable",
		"POSTGRES_REPLICAS_3_PORT":     "5434",
	}

	replicas := replicasFromEnv(func(key string) string { return vars[key] })

	require.Len(t, replicas, 2, "numbering stops at the first gap")
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
	assert.Equal(t, "5433", replicas[1].Port)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := "http:\n  port: 8080\n  maxRequestBodySize: 1MB\npricing:\n  defaultShippingFee: \"10.00\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yaml), 0o600))
	t.Setenv("PRICING_DEFAULTSHIPPINGFEE", "4.50")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load[Config]("test", dir)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "4.50", cfg.Pricing.DefaultShippingFee)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load[Config]("absent", t.TempDir())

	assert.ErrorContains(t, err, "absent.yaml not found")
}
