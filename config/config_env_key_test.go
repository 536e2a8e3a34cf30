package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"telegram": map[string]any{
			"botToken":     "",
			"adminChatIds": "",
		},
		"site": map[string]any{
			"baseUrl":         "",
			"supportUsername": "",
		},
		"redis": map[string]any{
			"dedupeTtl": "24h",
		},
		"secretKey": map[string]any{
			"service": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "TELEGRAM_BOTTOKEN", want: "telegram.botToken"},
		{envKey: "TELEGRAM_ADMINCHATIDS", want: "telegram.adminChatIds"},
		{envKey: "SITE_BASEURL", want: "site.baseUrl"},
		{envKey: "SITE_SUPPORTUSERNAME", want: "site.supportUsername"},
		{envKey: "REDIS_DEDUPETTL", want: "redis.dedupeTtl"},
		{envKey: "SECRETKEY_SERVICE", want: "secretKey.service"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestTelegramConfig_AdminChatIDList(t *testing.T) {
	var missing *TelegramConfig
	assert.Nil(t, missing.AdminChatIDList())

	cfg := &TelegramConfig{AdminChatIDs: " 12345, ,67890,"}
	assert.Equal(t, []string{"12345", "67890"}, cfg.AdminChatIDList())
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Site:  &SiteConfig{BaseURL: "https://autos.example.com/"},
		Mongo: &MongoConfig{},
	}

	applyDefaults(cfg)

	assert.Equal(t, defaultBatchSize, cfg.Broadcast.BatchSize)
	assert.Equal(t, defaultBatchDelay, cfg.Broadcast.BatchDelay)
	assert.Equal(t, defaultDispatchTimeout, cfg.Broadcast.DispatchTimeout)
	assert.Equal(t, defaultLatestLimit, cfg.Broadcast.LatestLimit)
	assert.Equal(t, "https://autos.example.com", cfg.Site.BaseURL)
	assert.Equal(t, defaultLocale, cfg.Site.Locale)
	assert.NotNil(t, cfg.Telegram)
	assert.Equal(t, defaultMongoTimeout, cfg.Mongo.Timeout)
}

func TestApplyDefaults_NegativeDelayDisablesCooldown(t *testing.T) {
	cfg := &Config{Broadcast: &BroadcastConfig{BatchSize: 10, BatchDelay: -time.Second}}

	applyDefaults(cfg)

	assert.Equal(t, 10, cfg.Broadcast.BatchSize)
	assert.Equal(t, time.Duration(0), cfg.Broadcast.BatchDelay)
}
