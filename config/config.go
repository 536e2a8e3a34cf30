package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultBatchSize          = 30
	defaultBatchDelay         = 60 * time.Second
	defaultDispatchTimeout    = 30 * time.Minute
	defaultLatestLimit        = 5
	defaultMongoTimeout       = 10 * time.Second
	defaultLocale             = "es"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Mongo holds the marketplace document store (users and listings)
	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	// Postgres stores the broadcast audit trail written by the notifier
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Telegram *TelegramConfig `json:"telegram" yaml:"telegram"`

	Site *SiteConfig `json:"site" yaml:"site"`

	Broadcast *BroadcastConfig `json:"broadcast" yaml:"broadcast"`

	SecretKey struct {
		Service string        `json:"service" yaml:"service"`
		TTL     time.Duration `json:"ttl" yaml:"ttl"`
	} `json:"secretKey" yaml:"secretKey"`

	// Redis backs update deduplication; optional
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// QRCode configuration for account link QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MongoConfig defines the document store connection
type MongoConfig struct {
	URI                string        `json:"uri" yaml:"uri"`
	Database           string        `json:"database" yaml:"database"`
	UsersCollection    string        `json:"usersCollection" yaml:"usersCollection"`
	ListingsCollection string        `json:"listingsCollection" yaml:"listingsCollection"`
	Timeout            time.Duration `json:"timeout" yaml:"timeout"`
}

// TelegramConfig defines the bot credentials and admin audience
type TelegramConfig struct {
	BotToken      string `json:"botToken" yaml:"botToken"`
	BotUsername   string `json:"botUsername" yaml:"botUsername"`
	WebhookSecret string `json:"webhookSecret" yaml:"webhookSecret"`

	// Comma separated chat ids, e.g. "12345,67890"
	AdminChatIDs string `json:"adminChatIds" yaml:"adminChatIds"`

	APIEndpoint string `json:"apiEndpoint" yaml:"apiEndpoint"`
}

// SiteConfig defines the public marketplace links rendered into messages
type SiteConfig struct {
	BaseURL         string `json:"baseUrl" yaml:"baseUrl"`
	ContactEmail    string `json:"contactEmail" yaml:"contactEmail"`
	ContactPhone    string `json:"contactPhone" yaml:"contactPhone"`
	SupportUsername string `json:"supportUsername" yaml:"supportUsername"`
	Locale          string `json:"locale" yaml:"locale"`
}

// BroadcastConfig defines fan-out pacing
type BroadcastConfig struct {
	BatchSize   int           `json:"batchSize" yaml:"batchSize"`
	BatchDelay  time.Duration `json:"batchDelay" yaml:"batchDelay"`
	LatestLimit int           `json:"latestLimit" yaml:"latestLimit"`
	// DispatchTimeout bounds one event's fan-out, cool-downs included. It is
	// independent of the push request, which Pub/Sub drops at the ack deadline.
	DispatchTimeout time.Duration `json:"dispatchTimeout" yaml:"dispatchTimeout"`
}

// RedisConfig defines the dedupe store
type RedisConfig struct {
	Addr      string        `json:"addr" yaml:"addr"`
	Password  string        `json:"password" yaml:"password"`
	DB        int           `json:"db" yaml:"db"`
	DedupeTTL time.Duration `json:"dedupeTtl" yaml:"dedupeTtl"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// OrderByListing sets the listing id as ordering key (google provider)
	OrderByListing bool `json:"orderByListing" yaml:"orderByListing"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Broadcast == nil {
		cfg.Broadcast = &BroadcastConfig{}
	}
	if cfg.Broadcast.BatchSize <= 0 {
		cfg.Broadcast.BatchSize = defaultBatchSize
	}
	if cfg.Broadcast.DispatchTimeout <= 0 {
		cfg.Broadcast.DispatchTimeout = defaultDispatchTimeout
	}
	if cfg.Broadcast.BatchDelay < 0 {
		cfg.Broadcast.BatchDelay = 0
	} else if cfg.Broadcast.BatchDelay == 0 {
		cfg.Broadcast.BatchDelay = defaultBatchDelay
	}
	if cfg.Broadcast.LatestLimit <= 0 {
		cfg.Broadcast.LatestLimit = defaultLatestLimit
	}

	if cfg.Site == nil {
		cfg.Site = &SiteConfig{}
	}
	cfg.Site.BaseURL = strings.TrimRight(cfg.Site.BaseURL, "/")
	if cfg.Site.Locale == "" {
		cfg.Site.Locale = defaultLocale
	}

	if cfg.Telegram == nil {
		cfg.Telegram = &TelegramConfig{}
	}

	if cfg.Mongo != nil && cfg.Mongo.Timeout <= 0 {
		cfg.Mongo.Timeout = defaultMongoTimeout
	}
}

// AdminChatIDList parses the configured admin chat list, skipping blanks
func (c *TelegramConfig) AdminChatIDList() []string {
	if c == nil {
		return nil
	}

	parts := strings.Split(c.AdminChatIDs, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}

	return ids
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
