package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa todo lo que main necesita para levantar el proceso.
type Config struct {
	HTTP   HTTPConfig
	Log    LogConfig
	DB     DBConfig
	Redis  RedisConfig
	Scorer ScorerConfig
	JWT    JWTConfig

	SeedSampleData bool
}

type HTTPConfig struct {
	Port string
}

// Addr devuelve ":<port>".
func (c HTTPConfig) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

type LogConfig struct {
	Level  string
	Format string
	App    string
}

type DBConfig struct {
	DSN string
}

type RedisConfig struct {
	URL string
}

type ScorerConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type JWTConfig struct {
	SigningKey string
	TTL        time.Duration
}

const (
	keyPort           = "PORT"
	keyLogLevel       = "LOG_LEVEL"
	keyLogFormat      = "LOG_FORMAT"
	keyAppName        = "APP_NAME"
	keyDBDSN          = "DB_DSN"
	keyRedisURL       = "REDIS_URL"
	keyScorerBaseURL  = "SCORER_BASE_URL"
	keyScorerAPIKey   = "SCORER_API_KEY"
	keyScorerTimeout  = "SCORER_TIMEOUT"
	keyJWTSigningKey  = "JWT_SIGNING_KEY"
	keyJWTTTL         = "JWT_TTL"
	keySeedSampleData = "SEED_SAMPLE_DATA"
	keyConfigFile     = "CONFIG_FILE"
)

// Load lee env (y opcionalmente CONFIG_FILE) con defaults de desarrollo.
func Load() (Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	v.SetDefault(keyPort, "8080")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "text")
	v.SetDefault(keyAppName, "organ-match")
	v.SetDefault(keyDBDSN, "")
	v.SetDefault(keyRedisURL, "")
	v.SetDefault(keyScorerBaseURL, "")
	v.SetDefault(keyScorerAPIKey, "")
	v.SetDefault(keyScorerTimeout, "5s")
	v.SetDefault(keyJWTSigningKey, "")
	v.SetDefault(keyJWTTTL, "24h")
	v.SetDefault(keySeedSampleData, false)

	v.AutomaticEnv()

	if file := strings.TrimSpace(v.GetString(keyConfigFile)); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	cfg := Config{
		HTTP: HTTPConfig{Port: strings.TrimSpace(v.GetString(keyPort))},
		Log: LogConfig{
			Level:  v.GetString(keyLogLevel),
			Format: v.GetString(keyLogFormat),
			App:    v.GetString(keyAppName),
		},
		DB:    DBConfig{DSN: strings.TrimSpace(v.GetString(keyDBDSN))},
		Redis: RedisConfig{URL: strings.TrimSpace(v.GetString(keyRedisURL))},
		Scorer: ScorerConfig{
			BaseURL: strings.TrimSpace(v.GetString(keyScorerBaseURL)),
			APIKey:  strings.TrimSpace(v.GetString(keyScorerAPIKey)),
			Timeout: v.GetDuration(keyScorerTimeout),
		},
		JWT: JWTConfig{
			SigningKey: v.GetString(keyJWTSigningKey),
			TTL:        v.GetDuration(keyJWTTTL),
		},
		SeedSampleData: v.GetBool(keySeedSampleData),
	}

	if cfg.HTTP.Port == "" {
		return Config{}, fmt.Errorf("config: %s must not be empty", keyPort)
	}
	if cfg.Scorer.Timeout <= 0 {
		return Config{}, fmt.Errorf("config: %s must be positive", keyScorerTimeout)
	}
	if cfg.JWT.TTL <= 0 {
		return Config{}, fmt.Errorf("config: %s must be positive", keyJWTTTL)
	}
	return cfg, nil
}
