package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreMongo    = "mongo"
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"
)

type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	Store    StoreConfig    `mapstructure:"store"`
	Mongo    MongoConfig    `mapstructure:"mongo"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
	Memory   MemoryConfig   `mapstructure:"memory"`
	Redis    RedisConfig    `mapstructure:"redis"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Matcher  MatcherConfig  `mapstructure:"matcher"`
	Auth     AuthConfig     `mapstructure:"auth"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Log      LogConfig      `mapstructure:"log"`
}

type HTTPConfig struct {
	Port string `mapstructure:"port"`
}

type StoreConfig struct {
	Backend string `mapstructure:"backend"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type DynamoDBConfig struct {
	Table  string `mapstructure:"table"`
	Region string `mapstructure:"region"`
}

type MemoryConfig struct {
	Capacity int `mapstructure:"capacity"`
}

type RedisConfig struct {
	Addr string        `mapstructure:"addr"`
	TTL  time.Duration `mapstructure:"ttl"`
}

type MatcherConfig struct {
	TopN int `mapstructure:"top_n"`
}

type AuthConfig struct {
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password" json:"-"`
	JWTSecret string `mapstructure:"jwt_secret" json:"-"`
}

type CORSConfig struct {
	AllowedOrigins string `mapstructure:"allowed_origins"`
}

type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// SetDefaults registers every key with its default so env overrides work without a config file
func SetDefaults(v *viper.Viper) {
	v.SetDefault("http.port", "8080")
	v.SetDefault("store.backend", StoreMongo)
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "jobquest")
	v.SetDefault("dynamodb.table", "Assessments")
	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("memory.capacity", 10000)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.ttl", time.Hour)
	v.SetDefault("llm.provider", ProviderGemini)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.timeout", 5*time.Second)
	v.SetDefault("matcher.top_n", 5)
	v.SetDefault("auth.username", "admin")
	v.SetDefault("auth.password", "password123")
	v.SetDefault("auth.jwt_secret", "super-secret-key-change-in-production")
	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)
}

// legacyEnv maps config keys to the environment names older deployments used
var legacyEnv = map[string][]string{
	"http.port":            {"PORT"},
	"mongo.uri":            {"MONGO_URI"},
	"redis.addr":           {"REDIS_URI", "REDIS_ADDR"},
	"auth.username":        {"HOST_USERNAME"},
	"auth.password":        {"HOST_PASSWORD"},
	"auth.jwt_secret":      {"JWT_SECRET"},
	"cors.allowed_origins": {"CORS_ALLOWED_ORIGINS"},
	"dynamodb.region":      {"AWS_REGION"},
}

// providerKeyEnv is the provider-specific key used when llm.api_key is unset
var providerKeyEnv = map[string]string{
	ProviderGemini: "GEMINI_API_KEY",
	ProviderOpenAI: "OPENAI_API_KEY",
}

// BindEnv enables JOBQUEST_* overrides plus the legacy names
func BindEnv(v *viper.Viper) error {
	v.SetEnvPrefix("JOBQUEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, names := range legacyEnv {
		args := append([]string{key, "JOBQUEST_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))}, names...)
		if err := v.BindEnv(args...); err != nil {
			return fmt.Errorf("binding %s environment variables: %w", key, err)
		}
	}
	for provider, env := range providerKeyEnv {
		if err := v.BindEnv("llm.keys."+provider, env); err != nil {
			return fmt.Errorf("binding %s: %w", env, err)
		}
	}
	return nil
}

// Load decodes and validates the configuration held by v
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// Remove redis:// prefix if present
	cfg.Redis.Addr = strings.TrimPrefix(cfg.Redis.Addr, "redis://")
	cfg.Store.Backend = strings.ToLower(strings.TrimSpace(cfg.Store.Backend))
	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	if strings.TrimSpace(cfg.LLM.APIKey) == "" {
		cfg.LLM.APIKey = v.GetString("llm.keys." + cfg.LLM.Provider)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case StoreMongo, StoreDynamoDB, StoreMemory:
	default:
		return fmt.Errorf("config error: unknown store.backend %q", c.Store.Backend)
	}
	switch c.LLM.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("config error: unknown llm.provider %q", c.LLM.Provider)
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("config error: llm.timeout must be positive")
	}
	if c.Matcher.TopN <= 0 {
		return fmt.Errorf("config error: matcher.top_n must be positive")
	}
	if c.Store.Backend == StoreMemory && c.Memory.Capacity <= 0 {
		return fmt.Errorf("config error: memory.capacity must be positive")
	}
	if c.HTTP.Port == "" {
		return fmt.Errorf("config error: http.port is required")
	}
	return nil
}
