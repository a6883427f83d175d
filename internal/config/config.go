package config

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type PostgresConfig struct {
	DSN             string
	MaxOpen         int
	MaxIdle         int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

type StorageConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	BucketImages  string
	UseSSL        bool
	Region        string
	MaxUploadSize int64
}

type SecurityConfig struct {
	TokenSecret string
	TokenTTL    time.Duration
	// LegacyTokens accepts the old unsigned base64 tokens issued by the
	// previous backend. Anyone can forge one; leave this off unless old
	// clients still hold them.
	LegacyTokens bool
}

type CacheConfig struct {
	CatalogTTL time.Duration
}

type AppConfig struct {
	Environment      string
	Debug            bool
	HTTP             HTTPConfig
	Postgres         PostgresConfig
	Redis            RedisConfig
	Storage          StorageConfig
	Security         SecurityConfig
	Cache            CacheConfig
	AllowCORSOrigins []string
}

func Load() (*AppConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("../config")

	v.SetEnvPrefix("BIGMANPC")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("debug", false)

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.readtimeout", "10s")
	v.SetDefault("http.writetimeout", "15s")
	v.SetDefault("http.idletimeout", "60s")

	v.SetDefault("postgres.maxopen", 30)
	v.SetDefault("postgres.maxidle", 10)
	v.SetDefault("postgres.connmaxlifetime", "30m")

	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("storage.bucketimages", "bigmanpc-products")
	v.SetDefault("storage.usessl", false)
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.maxuploadsize", 5*1024*1024)

	v.SetDefault("security.tokenttl", "24h")
	v.SetDefault("security.legacytokens", false)

	v.SetDefault("cache.catalogttl", "5m")
}
