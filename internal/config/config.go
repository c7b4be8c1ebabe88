package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Queue     QueueConfig
	Scheduler SchedulerConfig
	Messenger MessengerConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	DSN string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

type CacheConfig struct {
	MatchTTL      time.Duration
	LookupTimeout time.Duration
}

type RateLimitConfig struct {
	NotifyMax      int
	NotifyWindow   time.Duration
	MatchingPerMin int
	MutationPerMin int
}

type QueueConfig struct {
	MaxAttempts int
	BackoffBase time.Duration
	Retention   time.Duration
	Concurrency int
}

type SchedulerConfig struct {
	Enabled    bool
	DigestSpec string
	DigestTopN int
}

type MessengerConfig struct {
	BaseURL          string
	Token            string
	BroadcastChannel string
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Environment variables
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("server.port", "3000")
	viper.SetDefault("server.env", "development")
	viper.SetDefault("database.dsn", "host=localhost user=talentlink password=talentlink dbname=talentlink port=5432 sslmode=disable")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("jwt.secret", "change-me-in-production")
	viper.SetDefault("cache.match_ttl_seconds", 300)
	viper.SetDefault("cache.lookup_timeout_ms", 250)
	viper.SetDefault("ratelimit.notify_max", 10)
	viper.SetDefault("ratelimit.notify_window_seconds", 3600)
	viper.SetDefault("ratelimit.matching_per_min", 60)
	viper.SetDefault("ratelimit.mutation_per_min", 120)
	viper.SetDefault("queue.max_attempts", 3)
	viper.SetDefault("queue.backoff_base_ms", 2000)
	viper.SetDefault("queue.retention_hours", 24)
	viper.SetDefault("queue.concurrency", 10)
	viper.SetDefault("scheduler.enabled", true)
	viper.SetDefault("scheduler.digest_spec", "@every 6h")
	viper.SetDefault("scheduler.digest_top_n", 10)
	viper.SetDefault("messenger.base_url", "")
	viper.SetDefault("messenger.token", "")
	viper.SetDefault("messenger.broadcast_channel", "")

	// Try to read config file (optional)
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetString("server.port"),
			Env:  viper.GetString("server.env"),
		},
		Database: DatabaseConfig{
			DSN: viper.GetString("database.dsn"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("redis.addr"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("jwt.secret"),
		},
		Cache: CacheConfig{
			MatchTTL:      time.Duration(viper.GetInt("cache.match_ttl_seconds")) * time.Second,
			LookupTimeout: time.Duration(viper.GetInt("cache.lookup_timeout_ms")) * time.Millisecond,
		},
		RateLimit: RateLimitConfig{
			NotifyMax:      viper.GetInt("ratelimit.notify_max"),
			NotifyWindow:   time.Duration(viper.GetInt("ratelimit.notify_window_seconds")) * time.Second,
			MatchingPerMin: viper.GetInt("ratelimit.matching_per_min"),
			MutationPerMin: viper.GetInt("ratelimit.mutation_per_min"),
		},
		Queue: QueueConfig{
			MaxAttempts: viper.GetInt("queue.max_attempts"),
			BackoffBase: time.Duration(viper.GetInt("queue.backoff_base_ms")) * time.Millisecond,
			Retention:   time.Duration(viper.GetInt("queue.retention_hours")) * time.Hour,
			Concurrency: viper.GetInt("queue.concurrency"),
		},
		Scheduler: SchedulerConfig{
			Enabled:    viper.GetBool("scheduler.enabled"),
			DigestSpec: viper.GetString("scheduler.digest_spec"),
			DigestTopN: viper.GetInt("scheduler.digest_top_n"),
		},
		Messenger: MessengerConfig{
			BaseURL:          viper.GetString("messenger.base_url"),
			Token:            viper.GetString("messenger.token"),
			BroadcastChannel: viper.GetString("messenger.broadcast_channel"),
		},
	}

	return cfg, nil
}
