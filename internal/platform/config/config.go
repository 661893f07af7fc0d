package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Notice store backends.
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StoreDisabled = "disabled"
)

// Server captures process level configuration.
type Server struct {
	Addr         string
	LogLevel     string
	MaxBodyBytes int64
	OTLPEndpoint string
	TED          TED
	NoticeStore  NoticeStore
	Redis        RedisConfig
	CORS         CORS
}

// TED holds the remote notice API settings. APIKey must never be logged.
type TED struct {
	BaseURL string
	APIKey  string
}

// NoticeStore selects where the manual-testing notice lives.
type NoticeStore struct {
	Backend string
	Key     string
}

// RedisConfig configures the shared go-redis client.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// CORS lists what browsers may send cross-origin.
type CORS struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:         envOr("GPP_GATEWAY_ADDR", ":8080"),
		LogLevel:     envOr("LOG_LEVEL", "info"),
		MaxBodyBytes: int64(envInt("MAX_BODY_BYTES", 10<<20)),
		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		TED: TED{
			BaseURL: os.Getenv("TED_API_BASE_URL"),
			APIKey:  os.Getenv("TED_API_KEY"),
		},
		NoticeStore: NoticeStore{
			Backend: strings.ToLower(envOr("NOTICE_STORE", StoreMemory)),
			Key:     os.Getenv("MANUAL_NOTICE_KEY"),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		CORS: CORS{
			AllowedOrigins: envList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods: envList("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowedHeaders: envList("CORS_ALLOWED_HEADERS", []string{"*"}),
		},
	}
}

// Validate rejects combinations the server cannot start with.
func (s Server) Validate() error {
	switch s.NoticeStore.Backend {
	case StoreMemory, StoreDisabled:
	case StoreRedis:
		if s.Redis.URL == "" {
			return fmt.Errorf("NOTICE_STORE=redis requires REDIS_URL")
		}
	default:
		return fmt.Errorf("unknown NOTICE_STORE %q", s.NoticeStore.Backend)
	}
	if s.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func envList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
