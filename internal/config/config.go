package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	DatasetFile    string        // bang dataset JSON; full set: https://duckduckgo.com/bang.js
	LocalBangsFile string        // path to the local bang overrides YAML (optional, empty = no overrides)
	ReloadInterval time.Duration // interval to reload the bang dictionary (default: 24h)

	DBPath string // path to the SQLite database file

	QueueWidth  int // worker count per background queue
	QueueBuffer int // pending task capacity per background queue

	SessionTTL time.Duration // idle lifetime of anonymous session state

	NotifyWebhookURL string        // operator webhook for background failures (optional, empty = disabled)
	NotifyTimeout    time.Duration // timeout for webhook delivery

	CORSOrigins []string // allowed CORS origins (empty = same-origin only use, allow any)

	AdminCIDRs []string // IPs/CIDRs allowed on /reload and /infra (empty = open)
	TrustProxy bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)

	// Redis (optional: empty addr falls back to in-memory session state)
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("BANG_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("BANG_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("BANG_LOG_LEVEL", "info"),
		PrettyLog: mustBool("BANG_PRETTY_LOG", true),

		// Bang dictionary
		DatasetFile:    getenv("BANG_DATASET_FILE", "data/bangs.json"),
		LocalBangsFile: getenv("BANG_LOCAL_BANGS_FILE", ""),
		ReloadInterval: mustDuration("BANG_RELOAD_INTERVAL", 24*time.Hour),

		// Storage
		DBPath: getenv("BANG_DB_PATH", "data/bang.db"),

		// Background work
		QueueWidth:  getenvInt("BANG_QUEUE_WIDTH", 10),
		QueueBuffer: getenvInt("BANG_QUEUE_BUFFER", 256),

		// Anonymous sessions
		SessionTTL: mustDuration("BANG_SESSION_TTL", 24*time.Hour),

		// Operator notifications
		NotifyWebhookURL: getenv("BANG_NOTIFY_WEBHOOK_URL", ""),
		NotifyTimeout:    mustDuration("BANG_NOTIFY_TIMEOUT", 5*time.Second),

		CORSOrigins: splitAndTrim(getenv("BANG_CORS_ORIGINS", "")),

		// Operator endpoint restrictions
		AdminCIDRs: splitAndTrim(getenv("BANG_ADMIN_CIDRS", "")),
		TrustProxy: mustBool("BANG_TRUST_PROXY", true),

		// Redis settings
		RedisAddr:           getenv("BANG_REDIS_ADDR", ""),
		RedisUser:           getenv("BANG_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("BANG_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("BANG_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfg.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		if cfg.NotifyWebhookURL != "" {
			cfgCopy.NotifyWebhookURL = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
