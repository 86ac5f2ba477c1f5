package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Browser   BrowserConfig
	Scraper   ScraperConfig
	Engine    EngineConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
	Store     StoreConfig
	ImageGen  ImageGenConfig
	Webhook   WebhookConfig
	Log       LogConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8080
	Mode string // "debug", "release", "test"; default: "release"

	// MaxUploadBytes caps a single uploaded image.
	MaxUploadBytes int64 // default: 5 MiB
}

// BrowserConfig controls the optional Rod browser used for JS-heavy brand sites.
type BrowserConfig struct {
	// Enabled launches a headless browser at startup. When false every
	// page is fetched over plain HTTP.
	Enabled bool // default: false

	Headless   bool // default: true
	MaxPages   int  // default: 4
	NoSandbox  bool // default: false
	BrowserBin string

	// DefaultProxy is the proxy URL handed to the browser launcher.
	DefaultProxy string
}

// ScraperConfig controls the brand scrape pipeline.
type ScraperConfig struct {
	// FetchTimeout bounds every single fetch (main page or stylesheet).
	FetchTimeout time.Duration // default: 15s

	// MaxStylesheets is how many linked stylesheets are fetched per page.
	MaxStylesheets int // default: 5

	// StylesheetConcurrency limits parallel stylesheet fetches.
	StylesheetConcurrency int // default: 5

	// ExcludedStylesheetHosts are never fetched.
	ExcludedStylesheetHosts []string // default: ["fonts.googleapis.com"]

	// NavigationTimeout is the max time for a browser navigation.
	NavigationTimeout time.Duration // default: 15s

	// BlockedResourceTypes are hijacked away during browser rendering.
	BlockedResourceTypes []string
}

// EngineConfig controls the main-page engine race.
type EngineConfig struct {
	// EscalationDelays is the staged start delay for each engine tier.
	EscalationDelays []time.Duration // default: [0s, 3s]

	// DomainMemoryTTL is how long a winning engine is remembered per domain.
	DomainMemoryTTL time.Duration // default: 1h
}

// RateLimitConfig controls per-client rate limiting.
type RateLimitConfig struct {
	Enabled           bool    // default: true
	RequestsPerSecond float64 // default: 5
	Burst             int     // default: 10
}

// CacheConfig controls the scrape result cache.
type CacheConfig struct {
	MaxEntries int           // default: 500
	TTL        time.Duration // default: 1h
}

// StoreConfig controls the SQLite database.
type StoreConfig struct {
	// Path is the SQLite file. ":memory:" keeps everything in memory.
	Path string // default: "brandscout.db"

	// SeedRegions loads the bundled regional profiles on startup.
	SeedRegions bool // default: true
}

// ImageGenConfig controls the OpenAI-compatible image generation endpoint.
type ImageGenConfig struct {
	APIKey      string
	BaseURL     string        // default: "https://openrouter.ai/api/v1"
	Model       string        // default: "google/gemini-2.0-flash-exp:free"
	Temperature float32       // default: 0.7
	MaxTokens   int           // default: 4000
	Timeout     time.Duration // default: 60s
}

// WebhookConfig controls creative.generated notifications.
type WebhookConfig struct {
	URL    string
	Secret string
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           envOr("BRANDSCOUT_HOST", "0.0.0.0"),
			Port:           envIntOr("BRANDSCOUT_PORT", 8080),
			Mode:           envOr("BRANDSCOUT_MODE", "release"),
			MaxUploadBytes: int64(envIntOr("BRANDSCOUT_MAX_UPLOAD_BYTES", 5*1024*1024)),
		},
		Browser: BrowserConfig{
			Enabled:      envBoolOr("BRANDSCOUT_BROWSER_ENABLED", false),
			Headless:     envBoolOr("BRANDSCOUT_HEADLESS", true),
			MaxPages:     envIntOr("BRANDSCOUT_MAX_PAGES", 4),
			NoSandbox:    envBoolOr("BRANDSCOUT_NO_SANDBOX", false),
			BrowserBin:   os.Getenv("BRANDSCOUT_BROWSER_BIN"),
			DefaultProxy: os.Getenv("BRANDSCOUT_PROXY"),
		},
		Scraper: ScraperConfig{
			FetchTimeout:            envDurationOr("BRANDSCOUT_FETCH_TIMEOUT", 15*time.Second),
			MaxStylesheets:          envIntOr("BRANDSCOUT_MAX_STYLESHEETS", 5),
			StylesheetConcurrency:   envIntOr("BRANDSCOUT_STYLESHEET_CONCURRENCY", 5),
			ExcludedStylesheetHosts: envSliceOr("BRANDSCOUT_EXCLUDED_STYLESHEET_HOSTS", []string{"fonts.googleapis.com"}),
			NavigationTimeout:       envDurationOr("BRANDSCOUT_NAV_TIMEOUT", 15*time.Second),
			BlockedResourceTypes: envSliceOr("BRANDSCOUT_BLOCKED_RESOURCES", []string{
				"Font", "Media",
			}),
		},
		Engine: EngineConfig{
			EscalationDelays: envDurationSliceOr("BRANDSCOUT_ESCALATION_DELAYS", []time.Duration{0, 3 * time.Second}),
			DomainMemoryTTL:  envDurationOr("BRANDSCOUT_DOMAIN_MEMORY_TTL", time.Hour),
		},
		RateLimit: RateLimitConfig{
			Enabled:           envBoolOr("BRANDSCOUT_RATE_ENABLED", true),
			RequestsPerSecond: envFloatOr("BRANDSCOUT_RATE_RPS", 5.0),
			Burst:             envIntOr("BRANDSCOUT_RATE_BURST", 10),
		},
		Cache: CacheConfig{
			MaxEntries: envIntOr("BRANDSCOUT_CACHE_MAX_ENTRIES", 500),
			TTL:        envDurationOr("BRANDSCOUT_CACHE_TTL", time.Hour),
		},
		Store: StoreConfig{
			Path:        envOr("BRANDSCOUT_DB_PATH", "brandscout.db"),
			SeedRegions: envBoolOr("BRANDSCOUT_SEED_REGIONS", true),
		},
		ImageGen: ImageGenConfig{
			APIKey:      envOr("BRANDSCOUT_IMAGE_API_KEY", os.Getenv("OPENROUTER_API_KEY")),
			BaseURL:     envOr("BRANDSCOUT_IMAGE_BASE_URL", "https://openrouter.ai/api/v1"),
			Model:       envOr("BRANDSCOUT_IMAGE_MODEL", "google/gemini-2.0-flash-exp:free"),
			Temperature: float32(envFloatOr("BRANDSCOUT_IMAGE_TEMPERATURE", 0.7)),
			MaxTokens:   envIntOr("BRANDSCOUT_IMAGE_MAX_TOKENS", 4000),
			Timeout:     envDurationOr("BRANDSCOUT_IMAGE_TIMEOUT", 60*time.Second),
		},
		Webhook: WebhookConfig{
			URL:    os.Getenv("BRANDSCOUT_WEBHOOK_URL"),
			Secret: os.Getenv("BRANDSCOUT_WEBHOOK_SECRET"),
		},
		Log: LogConfig{
			Level:  envOr("BRANDSCOUT_LOG_LEVEL", "info"),
			Format: envOr("BRANDSCOUT_LOG_FORMAT", "json"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}

func envDurationSliceOr(key string, fallback []time.Duration) []time.Duration {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]time.Duration, 0, len(parts))
		for _, p := range parts {
			if d, err := time.ParseDuration(strings.TrimSpace(p)); err == nil {
				result = append(result, d)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
