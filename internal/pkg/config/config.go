package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	PlannerStoreFile     = "file"
	PlannerStorePostgres = "postgres"
)

type PostgresConfig struct {
	Host     string
	Port     string
	DB       string
	Username string
	Password string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

type RepositoriesConfig struct {
	Postgres PostgresConfig
}

// OverpassConfig points at the geographic data query service.
type OverpassConfig struct {
	URL     string
	Timeout time.Duration
}

type GooglePlacesConfig struct {
	APIKey  string
	BaseURL string
}

type PixabayConfig struct {
	APIKey  string
	BaseURL string
	// Seed drives the random pick among search hits. Zero seeds from the clock.
	Seed int64
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type ProvidersConfig struct {
	Overpass     OverpassConfig
	GooglePlaces GooglePlacesConfig
	Pixabay      PixabayConfig
	Gemini       GeminiConfig
}

type PlannerConfig struct {
	Store    string
	FilePath string
}

type ObservabilityConfig struct {
	ServiceName  string
	MetricsAddr  string
	OTLPEndpoint string
	PprofAddr    string
	TraceStdout  bool
	LogLevel     string
	// LogFormat is console or json.
	LogFormat    string
}

type Config struct {
	Repositories  RepositoriesConfig
	Providers     ProvidersConfig
	Planner       PlannerConfig
	Observability ObservabilityConfig
	ServerPort    string
	// PublicURLBase qualifies the static fallback image paths.
	PublicURLBase string
	// ImageCountry is appended to stock photo searches.
	ImageCountry string
	// EnrichConcurrency bounds per-POI image resolution. 1 keeps it sequential.
	EnrichConcurrency int
	SessionSecret     string
	AllowedOrigins    []string
}

func Load() (*Config, error) {
	port := getEnvOrDefault("SERVER_PORT", "8091")
	cfg := &Config{
		Repositories: RepositoriesConfig{
			Postgres: PostgresConfig{
				Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
				Port:     getEnvOrDefault("POSTGRES_PORT", "5454"),
				DB:       getEnvOrDefault("POSTGRES_DB", "mindful_miles"),
				Username: getEnvOrDefault("POSTGRES_USER", "postgres"),
				Password: getEnvOrDefault("POSTGRES_PASSWORD", ""),
				SSLMode:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
				MaxConns: 10,
				MinConns: 1,
			},
		},
		Providers: ProvidersConfig{
			Overpass: OverpassConfig{
				URL:     getEnvOrDefault("OVERPASS_URL", "https://overpass-api.de/api/interpreter"),
				Timeout: getEnvDuration("OVERPASS_TIMEOUT", 30*time.Second),
			},
			GooglePlaces: GooglePlacesConfig{
				APIKey:  os.Getenv("GOOGLE_PLACES_API_KEY"),
				BaseURL: getEnvOrDefault("GOOGLE_PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place"),
			},
			Pixabay: PixabayConfig{
				APIKey:  os.Getenv("PIXABAY_API_KEY"),
				BaseURL: getEnvOrDefault("PIXABAY_BASE_URL", "https://pixabay.com/api/"),
				Seed:    int64(getEnvInt("PIXABAY_SEED", 0)),
			},
			Gemini: GeminiConfig{
				APIKey: os.Getenv("GEMINI_API_KEY"),
				Model:  getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
			},
		},
		Planner: PlannerConfig{
			Store:    strings.ToLower(getEnvOrDefault("PLANNER_STORE", PlannerStoreFile)),
			FilePath: getEnvOrDefault("PLANNER_FILE", "planner.json"),
		},
		Observability: ObservabilityConfig{
			ServiceName:  getEnvOrDefault("SERVICE_NAME", "mindful-miles"),
			MetricsAddr:  getEnvOrDefault("METRICS_ADDR", ":9092"),
			OTLPEndpoint: os.Getenv("OTLP_ENDPOINT"),
			PprofAddr:    os.Getenv("PPROF_ADDR"),
			TraceStdout:  getEnvBool("TRACE_STDOUT", false),
			LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
			LogFormat:    strings.ToLower(getEnvOrDefault("LOG_FORMAT", "console")),
		},
		ServerPort:        port,
		PublicURLBase:     strings.TrimRight(getEnvOrDefault("PUBLIC_URL_BASE", "http://localhost:"+port), "/"),
		ImageCountry:      getEnvOrDefault("IMAGE_COUNTRY", "India"),
		EnrichConcurrency: getEnvInt("ENRICH_CONCURRENCY", 1),
		SessionSecret:     getEnvOrDefault("SESSION_SECRET", "mindful-miles-dev-session-secret"),
		AllowedOrigins:    splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:8091")),
	}

	if cfg.EnrichConcurrency < 1 {
		cfg.EnrichConcurrency = 1
	}

	switch cfg.Planner.Store {
	case PlannerStoreFile:
		if cfg.Planner.FilePath == "" {
			return nil, fmt.Errorf("PLANNER_FILE must not be empty when PLANNER_STORE=file")
		}
	case PlannerStorePostgres:
		if cfg.Repositories.Postgres.Password == "" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD environment variable is required when PLANNER_STORE=postgres")
		}
	default:
		return nil, fmt.Errorf("unsupported PLANNER_STORE %q (want %q or %q)", cfg.Planner.Store, PlannerStoreFile, PlannerStorePostgres)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return i
}

func getEnvBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultValue
	}
	return d
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
