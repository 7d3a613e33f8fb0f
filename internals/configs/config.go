package configs

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"fitstudio_backend/internals/helpers/logger"
)

// placeholder shipped in the sample .env; treated as "no key".
const placeholderAPIKey = "Enter_your_API_here"

type Config struct {
	Environment    string
	Port           string
	SeedSampleData bool

	Database DatabaseConfig
	HTTP     HTTPConfig
	Agent    AgentConfig
	Auth     AuthConfig
	Payment  PaymentConfig
	Notify   NotifyConfig
	Log      logger.Config
}

type DatabaseConfig struct {
	URL         string
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
}

type HTTPConfig struct {
	CORSOrigins    []string
	RateLimitMax   int
	RequestTimeout time.Duration
}

type AgentConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	Timeout        time.Duration
	MaxIterations  int
	RatePerSecond  float64
	MaxQueryLength int
}

// Configured reports whether a real reasoning provider key is present.
func (a AgentConfig) Configured() bool {
	k := strings.TrimSpace(a.APIKey)
	return k != "" && k != placeholderAPIKey
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	Required  bool
}

type PaymentConfig struct {
	MidtransServerKey string
	MidtransUseProd   bool
	// read but unused: the card/email/SMS integrations are mocked
	StripeSecretKey string
}

type NotifyConfig struct {
	StaffEmail      string
	SendgridAPIKey  string
	TwilioAuthToken string
}

// =======================
// ENV LOADER
// =======================

// LoadEnv reads .env (when present) then the process environment into a Config.
func LoadEnv() (*Config, error) {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, using system environment")
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Environment:    GetEnv("APP_ENV", "development"),
		Port:           GetEnv("PORT", "8000"),
		SeedSampleData: GetEnvBool("SEED_SAMPLE_DATA", false),
		Database: DatabaseConfig{
			URL:             GetEnv("DATABASE_URL"),
			Host:            GetEnv("DB_HOST", "localhost"),
			Port:            GetEnv("DB_PORT", "5432"),
			User:            GetEnv("DB_USER", "postgres"),
			Password:        GetEnv("DB_PASSWORD"),
			Name:            GetEnv("DB_NAME", "multi_agent_db"),
			SSLMode:         GetEnv("DB_SSLMODE", "disable"),
			AutoMigrate:     GetEnvBool("DB_AUTO_MIGRATE", true),
			MaxOpenConns:    GetEnvInt("DB_MAX_OPEN_CONNS", 20),
			MaxIdleConns:    GetEnvInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxIdleTime: 60 * time.Second,
			ConnMaxLifetime: 10 * time.Minute,
		},
		HTTP: HTTPConfig{
			CORSOrigins:    splitCSV(GetEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),
			RateLimitMax:   GetEnvInt("RATE_LIMIT_PER_MIN", 120),
			RequestTimeout: time.Duration(GetEnvInt("REQUEST_TIMEOUT", 15)) * time.Second,
		},
		Agent: AgentConfig{
			APIKey:         GetEnv("OPENAI_API_KEY"),
			BaseURL:        strings.TrimRight(GetEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"), "/"),
			Model:          GetEnv("OPENAI_MODEL", "gpt-4o-mini"),
			Timeout:        time.Duration(GetEnvInt("AGENT_TIMEOUT", 30)) * time.Second,
			MaxIterations:  GetEnvInt("AGENT_MAX_ITERATIONS", 3),
			RatePerSecond:  GetEnvFloat("AGENT_RATE_PER_SEC", 2),
			MaxQueryLength: GetEnvInt("MAX_QUERY_LENGTH", 1000),
		},
		Auth: AuthConfig{
			JWTSecret: GetEnv("JWT_SECRET", GetEnv("JWT_SECRET_KEY")),
			TokenTTL:  time.Duration(GetEnvInt("JWT_TTL_MINUTES", 30)) * time.Minute,
			Required:  GetEnvBool("AUTH_REQUIRED", false),
		},
		Payment: PaymentConfig{
			MidtransServerKey: GetEnv("MIDTRANS_SERVER_KEY"),
			MidtransUseProd:   GetEnvBool("MIDTRANS_USE_PROD", false),
			StripeSecretKey:   GetEnv("STRIPE_SECRET_KEY"),
		},
		Notify: NotifyConfig{
			StaffEmail:      GetEnv("STAFF_NOTIFY_EMAIL", "staff@fitness.com"),
			SendgridAPIKey:  GetEnv("SENDGRID_API_KEY"),
			TwilioAuthToken: GetEnv("TWILIO_AUTH_TOKEN"),
		},
		Log: logger.Config{
			Level:  GetEnv("LOG_LEVEL", "info"),
			Format: GetEnv("LOG_FORMAT", "json"),
			Output: GetEnv("LOG_OUTPUT", "stdout"),
		},
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	var problems []string
	if c.Database.URL == "" && c.Database.Host == "" {
		problems = append(problems, "DATABASE_URL or DB_HOST is required")
	}
	if c.Auth.Required && c.Auth.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET is required when AUTH_REQUIRED=true")
	}
	if c.Agent.MaxQueryLength <= 0 {
		problems = append(problems, "MAX_QUERY_LENGTH must be positive")
	}
	if c.Agent.MaxIterations <= 0 {
		problems = append(problems, "AGENT_MAX_ITERATIONS must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(problems, ", "))
	}
	return nil
}

// DSN returns DATABASE_URL verbatim or assembles one from the DB_* parts.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   d.Host + ":" + d.Port,
		Path:   "/" + d.Name,
	}
	q := url.Values{}
	q.Set("sslmode", d.SSLMode)
	q.Set("application_name", "fitstudio")
	u.RawQuery = q.Encode()
	return u.String()
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key))); err == nil {
		return v
	}
	return def
}

func GetEnvFloat(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv(key)), 64); err == nil {
		return v
	}
	return def
}

func GetEnvBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key))); err == nil {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
