package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Admin     AdminConfig
	Email     EmailConfig
	AI        AIConfig
	Content   ContentConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port           string
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host              string
	Port              int
	User              string
	Password          string
	Name              string
	SSLMode           string
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

type AdminConfig struct {
	PasswordHash string
	JWTSecret    string
	TokenTTL     time.Duration
	TOTPSecret   string // optional second factor; empty disables it
}

type EmailConfig struct {
	AWSRegion      string
	FromAddress    string
	ContactAddress string
}

type AIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type ContentConfig struct {
	ContentFile   string
	MessagesDir   string
	KnowledgeBase string
}

type RedisConfig struct {
	Addr     string // empty means in-process attempt store
	Password string
	DB       int
}

type RateLimitConfig struct {
	PublicPerMinute int
	LoginPerMinute  int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	jwtSecret := getEnv("ADMIN_JWT_SECRET", "")
	if jwtSecret == "" {
		return nil, fmt.Errorf("ADMIN_JWT_SECRET is required")
	}

	passwordHash := getEnv("ADMIN_PASSWORD_HASH", "")
	if passwordHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}

	env := getEnv("ENV", "development")

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			Env:            env,
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			AllowedOrigins: parseAllowedOrigins(env),
		},
		Database: DatabaseConfig{
			Host:              getEnv("DB_HOST", "localhost"),
			Port:              getEnvAsInt("DB_PORT", 5432),
			User:              getEnv("DB_USER", "postgres"),
			Password:          getEnv("DB_PASSWORD", ""),
			Name:              getEnv("DB_NAME", "portfolio"),
			SSLMode:           getEnv("DB_SSLMODE", "disable"),
			MaxConns:          int32(getEnvAsInt("DB_MAX_CONNS", 10)),
			MinConns:          int32(getEnvAsInt("DB_MIN_CONNS", 2)),
			MaxConnLifetime:   getEnvAsDuration("DB_MAX_CONN_LIFETIME", 5*time.Minute),
			MaxConnIdleTime:   getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 1*time.Minute),
			HealthCheckPeriod: getEnvAsDuration("DB_HEALTH_CHECK_PERIOD", 1*time.Minute),
		},
		Admin: AdminConfig{
			PasswordHash: passwordHash,
			JWTSecret:    jwtSecret,
			TokenTTL:     getEnvAsDuration("ADMIN_TOKEN_TTL", 1*time.Hour),
			TOTPSecret:   getEnv("ADMIN_TOTP_SECRET", ""),
		},
		Email: EmailConfig{
			AWSRegion:      getEnv("AWS_REGION", "eu-central-1"),
			FromAddress:    getEnv("EMAIL_FROM_ADDRESS", ""),
			ContactAddress: getEnv("CONTACT_EMAIL", ""),
		},
		AI: AIConfig{
			APIKey:  getEnv("AI_API_KEY", ""),
			BaseURL: getEnv("AI_BASE_URL", "https://api.groq.com/openai/v1"),
			Model:   getEnv("AI_MODEL", "llama-3.1-8b-instant"),
		},
		Content: ContentConfig{
			ContentFile:   getEnv("CONTENT_FILE", "data/content.json"),
			MessagesDir:   getEnv("MESSAGES_DIR", "data/messages"),
			KnowledgeBase: getEnv("KNOWLEDGE_BASE_FILE", "data/knowledge_base.json"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		RateLimit: RateLimitConfig{
			PublicPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 30),
			LoginPerMinute:  getEnvAsInt("LOGIN_RATE_LIMIT_PER_MINUTE", 5),
		},
	}

	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	if err := validateJWTSecret(jwtSecret, env); err != nil {
		return nil, err
	}

	if !strings.HasPrefix(passwordHash, "$2") {
		return nil, fmt.Errorf("ADMIN_PASSWORD_HASH must be a bcrypt hash")
	}

	return cfg, nil
}

// validateJWTSecret enforces minimum security standards for the signing secret
func validateJWTSecret(secret, env string) error {
	minLength := 16
	if env == "production" {
		minLength = 32
	}

	if len(secret) < minLength {
		return fmt.Errorf("ADMIN_JWT_SECRET must be at least %d characters in %s environment (got %d)",
			minLength, env, len(secret))
	}

	weakSecrets := []string{
		"secret", "test", "password", "12345", "changeme",
		"admin", "root", "default", "example",
	}

	secretLower := strings.ToLower(secret)
	for _, weak := range weakSecrets {
		if secretLower == weak {
			return fmt.Errorf("ADMIN_JWT_SECRET cannot be a common weak value")
		}
	}

	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultVal
}

func parseAllowedOrigins(env string) []string {
	if env == "production" {
		originsStr := getEnv("ALLOWED_ORIGINS", "")
		if originsStr == "" {
			return []string{}
		}
		origins := strings.Split(originsStr, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		return origins
	}

	// Development: allow localhost variants
	return []string{
		"http://localhost:3000",
		"http://localhost:8080",
		"http://localhost:5173",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:8080",
		"http://127.0.0.1:5173",
	}
}
