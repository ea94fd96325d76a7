package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
    // Server
    Port        string
    Environment string

    // Database
    Database DatabaseConfig

    // Conversation sessions
    Session SessionConfig

    // Image analysis limits
    Image ImageConfig

    // Clinic data
    Clinic ClinicConfig

    // Triage defaults
    DefaultLanguage string
}

type DatabaseConfig struct {
    Type     string // "mongodb"
    URI      string
    Name     string
    Host     string
    Port     string
    Username string
    Password string

    // Connection pool settings
    MaxConnections int
    MinConnections int
    MaxIdleTime    time.Duration
}

type SessionConfig struct {
    // "memory" or "mongodb"
    Store string
    // Inactivity window after which a session resets to idle
    Timeout time.Duration
    // How often the in-process store sweeps expired sessions
    CleanupInterval time.Duration
}

type ImageConfig struct {
    MaxBytes  int64
    MinWidth  int
    MinHeight int
}

type ClinicConfig struct {
    // Bundled clinic list, used to seed the database and as a fallback
    DataPath   string
    MaxResults int
}

var cfg *Config

// Load initializes the configuration
func Load() error {
    // Load .env file
    if err := godotenv.Load(); err != nil {
        log.Println("No .env file found, using environment variables")
    }

    cfg = &Config{
        Port:        getEnv("PORT", "8080"),
        Environment: getEnv("ENVIRONMENT", "development"),

        Database: DatabaseConfig{
            Type:     getEnv("DB_TYPE", "mongodb"),
            URI:      getEnv("DATABASE_URL", ""),
            Name:     getEnv("DB_NAME", "swasthya_chatbot"),
            Host:     getEnv("DB_HOST", "localhost"),
            Port:     getEnv("DB_PORT", "27017"),
            Username: getEnv("DB_USERNAME", ""),
            Password: getEnv("DB_PASSWORD", ""),

            MaxConnections: getEnvAsInt("DB_MAX_CONNECTIONS", 100),
            MinConnections: getEnvAsInt("DB_MIN_CONNECTIONS", 10),
            MaxIdleTime:    getEnvAsDuration("DB_MAX_IDLE_TIME", "30m"),
        },

        Session: SessionConfig{
            Store:           getEnv("SESSION_STORE", "memory"),
            Timeout:         getEnvAsDuration("SESSION_TIMEOUT", "10m"),
            CleanupInterval: getEnvAsDuration("SESSION_CLEANUP_INTERVAL", "5m"),
        },

        Image: ImageConfig{
            MaxBytes:  int64(getEnvAsInt("IMAGE_MAX_BYTES", 10*1024*1024)),
            MinWidth:  getEnvAsInt("IMAGE_MIN_WIDTH", 100),
            MinHeight: getEnvAsInt("IMAGE_MIN_HEIGHT", 100),
        },

        Clinic: ClinicConfig{
            DataPath:   getEnv("CLINIC_DATA_PATH", "./data/clinics.json"),
            MaxResults: getEnvAsInt("CLINIC_MAX_RESULTS", 3),
        },

        DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "english"),
    }

    // Validate configuration
    if err := validate(); err != nil {
        return fmt.Errorf("configuration validation failed: %w", err)
    }

    return nil
}

// Get returns the loaded configuration
func Get() *Config {
    if cfg == nil {
        log.Fatal("Configuration not loaded. Call Load() first")
    }
    return cfg
}

// Helper functions
func getEnv(key, defaultValue string) string {
    if value := os.Getenv(key); value != "" {
        return value
    }
    return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
    valueStr := getEnv(key, "")
    if value, err := strconv.Atoi(valueStr); err == nil {
        return value
    }
    return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
    valueStr := getEnv(key, defaultValue)
    if duration, err := time.ParseDuration(valueStr); err == nil {
        return duration
    }
    duration, _ := time.ParseDuration(defaultValue)
    return duration
}

func validate() error {
    if cfg.Session.Timeout <= 0 {
        return fmt.Errorf("session timeout must be positive")
    }

    if cfg.Image.MaxBytes <= 0 || cfg.Image.MinWidth <= 0 || cfg.Image.MinHeight <= 0 {
        return fmt.Errorf("image limits must be positive")
    }

    if cfg.Clinic.MaxResults <= 0 {
        return fmt.Errorf("clinic max results must be positive")
    }

    return nil
}

// BuildDatabaseURI constructs the database URI if not provided
func (c *Config) BuildDatabaseURI() string {
    if c.Database.URI != "" {
        return c.Database.URI
    }

    switch c.Database.Type {
    case "mongodb":
        if c.Database.Username != "" && c.Database.Password != "" {
            return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s",
                c.Database.Username,
                c.Database.Password,
                c.Database.Host,
                c.Database.Port,
                c.Database.Name,
            )
        }
        return fmt.Sprintf("mongodb://%s:%s/%s",
            c.Database.Host,
            c.Database.Port,
            c.Database.Name,
        )
    default:
        return ""
    }
}
