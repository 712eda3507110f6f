package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	PostgreSQL PostgreSQLConfig
	Server     ServerConfig
	Dataset    DatasetConfig
	Analysis   AnalysisConfig
	Chat       ChatConfig
	OpenAI     OpenAIConfig
}

// PostgreSQLConfig holds the vector index database configuration. The index
// is optional; an empty DSN with no PG_HOST override disables it.
type PostgreSQLConfig struct {
	DSN                string
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
	Enabled            bool
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

// DatasetConfig holds paths to the dataset files
type DatasetConfig struct {
	AnalyzedPath  string
	ListingsPath  string
	BankRatesPath string
}

// AnalysisConfig holds the financial model assumptions
type AnalysisConfig struct {
	DownPaymentPercent    float64
	LoanRate              float64
	TaxRate               float64
	AppreciationRate      float64
	RentEscalation        float64
	InvestRate            float64
	MonthlySaving         float64
	TenureYears           int
	DeductCapitalGainsTax bool
	SubtractRentPaid      bool
}

// ChatConfig holds chat pipeline configuration
type ChatConfig struct {
	RAGTimeout int // seconds
}

// OpenAIConfig holds OpenAI API configuration
type OpenAIConfig struct {
	APIKey              string
	APIBase             string
	ChatModel           string
	ChatTemperature     float64
	ChatMaxTokens       int
	EmbeddingModel      string
	EmbeddingDimensions int
	BatchSize           int
	Timeout             int
	Enabled             bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		PostgreSQL: PostgreSQLConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("POSTGRESQL_URI", getEnv("PG_DSN", ""))),
			Host:               getEnv("PG_HOST", ""),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "homewise"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
		},
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET,POST,PUT,DELETE,OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type,Authorization"),
		},
		Dataset: DatasetConfig{
			AnalyzedPath:  getEnv("DATASET_ANALYZED_PATH", "data/outputs/analyzed_properties.csv"),
			ListingsPath:  getEnv("DATASET_LISTINGS_PATH", "data/inputs/properties.csv"),
			BankRatesPath: getEnv("DATASET_BANK_RATES_PATH", "data/inputs/bank_rates.json"),
		},
		Analysis: AnalysisConfig{
			DownPaymentPercent:    getEnvAsFloat("ANALYSIS_DOWN_PAYMENT_PCT", 20),
			LoanRate:              getEnvAsFloat("ANALYSIS_LOAN_RATE", 8.5),
			TaxRate:               getEnvAsFloat("ANALYSIS_TAX_RATE", 20),
			AppreciationRate:      getEnvAsFloat("ANALYSIS_APPRECIATION_RATE", 5),
			RentEscalation:        getEnvAsFloat("ANALYSIS_RENT_ESCALATION", 5),
			InvestRate:            getEnvAsFloat("ANALYSIS_INVEST_RATE", 10),
			MonthlySaving:         getEnvAsFloat("ANALYSIS_MONTHLY_SAVING", 15000),
			TenureYears:           getEnvAsInt("ANALYSIS_TENURE_YEARS", 20),
			DeductCapitalGainsTax: getEnvAsBool("ANALYSIS_DEDUCT_TAX", true),
			SubtractRentPaid:      getEnvAsBool("ANALYSIS_SUBTRACT_RENT", true),
		},
		Chat: ChatConfig{
			RAGTimeout: getEnvAsInt("CHAT_RAG_TIMEOUT", 10),
		},
		OpenAI: OpenAIConfig{
			APIKey:              getEnv("OPENAI_API_KEY", ""),
			APIBase:             getEnv("OPENAI_API_BASE", "https://api.openai.com/v1"),
			ChatModel:           getEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini"),
			ChatTemperature:     getEnvAsFloat("OPENAI_CHAT_TEMPERATURE", 0.2),
			ChatMaxTokens:       getEnvAsInt("OPENAI_CHAT_MAX_TOKENS", 1024),
			EmbeddingModel:      getEnv("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small"),
			EmbeddingDimensions: getEnvAsInt("OPENAI_EMBEDDING_DIMENSIONS", 1536),
			BatchSize:           getEnvAsInt("OPENAI_BATCH_SIZE", 100),
			Timeout:             getEnvAsInt("OPENAI_TIMEOUT", 30),
			Enabled:             getEnv("OPENAI_API_KEY", "") != "",
		},
	}

	cfg.PostgreSQL.Enabled = cfg.PostgreSQL.DSN != "" || cfg.PostgreSQL.Host != ""

	return cfg, nil
}

// GetPostgreSQLDSN returns PostgreSQL connection string
func (c *Config) GetPostgreSQLDSN() string {
	if c.PostgreSQL.DSN != "" {
		return c.PostgreSQL.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgreSQL.Host,
		c.PostgreSQL.Port,
		c.PostgreSQL.User,
		c.PostgreSQL.Password,
		c.PostgreSQL.Database,
		c.PostgreSQL.SSLMode,
	)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default %t", key, defaultValue)
		return defaultValue
	}
	return value
}
