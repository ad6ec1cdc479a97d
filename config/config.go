package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	RedisAddr     string
	RedisPassword string

	EmailSender string
	Password    string // SMTP password
	SiteURL     string

	GatewayApiURL string
	GatewayApiKey string

	MinDeposit       float64
	MinWithdrawal    float64
	MaxLoginAttempts int
	LoginWindowMins  int
	APIRateLimit     int
	APIRateWindow    int // seconds
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "investment_db"),
		DBPort:     getEnv("DB_PORT", "5432"),

		RedisAddr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		EmailSender: getEnv("EMAIL_SENDER", "noreply@investsystem.com"),
		Password:    getEnv("EMAIL_PASSWORD", ""),
		SiteURL:     getEnv("SITE_URL", "http://localhost:3000"),

		GatewayApiURL: getEnv("GATEWAY_API_URL", "https://api.sandbox.gateway.local/v1"),
		GatewayApiKey: getEnv("GATEWAY_API_KEY", ""),

		MinDeposit:       getEnvFloat("MIN_DEPOSIT", 100),
		MinWithdrawal:    getEnvFloat("MIN_WITHDRAWAL", 100),
		MaxLoginAttempts: getEnvInt("MAX_LOGIN_ATTEMPTS", 5),
		LoginWindowMins:  getEnvInt("LOGIN_WINDOW_MINUTES", 15),
		APIRateLimit:     getEnvInt("API_RATE_LIMIT", 100),
		APIRateWindow:    getEnvInt("API_RATE_WINDOW", 3600),
	}

	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvFloat retrieves an environment variable as a float or returns the default value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Error converting environment variable %s to float: %v", key, err)
		return defaultValue
	}
	return floatValue
}
