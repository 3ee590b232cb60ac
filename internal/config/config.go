package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	PixKey       string
	KeyType      string
	MerchantName string
	MerchantCity string

	QRSize int

	// Log configuration
	LogLevel      string
	LogFilename   string
	LogMaxSize    int
	LogMaxBackups int
	LogMaxAge     int
	LogCompress   bool
}

// LoadConfig reads an optional .env file and the BRCODE_* environment.
// Values act as defaults for the command line flags.
func LoadConfig(files ...string) (*Config, error) {
	err := godotenv.Load(files...)
	if err != nil {
		// Ignore error if .env file is not found
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return &Config{
		PixKey:       os.Getenv("BRCODE_PIX_KEY"),
		KeyType:      os.Getenv("BRCODE_KEY_TYPE"),
		MerchantName: os.Getenv("BRCODE_MERCHANT_NAME"),
		MerchantCity: os.Getenv("BRCODE_MERCHANT_CITY"),

		QRSize: getEnvAsInt("BRCODE_QR_SIZE", 256),

		LogLevel:      getEnv("BRCODE_LOG_LEVEL", "INFO"),
		LogFilename:   getEnv("BRCODE_LOG_FILE", ""),
		LogMaxSize:    getEnvAsInt("BRCODE_LOG_MAX_SIZE", 10),
		LogMaxBackups: getEnvAsInt("BRCODE_LOG_MAX_BACKUPS", 3),
		LogMaxAge:     getEnvAsInt("BRCODE_LOG_MAX_AGE", 28),
		LogCompress:   getEnvAsBool("BRCODE_LOG_COMPRESS", true),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}
