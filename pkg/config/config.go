package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	LogFilePath string

	MongoURI      string
	MongoDatabase string

	AIAPIKey  string
	AIBaseURL string
	AIModel   string

	// Path to a Google service account key for the Vision OCR client.
	GoogleCredentials string

	UploadDir string

	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int
	AuthRequired  bool
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", "3000"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFilePath: getEnv("LOG_FILE_PATH", "logs/combined.log"),

		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "resume_chat"),

		AIAPIKey:  os.Getenv("AI_API_KEY"),
		AIBaseURL: getEnv("AI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/"),
		AIModel:   getEnv("AI_MODEL", "gemini-2.0-flash"),

		GoogleCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),

		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "ai-resume-backend"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 7*24*60),
		AuthRequired:  getEnvBool("AUTH_REQUIRED", false),
	}
}

// Production reports whether error messages should be masked at the
// HTTP boundary.
func (c Config) Production() bool { return c.Environment == "production" }

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
