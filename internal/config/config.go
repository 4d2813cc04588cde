package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Ai       AIConfig
	Profiles []ProfileConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JWTSecret        string
	TokenExpiryHours int
}

type AIConfig struct {
	RequestTimeoutSeconds int
	OllamaBaseURL         string
	OpenAIAPIKey          string
	GeminiAPIKey          string
}

// ProfileConfig describes one selectable AI configuration. The set of
// profiles is fixed at startup; sessions reference them by key.
type ProfileConfig struct {
	Key             string
	Name            string
	Provider        string
	Model           string
	SystemPromptRef string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JWTSecret:        getEnv("JWT_SECRET", ""),
			TokenExpiryHours: getEnvAsInt("JWT_EXPIRY_HOURS", 24),
		},
		Ai: AIConfig{
			RequestTimeoutSeconds: getEnvAsInt("AI_REQUEST_TIMEOUT_SECONDS", 60),
			OllamaBaseURL:         getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OpenAIAPIKey:          getEnv("OPENAI_API_KEY", ""),
			GeminiAPIKey:          getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
		Profiles: loadProfiles(),
	}
}

// loadProfiles builds the static AI profile table. Every field can be
// overridden via environment, mirroring the deployment knobs of the
// original product config.
func loadProfiles() []ProfileConfig {
	return []ProfileConfig{
		{
			Key:             "default",
			Name:            "Standard (Gemini Flash)",
			Provider:        getEnv("AI_CONFIG_DEFAULT_PROVIDER", "gemini"),
			Model:           getEnv("AI_CONFIG_DEFAULT_MODEL", "gemini-1.5-flash-latest"),
			SystemPromptRef: getEnv("AI_CONFIG_DEFAULT_PROMPT_VIEW", "support-system-prompt"),
		},
		{
			Key:             "gemini-pro",
			Name:            "Advanced (Gemini Pro)",
			Provider:        getEnv("AI_CONFIG_GEMINI_PRO_PROVIDER", "gemini"),
			Model:           getEnv("AI_CONFIG_GEMINI_PRO_MODEL", "gemini-1.5-pro-latest"),
			SystemPromptRef: getEnv("AI_CONFIG_GEMINI_PRO_PROMPT_VIEW", "support-system-prompt"),
		},
		{
			Key:             "alternative-prompt",
			Name:            "Experimental Prompt (Gemini Flash)",
			Provider:        getEnv("AI_CONFIG_ALT_PROMPT_PROVIDER", "gemini"),
			Model:           getEnv("AI_CONFIG_ALT_PROMPT_MODEL", "gemini-1.5-flash-latest"),
			SystemPromptRef: getEnv("AI_CONFIG_ALT_PROMPT_PROMPT_VIEW", "support-system-prompt-experimental"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
