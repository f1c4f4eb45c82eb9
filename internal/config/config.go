package config

import "os"

type Config struct {
	Port string

	// GeminiAPIKey enables the AI-dependent endpoints. When empty the server
	// still starts; those endpoints degrade per the error taxonomy.
	GeminiAPIKey string
	ModelName    string

	// AllowedOrigin is the front-end origin permitted by CORS.
	AllowedOrigin string

	UseMockLLM bool // use the mock model even when a key is present
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "TRUE"
}

// Load reads all env vars and builds the config.
func Load() *Config {
	return &Config{
		Port: getEnv("ORATO_PORT", "8080"),

		GeminiAPIKey: getEnv("ORATO_GEMINI_API_KEY", ""),
		ModelName:    getEnv("ORATO_MODEL_NAME", "gemini-2.5-flash"),

		AllowedOrigin: getEnv("ORATO_ALLOWED_ORIGIN", "*"),

		UseMockLLM: getBoolEnv("ORATO_USE_MOCK_LLM", false),
	}
}
