package config

import "os"

type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	ServerPort    string
	SessionSecret string
	AdminRegCode  string
	UploadDir     string
	AllowedOrigin string
	SessionMaxAge int
}

func Load() *Config {
	return &Config{
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "quizapp"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		SessionSecret: getEnv("SESSION_SECRET", "session-secret-change-me"),
		AdminRegCode:  getEnv("ADMIN_REGISTRATION_CODE", "ADMIN123"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads/notes"),
		AllowedOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),
		SessionMaxAge: 3 * 24 * 60 * 60,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
