package config

import (
	"os"
	"strings"
)

type Config struct {
	DBUser         string
	DBPassword     string
	DBHost         string
	DBPort         string
	DBName         string
	Port           string
	ImagesDir      string
	ReportSchedule string
	ReportTimezone string
	ReportPhone    string
	ReportURL      string
}

func LoadConfig() *Config {
	return &Config{
		DBUser:         getEnv("DB_USER", "root"),
		DBPassword:     getEnvFromFile("DB_PASSWORD_FILE", "DB_PASSWORD", ""),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "3306"),
		DBName:         getEnv("DB_NAME", "kiosk"),
		Port:           getEnv("PORT", "5001"),
		ImagesDir:      getEnv("IMAGES_DIR", "public/images"),
		ReportSchedule: getEnv("REPORT_SCHEDULE", "30 19 * * *"),
		ReportTimezone: getEnv("REPORT_TIMEZONE", "Asia/Jerusalem"),
		ReportPhone:    getEnv("REPORT_PHONE", "972500000000"),
		ReportURL:      getEnv("REPORT_URL", "/send-daily-whatsapp"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFromFile(fileKey, envKey, defaultValue string) string {
	if filePath := os.Getenv(fileKey); filePath != "" {
		if content, err := os.ReadFile(filePath); err == nil {
			return strings.TrimSpace(string(content))
		}
	}
	return getEnv(envKey, defaultValue)
}
