package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath              string `mapstructure:"DB_PATH"`
	HTTPAddr            string `mapstructure:"HTTP_ADDR"`
	Environment         string `mapstructure:"ENV"`
	TelegramToken       string `mapstructure:"TELEGRAM_TOKEN"`
	TelegramAdminChatID string `mapstructure:"TELEGRAM_ADMIN_CHAT_ID"`
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	// Читаем напрямую из переменных окружения (после godotenv.Load они там)
	cfg := &Config{
		DBPath:              os.Getenv("DB_PATH"),
		HTTPAddr:            os.Getenv("HTTP_ADDR"),
		Environment:         os.Getenv("ENV"),
		TelegramToken:       os.Getenv("TELEGRAM_TOKEN"),
		TelegramAdminChatID: os.Getenv("TELEGRAM_ADMIN_CHAT_ID"),
	}

	// Устанавливаем дефолтные значения
	if cfg.DBPath == "" {
		cfg.DBPath = "lessons.db"
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	// Уведомления опциональны, но токен и чат задаются только парой
	if (cfg.TelegramToken == "") != (cfg.TelegramAdminChatID == "") {
		return nil, fmt.Errorf("TELEGRAM_TOKEN and TELEGRAM_ADMIN_CHAT_ID must be set together")
	}

	return cfg, nil
}

// NotificationsEnabled сообщает, настроены ли телеграм-уведомления
func (c *Config) NotificationsEnabled() bool {
	return c.TelegramToken != "" && c.TelegramAdminChatID != ""
}
