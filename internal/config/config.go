package config

import (
	"log"
	"os"
)

// Config ortam değişkenlerinden yüklenen uygulama ayarları
type Config struct {
	Port          string
	DatabaseURL   string
	SessionSecret string
	SiteURL       string

	// Yeni hesapların rolü. Kaynak sistemde test amaçlı "admin" bırakılmıştı;
	// burada bilinçli olarak dışarıdan ayarlanır ve güvenli varsayılan "user".
	DefaultRole string

	GoogleClientID     string
	GoogleClientSecret string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

func Load() *Config {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=techrehberi port=5432 sslmode=disable TimeZone=Europe/Istanbul"),
		SessionSecret: getEnv("SESSION_SECRET", ""),
		SiteURL:       getEnv("SITE_URL", "http://localhost:8080"),
		DefaultRole:   getEnv("DEFAULT_ROLE", "user"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: os.Getenv("SMTP_PORT"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		SMTPFrom: os.Getenv("SMTP_FROM"),
	}

	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "secret_key_change_me"
		log.Println("SESSION_SECRET tanımlı değil, geçici anahtar kullanılıyor")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
