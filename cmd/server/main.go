package main

import (
	"log"

	"github.com/sata2500/tech-rehberi/internal/config"
	"github.com/sata2500/tech-rehberi/internal/db"
	"github.com/sata2500/tech-rehberi/internal/handlers"
	"github.com/sata2500/tech-rehberi/internal/router"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env varsa yükle; üretimde ortam değişkenleri doğrudan gelir
	if err := godotenv.Load(); err != nil {
		log.Println(".env dosyası bulunamadı, ortam değişkenleri kullanılıyor")
	}

	cfg := config.Load()

	db.Init(cfg.DatabaseURL)

	handlers.InitGoogleOAuth(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.SiteURL)

	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("tech_rehberi_session", store))

	router.SetupRouter(r, cfg)

	log.Printf("Sunucu %s portunda başlıyor", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Sunucu başlatılamadı: %v", err)
	}
}
