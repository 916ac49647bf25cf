package router

import (
	"github.com/sata2500/tech-rehberi/internal/config"
	"github.com/sata2500/tech-rehberi/internal/handlers"
	"github.com/sata2500/tech-rehberi/internal/middleware"
	"github.com/sata2500/tech-rehberi/internal/services"

	"github.com/gin-gonic/gin"
)

// SetupRouter tüm rotaları kaydeder. Üç katman: herkese açık, oturum
// gerektiren ve yalnızca yöneticiye açık uçlar.
func SetupRouter(r *gin.Engine, cfg *config.Config) {
	mail := services.NewMailService(
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SiteURL,
	)

	authHandler := handlers.NewAuthHandler(cfg)
	postHandler := handlers.NewPostHandler()
	commentHandler := handlers.NewCommentHandler(mail)
	categoryHandler := handlers.NewCategoryHandler()
	interactionHandler := handlers.NewInteractionHandler()
	userHandler := handlers.NewUserHandler()
	adminHandler := handlers.NewAdminHandler()

	// Her istekte oturumdaki kullanıcıyı yükle
	r.Use(middleware.LoadUser())

	// Herkese açık uçlar
	api := r.Group("/api")
	{
		api.POST("/kayit", authHandler.Register)
		api.POST("/giris", authHandler.Login)
		api.POST("/cikis", authHandler.Logout)
		api.GET("/auth/google", authHandler.GoogleLogin)
		api.GET("/auth/google/callback", authHandler.GoogleCallback)

		api.GET("/yazilar", postHandler.List)
		api.GET("/yazilar/:slug", postHandler.Detail)
		api.GET("/yazilar/:slug/yorumlar", commentHandler.List)
		api.GET("/kategoriler", categoryHandler.List)
		api.GET("/kullanicilar/:id", userHandler.Profile)
	}

	// Oturum gerektiren uçlar
	auth := r.Group("/api", middleware.AuthRequired())
	{
		auth.GET("/ben", authHandler.Me)
		auth.PUT("/ben/tercihler", userHandler.UpdatePreferences)
		auth.GET("/ben/yer-imleri", userHandler.Bookmarks)
		auth.GET("/ben/bildirimler", userHandler.Notifications)
		auth.PUT("/ben/bildirimler/:id", userHandler.ReadNotification)
		auth.PUT("/ben/bildirimler", userHandler.ReadAllNotifications)

		auth.POST("/yazilar", postHandler.Create)
		auth.PUT("/yazilar/:slug", postHandler.Update)
		auth.DELETE("/yazilar/:slug", postHandler.Delete)
		auth.POST("/yazilar/:slug/begen", interactionHandler.ToggleLike)
		auth.POST("/yazilar/:slug/yer-imi", interactionHandler.ToggleBookmark)

		auth.POST("/yazilar/:slug/yorumlar", commentHandler.Create)
		auth.PUT("/yorumlar/:id", commentHandler.Update)
		auth.DELETE("/yorumlar/:id", commentHandler.Delete)
		auth.POST("/yorumlar/:id/begen", commentHandler.Like)
		auth.POST("/yorumlar/:id/sikayet", commentHandler.Report)
	}

	// Yönetici uçları; yetki sunucu tarafında doğrulanır
	admin := r.Group("/api/admin", middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.POST("/yorumlar/toplu", adminHandler.BulkComments)
		admin.POST("/yazilar/toplu", adminHandler.BulkPosts)
		admin.POST("/yorumlar/:id/geri-getir", adminHandler.RestoreComment)
		admin.DELETE("/yorumlar/:id/kalici", adminHandler.HardDeleteComment)
		admin.POST("/yorumlar/:id/sikayet-sifirla", adminHandler.ResetReports)
		admin.POST("/yazilar/:id/yorum-sayaci", adminHandler.RecountComments)
		admin.GET("/sikayetli-yorumlar", adminHandler.ReportedComments)
		admin.GET("/bekleyen-yazilar", adminHandler.PendingPosts)
		admin.GET("/kullanicilar", adminHandler.ListUsers)
		admin.PUT("/kullanicilar/:id/rol", adminHandler.UpdateUserRole)
	}
}
