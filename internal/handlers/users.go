package handlers

import (
	"net/http"

	"github.com/sata2500/tech-rehberi/internal/db"
	"github.com/sata2500/tech-rehberi/internal/middleware"
	"github.com/sata2500/tech-rehberi/internal/models"
	"github.com/sata2500/tech-rehberi/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Profile herkese açık kullanıcı profili ve yayındaki yazıları
func (h *UserHandler) Profile(c *gin.Context) {
	publicID := c.Param("id")

	var user models.User
	if err := db.DB.Where("public_id = ?", publicID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Kullanıcı bulunamadı"})
		return
	}

	var posts []models.Post
	db.DB.Preload("Category").
		Where("user_id = ? AND status = ?", user.ID, models.PostStatusPublished).
		Order("created_at DESC").
		Limit(50).
		Find(&posts)

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"posts": posts,
	})
}

// UpdatePreferences oturumdaki kullanıcının tercihlerini günceller
func (h *UserHandler) UpdatePreferences(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var prefs models.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek gövdesi"})
		return
	}

	switch prefs.Theme {
	case "light", "dark", "system":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz tema: " + prefs.Theme})
		return
	}

	if err := services.UpdatePreferences(user.ID, prefs); err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

// Bookmarks okuma listesi
func (h *UserHandler) Bookmarks(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var bookmarks []models.PostBookmark
	db.DB.Preload("Post").Preload("Post.User").Preload("Post.Category").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&bookmarks)

	posts := make([]models.Post, 0, len(bookmarks))
	for _, b := range bookmarks {
		posts = append(posts, b.Post)
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// Notifications bildirim listesi
func (h *UserHandler) Notifications(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var notifications []models.Notification
	db.DB.Preload("Actor").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(50).
		Find(&notifications)

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// ReadNotification tek bildirimi okundu işaretler
func (h *UserHandler) ReadNotification(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}

	res := db.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, user.ID).
		Update("is_read", true)
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bildirim bulunamadı"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Okundu"})
}

// ReadAllNotifications tüm bildirimleri okundu işaretler
func (h *UserHandler) ReadAllNotifications(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", user.ID, false).
		Update("is_read", true)

	c.JSON(http.StatusOK, gin.H{"message": "Tüm bildirimler okundu"})
}
