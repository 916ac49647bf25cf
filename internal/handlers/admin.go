package handlers

import (
	"net/http"

	"github.com/sata2500/tech-rehberi/internal/db"
	"github.com/sata2500/tech-rehberi/internal/models"
	"github.com/sata2500/tech-rehberi/internal/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler yönetici paneli uçları. Yetki kontrolü route grubundaki
// AdminRequired middleware'inde yapılır.
type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

type BulkRequest struct {
	IDs    []uint `json:"ids"`
	Action string `json:"action"` // approve, reject, delete
}

type RoleRequest struct {
	Role string `json:"role"`
}

// BulkComments seçili yorumlara toplu eylem; ya hepsi uygulanır ya hiçbiri
func (h *AdminHandler) BulkComments(c *gin.Context) {
	var req BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek gövdesi"})
		return
	}

	if err := services.BulkModerateComments(req.IDs, req.Action); err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Toplu işlem tamamlandı", "count": len(req.IDs)})
}

// BulkPosts seçili yazılara toplu eylem
func (h *AdminHandler) BulkPosts(c *gin.Context) {
	var req BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek gövdesi"})
		return
	}

	if err := services.BulkModeratePosts(req.IDs, req.Action); err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Toplu işlem tamamlandı", "count": len(req.IDs)})
}

// RestoreComment silinmiş yorumu geri getirir
func (h *AdminHandler) RestoreComment(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}

	if err := services.RestoreComment(id); err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Yorum geri getirildi"})
}

// HardDeleteComment yorumu ve yanıtlarını kalıcı siler
func (h *AdminHandler) HardDeleteComment(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}

	if err := services.HardDeleteComment(id); err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Yorum kalıcı olarak silindi"})
}

// ResetReports yorumun şikayet sayacını sıfırlar
func (h *AdminHandler) ResetReports(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}

	if err := services.ResetCommentReports(id); err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Şikayetler sıfırlandı"})
}

// RecountComments yazı sayacını satırlardan yeniden hesaplar (onarım aracı)
func (h *AdminHandler) RecountComments(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}

	count, err := services.RecountComments(id)
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment_count": count})
}

// ReportedComments şikayet edilen yorumlar
func (h *AdminHandler) ReportedComments(c *gin.Context) {
	comments, err := services.ReportedComments(1)
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// PendingPosts onay bekleyen yazılar
func (h *AdminHandler) PendingPosts(c *gin.Context) {
	posts, err := services.PendingPosts()
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// ListUsers kullanıcı listesi
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page := PageParam(c)
	perPage := 50

	var users []models.User
	db.DB.Order("created_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&users)

	c.JSON(http.StatusOK, gin.H{"users": users, "page": page})
}

// UpdateUserRole kullanıcının rolünü değiştirir
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}

	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek gövdesi"})
		return
	}

	if err := services.UpdateUserRole(id, req.Role); err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rol güncellendi"})
}
