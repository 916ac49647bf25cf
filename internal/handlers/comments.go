package handlers

import (
	"net/http"

	"github.com/sata2500/tech-rehberi/internal/db"
	"github.com/sata2500/tech-rehberi/internal/middleware"
	"github.com/sata2500/tech-rehberi/internal/models"
	"github.com/sata2500/tech-rehberi/internal/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	mailService *services.MailService
}

func NewCommentHandler(mail *services.MailService) *CommentHandler {
	return &CommentHandler{mailService: mail}
}

type AddCommentRequest struct {
	Content  string `json:"content"`
	ParentID *uint  `json:"parent_id"`
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}

type ReportCommentRequest struct {
	Reason string `json:"reason"`
}

// List yazının yorum ağacını döner: kökler ve altlarına bağlı yanıtlar.
// Görünürlük kuralı yazı detayıyla aynı: yayında olmayan yazının yorumlarını
// yalnızca sahibi ve yöneticiler görür.
func (h *CommentHandler) List(c *gin.Context) {
	slug := c.Param("slug")
	user := middleware.CurrentUser(c)

	var post models.Post
	if err := db.DB.Where("slug = ?", slug).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Yazı bulunamadı"})
		return
	}

	if !post.IsPublished() {
		if user == nil || (user.ID != post.UserID && !user.IsAdmin()) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Yazı bulunamadı"})
			return
		}
	}

	threads, err := services.GetPostComments(post.ID)
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": threads})
}

// Create yorum ya da yanıt ekler. Bildirimler asenkron gider, yanıt
// handler'ı bloklamaz.
func (h *CommentHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	slug := c.Param("slug")

	var post models.Post
	if err := db.DB.Where("slug = ?", slug).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Yazı bulunamadı"})
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek gövdesi"})
		return
	}

	comment, err := services.AddComment(post.ID, user.ID, req.Content, req.ParentID)
	if err != nil {
		JSONError(c, err)
		return
	}

	go h.notify(&post, user, comment)

	c.JSON(http.StatusCreated, comment)
}

// notify yanıtlanan kullanıcıya ya da yazı sahibine bildirim bırakır
func (h *CommentHandler) notify(post *models.Post, actor *models.User, comment *models.Comment) {
	if comment.ParentID != nil {
		var parent models.Comment
		if err := db.DB.Preload("User").First(&parent, *comment.ParentID).Error; err != nil {
			return
		}
		if parent.UserID == actor.ID {
			return // kendi yorumuna yanıt, bildirim yok
		}

		notification := models.Notification{
			UserID:    parent.UserID,
			ActorID:   &actor.ID,
			Type:      models.NotificationTypeReplyComment,
			Message:   actor.Username + ", \"" + post.Title + "\" yazısındaki yorumunuza yanıt verdi.",
			PostID:    &post.ID,
			CommentID: &comment.ID,
		}
		db.DB.Create(&notification)

		if parent.User.Prefs.EmailOnReply {
			h.mailService.SendReplyNotification(parent.User.Email, actor.Username, post.Title, post.Slug, comment.ID)
		}
		return
	}

	if post.UserID == actor.ID {
		return
	}

	var owner models.User
	if err := db.DB.First(&owner, post.UserID).Error; err != nil {
		return
	}

	notification := models.Notification{
		UserID:    owner.ID,
		ActorID:   &actor.ID,
		Type:      models.NotificationTypeCommentPost,
		Message:   actor.Username + ", \"" + post.Title + "\" yazınıza yorum yaptı.",
		PostID:    &post.ID,
		CommentID: &comment.ID,
	}
	db.DB.Create(&notification)

	if owner.Prefs.EmailOnComment {
		h.mailService.SendCommentNotification(owner.Email, actor.Username, post.Title, post.Slug, comment.ID)
	}
}

func (h *CommentHandler) Update(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek gövdesi"})
		return
	}

	comment, err := services.UpdateComment(id, user, req.Content)
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// Delete yumuşak silme; sahiplik kontrolü servis katmanında
func (h *CommentHandler) Delete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteComment(id, user); err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Yorum silindi"})
}

func (h *CommentHandler) Like(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}

	likes, err := services.LikeComment(id)
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

func (h *CommentHandler) Report(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}

	var req ReportCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek gövdesi"})
		return
	}

	if err := services.ReportComment(id, user.ID, req.Reason); err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Şikayetiniz alındı"})
}
