package handlers

import (
	"net/http"

	"github.com/sata2500/tech-rehberi/internal/db"
	"github.com/sata2500/tech-rehberi/internal/middleware"
	"github.com/sata2500/tech-rehberi/internal/models"
	"github.com/sata2500/tech-rehberi/internal/services"

	"github.com/gin-gonic/gin"
)

type InteractionHandler struct{}

func NewInteractionHandler() *InteractionHandler {
	return &InteractionHandler{}
}

func (h *InteractionHandler) resolvePost(c *gin.Context) (*models.Post, bool) {
	var post models.Post
	if err := db.DB.Select("id, slug").Where("slug = ?", c.Param("slug")).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Yazı bulunamadı"})
		return nil, false
	}
	return &post, true
}

// ToggleLike beğeniyi açar/kapatır, güncel sayacı döner
func (h *InteractionHandler) ToggleLike(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	post, ok := h.resolvePost(c)
	if !ok {
		return
	}

	liked, count, err := services.TogglePostLike(user.ID, post.ID)
	if err != nil {
		JSONError(c, err)
		return
	}

	invalidatePostCache(post.Slug)

	c.JSON(http.StatusOK, gin.H{"liked": liked, "like_count": count})
}

// ToggleBookmark okuma listesine ekler/çıkarır
func (h *InteractionHandler) ToggleBookmark(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	post, ok := h.resolvePost(c)
	if !ok {
		return
	}

	bookmarked, count, err := services.TogglePostBookmark(user.ID, post.ID)
	if err != nil {
		JSONError(c, err)
		return
	}

	invalidatePostCache(post.Slug)

	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked, "bookmark_count": count})
}
