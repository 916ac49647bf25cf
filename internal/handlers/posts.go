package handlers

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/sata2500/tech-rehberi/internal/db"
	"github.com/sata2500/tech-rehberi/internal/middleware"
	"github.com/sata2500/tech-rehberi/internal/models"
	"github.com/sata2500/tech-rehberi/internal/services"
	"github.com/sata2500/tech-rehberi/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

const postsPerPage = 20

type CreatePostRequest struct {
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	Content    string `json:"content"`
	CoverURL   string `json:"cover_url"`
	CategoryID uint   `json:"category_id"`
	Publish    bool   `json:"publish"`
}

// List yayındaki yazıları sayfalı listeler. İlk sayfa kısa süreli önbellekte
// tutulur; yazma işlemleri ilgili anahtarları düşürür.
func (h *PostHandler) List(c *gin.Context) {
	page := PageParam(c)
	category := c.Query("kategori")
	query := c.Query("q")
	sort := c.DefaultQuery("sirala", "yeni")

	cacheKey := fmt.Sprintf("posts:list:%s:%s:%s:%d", category, query, sort, page)
	if query == "" {
		if cached := utils.GetCache().Get(cacheKey); cached != nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	q := db.DB.Model(&models.Post{}).Where("status = ?", models.PostStatusPublished)

	if category != "" {
		var cat models.Category
		if err := db.DB.Where("slug = ?", category).First(&cat).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Kategori bulunamadı"})
			return
		}
		q = q.Where("category_id = ?", cat.ID)
	}

	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}

	var total int64
	q.Count(&total)
	totalPages := int(math.Ceil(float64(total) / float64(postsPerPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	order := "created_at DESC"
	if sort == "populer" {
		order = "view_count DESC, created_at DESC"
	}

	var posts []models.Post
	q.Preload("User").Preload("Category").
		Order(order).
		Limit(postsPerPage).
		Offset((page - 1) * postsPerPage).
		Find(&posts)

	payload := gin.H{
		"posts":       posts,
		"page":        page,
		"total_pages": totalPages,
		"total":       total,
	}

	if query == "" {
		utils.GetCache().Set(cacheKey, payload, 1*time.Minute)
	}

	c.JSON(http.StatusOK, payload)
}

// Detail yazı detayı. Okuma sayacı atomik artar, Markdown sunucuda
// temizlenmiş HTML'e çevrilir.
func (h *PostHandler) Detail(c *gin.Context) {
	slug := c.Param("slug")
	user := middleware.CurrentUser(c)

	var post models.Post
	if err := db.DB.Preload("User").Preload("Category").Where("slug = ?", slug).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Yazı bulunamadı"})
		return
	}

	// Yayında olmayan yazıyı yalnızca sahibi ve yöneticiler görür
	if !post.IsPublished() {
		if user == nil || (user.ID != post.UserID && !user.IsAdmin()) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Yazı bulunamadı"})
			return
		}
	}

	if post.IsPublished() {
		db.DB.Model(&post).UpdateColumn("view_count", gorm.Expr("view_count + 1"))
		post.ViewCount++
	}

	liked, bookmarked := false, false
	if user != nil {
		liked = services.HasLiked(user.ID, post.ID)
		bookmarked = services.HasBookmarked(user.ID, post.ID)
	}

	// Çevrilmiş HTML önbellekte tutulur; yazı güncellenince anahtar düşer.
	// Beğeni/yer imi bayrakları kullanıcıya özel olduğundan önbelleğe girmez.
	contentHTML := h.renderedContent(&post)

	c.JSON(http.StatusOK, gin.H{
		"post":         post,
		"content_html": contentHTML,
		"liked":        liked,
		"bookmarked":   bookmarked,
		"prev":         h.neighbor(&post, true),
		"next":         h.neighbor(&post, false),
	})
}

func (h *PostHandler) renderedContent(post *models.Post) string {
	key := fmt.Sprintf("post:detail:%s", post.Slug)
	if cached := utils.GetCache().Get(key); cached != nil {
		if s, ok := cached.(string); ok {
			return s
		}
	}

	rendered := utils.RenderMarkdown(post.Content)
	utils.GetCache().Set(key, rendered, 10*time.Minute)
	return rendered
}

// neighbor aynı kategoride bir önceki / sonraki yayındaki yazı
func (h *PostHandler) neighbor(post *models.Post, prev bool) *models.Post {
	q := db.DB.Select("id, slug, title").
		Where("status = ? AND category_id = ?", models.PostStatusPublished, post.CategoryID)
	if prev {
		q = q.Where("created_at < ?", post.CreatedAt).Order("created_at DESC")
	} else {
		q = q.Where("created_at > ?", post.CreatedAt).Order("created_at ASC")
	}

	var n models.Post
	if err := q.First(&n).Error; err != nil {
		return nil
	}
	return &n
}

func (h *PostHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek gövdesi"})
		return
	}
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Başlık boş olamaz"})
		return
	}

	categoryID := req.CategoryID
	if categoryID == 0 {
		categoryID = 1
	}

	// Her yazı onaydan geçer; editör ve yöneticiler doğrudan yayınlayabilir
	status := models.PostStatusDraft
	if req.Publish {
		status = models.PostStatusPending
		if user.Role == models.RoleEditor || user.IsAdmin() {
			status = models.PostStatusPublished
		}
	}

	slug := utils.Slugify(req.Title)
	var existing models.Post
	if err := db.DB.Where("slug = ?", slug).First(&existing).Error; err == nil {
		slug = slug + "-" + utils.RandSuffix(6)
	}

	post := models.Post{
		Slug:       slug,
		UserID:     user.ID,
		CategoryID: categoryID,
		Title:      req.Title,
		Summary:    req.Summary,
		Content:    req.Content,
		CoverURL:   req.CoverURL,
		Status:     status,
	}

	if err := db.DB.Create(&post).Error; err != nil {
		JSONError(c, err)
		return
	}

	invalidateListCache()

	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) Update(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	slug := c.Param("slug")

	var post models.Post
	if err := db.DB.Where("slug = ?", slug).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Yazı bulunamadı"})
		return
	}

	if post.UserID != user.ID && !user.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Bu yazıyı düzenleme yetkiniz yok"})
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek gövdesi"})
		return
	}
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Başlık boş olamaz"})
		return
	}

	post.Title = req.Title
	post.Summary = req.Summary
	post.Content = req.Content
	post.CoverURL = req.CoverURL
	if req.CategoryID != 0 {
		post.CategoryID = req.CategoryID
	}

	if err := db.DB.Save(&post).Error; err != nil {
		JSONError(c, err)
		return
	}

	invalidatePostCache(post.Slug)

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	slug := c.Param("slug")

	var post models.Post
	if err := db.DB.Where("slug = ?", slug).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Yazı bulunamadı"})
		return
	}

	if post.UserID != user.ID && !user.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Bu yazıyı silme yetkiniz yok"})
		return
	}

	if err := db.DB.Unscoped().Delete(&post).Error; err != nil {
		JSONError(c, err)
		return
	}

	invalidatePostCache(post.Slug)

	c.JSON(http.StatusOK, gin.H{"message": "Yazı silindi"})
}

func invalidateListCache() {
	// yalnızca sık vurulan ilk sayfa anahtarları
	utils.GetCache().Delete("posts:list:::yeni:1")
	utils.GetCache().Delete("posts:list:::populer:1")
}

func invalidatePostCache(slug string) {
	utils.GetCache().Delete(fmt.Sprintf("post:detail:%s", slug))
	invalidateListCache()
}
