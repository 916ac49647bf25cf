package handlers

import (
	"net/http"

	"github.com/sata2500/tech-rehberi/internal/db"
	"github.com/sata2500/tech-rehberi/internal/models"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// List tüm kategoriler, ad sırasıyla
func (h *CategoryHandler) List(c *gin.Context) {
	var categories []models.Category
	if err := db.DB.Order("name ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Kategoriler yüklenemedi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
