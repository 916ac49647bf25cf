package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sata2500/tech-rehberi/internal/services"

	"github.com/gin-gonic/gin"
)

// JSONError servis hatasını uygun HTTP koduna çevirir
func JSONError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmptyContent),
		errors.Is(err, services.ErrReplyDepth),
		errors.Is(err, services.ErrParentMismatch),
		errors.Is(err, services.ErrNotPublished),
		errors.Is(err, services.ErrEmptySelection):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Beklenmeyen bir hata oluştu"})
	}
}

// PageParam sayfa numarasını okur, 1'den küçük olamaz
func PageParam(c *gin.Context) int {
	page := 1
	if p := c.Query("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			page = n
		}
	}
	return page
}

// IDParam yol parametresindeki sayısal kimliği okur
func IDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz kimlik"})
		return 0, false
	}
	return uint(id), true
}
