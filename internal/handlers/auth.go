package handlers

import (
	"net/http"
	"strings"

	"github.com/sata2500/tech-rehberi/internal/config"
	"github.com/sata2500/tech-rehberi/internal/db"
	"github.com/sata2500/tech-rehberi/internal/middleware"
	"github.com/sata2500/tech-rehberi/internal/models"
	"github.com/sata2500/tech-rehberi/internal/services"
	"github.com/sata2500/tech-rehberi/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek gövdesi"})
		return
	}

	parts := strings.Split(req.Email, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "E-posta adresi geçersiz"})
		return
	}
	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parola en az 6 karakter olmalı"})
		return
	}
	if req.Username == "" {
		req.Username = parts[0]
	}

	var existing models.User
	if err := db.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Bu e-posta adresi zaten kayıtlı"})
		return
	}

	user, err := services.EnsureUser(services.Identity{
		Email:    req.Email,
		Username: req.Username,
	}, h.cfg.DefaultRole)
	if err != nil {
		JSONError(c, err)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		JSONError(c, err)
		return
	}
	if err := db.DB.Model(user).Update("password", hash).Error; err != nil {
		JSONError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek gövdesi"})
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "E-posta ya da parola hatalı"})
		return
	}

	if user.Password == "" || !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "E-posta ya da parola hatalı"})
		return
	}

	// Oturum açan her kimlik için profil garantisi; son görülme de burada güncellenir
	refreshed, err := services.EnsureUser(services.Identity{
		Email:    user.Email,
		Username: user.Username,
	}, h.cfg.DefaultRole)
	if err != nil {
		JSONError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", refreshed.ID)
	session.Save()

	c.JSON(http.StatusOK, refreshed)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"message": "Çıkış yapıldı"})
}

// Me oturumdaki kullanıcının profili
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Giriş yapmanız gerekiyor"})
		return
	}
	c.JSON(http.StatusOK, user)
}
