package services

import (
	"errors"
	"strings"
	"time"

	"github.com/sata2500/tech-rehberi/internal/db"
	"github.com/sata2500/tech-rehberi/internal/models"
	"github.com/sata2500/tech-rehberi/internal/utils"

	"gorm.io/gorm"
)

// Identity doğrulanmış bir kimliğin profil tohumu. Parola kayıtlarında
// GoogleID boş kalır.
type Identity struct {
	GoogleID string
	Email    string
	Username string
	PhotoURL string
}

// EnsureUser her doğrulanmış kimlik için bir profil kaydı garantiler.
// Kayıt yoksa varsayılan rolle oluşturur; varsa yalnızca boş alanları
// doldurur ve son görülme zamanını günceller. Aynı girdiyle ikinci çağrı
// profili değiştirmez (idempotent), birden fazla giriş noktasından
// çağrılabilir.
func EnsureUser(identity Identity, defaultRole string) (*models.User, error) {
	var user models.User
	query := db.DB.Where("email = ?", identity.Email)
	if identity.GoogleID != "" {
		query = db.DB.Where("google_id = ?", identity.GoogleID).Or("email = ?", identity.Email)
	}

	err := query.First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		username := identity.Username
		if username == "" {
			username = strings.Split(identity.Email, "@")[0]
		}

		user = models.NewUser(utils.NewPublicID(), username, identity.Email, defaultRole)
		user.GoogleID = identity.GoogleID
		user.PhotoURL = identity.PhotoURL

		if err := db.DB.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}

	// Mevcut profil: yalnızca eksik alanlar doldurulur, dolu alan ezilmez
	updates := map[string]interface{}{
		"last_seen_at": time.Now(),
	}
	if user.GoogleID == "" && identity.GoogleID != "" {
		updates["google_id"] = identity.GoogleID
	}
	if user.PhotoURL == "" && identity.PhotoURL != "" {
		updates["photo_url"] = identity.PhotoURL
	}
	if user.Username == "" && identity.Username != "" {
		updates["username"] = identity.Username
	}
	if user.Role == "" {
		updates["role"] = defaultRole
		if defaultRole == "" {
			updates["role"] = models.RoleUser
		}
	}

	if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := db.DB.First(&user, user.ID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePreferences kullanıcı tercihlerini günceller
func UpdatePreferences(userID uint, prefs models.Preferences) error {
	res := db.DB.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"pref_theme":             prefs.Theme,
		"pref_email_on_reply":    prefs.EmailOnReply,
		"pref_email_on_comment":  prefs.EmailOnComment,
		"pref_email_on_announce": prefs.EmailOnAnnounce,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateUserRole kullanıcı rolünü değiştirir (yönetici)
func UpdateUserRole(userID uint, role string) error {
	if role != models.RoleUser && role != models.RoleEditor && role != models.RoleAdmin {
		return errors.New("geçersiz rol: " + role)
	}
	res := db.DB.Model(&models.User{}).Where("id = ?", userID).Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
