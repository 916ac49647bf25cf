package models

import (
	"time"
)

// Kullanıcı rolleri
const (
	RoleUser   = "user"
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

// Preferences kullanıcı tercihleri, users tablosuna gömülü tutulur
type Preferences struct {
	Theme           string `gorm:"size:10;default:'system'" json:"theme"` // light, dark, system
	EmailOnReply    bool   `gorm:"default:true" json:"email_on_reply"`
	EmailOnComment  bool   `gorm:"default:true" json:"email_on_comment"` // yazıya yorum gelince yazara
	EmailOnAnnounce bool   `gorm:"default:false" json:"email_on_announce"`
}

type User struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	PublicID   string      `gorm:"uniqueIndex;size:36;not null" json:"public_id"`
	Username   string      `gorm:"not null" json:"username"`
	Email      string      `gorm:"uniqueIndex;not null" json:"email"`
	Password   string      `gorm:"" json:"-"` // bcrypt hash, sadece Google girişi olanlarda boş
	PhotoURL   string      `json:"photo_url"`
	Bio        string      `gorm:"size:200" json:"bio"`
	Role       string      `gorm:"size:20;not null" json:"role"`
	Prefs      Preferences `gorm:"embedded;embeddedPrefix:pref_" json:"preferences"`
	GoogleID   string      `gorm:"index" json:"-"`
	LastSeenAt time.Time   `json:"last_seen_at"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// NewUser varsayılanları tek noktada uygular; eksik alan doldurma işi
// okuma tarafına bırakılmaz.
func NewUser(publicID, username, email, role string) User {
	if role == "" {
		role = RoleUser
	}
	return User{
		PublicID:   publicID,
		Username:   username,
		Email:      email,
		Role:       role,
		Prefs:      Preferences{Theme: "system", EmailOnReply: true, EmailOnComment: true},
		LastSeenAt: time.Now(),
	}
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
