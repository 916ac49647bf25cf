package models

import (
	"time"
)

// Yazı durumları
const (
	PostStatusDraft     = "draft"
	PostStatusPending   = "pending"
	PostStatusPublished = "published"
	PostStatusRejected  = "rejected"
)

type Post struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	Slug       string   `gorm:"uniqueIndex;not null" json:"slug"`
	UserID     uint     `gorm:"not null;index" json:"user_id"`
	User       User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	CategoryID uint     `gorm:"not null;index;default:1" json:"category_id"`
	Category   Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category"`
	Title      string   `gorm:"not null" json:"title"`
	Summary    string   `gorm:"size:300" json:"summary"`
	Content    string   `gorm:"type:text" json:"content"` // Markdown kaynak metni
	CoverURL   string   `json:"cover_url"`
	Status     string   `gorm:"size:20;not null;default:'draft';index" json:"status"`

	// Denormalize sayaçlar. CommentCount silinmemiş yorum sayısına eşittir ve
	// yorum yazan/silen transaction içinde atomik olarak güncellenir.
	ViewCount     int `gorm:"default:0" json:"view_count"`
	LikeCount     int `gorm:"default:0" json:"like_count"`
	BookmarkCount int `gorm:"default:0" json:"bookmark_count"`
	CommentCount  int `gorm:"default:0" json:"comment_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Post) IsPublished() bool {
	return p.Status == PostStatusPublished
}
