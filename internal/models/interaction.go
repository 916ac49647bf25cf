package models

import (
	"time"
)

// PostLike bir kullanıcının bir yazıyı beğenmesi. (user_id, post_id) tekil;
// Post.LikeCount bu tabloyla birlikte aynı transaction içinde güncellenir.
type PostLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_like_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;index;uniqueIndex:idx_like_user_post" json:"post_id"`
	Post      Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// PostBookmark kullanıcının okuma listesi kaydı
type PostBookmark struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_bm_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;index;uniqueIndex:idx_bm_user_post" json:"post_id"`
	Post      Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post"`
	CreatedAt time.Time `json:"created_at"`
}
