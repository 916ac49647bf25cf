package models

import (
	"time"
)

// DeletedCommentPlaceholder silinen yorumların içeriğinin yerine yazılır.
// Kayıt silinmez, metin geri getirilemez.
const DeletedCommentPlaceholder = "Bu yorum silindi."

type Comment struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	PublicID string   `gorm:"uniqueIndex;size:36;not null" json:"public_id"`
	PostID   uint     `gorm:"not null;index" json:"post_id"`
	Post     Post     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID   uint     `gorm:"not null;index" json:"user_id"`
	User     User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	ParentID *uint    `gorm:"index" json:"parent_id"` // kök yorumlarda nil
	Parent   *Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Content  string   `gorm:"type:text;not null" json:"content"`

	IsDeleted   bool `gorm:"default:false;index" json:"is_deleted"`
	IsEdited    bool `gorm:"default:false" json:"is_edited"`
	Likes       int  `gorm:"default:0" json:"likes"`
	ReportCount int  `gorm:"default:0" json:"report_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Comment) IsRoot() bool {
	return c.ParentID == nil
}
