package services

import (
	"errors"

	"github.com/sata2500/tech-rehberi/internal/db"
	"github.com/sata2500/tech-rehberi/internal/models"

	"gorm.io/gorm"
)

// TogglePostLike beğeniyi açar/kapatır. Üyelik satırı ve yazıdaki sayaç
// aynı transaction içinde birlikte değişir.
func TogglePostLike(userID, postID uint) (liked bool, count int, err error) {
	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, ErrNotFound
		}
		return false, 0, err
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.PostLike
		findErr := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error
		if findErr == nil {
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			liked = false
			return tx.Model(&post).
				UpdateColumn("like_count", gorm.Expr("like_count - 1")).
				Error
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		if err := tx.Create(&models.PostLike{UserID: userID, PostID: postID}).Error; err != nil {
			return err
		}
		liked = true
		return tx.Model(&post).
			UpdateColumn("like_count", gorm.Expr("like_count + 1")).
			Error
	})
	if err != nil {
		return false, 0, err
	}

	if err := db.DB.Select("like_count").First(&post, postID).Error; err != nil {
		return liked, 0, err
	}
	return liked, post.LikeCount, nil
}

// TogglePostBookmark okuma listesine ekler/çıkarır
func TogglePostBookmark(userID, postID uint) (bookmarked bool, count int, err error) {
	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, ErrNotFound
		}
		return false, 0, err
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.PostBookmark
		findErr := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error
		if findErr == nil {
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			bookmarked = false
			return tx.Model(&post).
				UpdateColumn("bookmark_count", gorm.Expr("bookmark_count - 1")).
				Error
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		if err := tx.Create(&models.PostBookmark{UserID: userID, PostID: postID}).Error; err != nil {
			return err
		}
		bookmarked = true
		return tx.Model(&post).
			UpdateColumn("bookmark_count", gorm.Expr("bookmark_count + 1")).
			Error
	})
	if err != nil {
		return false, 0, err
	}

	if err := db.DB.Select("bookmark_count").First(&post, postID).Error; err != nil {
		return bookmarked, 0, err
	}
	return bookmarked, post.BookmarkCount, nil
}

// HasLiked kullanıcının yazıyı beğenip beğenmediği
func HasLiked(userID, postID uint) bool {
	var like models.PostLike
	return db.DB.Where("user_id = ? AND post_id = ?", userID, postID).First(&like).Error == nil
}

// HasBookmarked kullanıcının yazıyı kaydedip kaydetmediği
func HasBookmarked(userID, postID uint) bool {
	var bm models.PostBookmark
	return db.DB.Where("user_id = ? AND post_id = ?", userID, postID).First(&bm).Error == nil
}
