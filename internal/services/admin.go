package services

import (
	"errors"
	"fmt"

	"github.com/sata2500/tech-rehberi/internal/db"
	"github.com/sata2500/tech-rehberi/internal/models"

	"gorm.io/gorm"
)

// Toplu moderasyon eylemleri
const (
	BulkActionApprove = "approve"
	BulkActionReject  = "reject"
	BulkActionDelete  = "delete"
)

var ErrEmptySelection = errors.New("en az bir kayıt seçilmeli")

// BulkModerateComments seçili yorumlara tek eylemi tek transaction içinde
// uygular: ya hepsi ya hiçbiri. approve silinen yorumu geri getirir, reject
// yumuşak siler, delete kalıcı siler; sayaç düzeltmeleri aynı transaction'da.
func BulkModerateComments(ids []uint, action string) error {
	if len(ids) == 0 {
		return ErrEmptySelection
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		// Aynı partide hem kök hem yanıtı seçilebilir; kökün kaskadı yanıtı
		// zaten götürdüyse o kimlik atlanır, hata sayılmaz.
		cascaded := make(map[uint]bool)

		for _, id := range ids {
			if cascaded[id] {
				continue
			}

			var comment models.Comment
			if err := tx.First(&comment, id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("yorum %d: %w", id, ErrNotFound)
				}
				return err
			}

			switch action {
			case BulkActionApprove:
				if err := restoreCommentTx(tx, &comment); err != nil {
					return err
				}
			case BulkActionReject:
				if err := softDeleteCommentTx(tx, &comment); err != nil {
					return err
				}
			case BulkActionDelete:
				gone, err := hardDeleteCommentTx(tx, &comment)
				if err != nil {
					return err
				}
				for _, cid := range gone {
					cascaded[cid] = true
				}
			default:
				return fmt.Errorf("bilinmeyen eylem: %s", action)
			}
		}
		return nil
	})
}

// BulkModeratePosts seçili yazılara tek eylemi tek transaction içinde uygular.
// approve/reject yayın durumunu değiştirir, delete yazıyı kalıcı siler
// (yorumlar ve etkileşimler veritabanı cascade'iyle gider).
func BulkModeratePosts(ids []uint, action string) error {
	if len(ids) == 0 {
		return ErrEmptySelection
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			var post models.Post
			if err := tx.First(&post, id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("yazı %d: %w", id, ErrNotFound)
				}
				return err
			}

			switch action {
			case BulkActionApprove:
				if err := tx.Model(&post).UpdateColumn("status", models.PostStatusPublished).Error; err != nil {
					return err
				}
			case BulkActionReject:
				if err := tx.Model(&post).UpdateColumn("status", models.PostStatusRejected).Error; err != nil {
					return err
				}
			case BulkActionDelete:
				if err := tx.Unscoped().Delete(&post).Error; err != nil {
					return err
				}
			default:
				return fmt.Errorf("bilinmeyen eylem: %s", action)
			}
		}
		return nil
	})
}

// ReportedComments şikayet sayısı eşiği aşan yorumları döner (yönetici paneli)
func ReportedComments(minReports int) ([]models.Comment, error) {
	var comments []models.Comment
	err := db.DB.Preload("User").
		Where("report_count >= ?", minReports).
		Order("report_count DESC, created_at DESC").
		Find(&comments).Error
	return comments, err
}

// PendingPosts onay bekleyen yazılar (yönetici paneli)
func PendingPosts() ([]models.Post, error) {
	var posts []models.Post
	err := db.DB.Preload("User").Preload("Category").
		Where("status = ?", models.PostStatusPending).
		Order("created_at ASC").
		Find(&posts).Error
	return posts, err
}
