package services

import (
	"errors"

	"github.com/sata2500/tech-rehberi/internal/db"
	"github.com/sata2500/tech-rehberi/internal/models"
	"github.com/sata2500/tech-rehberi/internal/utils"

	"gorm.io/gorm"
)

// CommentThread kök yorum ve ona bağlı yanıtlar. İki seviye ile sınırlıdır;
// yanıta yanıt yazma isteği AddComment tarafından reddedilir.
type CommentThread struct {
	models.Comment
	Replies []models.Comment `json:"replies"`
}

// AddComment yeni yorum ya da yanıt oluşturur. Yazının comment_count sayacı
// aynı transaction içinde atomik olarak artar.
func AddComment(postID, userID uint, content string, parentID *uint) (*models.Comment, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !post.IsPublished() {
		return nil, ErrNotPublished
	}

	if parentID != nil {
		var parent models.Comment
		if err := db.DB.First(&parent, *parentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if parent.PostID != postID {
			return nil, ErrParentMismatch
		}
		if parent.IsDeleted {
			return nil, ErrNotFound
		}
		// İki seviye sınırı yazma anında uygulanır
		if !parent.IsRoot() {
			return nil, ErrReplyDepth
		}
	}

	comment := models.Comment{
		PublicID: utils.NewPublicID(),
		PostID:   postID,
		UserID:   userID,
		ParentID: parentID,
		Content:  content,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).
			Where("id = ?", postID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).
			Error
	})
	if err != nil {
		return nil, err
	}

	db.DB.Preload("User").First(&comment, comment.ID)
	return &comment, nil
}

// GetPostComments bir yazının silinmemiş yorumlarını iki sorguyla çeker:
// önce kökler (yeniden eskiye), sonra tüm yanıtlar (üst yorum + tarih sırası).
// Yanıtlar kök haritası üzerinden bağlanır; üstü haritada olmayan yanıt
// (örn. silinmiş köke bağlı) ağaca girmez.
func GetPostComments(postID uint) ([]CommentThread, error) {
	var roots []models.Comment
	if err := db.DB.Preload("User").
		Where("post_id = ? AND parent_id IS NULL AND is_deleted = ?", postID, false).
		Order("created_at DESC").
		Find(&roots).Error; err != nil {
		return nil, err
	}

	var replies []models.Comment
	if err := db.DB.Preload("User").
		Where("post_id = ? AND parent_id IS NOT NULL AND is_deleted = ?", postID, false).
		Order("parent_id ASC, created_at ASC").
		Find(&replies).Error; err != nil {
		return nil, err
	}

	threads := make([]CommentThread, len(roots))
	index := make(map[uint]int, len(roots))
	for i, root := range roots {
		threads[i] = CommentThread{Comment: root, Replies: []models.Comment{}}
		index[root.ID] = i
	}

	for _, reply := range replies {
		if i, ok := index[*reply.ParentID]; ok {
			threads[i].Replies = append(threads[i].Replies, reply)
		}
	}

	return threads, nil
}

// CanModifyComment yorum üzerinde değişiklik yetkisi. Servis katmanındaki
// mutasyonlar bu kontrolü kendileri yapar, istemciye güvenilmez.
func CanModifyComment(comment *models.Comment, userID uint, isAdmin bool) bool {
	return isAdmin || comment.UserID == userID
}

// UpdateComment yorum metnini günceller ve düzenlendi işaretini koyar
func UpdateComment(id uint, actor *models.User, content string) (*models.Comment, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	var comment models.Comment
	if err := db.DB.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if comment.IsDeleted {
		return nil, ErrNotFound
	}
	if !CanModifyComment(&comment, actor.ID, actor.IsAdmin()) {
		return nil, ErrForbidden
	}

	if err := db.DB.Model(&comment).Updates(map[string]interface{}{
		"content":   content,
		"is_edited": true,
	}).Error; err != nil {
		return nil, err
	}

	comment.Content = content
	comment.IsEdited = true
	return &comment, nil
}

// DeleteComment yumuşak silme: kayıt kalır, metin yer tutucuyla değiştirilir,
// yazının sayacı aynı transaction içinde azaltılır.
func DeleteComment(id uint, actor *models.User) error {
	var comment models.Comment
	if err := db.DB.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if comment.IsDeleted {
		return nil // zaten silinmiş
	}
	if !CanModifyComment(&comment, actor.ID, actor.IsAdmin()) {
		return ErrForbidden
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		return softDeleteCommentTx(tx, &comment)
	})
}

// softDeleteCommentTx işareti koşullu koyar: satır zaten silinmişse (ya da
// eşzamanlı başka bir silme önce davranmışsa) sayaç ikinci kez azalmaz.
func softDeleteCommentTx(tx *gorm.DB, comment *models.Comment) error {
	res := tx.Model(&models.Comment{}).
		Where("id = ? AND is_deleted = ?", comment.ID, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"content":    models.DeletedCommentPlaceholder,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return nil // zaten silinmiş
	}

	comment.IsDeleted = true
	comment.Content = models.DeletedCommentPlaceholder

	return tx.Model(&models.Post{}).
		Where("id = ?", comment.PostID).
		UpdateColumn("comment_count", gorm.Expr("comment_count - 1")).
		Error
}

// RestoreComment silinen yorumu yeniden listeye alır. Metin yer tutucu
// olarak kalır, silme geri alınabilir ama içerik geri gelmez.
func RestoreComment(id uint) error {
	var comment models.Comment
	if err := db.DB.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !comment.IsDeleted {
		return nil
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		return restoreCommentTx(tx, &comment)
	})
}

func restoreCommentTx(tx *gorm.DB, comment *models.Comment) error {
	res := tx.Model(&models.Comment{}).
		Where("id = ? AND is_deleted = ?", comment.ID, true).
		UpdateColumn("is_deleted", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return nil // silinmemiş, sayaç oynamaz
	}

	comment.IsDeleted = false

	return tx.Model(&models.Post{}).
		Where("id = ?", comment.PostID).
		UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).
		Error
}

// HardDeleteComment yorumu ve doğrudan yanıtlarını kalıcı olarak siler.
// Sayaç, silinen kayıtlardan yalnızca yaşayanlar kadar azalır.
func HardDeleteComment(id uint) error {
	var comment models.Comment
	if err := db.DB.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		_, err := hardDeleteCommentTx(tx, &comment)
		return err
	})
}

// hardDeleteCommentTx kökle birlikte doğrudan yanıtları da siler ve kaskatta
// giden yanıt kimliklerini döner; toplu işlemler aynı partide seçilmiş bir
// yanıtı ikinci kez aramaya kalkmasın.
func hardDeleteCommentTx(tx *gorm.DB, comment *models.Comment) ([]uint, error) {
	var replies []models.Comment
	if err := tx.Select("id, is_deleted").
		Where("parent_id = ?", comment.ID).
		Find(&replies).Error; err != nil {
		return nil, err
	}

	var liveCount int64
	cascaded := make([]uint, 0, len(replies))
	for _, r := range replies {
		cascaded = append(cascaded, r.ID)
		if !r.IsDeleted {
			liveCount++
		}
	}
	if !comment.IsDeleted {
		liveCount++
	}

	if err := tx.Where("parent_id = ?", comment.ID).Delete(&models.Comment{}).Error; err != nil {
		return nil, err
	}
	if err := tx.Delete(comment).Error; err != nil {
		return nil, err
	}

	if liveCount > 0 {
		if err := tx.Model(&models.Post{}).
			Where("id = ?", comment.PostID).
			UpdateColumn("comment_count", gorm.Expr("comment_count - ?", liveCount)).
			Error; err != nil {
			return nil, err
		}
	}
	return cascaded, nil
}

// LikeComment beğeni sayacını atomik artırır, yeni değeri döner
func LikeComment(id uint) (int, error) {
	res := db.DB.Model(&models.Comment{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrNotFound
	}

	var comment models.Comment
	if err := db.DB.Select("likes").First(&comment, id).Error; err != nil {
		return 0, err
	}
	return comment.Likes, nil
}

// ReportComment şikayet kaydı açar ve sayacı aynı transaction içinde artırır
func ReportComment(id, userID uint, reason string) error {
	var comment models.Comment
	if err := db.DB.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		report := models.Report{
			UserID:    userID,
			CommentID: comment.ID,
			Reason:    reason,
		}
		if err := tx.Create(&report).Error; err != nil {
			return err
		}
		return tx.Model(&comment).
			UpdateColumn("report_count", gorm.Expr("report_count + 1")).
			Error
	})
}

// ResetCommentReports şikayet sayacını sıfırlar ve kayıtları temizler (yönetici)
func ResetCommentReports(id uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Comment{}).
			Where("id = ?", id).
			UpdateColumn("report_count", 0)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("comment_id = ?", id).Delete(&models.Report{}).Error
	})
}

// RecountComments sayacı satırlardan yeniden hesaplayıp üzerine yazar.
// Normal yazma yolu sayaçları transaction içinde tuttuğu için bu yalnızca
// yönetici panelinden çağrılan bir onarım aracıdır.
func RecountComments(postID uint) (int64, error) {
	var count int64
	if err := db.DB.Model(&models.Comment{}).
		Where("post_id = ? AND is_deleted = ?", postID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}

	res := db.DB.Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("comment_count", count)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrNotFound
	}
	return count, nil
}
