package services

import (
	"fmt"
	"testing"

	"github.com/sata2500/tech-rehberi/internal/db"
	"github.com/sata2500/tech-rehberi/internal/models"
	"github.com/sata2500/tech-rehberi/internal/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB her test için temiz bir bellek içi veritabanı açar.
// Tek bağlantı: bellek içi sqlite her bağlantıda ayrı veritabanı
// gördüğünden havuz bire sabitlenir, eşzamanlı testler de serileşir.
func setupTestDB(t *testing.T) {
	t.Helper()

	g, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("test veritabanı açılamadı: %v", err)
	}

	sqlDB, err := g.DB()
	if err != nil {
		t.Fatalf("sql.DB alınamadı: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(g); err != nil {
		t.Fatalf("migrasyon başarısız: %v", err)
	}

	old := db.DB
	db.DB = g
	t.Cleanup(func() {
		db.DB = old
		sqlDB.Close()
	})
}

var fixtureSeq int

func createTestUser(t *testing.T, role string) *models.User {
	t.Helper()
	fixtureSeq++
	user := models.NewUser(
		utils.NewPublicID(),
		fmt.Sprintf("kullanici%d", fixtureSeq),
		fmt.Sprintf("kullanici%d@ornek.com", fixtureSeq),
		role,
	)
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("test kullanıcısı oluşturulamadı: %v", err)
	}
	return &user
}

func createTestPost(t *testing.T, userID uint, status string) *models.Post {
	t.Helper()
	fixtureSeq++
	post := models.Post{
		Slug:       fmt.Sprintf("test-yazi-%d", fixtureSeq),
		UserID:     userID,
		CategoryID: createTestCategory(t).ID,
		Title:      fmt.Sprintf("Test Yazı %d", fixtureSeq),
		Content:    "İçerik",
		Status:     status,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		t.Fatalf("test yazısı oluşturulamadı: %v", err)
	}
	return &post
}

func createTestCategory(t *testing.T) *models.Category {
	t.Helper()
	fixtureSeq++
	cat := models.Category{
		Name: fmt.Sprintf("Kategori %d", fixtureSeq),
		Slug: fmt.Sprintf("kategori-%d", fixtureSeq),
	}
	if err := db.DB.Create(&cat).Error; err != nil {
		t.Fatalf("test kategorisi oluşturulamadı: %v", err)
	}
	return &cat
}

func dbFirst(dest interface{}, id uint) error {
	return db.DB.First(dest, id).Error
}

func setCommentCount(postID uint, count int) error {
	return db.DB.Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("comment_count", count).Error
}

func commentCountOf(t *testing.T, postID uint) int {
	t.Helper()
	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		t.Fatalf("yazı okunamadı: %v", err)
	}
	return post.CommentCount
}
