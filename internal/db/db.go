package db

import (
	"log"

	"github.com/sata2500/tech-rehberi/internal/models"
	"github.com/sata2500/tech-rehberi/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(dsn string) {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanı bağlantısı kurulamadı: %v", err)
	}

	log.Println("Veritabanı bağlantısı kuruldu")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Migrasyon başarısız: %v", err)
	}
	log.Println("Migrasyon tamamlandı")

	seedCategories()
}

// Migrate şemayı günceller; testler de aynı listeyi kullanır.
func Migrate(g *gorm.DB) error {
	return g.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Post{},
		&models.Comment{},
		&models.PostLike{},
		&models.PostBookmark{},
		&models.Notification{},
		&models.Report{},
	)
}

func seedCategories() {
	var count int64
	DB.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return
	}

	categories := []models.Category{
		{Name: "Yazılım", Description: "Programlama dilleri, araçlar ve geliştirme pratikleri"},
		{Name: "Donanım", Description: "Bilgisayar donanımı ve inceleme yazıları"},
		{Name: "Mobil", Description: "Mobil cihazlar ve uygulamalar"},
		{Name: "Yapay Zeka", Description: "Yapay zeka ve makine öğrenmesi"},
		{Name: "İnternet", Description: "Web, güvenlik ve internet kültürü"},
	}

	for _, cat := range categories {
		cat.Slug = utils.Slugify(cat.Name)
		if err := DB.Create(&cat).Error; err != nil {
			log.Printf("Kategori oluşturulamadı %s: %v", cat.Name, err)
		}
	}
	log.Println("Varsayılan kategoriler oluşturuldu")
}
