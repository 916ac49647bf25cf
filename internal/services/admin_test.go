package services

import (
	"errors"
	"testing"

	"github.com/sata2500/tech-rehberi/internal/db"
	"github.com/sata2500/tech-rehberi/internal/models"
)

func TestBulkModerateCommentsReject(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, models.RoleUser)
	post := createTestPost(t, user.ID, models.PostStatusPublished)

	first := addComment(t, post.ID, user.ID, "bir", nil)
	second := addComment(t, post.ID, user.ID, "iki", nil)
	third := addComment(t, post.ID, user.ID, "üç", nil)

	if err := BulkModerateComments([]uint{first.ID, second.ID}, BulkActionReject); err != nil {
		t.Fatalf("toplu silme başarısız: %v", err)
	}

	for _, id := range []uint{first.ID, second.ID} {
		var c models.Comment
		if err := dbFirst(&c, id); err != nil {
			t.Fatalf("kayıt bulunamadı: %v", err)
		}
		if !c.IsDeleted || c.Content != models.DeletedCommentPlaceholder {
			t.Errorf("yorum %d silinmedi", id)
		}
	}

	var untouched models.Comment
	if err := dbFirst(&untouched, third.ID); err != nil {
		t.Fatalf("kayıt bulunamadı: %v", err)
	}
	if untouched.IsDeleted {
		t.Error("seçilmeyen yorum silindi")
	}
	if got := commentCountOf(t, post.ID); got != 1 {
		t.Errorf("comment_count = %d, beklenen 1", got)
	}
}

func TestBulkModerateCommentsApprove(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, models.RoleUser)
	post := createTestPost(t, user.ID, models.PostStatusPublished)

	first := addComment(t, post.ID, user.ID, "bir", nil)
	second := addComment(t, post.ID, user.ID, "iki", nil)
	if err := BulkModerateComments([]uint{first.ID, second.ID}, BulkActionReject); err != nil {
		t.Fatalf("hazırlık başarısız: %v", err)
	}

	if err := BulkModerateComments([]uint{first.ID, second.ID}, BulkActionApprove); err != nil {
		t.Fatalf("toplu geri getirme başarısız: %v", err)
	}
	if got := commentCountOf(t, post.ID); got != 2 {
		t.Errorf("comment_count = %d, beklenen 2", got)
	}
}

func TestBulkModerateCommentsAtomic(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, models.RoleUser)
	post := createTestPost(t, user.ID, models.PostStatusPublished)

	first := addComment(t, post.ID, user.ID, "bir", nil)
	second := addComment(t, post.ID, user.ID, "iki", nil)

	// Listedeki olmayan kayıt tüm işlemi geri aldırır
	err := BulkModerateComments([]uint{first.ID, 99999, second.ID}, BulkActionReject)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, beklenen ErrNotFound", err)
	}

	for _, id := range []uint{first.ID, second.ID} {
		var c models.Comment
		if err := dbFirst(&c, id); err != nil {
			t.Fatalf("kayıt bulunamadı: %v", err)
		}
		if c.IsDeleted {
			t.Errorf("geri alınması gereken silme kaldı: yorum %d", id)
		}
	}
	if got := commentCountOf(t, post.ID); got != 2 {
		t.Errorf("comment_count = %d, beklenen 2", got)
	}
}

func TestBulkDeleteThreadSelection(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, models.RoleUser)
	post := createTestPost(t, user.ID, models.PostStatusPublished)

	root := addComment(t, post.ID, user.ID, "kök", nil)
	replyA := addComment(t, post.ID, user.ID, "yanıt 1", &root.ID)
	addComment(t, post.ID, user.ID, "yanıt 2", &root.ID)
	other := addComment(t, post.ID, user.ID, "bağımsız kök", nil)

	// Kök ve yanıtı aynı partide: kökün kaskadı yanıtı götürür, partinin
	// geri kalanı buna takılmadan tamamlanır
	if err := BulkModerateComments([]uint{root.ID, replyA.ID}, BulkActionDelete); err != nil {
		t.Fatalf("toplu silme başarısız: %v", err)
	}

	var remaining []models.Comment
	db.DB.Where("post_id = ?", post.ID).Find(&remaining)
	if len(remaining) != 1 || remaining[0].ID != other.ID {
		t.Errorf("kalan yorumlar yanlış: %d kayıt", len(remaining))
	}
	if got := commentCountOf(t, post.ID); got != 1 {
		t.Errorf("comment_count = %d, beklenen 1", got)
	}

	// Partide hiç var olmamış kimlik hâlâ hatadır
	if err := BulkModerateComments([]uint{99999}, BulkActionDelete); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, beklenen ErrNotFound", err)
	}
}

func TestBulkModerateCommentsValidation(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, models.RoleUser)
	post := createTestPost(t, user.ID, models.PostStatusPublished)
	comment := addComment(t, post.ID, user.ID, "yorum", nil)

	if err := BulkModerateComments(nil, BulkActionReject); !errors.Is(err, ErrEmptySelection) {
		t.Errorf("boş seçim: err = %v, beklenen ErrEmptySelection", err)
	}
	if err := BulkModerateComments([]uint{comment.ID}, "bilinmeyen"); err == nil {
		t.Error("bilinmeyen eylem kabul edildi")
	}
}

func TestBulkModeratePosts(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, models.RoleUser)
	pendingA := createTestPost(t, user.ID, models.PostStatusPending)
	pendingB := createTestPost(t, user.ID, models.PostStatusPending)
	pendingC := createTestPost(t, user.ID, models.PostStatusPending)

	if err := BulkModeratePosts([]uint{pendingA.ID, pendingB.ID}, BulkActionApprove); err != nil {
		t.Fatalf("toplu onay başarısız: %v", err)
	}
	for _, id := range []uint{pendingA.ID, pendingB.ID} {
		var p models.Post
		if err := dbFirst(&p, id); err != nil {
			t.Fatalf("kayıt bulunamadı: %v", err)
		}
		if !p.IsPublished() {
			t.Errorf("yazı %d yayına alınmadı: %q", id, p.Status)
		}
	}

	if err := BulkModeratePosts([]uint{pendingC.ID}, BulkActionReject); err != nil {
		t.Fatalf("toplu red başarısız: %v", err)
	}
	var rejected models.Post
	if err := dbFirst(&rejected, pendingC.ID); err != nil {
		t.Fatalf("kayıt bulunamadı: %v", err)
	}
	if rejected.Status != models.PostStatusRejected {
		t.Errorf("status = %q, beklenen rejected", rejected.Status)
	}

	if err := BulkModeratePosts([]uint{pendingA.ID}, BulkActionDelete); err != nil {
		t.Fatalf("toplu silme başarısız: %v", err)
	}
	var gone models.Post
	if err := dbFirst(&gone, pendingA.ID); err == nil {
		t.Error("silinen yazı hâlâ duruyor")
	}
}

func TestBulkModeratePostsAtomic(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, models.RoleUser)
	pending := createTestPost(t, user.ID, models.PostStatusPending)

	err := BulkModeratePosts([]uint{pending.ID, 99999}, BulkActionApprove)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, beklenen ErrNotFound", err)
	}

	var stored models.Post
	if err := dbFirst(&stored, pending.ID); err != nil {
		t.Fatalf("kayıt bulunamadı: %v", err)
	}
	if stored.Status != models.PostStatusPending {
		t.Errorf("geri alınması gereken onay kaldı: %q", stored.Status)
	}
}

func TestPendingPosts(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, models.RoleUser)
	createTestPost(t, user.ID, models.PostStatusPublished)
	pending := createTestPost(t, user.ID, models.PostStatusPending)

	posts, err := PendingPosts()
	if err != nil {
		t.Fatalf("liste çekilemedi: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != pending.ID {
		t.Errorf("bekleyen listesi yanlış: %d kayıt", len(posts))
	}

	var count int64
	db.DB.Model(&models.Post{}).Count(&count)
	if count != 2 {
		t.Fatalf("hazırlık bozuk: %d yazı", count)
	}
}
