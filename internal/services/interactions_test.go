package services

import (
	"errors"
	"testing"

	"github.com/sata2500/tech-rehberi/internal/models"
)

func TestTogglePostLike(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, models.RoleUser)
	reader := createTestUser(t, models.RoleUser)
	post := createTestPost(t, author.ID, models.PostStatusPublished)

	liked, count, err := TogglePostLike(reader.ID, post.ID)
	if err != nil {
		t.Fatalf("beğeni başarısız: %v", err)
	}
	if !liked || count != 1 {
		t.Errorf("liked = %v, count = %d, beklenen true, 1", liked, count)
	}
	if !HasLiked(reader.ID, post.ID) {
		t.Error("HasLiked false döndü")
	}

	// İkinci çağrı beğeniyi geri alır
	liked, count, err = TogglePostLike(reader.ID, post.ID)
	if err != nil {
		t.Fatalf("geri alma başarısız: %v", err)
	}
	if liked || count != 0 {
		t.Errorf("liked = %v, count = %d, beklenen false, 0", liked, count)
	}
	if HasLiked(reader.ID, post.ID) {
		t.Error("HasLiked true döndü")
	}
}

func TestTogglePostBookmark(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, models.RoleUser)
	reader := createTestUser(t, models.RoleUser)
	post := createTestPost(t, author.ID, models.PostStatusPublished)

	bookmarked, count, err := TogglePostBookmark(reader.ID, post.ID)
	if err != nil {
		t.Fatalf("yer imi başarısız: %v", err)
	}
	if !bookmarked || count != 1 {
		t.Errorf("bookmarked = %v, count = %d, beklenen true, 1", bookmarked, count)
	}

	bookmarked, count, err = TogglePostBookmark(reader.ID, post.ID)
	if err != nil {
		t.Fatalf("geri alma başarısız: %v", err)
	}
	if bookmarked || count != 0 {
		t.Errorf("bookmarked = %v, count = %d, beklenen false, 0", bookmarked, count)
	}
	if HasBookmarked(reader.ID, post.ID) {
		t.Error("HasBookmarked true döndü")
	}
}

func TestToggleLikeNotFound(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, models.RoleUser)

	if _, _, err := TogglePostLike(user.ID, 99999); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, beklenen ErrNotFound", err)
	}
}
