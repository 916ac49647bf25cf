package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sata2500/tech-rehberi/internal/models"

	"github.com/gin-gonic/gin"
)

func newTestRouter(user *models.User, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if user != nil {
		r.Use(func(c *gin.Context) {
			c.Set(CheckUserKey, user)
			c.Next()
		})
	}
	chain := append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/korumali", chain...)
	return r
}

func doRequest(r *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/korumali", nil)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestAuthRequired(t *testing.T) {
	// Girişsiz istek 401 alır
	if code := doRequest(newTestRouter(nil, AuthRequired())); code != http.StatusUnauthorized {
		t.Errorf("girişsiz: code = %d, beklenen 401", code)
	}

	user := &models.User{ID: 1, Role: models.RoleUser}
	if code := doRequest(newTestRouter(user, AuthRequired())); code != http.StatusOK {
		t.Errorf("girişli: code = %d, beklenen 200", code)
	}
}

func TestAdminRequired(t *testing.T) {
	// Yetki sınırı sunucuda: normal kullanıcı 403, girişsiz 401 alır
	if code := doRequest(newTestRouter(nil, AdminRequired())); code != http.StatusUnauthorized {
		t.Errorf("girişsiz: code = %d, beklenen 401", code)
	}

	user := &models.User{ID: 1, Role: models.RoleUser}
	if code := doRequest(newTestRouter(user, AdminRequired())); code != http.StatusForbidden {
		t.Errorf("normal kullanıcı: code = %d, beklenen 403", code)
	}

	editor := &models.User{ID: 2, Role: models.RoleEditor}
	if code := doRequest(newTestRouter(editor, AdminRequired())); code != http.StatusForbidden {
		t.Errorf("editör: code = %d, beklenen 403", code)
	}

	admin := &models.User{ID: 3, Role: models.RoleAdmin}
	if code := doRequest(newTestRouter(admin, AdminRequired())); code != http.StatusOK {
		t.Errorf("yönetici: code = %d, beklenen 200", code)
	}
}

func TestCurrentUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if CurrentUser(c) != nil {
		t.Error("boş context kullanıcı döndürdü")
	}

	user := &models.User{ID: 5}
	c.Set(CheckUserKey, user)
	if got := CurrentUser(c); got == nil || got.ID != 5 {
		t.Error("context'teki kullanıcı dönmedi")
	}
}
