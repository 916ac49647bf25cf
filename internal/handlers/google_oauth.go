package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sata2500/tech-rehberi/internal/services"
	"github.com/sata2500/tech-rehberi/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var googleOauthConfig *oauth2.Config

// InitGoogleOAuth Google OAuth yapılandırmasını hazırlar
func InitGoogleOAuth(clientID, clientSecret, siteURL string) {
	googleOauthConfig = &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  siteURL + "/api/auth/google/callback",
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// GoogleUserInfo Google'dan dönen kullanıcı bilgisi
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	Picture       string `json:"picture"`
}

// GoogleLogin Google OAuth akışını başlatır
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	state, err := utils.NewStateToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Durum anahtarı üretilemedi"})
		return
	}

	// state callback'te doğrulanmak üzere oturumda tutulur
	session := sessions.Default(c)
	session.Set("oauth_state", state)
	session.Save()

	url := googleOauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback OAuth dönüşünü işler; kimliği EnsureUser'dan geçirip
// oturum açar. Profil yoksa varsayılan rolle oluşur, varsa eksikler dolar.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	session := sessions.Default(c)
	savedState := session.Get("oauth_state")

	if savedState == nil || c.Query("state") != savedState.(string) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz durum parametresi"})
		return
	}

	session.Delete("oauth_state")
	session.Save()

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Yetkilendirme kodu alınamadı"})
		return
	}

	token, err := googleOauthConfig.Exchange(context.Background(), code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erişim anahtarı alınamadı"})
		return
	}

	userInfo, err := getGoogleUserInfo(token.AccessToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Kullanıcı bilgisi alınamadı"})
		return
	}

	if !userInfo.VerifiedEmail {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Google e-posta adresi doğrulanmamış"})
		return
	}

	user, err := services.EnsureUser(services.Identity{
		GoogleID: userInfo.ID,
		Email:    userInfo.Email,
		Username: userInfo.GivenName,
		PhotoURL: userInfo.Picture,
	}, h.cfg.DefaultRole)
	if err != nil {
		JSONError(c, err)
		return
	}

	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func getGoogleUserInfo(accessToken string) (*GoogleUserInfo, error) {
	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + accessToken)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kullanıcı bilgisi isteği başarısız: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var userInfo GoogleUserInfo
	if err := json.Unmarshal(body, &userInfo); err != nil {
		return nil, err
	}

	return &userInfo, nil
}
