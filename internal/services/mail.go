package services

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// MailService SMTP üzerinden asenkron bildirim e-postaları gönderir.
// SMTP ayarları eksikse sessizce devre dışı kalır; e-posta gönderimi hiçbir
// akışı bloklamaz ya da bozmaz.
type MailService struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	SiteURL  string
	Enabled  bool
}

func NewMailService(host, port, user, pass, from, siteURL string) *MailService {
	enabled := host != "" && port != "" && user != "" && pass != "" && from != ""
	if !enabled {
		log.Println("MailService devre dışı: SMTP ayarları eksik")
	}

	return &MailService{
		Host:     host,
		Port:     port,
		Username: user,
		Password: pass,
		From:     from,
		SiteURL:  siteURL,
		Enabled:  enabled,
	}
}

func (s *MailService) sendAsync(to []string, subject string, body string) {
	if !s.Enabled {
		return
	}

	go func() {
		auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
		addr := fmt.Sprintf("%s:%s", s.Host, s.Port)

		mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
		msg := []byte(fmt.Sprintf("To: %s\r\n"+
			"From: Tech Rehberi <%s>\r\n"+
			"Subject: %s\r\n"+
			"%s\r\n%s", strings.Join(to, ","), s.From, subject, mime, body))

		if err := smtp.SendMail(addr, auth, s.From, to, msg); err != nil {
			log.Printf("E-posta gönderilemedi %v: %v", to, err)
		}
	}()
}

// SendReplyNotification yanıt bildirimi gönderir
func (s *MailService) SendReplyNotification(to, actorName, postTitle, postSlug string, commentID uint) {
	link := fmt.Sprintf("%s/yazi/%s#yorum-%d", s.SiteURL, postSlug, commentID)
	body := fmt.Sprintf(
		`<p><strong>%s</strong>, "%s" yazısındaki yorumunuza yanıt verdi.</p>
<p><a href="%s">Yanıtı görüntüle</a></p>
<p>Bu bildirimi hesap ayarlarınızdan kapatabilirsiniz.</p>`,
		actorName, postTitle, link)

	s.sendAsync([]string{to}, "Yorumunuza yanıt geldi", body)
}

// SendCommentNotification yazara yeni yorum bildirimi gönderir
func (s *MailService) SendCommentNotification(to, actorName, postTitle, postSlug string, commentID uint) {
	link := fmt.Sprintf("%s/yazi/%s#yorum-%d", s.SiteURL, postSlug, commentID)
	body := fmt.Sprintf(
		`<p><strong>%s</strong>, "%s" yazınıza yorum yaptı.</p>
<p><a href="%s">Yorumu görüntüle</a></p>`,
		actorName, postTitle, link)

	s.sendAsync([]string{to}, "Yazınıza yeni yorum", body)
}
