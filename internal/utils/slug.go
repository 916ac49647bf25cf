package utils

import (
	"strings"
)

// Türkçe karakterlerin URL karşılıkları
var turkishReplacer = strings.NewReplacer(
	"ç", "c", "Ç", "c",
	"ğ", "g", "Ğ", "g",
	"ı", "i", "I", "i",
	"İ", "i",
	"ö", "o", "Ö", "o",
	"ş", "s", "Ş", "s",
	"ü", "u", "Ü", "u",
)

// Slugify başlıktan URL dostu bir kimlik üretir.
// "Go ile Web Geliştirme" -> "go-ile-web-gelistirme"
func Slugify(title string) string {
	s := turkishReplacer.Replace(title)
	s = strings.ToLower(s)

	var b strings.Builder
	lastDash := true // baştaki tireleri engelle
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
