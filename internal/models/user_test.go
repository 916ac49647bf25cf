package models

import "testing"

func TestNewUserDefaults(t *testing.T) {
	u := NewUser("pid-1", "ayse", "ayse@ornek.com", "")

	if u.Role != RoleUser {
		t.Errorf("role = %q, beklenen %q", u.Role, RoleUser)
	}
	if u.Prefs.Theme != "system" {
		t.Errorf("theme = %q, beklenen system", u.Prefs.Theme)
	}
	if !u.Prefs.EmailOnReply {
		t.Error("email_on_reply varsayılanı true olmalı")
	}
	if !u.Prefs.EmailOnComment {
		t.Error("email_on_comment varsayılanı true olmalı")
	}
	if u.Prefs.EmailOnAnnounce {
		t.Error("email_on_announce varsayılanı false olmalı")
	}
	if u.LastSeenAt.IsZero() {
		t.Error("last_seen_at atanmadı")
	}
}

func TestNewUserExplicitRole(t *testing.T) {
	u := NewUser("pid-2", "mehmet", "mehmet@ornek.com", RoleAdmin)
	if !u.IsAdmin() {
		t.Errorf("role = %q, beklenen admin", u.Role)
	}
}
