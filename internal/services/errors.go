package services

import (
	"errors"
)

// Servis katmanının döndüğü hatalar. Handler'lar bunları HTTP koduna çevirir.
var (
	ErrNotFound       = errors.New("kayıt bulunamadı")
	ErrForbidden      = errors.New("bu işlem için yetkiniz yok")
	ErrEmptyContent   = errors.New("içerik boş olamaz")
	ErrReplyDepth     = errors.New("yanıta yanıt verilemez, üst yoruma yanıt verin")
	ErrParentMismatch = errors.New("üst yorum başka bir yazıya ait")
	ErrNotPublished   = errors.New("yazı yayında değil")
	ErrAlreadyExists  = errors.New("kayıt zaten mevcut")
)
