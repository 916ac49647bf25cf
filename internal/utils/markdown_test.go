package utils

import (
	"strings"
	"testing"
)

func TestRenderMarkdownBasic(t *testing.T) {
	out := RenderMarkdown("# Başlık\n\nBu bir **kalın** metin.")

	if !strings.Contains(out, "<h1") || !strings.Contains(out, "Başlık") {
		t.Errorf("başlık çevrilmedi: %q", out)
	}
	if !strings.Contains(out, "<strong>kalın</strong>") {
		t.Errorf("kalın metin çevrilmedi: %q", out)
	}
}

func TestRenderMarkdownStripsScript(t *testing.T) {
	out := RenderMarkdown("merhaba <script>alert('xss')</script> dünya")

	if strings.Contains(out, "<script") || strings.Contains(out, "alert(") {
		t.Errorf("script temizlenmedi: %q", out)
	}
	if !strings.Contains(out, "merhaba") {
		t.Errorf("metin kayboldu: %q", out)
	}
}

func TestRenderMarkdownImageAttributes(t *testing.T) {
	out := RenderMarkdown("![resim](https://ornek.com/a.png)")

	if !strings.Contains(out, "<img") {
		t.Fatalf("görsel çevrilmedi: %q", out)
	}
	if !strings.Contains(out, `loading="lazy"`) {
		t.Errorf("loading özniteliği eksik: %q", out)
	}
	if !strings.Contains(out, `referrerpolicy="no-referrer"`) {
		t.Errorf("referrerpolicy özniteliği eksik: %q", out)
	}
}

func TestRenderMarkdownGFMTable(t *testing.T) {
	src := "| A | B |\n|---|---|\n| 1 | 2 |"
	out := RenderMarkdown(src)

	if !strings.Contains(out, "<table") {
		t.Errorf("tablo çevrilmedi: %q", out)
	}
}
