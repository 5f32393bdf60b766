package web

import (
	"html/template"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitials(t *testing.T) {
	initials := funcs["initials"].(func(string) string)

	assert.Equal(t, "AD", initials("admin"))
	assert.Equal(t, "", initials("   "))

	got := initials("李小龙")
	assert.Equal(t, "李小", got)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "ÉL", initials(" élodie"))
}

func TestBannerURL(t *testing.T) {
	allowed := []string{
		"https://cdn.klowq.com/banner.png",
		"http://cdn.klowq.com/banner.png",
		"/media/banners/0b6f.png",
		"data:image/png;base64,iVBORw0KGgo=",
		"data:image/jpeg;base64,/9j/4AAQ",
	}
	for _, s := range allowed {
		assert.Equal(t, template.URL(s), bannerURL(s), s)
	}

	blocked := []string{
		"",
		"javascript:alert(1)",
		"//evil.example/x.png",
		"data:image/svg+xml;base64,PHN2Zz4=",
		"data:text/html;base64,PHNjcmlwdD4=",
		"data:image/png;base64,abc\"onerror=x",
	}
	for _, s := range blocked {
		assert.Empty(t, bannerURL(s), s)
	}
}

func TestNewRenderer_AllPages(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	for _, p := range append(pages, "login") {
		assert.True(t, r.Has(p), p)
	}
}
