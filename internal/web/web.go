// Package web holds the embedded dashboard templates and static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Pages rendered inside the shared layout. "login" uses its own bare layout.
var pages = []string{"overview", "blogs", "blog_edit", "preferences", "doctors", "settings", "not_found"}

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.UTC().Format("Jan 2, 2006")
	},
	"initials": func(s string) string {
		r := []rune(strings.TrimSpace(s))
		if len(r) > 2 {
			r = r[:2]
		}
		return strings.ToUpper(string(r))
	},
	"bannerURL": bannerURL,
	"excerpt": func(s string, n int) string {
		s = stripTags(s)
		if len([]rune(s)) <= n {
			return s
		}
		return string([]rune(s)[:n]) + "…"
	},
	"has": func(list []string, v string) bool {
		for _, x := range list {
			if x == v {
				return true
			}
		}
		return false
	},
	"statusClass": func(s any) string {
		return "status-" + strings.ToLower(strings.ReplaceAll(fmt.Sprint(s), " ", "-"))
	},
}

var inlineImage = regexp.MustCompile(`^data:image/(png|jpeg|gif|webp);base64,[A-Za-z0-9+/=]+$`)

// bannerURL lets stored banners through html/template's URL filter: absolute
// http(s) links, site paths and base64 raster data URIs. Anything else renders
// as "".
func bannerURL(s string) template.URL {
	switch {
	case strings.HasPrefix(s, "https://"), strings.HasPrefix(s, "http://"):
		return template.URL(s)
	case strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//"):
		return template.URL(s)
	case inlineImage.MatchString(s):
		return template.URL(s)
	}
	return ""
}

func stripTags(s string) string {
	var b strings.Builder
	in := false
	for _, r := range s {
		switch {
		case r == '<':
			in = true
		case r == '>':
			in = false
		case !in:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Renderer implements gin's render.HTMLRender over one template set per page.
type Renderer struct {
	sets map[string]*template.Template
}

// NewRenderer parses every page against the shared layout.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{sets: map[string]*template.Template{}}
	for _, p := range pages {
		t, err := template.New(p).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+p+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		r.sets[p] = t.Lookup("layout.html")
	}
	login, err := template.New("login").Funcs(funcs).ParseFS(templateFS, "templates/login.html")
	if err != nil {
		return nil, fmt.Errorf("parse login: %w", err)
	}
	r.sets["login"] = login.Lookup("login.html")
	return r, nil
}

// Instance satisfies render.HTMLRender.
func (r *Renderer) Instance(name string, data any) render.Render {
	return render.HTML{Template: r.sets[name], Data: data}
}

// Has reports whether a page called name exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.sets[name]
	return ok
}

// Static returns the static asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
