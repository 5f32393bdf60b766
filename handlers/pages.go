package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/klowq/admin-dashboard/internal/doctors"
	"github.com/klowq/admin-dashboard/internal/models"
	"github.com/klowq/admin-dashboard/pkg/logger"
	"github.com/klowq/admin-dashboard/pkg/middleware"
)

// PageSize is the number of rows per list page.
const PageSize = 10

// PageData is passed to every dashboard template.
type PageData struct {
	Title  string
	Active string
	User   models.User
	Data   any
}

// Page is one window of a paginated list.
type Page[T any] struct {
	Items     []T
	Number    int
	Pages     int
	Total     int
	HasPrev   bool
	HasNext   bool
	PrevQuery template.URL
	NextQuery template.URL
}

// Paginate cuts list into pages of size; number is clamped into range.
func Paginate[T any](list []T, number, size int, query url.Values) Page[T] {
	pages := (len(list) + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > pages {
		number = pages
	}
	start := (number - 1) * size
	end := min(start+size, len(list))
	p := Page[T]{
		Items:   list[start:end],
		Number:  number,
		Pages:   pages,
		Total:   len(list),
		HasPrev: number > 1,
		HasNext: number < pages,
	}
	withPage := func(n int) template.URL {
		q := url.Values{}
		for k, v := range query {
			q[k] = v
		}
		q.Set("page", strconv.Itoa(n))
		return template.URL(q.Encode())
	}
	p.PrevQuery, p.NextQuery = withPage(number-1), withPage(number+1)
	return p
}

type PageHandler struct {
	blogs     BlogStore
	prefs     PreferenceStore
	doctors   DoctorSource
	dashboard *DashboardHandler
}

func NewPageHandler(b BlogStore, p PreferenceStore, d DoctorSource) *PageHandler {
	return &PageHandler{blogs: b, prefs: p, doctors: d, dashboard: NewDashboardHandler(b, p, d)}
}

// Register mounts the pages. guard protects everything except /login, which
// gets loginGuard instead.
func (h *PageHandler) Register(r gin.IRouter, guard, loginGuard gin.HandlerFunc) {
	r.GET("/login", loginGuard, h.Login)

	g := r.Group("/", guard)
	g.GET("/", h.Overview)
	g.GET("/blogs", h.Blogs)
	g.GET("/blogs/new", h.NewBlog)
	g.GET("/blogs/:id", h.EditBlog)
	g.GET("/preferences", h.Preferences)
	g.GET("/doctors", h.Doctors)
	g.GET("/settings", h.Settings)
}

func (h *PageHandler) render(c *gin.Context, name, title string, data any) {
	h.renderStatus(c, http.StatusOK, name, title, data)
}

func (h *PageHandler) renderStatus(c *gin.Context, status int, name, title string, data any) {
	u, _ := middleware.CurrentUser(c)
	active := name
	if name == "blog_edit" {
		active = "blogs"
	}
	c.HTML(status, name, PageData{Title: title, Active: active, User: u, Data: data})
}

// failPage answers a page route with an HTML error inside the layout.
func (h *PageHandler) failPage(c *gin.Context, err error) {
	if errors.Is(err, models.ErrNotFound) {
		h.renderStatus(c, http.StatusNotFound, "not_found", "Not found", "The page you asked for does not exist.")
		return
	}
	logger.Errorf("request %s: render %s: %v", middleware.GetRequestID(c), c.FullPath(), err)
	_ = c.Error(err)
	h.renderStatus(c, http.StatusInternalServerError, "not_found", "Error", "Something went wrong loading this page.")
}

func pageNumber(c *gin.Context) int {
	n, _ := strconv.Atoi(c.Query("page"))
	return n
}

func (h *PageHandler) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login", nil)
}

func (h *PageHandler) Overview(c *gin.Context) {
	o, err := h.dashboard.Build()
	if err != nil {
		h.failPage(c, err)
		return
	}
	h.render(c, "overview", "Overview", o)
}

type blogsPage struct {
	Query string
	Sort  string
	Page  Page[models.Blog]
}

// Blogs lists posts with a title/author search and a sort order
// (latest, oldest, featured first, or title).
func (h *PageHandler) Blogs(c *gin.Context) {
	list, err := h.blogs.List()
	if err != nil {
		h.failPage(c, err)
		return
	}
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	sortBy := c.DefaultQuery("sort", "latest")

	out := make([]models.Blog, 0, len(list))
	for _, b := range list {
		if q == "" || strings.Contains(strings.ToLower(b.Title), q) || strings.Contains(strings.ToLower(b.Author), q) {
			out = append(out, b)
		}
	}
	switch sortBy {
	case "oldest":
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	case "title":
		sort.SliceStable(out, func(i, j int) bool { return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title) })
	case "featured":
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Featured != out[j].Featured {
				return out[i].Featured
			}
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	default:
		sortBy = "latest"
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	query := url.Values{"q": {c.Query("q")}, "sort": {sortBy}}
	h.render(c, "blogs", "Blogs", blogsPage{
		Query: c.Query("q"),
		Sort:  sortBy,
		Page:  Paginate(out, pageNumber(c), PageSize, query),
	})
}

type editorPage struct {
	Blog        *models.Blog
	Chosen      []string
	Preferences []models.Preference
	Doctors     []models.Doctor
}

func (h *PageHandler) editor(c *gin.Context, b *models.Blog) {
	prefs, err := h.prefs.List()
	if err != nil {
		h.failPage(c, err)
		return
	}
	docs, err := h.doctors.List()
	if err != nil {
		h.failPage(c, err)
		return
	}
	data := editorPage{Blog: b, Preferences: prefs, Doctors: docs}
	title := "New blog"
	if b != nil {
		data.Chosen = b.Preferences
		title = "Edit blog"
	}
	h.render(c, "blog_edit", title, data)
}

func (h *PageHandler) NewBlog(c *gin.Context) { h.editor(c, nil) }

func (h *PageHandler) EditBlog(c *gin.Context) {
	b, err := h.blogs.Get(c.Param("id"))
	if err != nil {
		h.failPage(c, err)
		return
	}
	h.editor(c, b)
}

func (h *PageHandler) Preferences(c *gin.Context) {
	list, err := h.prefs.List()
	if err != nil {
		h.failPage(c, err)
		return
	}
	h.render(c, "preferences", "Preferences", list)
}

type doctorsPage struct {
	Query    string
	Status   models.DoctorStatus
	Statuses []models.DoctorStatus
	Page     Page[models.Doctor]
}

func (h *PageHandler) Doctors(c *gin.Context) {
	list, err := h.doctors.List()
	if err != nil {
		h.failPage(c, err)
		return
	}
	q, status := c.Query("q"), models.DoctorStatus(c.Query("status"))
	filtered := doctors.Filter(list, q, status)
	query := url.Values{"q": {q}, "status": {string(status)}}
	h.render(c, "doctors", "Doctors", doctorsPage{
		Query:    q,
		Status:   status,
		Statuses: models.DoctorStatuses,
		Page:     Paginate(filtered, pageNumber(c), PageSize, query),
	})
}

func (h *PageHandler) Settings(c *gin.Context) {
	h.render(c, "settings", "Settings", nil)
}
