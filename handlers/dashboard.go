package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/klowq/admin-dashboard/internal/doctors"
	"github.com/klowq/admin-dashboard/internal/models"
	"github.com/klowq/admin-dashboard/pkg/middleware"
)

const (
	recentDoctors = 10
	recentBlogs   = 5
)

// Overview is the summary shown on the dashboard home page.
type Overview struct {
	TotalBlogs       int                         `json:"totalBlogs"`
	FeaturedBlogs    int                         `json:"featuredBlogs"`
	TotalPreferences int                         `json:"totalPreferences"`
	TotalDoctors     int                         `json:"totalDoctors"`
	DoctorsByStatus  map[models.DoctorStatus]int `json:"doctorsByStatus"`
	RecentDoctors    []models.Doctor             `json:"recentDoctors"`
	RecentBlogs      []models.Blog               `json:"recentBlogs"`
}

type DashboardHandler struct {
	blogs   BlogStore
	prefs   PreferenceStore
	doctors DoctorSource
}

func NewDashboardHandler(b BlogStore, p PreferenceStore, d DoctorSource) *DashboardHandler {
	return &DashboardHandler{blogs: b, prefs: p, doctors: d}
}

func (h *DashboardHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Get)
	rg.GET("/account", h.Account)
}

// Build computes the overview from the three stores.
func (h *DashboardHandler) Build() (*Overview, error) {
	bl, err := h.blogs.List()
	if err != nil {
		return nil, err
	}
	prefs, err := h.prefs.List()
	if err != nil {
		return nil, err
	}
	docs, err := h.doctors.List()
	if err != nil {
		return nil, err
	}

	o := &Overview{
		TotalBlogs:       len(bl),
		TotalPreferences: len(prefs),
		TotalDoctors:     len(docs),
		DoctorsByStatus:  doctors.CountByStatus(docs),
		RecentDoctors:    doctors.Recent(docs, recentDoctors),
	}
	for _, b := range bl {
		if b.Featured {
			o.FeaturedBlogs++
		}
	}
	sorted := make([]models.Blog, len(bl))
	copy(sorted, bl)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt) })
	if len(sorted) > recentBlogs {
		sorted = sorted[:recentBlogs]
	}
	o.RecentBlogs = sorted
	return o, nil
}

func (h *DashboardHandler) Get(c *gin.Context) {
	o, err := h.Build()
	observe("dashboard", "overview", err)
	if err != nil {
		fail(c, err, messages{failure: "Failed to load dashboard"})
		return
	}
	c.JSON(http.StatusOK, o)
}

// Account returns the signed-in admin.
func (h *DashboardHandler) Account(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}
