package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/klowq/admin-dashboard/internal/doctors"
	"github.com/klowq/admin-dashboard/internal/models"
)

// DoctorSource lists the read-only doctor roster.
type DoctorSource interface {
	List() ([]models.Doctor, error)
}

type DoctorHandler struct {
	src DoctorSource
}

func NewDoctorHandler(s DoctorSource) *DoctorHandler { return &DoctorHandler{src: s} }

func (h *DoctorHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/doctors", h.List)
}

// List returns the roster; optional ?q= and ?status= narrow it down.
func (h *DoctorHandler) List(c *gin.Context) {
	list, err := h.src.List()
	observe("doctors", "list", err)
	if err != nil {
		fail(c, err, messages{failure: "Failed to fetch doctors"})
		return
	}
	q, status := c.Query("q"), models.DoctorStatus(c.Query("status"))
	if q != "" || status != "" {
		list = doctors.Filter(list, q, status)
	}
	c.JSON(http.StatusOK, list)
}
