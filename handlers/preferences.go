package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/klowq/admin-dashboard/internal/models"
)

// PreferenceStore is the persistence the preference endpoints need.
type PreferenceStore interface {
	List() ([]models.Preference, error)
	Get(id string) (*models.Preference, error)
	Create(in models.CreatePreferenceInput) (*models.Preference, error)
	Update(id string, in models.UpdatePreferenceInput) (*models.Preference, error)
	Delete(id string) error
}

type PreferenceHandler struct {
	store PreferenceStore
}

func NewPreferenceHandler(s PreferenceStore) *PreferenceHandler {
	return &PreferenceHandler{store: s}
}

func (h *PreferenceHandler) Register(rg *gin.RouterGroup) {
	p := rg.Group("/preferences")
	p.GET("", h.List)
	p.POST("", h.Create)
	p.GET("/:id", h.Get)
	p.PUT("/:id", h.Update)
	p.DELETE("/:id", h.Delete)
}

func preferenceMessages(invalid, failure string) messages {
	return messages{
		notFound:  "Preference not found",
		invalid:   invalid,
		duplicate: "Preference with this name already exists",
		failure:   failure,
	}
}

func (h *PreferenceHandler) List(c *gin.Context) {
	list, err := h.store.List()
	observe("preferences", "list", err)
	if err != nil {
		fail(c, err, preferenceMessages("", "Failed to fetch preferences"))
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *PreferenceHandler) Get(c *gin.Context) {
	p, err := h.store.Get(c.Param("id"))
	observe("preferences", "get", err)
	if err != nil {
		fail(c, err, preferenceMessages("", "Failed to fetch preference"))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PreferenceHandler) Create(c *gin.Context) {
	var in models.CreatePreferenceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c)
		return
	}
	p, err := h.store.Create(in)
	observe("preferences", "create", err)
	if err != nil {
		fail(c, err, preferenceMessages("Preference name is required", "Failed to create preference"))
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *PreferenceHandler) Update(c *gin.Context) {
	var in models.UpdatePreferenceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c)
		return
	}
	p, err := h.store.Update(c.Param("id"), in)
	observe("preferences", "update", err)
	if err != nil {
		fail(c, err, preferenceMessages("Preference name cannot be empty", "Failed to update preference"))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PreferenceHandler) Delete(c *gin.Context) {
	err := h.store.Delete(c.Param("id"))
	observe("preferences", "delete", err)
	if err != nil {
		fail(c, err, preferenceMessages("", "Failed to delete preference"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Preference deleted successfully"})
}
