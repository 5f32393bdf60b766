package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/klowq/admin-dashboard/internal/models"
)

// BlogStore is the persistence the blog endpoints need.
type BlogStore interface {
	List() ([]models.Blog, error)
	Get(id string) (*models.Blog, error)
	Create(in models.CreateBlogInput) (*models.Blog, error)
	Update(id string, in models.UpdateBlogInput) (*models.Blog, error)
	Delete(id string) error
}

type BlogHandler struct {
	store BlogStore
}

func NewBlogHandler(s BlogStore) *BlogHandler { return &BlogHandler{store: s} }

func (h *BlogHandler) Register(rg *gin.RouterGroup) {
	b := rg.Group("/blogs")
	b.GET("", h.List)
	b.POST("", h.Create)
	b.GET("/:id", h.Get)
	b.PUT("/:id", h.Update)
	b.DELETE("/:id", h.Delete)
}

func blogMessages(failure string) messages {
	return messages{notFound: "Blog not found", invalid: "Invalid blog", failure: failure}
}

func (h *BlogHandler) List(c *gin.Context) {
	list, err := h.store.List()
	observe("blogs", "list", err)
	if err != nil {
		fail(c, err, blogMessages("Failed to fetch blogs"))
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *BlogHandler) Get(c *gin.Context) {
	b, err := h.store.Get(c.Param("id"))
	observe("blogs", "get", err)
	if err != nil {
		fail(c, err, blogMessages("Failed to fetch blog"))
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BlogHandler) Create(c *gin.Context) {
	var in models.CreateBlogInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c)
		return
	}
	if in.Title == "" || in.Content == "" || in.Author == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, content, and author are required"})
		return
	}
	b, err := h.store.Create(in)
	observe("blogs", "create", err)
	if err != nil {
		fail(c, err, blogMessages("Failed to create blog"))
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BlogHandler) Update(c *gin.Context) {
	var in models.UpdateBlogInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c)
		return
	}
	b, err := h.store.Update(c.Param("id"), in)
	observe("blogs", "update", err)
	if err != nil {
		fail(c, err, blogMessages("Failed to update blog"))
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	err := h.store.Delete(c.Param("id"))
	observe("blogs", "delete", err)
	if err != nil {
		fail(c, err, blogMessages("Failed to delete blog"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted successfully"})
}
