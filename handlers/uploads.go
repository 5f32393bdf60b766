package handlers

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/klowq/admin-dashboard/internal/storage"
	"github.com/klowq/admin-dashboard/pkg/logger"
)

// MaxBannerBytes caps a single banner upload.
const MaxBannerBytes = 5 << 20

// ObjectStore keeps uploaded files. *storage.MinIOStorage satisfies it.
type ObjectStore interface {
	UploadFile(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	DownloadFile(ctx context.Context, key string) (io.ReadCloser, string, error)
	GetPresignedURL(ctx context.Context, key string, expires time.Duration) (string, error)
}

// UploadHandler accepts banner images. Without an object store the image is
// returned inline as a data URI that can be saved as bannerImage directly.
type UploadHandler struct {
	objects ObjectStore
}

func NewUploadHandler(o ObjectStore) *UploadHandler { return &UploadHandler{objects: o} }

func (h *UploadHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/uploads/banner", h.Banner)
}

// RegisterMedia serves stored banners under /media/banners/*.
func (h *UploadHandler) RegisterMedia(r gin.IRoutes) {
	r.GET("/media/banners/:name", h.Media)
}

// Banner takes a multipart "file" field.
func (h *UploadHandler) Banner(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A banner image file is required"})
		return
	}
	if !storage.IsImage(fh.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Banner must be an image (png, jpg, gif, svg, webp)"})
		return
	}
	if fh.Size > MaxBannerBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Banner image is too large"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		fail(c, err, messages{failure: "Failed to read upload"})
		return
	}
	defer f.Close()
	contentType := storage.ImageContentType(fh.Filename)

	if h.objects == nil {
		b, err := io.ReadAll(io.LimitReader(f, MaxBannerBytes))
		if err != nil {
			fail(c, err, messages{failure: "Failed to read upload"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"url": "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(b)})
		return
	}

	ctx := c.Request.Context()
	key := storage.BannerKey(fh.Filename)
	if err := h.objects.UploadFile(ctx, key, f, fh.Size, contentType); err != nil {
		fail(c, err, messages{failure: "Failed to store banner"})
		return
	}
	resp := gin.H{"url": "/media/" + key, "key": key}
	if u, err := h.objects.GetPresignedURL(ctx, key, time.Hour); err == nil {
		resp["presignedUrl"] = u
	} else {
		logger.Warnf("presign %s: %v", key, err)
	}
	c.JSON(http.StatusCreated, resp)
}

// Media streams a stored banner.
func (h *UploadHandler) Media(c *gin.Context) {
	name := c.Param("name")
	if h.objects == nil || !storage.IsImage(name) || strings.ContainsAny(name, `/\`) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	rc, contentType, err := h.objects.DownloadFile(c.Request.Context(), "banners/"+name)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Debugf("media %s: %v", name, err)
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	defer rc.Close()
	if contentType == "" {
		contentType = storage.ImageContentType(name)
	}
	c.Header("Cache-Control", "public, max-age=86400")
	// banners share the dashboard origin; an svg opened directly must not run script
	c.Header("Content-Security-Policy", "sandbox")
	c.Header("X-Content-Type-Options", "nosniff")
	c.DataFromReader(http.StatusOK, -1, contentType, rc, nil)
}
