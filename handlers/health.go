package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is a dependency whose reachability gates readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	dataDir string
	deps    map[string]Pinger
	started time.Time
}

func NewHealthHandler(dataDir string, deps map[string]Pinger) *HealthHandler {
	return &HealthHandler{dataDir: dataDir, deps: deps, started: time.Now()}
}

func (h *HealthHandler) Register(r gin.IRoutes) {
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, "healthy")
}

// Ready returns 200 only when the data directory is writable and every dependency answers.
func (h *HealthHandler) Ready(c *gin.Context) {
	ready := true
	deps := map[string]bool{"data": dataDirWritable(h.dataDir)}
	if !deps["data"] {
		ready = false
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	for name, p := range h.deps {
		ok := p.Ping(ctx) == nil
		deps[name] = ok
		if !ok {
			ready = false
		}
	}

	body := gin.H{"deps": deps, "uptime": time.Since(h.started).Round(time.Second).String()}
	if !ready {
		body["status"] = "not_ready"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	body["status"] = "ready"
	c.JSON(http.StatusOK, body)
}

func dataDirWritable(dir string) bool {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false
	}
	f, err := os.CreateTemp(dir, ".ready-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	return os.Remove(name) == nil
}
