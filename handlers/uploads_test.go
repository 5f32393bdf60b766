package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type memObjects struct {
	mu    sync.Mutex
	files map[string][]byte
	types map[string]string
}

func newMemObjects() *memObjects {
	return &memObjects{files: map[string][]byte{}, types: map[string]string{}}
}

func (m *memObjects) UploadFile(_ context.Context, key string, r io.Reader, _ int64, contentType string) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[key], m.types[key] = b, contentType
	return nil
}

func (m *memObjects) DownloadFile(_ context.Context, key string) (io.ReadCloser, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.files[key]
	if !ok {
		return nil, "", errors.New("no such key")
	}
	return io.NopCloser(bytes.NewReader(b)), m.types[key], nil
}

func (m *memObjects) GetPresignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://objects.test/" + key + "?sig=abc", nil
}

var pngBytes = []byte("\x89PNG\r\n\x1a\nfake-image")

func upload(t *testing.T, r http.Handler, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads/banner", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func uploadRouter(o ObjectStore) *gin.Engine {
	r := gin.New()
	h := NewUploadHandler(o)
	h.Register(r.Group("/api"))
	h.RegisterMedia(r)
	return r
}

func TestBanner_DataURIWithoutObjectStore(t *testing.T) {
	r := uploadRouter(nil)
	w := upload(t, r, "banner.PNG", pngBytes)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	url := decode[map[string]string](t, w)["url"]
	require.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(pngBytes), url)

	w = do(r, http.MethodGet, "/media/banners/anything.png", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestBanner_Rejections(t *testing.T) {
	r := uploadRouter(nil)

	w := upload(t, r, "notes.txt", []byte("hello"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, errorOf(t, w), "must be an image")

	w = upload(t, r, "huge.jpg", bytes.Repeat([]byte{0xff}, MaxBannerBytes+1))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Banner image is too large", errorOf(t, w))

	w = do(r, http.MethodPost, "/api/uploads/banner", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBanner_ObjectStoreRoundTrip(t *testing.T) {
	objects := newMemObjects()
	r := uploadRouter(objects)

	w := upload(t, r, "hero.png", pngBytes)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode[map[string]string](t, w)
	require.True(t, strings.HasPrefix(body["key"], "banners/"))
	require.Equal(t, "/media/"+body["key"], body["url"])
	require.Contains(t, body["presignedUrl"], body["key"])

	w = do(r, http.MethodGet, body["url"], nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "image/png", w.Header().Get("Content-Type"))
	require.Equal(t, pngBytes, w.Body.Bytes())

	require.Equal(t, "sandbox", w.Header().Get("Content-Security-Policy"))
	require.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w = do(r, http.MethodGet, "/media/banners/missing.png", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	w = do(r, http.MethodGet, "/media/banners/script.js", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestMedia_SVGIsSandboxed(t *testing.T) {
	r := uploadRouter(newMemObjects())
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(document.cookie)</script></svg>`)

	w := upload(t, r, "logo.svg", svg)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(r, http.MethodGet, decode[map[string]string](t, w)["url"], nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	require.Equal(t, "sandbox", w.Header().Get("Content-Security-Policy"))
	require.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
