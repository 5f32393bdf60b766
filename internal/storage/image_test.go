package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsImage(t *testing.T) {
	for _, ok := range []string{"a.png", "b.JPG", "c.jpeg", "d.WebP", "e.svg", "f.gif"} {
		require.True(t, IsImage(ok), ok)
	}
	for _, bad := range []string{"a.pdf", "png", "a.png.exe", "", "noext"} {
		require.False(t, IsImage(bad), bad)
	}
}

func TestImageContentTypeAndKey(t *testing.T) {
	require.Equal(t, "image/jpeg", ImageContentType("x.JPEG"))
	require.Equal(t, "image/svg+xml", ImageContentType("x.svg"))
	require.Equal(t, "application/octet-stream", ImageContentType("x.bin"))

	k1, k2 := BannerKey("Photo.PNG"), BannerKey("Photo.PNG")
	require.True(t, strings.HasPrefix(k1, "banners/"))
	require.True(t, strings.HasSuffix(k1, ".png"))
	require.NotEqual(t, k1, k2)
}
