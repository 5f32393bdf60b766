// Package ids generates record identifiers.
package ids

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Suffix returns n (at most 14) random base-36 characters. It is meant to
// disambiguate ids created in the same millisecond, not to be unguessable.
func Suffix(n int) string {
	u := uuid.New()
	// bytes 6 and 8 carry the version and variant bits
	src := make([]byte, 0, 14)
	for i, b := range u {
		if i == 6 || i == 8 {
			continue
		}
		src = append(src, b)
	}
	if n > len(src) {
		n = len(src)
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = alphabet[int(src[i])%len(alphabet)]
	}
	return string(out)
}

// Millis renders t as unix milliseconds.
func Millis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
