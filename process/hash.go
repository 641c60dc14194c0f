package process

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ComputeHash computes a stable hash of sanitized content using
// xxhash. Callers compare it against a previously stored value to
// detect changed pages; this package never stores it.
func ComputeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
