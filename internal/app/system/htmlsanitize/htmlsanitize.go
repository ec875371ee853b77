// Package htmlsanitize cleans user-supplied text before it is persisted.
// Café and employee fields are free text that ends up rendered by the
// frontend, so markup is stripped at the write boundary rather than
// trusting every consumer to escape it.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Strip removes all HTML markup from s, returning plain text.
func Strip(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
