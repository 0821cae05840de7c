package fetcher

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
)

var (
	newlines   = regexp.MustCompile(`[\r\n]+`)
	disallowed = regexp.MustCompile(`[^\w\-. ]`)
	whitespace = regexp.MustCompile(`\s+`)
	repeats    = regexp.MustCompile(`_{2,}`)
)

// SanitizeFilename makes a provider-suggested filename safe as a path
// component. Providers send percent-encoded names, emoji, hashtags and worse.
// The result matches ^[\w.-]*$, is at most 100 characters and is never
// empty: a hopeless input falls back to a timestamped name. Idempotent.
func SanitizeFilename(name string) string {
	if decoded, err := url.QueryUnescape(name); err == nil {
		name = decoded
	}

	name = newlines.ReplaceAllString(name, " ")
	name = disallowed.ReplaceAllString(name, "")
	name = whitespace.ReplaceAllString(name, "_")
	name = repeats.ReplaceAllString(name, "_")

	if len(name) > 100 {
		name = name[:100]
	}

	// Trim after capping, otherwise a cut that lands on an underscore would
	// break idempotence.
	name = strings.Trim(name, "_")

	if name == "" {
		return fmt.Sprintf("video_%d.mp4", time.Now().UnixMilli())
	}

	return name
}
