// Package linkcheck recognizes supported video links, extracts them out of
// shared free text and normalizes them before anything touches the network.
// Every function here is total: malformed input yields false/"" and never an
// error.
package linkcheck

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/StounhandJ/vidsaver/internal/media"
)

var (
	instagramPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^https?://(www\.)?instagram\.com/p/[A-Za-z0-9_-]+`),
		regexp.MustCompile(`^https?://(www\.)?instagram\.com/reel/[A-Za-z0-9_-]+`),
		regexp.MustCompile(`^https?://(www\.)?instagram\.com/tv/[A-Za-z0-9_-]+`),
	}

	tiktokPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^https?://(www\.)?tiktok\.com/@[\w.-]+/video/\d+`),
		regexp.MustCompile(`^https?://(vm|vt)\.tiktok\.com/[A-Za-z0-9]+`),
	}

	youtubePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^https?://(www\.|m\.)?youtube\.com/watch\?v=[\w-]+`),
		regexp.MustCompile(`^https?://(www\.)?youtube\.com/shorts/[\w-]+`),
		regexp.MustCompile(`^https?://youtu\.be/[\w-]+`),
	}

	facebookPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^https?://(www\.|m\.)?facebook\.com/.+/videos/\d+`),
		regexp.MustCompile(`^https?://(www\.)?facebook\.com/(watch|reel)`),
		regexp.MustCompile(`^https?://fb\.watch/[\w-]+`),
	}

	twitterPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^https?://(www\.|mobile\.)?(twitter|x)\.com/\w+/status/\d+`),
	}

	urlToken = regexp.MustCompile(`https?://\S+`)
)

func matchAny(patterns []*regexp.Regexp, url string) bool {
	for _, p := range patterns {
		if p.MatchString(url) {
			return true
		}
	}

	return false
}

func IsInstagramURL(url string) bool { return matchAny(instagramPatterns, url) }

func IsTikTokURL(url string) bool { return matchAny(tiktokPatterns, url) }

func IsYouTubeURL(url string) bool { return matchAny(youtubePatterns, url) }

func IsFacebookURL(url string) bool { return matchAny(facebookPatterns, url) }

func IsTwitterURL(url string) bool { return matchAny(twitterPatterns, url) }

// IsValidVideoURL reports whether rawURL is a supported video link. With
// permissive set, any well-formed http(s) URL passes too, since the backend
// may resolve arbitrary sources. Permissive is a caller policy: it changes
// what the user sees as a validation error, so it is never the default.
func IsValidVideoURL(rawURL string, permissive bool) bool {
	if IsInstagramURL(rawURL) || IsTikTokURL(rawURL) || IsYouTubeURL(rawURL) ||
		IsFacebookURL(rawURL) || IsTwitterURL(rawURL) {
		return true
	}

	if !permissive {
		return false
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// PlatformFromURL returns the first matching platform in enumeration order,
// PlatformOther when nothing matches. Patterns are disjoint by domain, so
// the order only matters in theory.
func PlatformFromURL(rawURL string) media.Platform {
	switch {
	case IsInstagramURL(rawURL):
		return media.PlatformInstagram
	case IsTikTokURL(rawURL):
		return media.PlatformTikTok
	case IsYouTubeURL(rawURL):
		return media.PlatformYouTube
	case IsFacebookURL(rawURL):
		return media.PlatformFacebook
	case IsTwitterURL(rawURL):
		return media.PlatformTwitter
	default:
		return media.PlatformOther
	}
}

// ExtractURLFromText scans shared free text (a caption, a deep link payload)
// for the first http(s) token. Trailing punctuation is stripped, and
// Instagram links lose their query string so share/tracking identifiers
// never reach the backend or the catalog. Returns "" when no URL is found.
func ExtractURLFromText(text string) string {
	token := urlToken.FindString(text)
	if token == "" {
		return ""
	}

	token = strings.TrimRight(token, ".,;)")

	u, err := url.Parse(token)
	if err != nil {
		return token
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if host == "instagram.com" || strings.HasSuffix(host, ".instagram.com") {
		return u.Scheme + "://" + u.Host + u.Path
	}

	return token
}

// MapPlatform normalizes a provider-supplied platform label. Providers are
// inconsistent ("Instagram", "instagram:story", "x.com"), so the match is a
// substring check.
func MapPlatform(name string) media.Platform {
	n := strings.ToLower(name)

	switch {
	case strings.Contains(n, "instagram"):
		return media.PlatformInstagram
	case strings.Contains(n, "tiktok"):
		return media.PlatformTikTok
	case strings.Contains(n, "youtube"):
		return media.PlatformYouTube
	case strings.Contains(n, "facebook"):
		return media.PlatformFacebook
	case strings.Contains(n, "twitter"), strings.Contains(n, "x.com"):
		return media.PlatformTwitter
	case strings.Contains(n, "vimeo"):
		return media.PlatformVimeo
	case strings.Contains(n, "reddit"):
		return media.PlatformReddit
	default:
		return media.PlatformOther
	}
}
