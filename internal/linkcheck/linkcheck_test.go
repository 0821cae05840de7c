package linkcheck

import (
	"testing"

	"github.com/StounhandJ/vidsaver/internal/media"
	"github.com/stretchr/testify/require"
)

func TestIsValidVideoURL(t *testing.T) {
	valid := []string{
		"https://www.instagram.com/reel/ABC123/",
		"https://instagram.com/p/Xy-z_9/",
		"https://www.instagram.com/tv/QQQ111/",
		"https://www.tiktok.com/@user/video/1234567890123456789",
		"https://vt.tiktok.com/XYZ/",
		"https://vm.tiktok.com/AbC123/",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://www.youtube.com/shorts/abc-DEF_123",
		"https://x.com/user/status/1234567890",
	}

	for _, u := range valid {
		require.True(t, IsValidVideoURL(u, false), u)
	}

	invalid := []string{
		"https://example.com/not-a-video",
		"not a url at all",
		"ftp://tiktok.com/@user/video/1",
		"https://www.instagram.com/username/",
		"https://www.tiktok.com/@user/photo/123",
		"",
	}

	for _, u := range invalid {
		require.False(t, IsValidVideoURL(u, false), u)
	}
}

func TestIsValidVideoURLPermissive(t *testing.T) {
	require.True(t, IsValidVideoURL("https://example.com/not-a-video", true))
	require.True(t, IsValidVideoURL("http://host/video.mp4", true))

	// Even permissive mode wants a well-formed http(s) URL.
	require.False(t, IsValidVideoURL("example.com/clip", true))
	require.False(t, IsValidVideoURL("ftp://example.com/clip", true))
	require.False(t, IsValidVideoURL("https://", true))
}

func TestPlatformFromURL(t *testing.T) {
	tests := []struct {
		url      string
		platform media.Platform
	}{
		{"https://www.instagram.com/reel/ABC123/", media.PlatformInstagram},
		{"https://www.instagram.com/p/ABC123/?igsh=xyz", media.PlatformInstagram},
		{"https://www.tiktok.com/@demo/video/7000000000000000000", media.PlatformTikTok},
		{"https://vm.tiktok.com/ZZZZ/", media.PlatformTikTok},
		{"https://youtu.be/dQw4w9WgXcQ", media.PlatformYouTube},
		{"https://fb.watch/abcDEF/", media.PlatformFacebook},
		{"https://twitter.com/user/status/123456", media.PlatformTwitter},
		{"https://example.com/not-a-video", media.PlatformOther},
	}

	for _, tc := range tests {
		require.Equal(t, tc.platform, PlatformFromURL(tc.url), tc.url)
	}
}

func TestExtractURLFromTextNoURL(t *testing.T) {
	for _, s := range []string{"", "just words", "ftp://server/file", "check this out!!"} {
		require.Empty(t, ExtractURLFromText(s), s)
	}
}

func TestExtractURLFromText(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{
			"Watch this https://vt.tiktok.com/XYZ/ so funny",
			"https://vt.tiktok.com/XYZ/",
		},
		{
			"link: https://www.tiktok.com/@user/video/123456789012345.",
			"https://www.tiktok.com/@user/video/123456789012345",
		},
		{
			"(https://youtu.be/dQw4w9WgXcQ)",
			"https://youtu.be/dQw4w9WgXcQ",
		},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, ExtractURLFromText(tc.text), tc.text)
	}
}

func TestExtractURLFromTextStripsInstagramQuery(t *testing.T) {
	got := ExtractURLFromText("Check https://www.instagram.com/reel/ABC123/?igsh=MTc4shareid&utm_source=ig")
	require.Equal(t, "https://www.instagram.com/reel/ABC123/", got)

	// Host and path survive untouched.
	got = ExtractURLFromText("https://instagram.com/p/Xy-z_9?igshid=1")
	require.Equal(t, "https://instagram.com/p/Xy-z_9", got)

	// Non-Instagram URLs keep their query.
	got = ExtractURLFromText("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	require.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", got)
}

func TestMapPlatform(t *testing.T) {
	require.Equal(t, media.PlatformInstagram, MapPlatform("Instagram"))
	require.Equal(t, media.PlatformTwitter, MapPlatform("x.com"))
	require.Equal(t, media.PlatformTwitter, MapPlatform("Twitter"))
	require.Equal(t, media.PlatformVimeo, MapPlatform("vimeo"))
	require.Equal(t, media.PlatformOther, MapPlatform("dailymotion"))
	require.Equal(t, media.PlatformOther, MapPlatform(""))
}
