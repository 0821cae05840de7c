package media

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
	PlatformVimeo     Platform = "vimeo"
	PlatformReddit    Platform = "reddit"
	PlatformOther     Platform = "other"
)

// Metadata describes a remote, not yet downloaded video. Absent provider
// fields carry display defaults, not zero values (see resolver docs).
type Metadata struct {
	URL       string   `json:"url"`
	Title     string   `json:"title"`
	Thumbnail string   `json:"thumbnail"`
	Duration  int      `json:"duration,omitempty"`
	Platform  Platform `json:"platform"`
	Author    string   `json:"author,omitempty"`
	Uploader  string   `json:"uploader,omitempty"`
	Filesize  int64    `json:"filesize,omitempty"`
}

// DownloadedVideo is a committed download. ID is opaque: depending on the
// committer it is a filesystem path or a library-assigned asset id, callers
// must never parse it. Metadata is embedded so display fields read off the
// record directly; the json tag keeps it a nested object on the wire.
type DownloadedVideo struct {
	ID           string `json:"id"`
	Metadata     `json:"metadata"`
	LocalURI     string `json:"localUri"`
	DownloadedAt int64  `json:"downloadedAt"`
	FileSize     int64  `json:"fileSize"`
}

// Progress is one progress snapshot of a running download. Percentage is 0
// while the total is unknown.
type Progress struct {
	TotalBytes      int64
	DownloadedBytes int64
	Percentage      float64
}

// DirectURL is the byte-serving location a resolver hands to the fetcher.
type DirectURL struct {
	URL       string
	Filename  string
	Filesize  int64
	ExpiresIn int64
}
