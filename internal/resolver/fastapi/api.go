//go:generate easyjson api.go
package fastapi

// Response shapes of the hosted resolution backend. Both endpoints answer
// with a success flag plus either a data payload or an error/detail message.

// easyjson:json
type metadataResponse struct {
	Success bool            `json:"success"`
	Data    metadataPayload `json:"data"`
	Error   string          `json:"error,omitempty"`
	Detail  string          `json:"detail,omitempty"`
}

type metadataPayload struct {
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	Duration  int    `json:"duration"`
	Uploader  string `json:"uploader"`
	Platform  string `json:"platform"`
	URL       string `json:"url"`
	Filesize  int64  `json:"filesize,omitempty"`
}

// easyjson:json
type directURLResponse struct {
	Success bool             `json:"success"`
	Data    directURLPayload `json:"data"`
	Error   string           `json:"error,omitempty"`
	Detail  string           `json:"detail,omitempty"`
}

type directURLPayload struct {
	DirectURL string `json:"direct_url"`
	Filename  string `json:"filename"`
	Filesize  int64  `json:"filesize"`
	ExpiresIn int64  `json:"expires_in"`
}

// easyjson:json
type apiRequest struct {
	URL string `json:"url"`
}
