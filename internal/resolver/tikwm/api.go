//go:generate easyjson api.go
package tikwm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	netUrl "net/url"
	"strings"

	"github.com/StounhandJ/vidsaver/internal/utils"
	easyjson "github.com/mailru/easyjson"
)

const DefaultBaseURL = "https://tikwm.com/api/"

var (
	ErrRateLimit = errors.New("rate limit exceeded")
	ErrParse     = errors.New("parse error")
	ErrUnknown   = errors.New("unknown error")
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/140.0.0.0 Safari/537.36"

func fetchMetadata(ctx context.Context, client *http.Client, baseURL, postUrl string) (apiResponse, error) {
	reqUrl := fmt.Sprintf("%s?url=%s", baseURL, netUrl.QueryEscape(postUrl))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqUrl, nil)
	if err != nil {
		return apiResponse{}, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return apiResponse{}, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			utils.Log.Error(err)
		}
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiResponse{}, err
	}

	var data apiResponse

	err = easyjson.Unmarshal(b, &data)
	if err != nil {
		return apiResponse{}, err
	}

	if data.Code != 0 {
		switch {
		case strings.HasPrefix(data.Msg, "Free Api Limit"):
			return data, ErrRateLimit
		case strings.HasPrefix(data.Msg, "Url parsing is failed"):
			return data, ErrParse
		default:
			return data, ErrUnknown
		}
	}

	return data, nil
}

// easyjson:json
type apiResponse struct {
	Code int    `json:"code,omitempty"`
	Msg  string `json:"msg"`
	Data struct {
		ID          string `json:"id,omitempty"`
		Title       string `json:"title,omitempty"`
		Cover       string `json:"cover,omitempty"`
		OriginCover string `json:"origin_cover,omitempty"`
		Duration    int    `json:"duration,omitempty"`
		Play        string `json:"play,omitempty"`
		Hdplay      string `json:"hdplay,omitempty"`
		Wmplay      string `json:"wmplay,omitempty"`
		Size        int64  `json:"size,omitempty"`
		HdSize      int64  `json:"hd_size,omitempty"`
		Author      struct {
			ID       string `json:"id,omitempty"`
			UniqueID string `json:"unique_id,omitempty"`
			Nickname string `json:"nickname,omitempty"`
		} `json:"author,omitempty"`
	} `json:"data,omitempty"`
}
