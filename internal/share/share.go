// Package share exposes the pipeline as a local share target: anything that
// can POST text (an OS share sheet bridge, a shortcut, curl) can hand a
// link over to vidsaver.
package share

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/StounhandJ/vidsaver/internal/common"
	"github.com/StounhandJ/vidsaver/internal/handlers"
	"github.com/StounhandJ/vidsaver/internal/media"
	"github.com/StounhandJ/vidsaver/internal/utils"
	"github.com/valyala/fasthttp"
)

type Server struct {
	service *handlers.Service
	server  *fasthttp.Server
}

func NewServer(service *handlers.Service) *Server {
	s := &Server{service: service}

	s.server = &fasthttp.Server{
		Handler: s.route,
		Name:    "vidsaver",
	}

	return s
}

func (s *Server) ListenAndServe(addr string) error {
	utils.Log.Infof("share intake listening on %s", addr)

	return s.server.ListenAndServe(addr)
}

func (s *Server) Shutdown() error {
	return s.server.Shutdown()
}

func (s *Server) route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/share":
		if !ctx.IsPost() {
			ctx.Error("method not allowed", http.StatusMethodNotAllowed)
			return
		}

		s.handleShare(ctx)
	case "/healthz":
		ctx.SetStatusCode(http.StatusOK)
		ctx.SetBodyString("ok")
	default:
		ctx.Error("not found", http.StatusNotFound)
	}
}

// handleShare runs the full pipeline on the shared text and answers with
// the catalog entry. Downloads are synchronous: the share sheet caller
// waits, same as the user watching the progress bar would.
func (s *Server) handleShare(ctx *fasthttp.RequestCtx) {
	text := string(ctx.PostBody())

	video, err := s.service.Process(context.Background(), text, func(p media.Progress) {
		utils.Log.Debugf("share download progress %.2f%%", p.Percentage)
	})
	if err != nil {
		utils.Log.Errorf("share intake failed: %v", err)
		ctx.Error(err.Error(), statusFor(err))

		return
	}

	body, err := json.Marshal(video)
	if err != nil {
		ctx.Error("internal error", http.StatusInternalServerError)

		return
	}

	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrPermissionRequired):
		return http.StatusPreconditionFailed
	case errors.Is(err, common.ErrResolutionFailed), errors.Is(err, common.ErrNoDirectURL),
		errors.Is(err, common.ErrDownloadFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
