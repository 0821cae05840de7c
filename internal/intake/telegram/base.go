package telegram

import (
	"errors"
	"fmt"
	"strings"

	"github.com/StounhandJ/vidsaver/internal/common"
	"github.com/StounhandJ/vidsaver/internal/linkcheck"
	"github.com/StounhandJ/vidsaver/internal/media"
	"github.com/StounhandJ/vidsaver/internal/utils"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

func (h handler) StartCommand(ctx *th.Context, update telego.Update) error {
	sendMessage(ctx, update,
		"Send me a link to an Instagram, TikTok, YouTube, Facebook or Twitter video and I will save it.")

	return nil
}

func (h handler) ListCommand(ctx *th.Context, update telego.Update) error {
	videos, err := h.service.List(ctx)
	if err != nil {
		sendMessage(ctx, update, "Could not read the catalog.")

		return nil
	}

	if len(videos) == 0 {
		sendMessage(ctx, update, "Nothing saved yet.")

		return nil
	}

	var b strings.Builder
	for i, v := range videos {
		fmt.Fprintf(&b, "%d. %s (%s, %s)\n", i+1, v.Title, v.Platform, utils.FormatFileSize(v.FileSize))
	}

	sendMessage(ctx, update, b.String())

	return nil
}

// SharedText is the main flow: pull a link out of the message, resolve it,
// download while editing the status message in place.
func (h handler) SharedText(ctx *th.Context, update telego.Update) error {
	text := messageText(update)

	if linkcheck.ExtractURLFromText(text) == "" {
		sendMessage(ctx, update, "I did not find a link in that message.")

		return nil
	}

	md, err := h.service.Resolve(ctx, text)
	if err != nil {
		sendMessage(ctx, update, userMessage(err))

		return nil
	}

	statusID := sendMessage(ctx, update, fmt.Sprintf("Downloading %q…", md.Title))

	lastStep := -1
	video, err := h.service.Download(ctx, md, func(p media.Progress) {
		step := int(p.Percentage) / 25
		if step <= lastStep {
			return
		}
		lastStep = step

		editMessage(ctx, update, statusID, fmt.Sprintf("Downloading %q… %.0f%%", md.Title, p.Percentage))
	})
	if err != nil {
		editMessage(ctx, update, statusID, userMessage(err))

		return nil
	}

	editMessage(ctx, update, statusID,
		fmt.Sprintf("Saved %q (%s)", video.Title, utils.FormatFileSize(video.FileSize)))

	return nil
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		return "That does not look like a supported video link."
	case errors.Is(err, common.ErrResolutionFailed):
		return "Could not fetch video details, try again later."
	case errors.Is(err, common.ErrNoDirectURL):
		return "No downloadable stream was found for that video."
	case errors.Is(err, common.ErrDownloadFailed):
		return "The download failed partway through."
	case errors.Is(err, common.ErrPermissionRequired):
		return "The download folder is not set up on this machine."
	default:
		utils.Log.Errorf("telegram intake failed: %v", err)

		return "Something went wrong."
	}
}
