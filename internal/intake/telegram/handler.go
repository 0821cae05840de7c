// Package telegram is the chat intake: a message with a link behaves like
// shared text, the bot replies with progress and the final catalog entry.
package telegram

import (
	"github.com/StounhandJ/vidsaver/internal/handlers"
	th "github.com/mymmrac/telego/telegohandler"
)

type handler struct {
	service *handlers.Service
}

func NewHandler(service *handlers.Service) handler {
	return handler{
		service: service,
	}
}

func (h handler) SetupRoutes(bh *th.BotHandler) {
	bh.Handle(h.StartCommand, th.CommandEqual("start"))
	bh.Handle(h.ListCommand, th.CommandEqual("list"))

	bh.Handle(h.SharedText, th.AnyMessageWithText())
}
