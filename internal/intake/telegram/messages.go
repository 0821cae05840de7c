package telegram

import (
	"github.com/StounhandJ/vidsaver/internal/utils"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
)

func chatID(update telego.Update) int64 {
	if update.Message != nil {
		return update.Message.Chat.ID
	}

	return 0
}

func messageText(update telego.Update) string {
	if update.Message != nil {
		return update.Message.Text
	}

	return ""
}

// sendMessage replies in the update's chat and returns the new message ID,
// 0 on failure. Failures are logged, not propagated: a lost status message
// never aborts a download.
func sendMessage(ctx *th.Context, update telego.Update, text string) int {
	msg, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID: tu.ID(chatID(update)),
		Text:   truncateText(text, 4096),
		LinkPreviewOptions: &telego.LinkPreviewOptions{
			IsDisabled: true,
		},
	})
	if err != nil {
		utils.Log.Error(err)

		return 0
	}

	return msg.MessageID
}

func editMessage(ctx *th.Context, update telego.Update, messageID int, text string) {
	if messageID == 0 {
		return
	}

	_, err := ctx.Bot().EditMessageText(ctx, &telego.EditMessageTextParams{
		ChatID:    tu.ID(chatID(update)),
		MessageID: messageID,
		Text:      truncateText(text, 4096),
		LinkPreviewOptions: &telego.LinkPreviewOptions{
			IsDisabled: true,
		},
	})
	if err != nil {
		utils.Log.Error(err)
	}
}

func truncateText(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}

	return s
}
