package telegram

import (
	"strconv"
	"strings"

	"marketbot/internal/domain/entity"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ToInboundUpdate projects a webhook update. The second return value is
// false when the update carries neither a message nor a callback query.
func ToInboundUpdate(update *tgbotapi.Update) (entity.InboundUpdate, bool) {
	if update == nil {
		return entity.InboundUpdate{}, false
	}

	switch {
	case update.CallbackQuery != nil:
		cq := update.CallbackQuery
		in := entity.InboundUpdate{
			UpdateID:     update.UpdateID,
			CallbackID:   cq.ID,
			CallbackData: cq.Data,
		}
		applySender(&in, cq.From)
		if cq.Message != nil && cq.Message.Chat != nil {
			in.ChatID = formatID(cq.Message.Chat.ID)
		} else if cq.From != nil {
			in.ChatID = formatID(cq.From.ID)
		}

		return in, true

	case update.Message != nil:
		msg := update.Message
		in := entity.InboundUpdate{
			UpdateID: update.UpdateID,
			Text:     strings.TrimSpace(msg.Text),
		}
		applySender(&in, msg.From)
		if msg.Chat != nil {
			in.ChatID = formatID(msg.Chat.ID)
		}

		return in, in.ChatID != ""

	default:
		return entity.InboundUpdate{}, false
	}
}

func applySender(in *entity.InboundUpdate, from *tgbotapi.User) {
	if from == nil {
		return
	}
	in.SenderID = formatID(from.ID)
	in.SenderUsername = from.UserName
	in.SenderName = strings.TrimSpace(from.FirstName + " " + from.LastName)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
