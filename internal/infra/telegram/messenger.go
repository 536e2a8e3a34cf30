package telegram

import (
	"context"
	"log/slog"
	"strconv"

	"marketbot/internal/domain/entity"
	"marketbot/internal/domain/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
)

type messenger struct {
	bots   *BotProvider
	logger *slog.Logger
}

// NewMessenger creates a Messenger that sends through the shared bot client
func NewMessenger(bots *BotProvider, logger *slog.Logger) service.Messenger {
	return &messenger{
		bots:   bots,
		logger: logger,
	}
}

// Send delivers msg as an HTML message with an optional inline keyboard
func (m *messenger) Send(ctx context.Context, chatID string, msg entity.OutboundMessage) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid chat id %q", chatID)
	}

	bot, err := m.bots.Bot()
	if err != nil {
		return err
	}

	if _, err := bot.Send(buildMessageConfig(id, msg)); err != nil {
		return errors.Wrapf(err, "send message to chat %s", chatID)
	}

	return nil
}

// AnswerCallback acknowledges a callback query
func (m *messenger) AnswerCallback(ctx context.Context, callbackID, text string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	bot, err := m.bots.Bot()
	if err != nil {
		return err
	}

	if _, err := bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		return errors.Wrap(err, "answer callback query")
	}

	return nil
}

func buildMessageConfig(chatID int64, msg entity.OutboundMessage) tgbotapi.MessageConfig {
	cfg := tgbotapi.NewMessage(chatID, msg.Text)
	cfg.ParseMode = tgbotapi.ModeHTML
	cfg.DisableWebPagePreview = true

	if keyboard, ok := buildKeyboard(msg.Buttons); ok {
		cfg.ReplyMarkup = keyboard
	}

	return cfg
}

func buildKeyboard(buttons [][]entity.Button) (tgbotapi.InlineKeyboardMarkup, bool) {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, row := range buttons {
		keys := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			switch {
			case b.URL != "":
				keys = append(keys, tgbotapi.NewInlineKeyboardButtonURL(b.Text, b.URL))
			case b.CallbackData != "":
				keys = append(keys, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.CallbackData))
			}
		}
		if len(keys) > 0 {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(keys...))
		}
	}

	if len(rows) == 0 {
		return tgbotapi.InlineKeyboardMarkup{}, false
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...), true
}
