package telegram

import (
	"encoding/json"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeUpdate(t *testing.T, raw string) *tgbotapi.Update {
	t.Helper()

	var update tgbotapi.Update
	require.NoError(t, json.Unmarshal([]byte(raw), &update))

	return &update
}

func TestToInboundUpdate_Message(t *testing.T) {
	update := decodeUpdate(t, `{
		"update_id": 10,
		"message": {
			"message_id": 1,
			"date": 0,
			"text": "  /start abc123 ",
			"chat": {"id": 555, "type": "private"},
			"from": {"id": 777, "is_bot": false, "first_name": "Ana", "last_name": "Pérez", "username": "anap"}
		}
	}`)

	in, ok := ToInboundUpdate(update)
	require.True(t, ok)
	assert.Equal(t, 10, in.UpdateID)
	assert.Equal(t, "555", in.ChatID)
	assert.Equal(t, "777", in.SenderID)
	assert.Equal(t, "anap", in.SenderUsername)
	assert.Equal(t, "Ana Pérez", in.SenderName)
	assert.Equal(t, "/start abc123", in.Text)
	assert.False(t, in.IsCallback())
}

func TestToInboundUpdate_Callback(t *testing.T) {
	update := decodeUpdate(t, `{
		"update_id": 11,
		"callback_query": {
			"id": "cb-9",
			"data": "search_sedan",
			"from": {"id": 777, "is_bot": false, "first_name": "Ana"},
			"message": {"message_id": 2, "date": 0, "chat": {"id": 555, "type": "private"}}
		}
	}`)

	in, ok := ToInboundUpdate(update)
	require.True(t, ok)
	assert.True(t, in.IsCallback())
	assert.Equal(t, "cb-9", in.CallbackID)
	assert.Equal(t, "search_sedan", in.CallbackData)
	assert.Equal(t, "555", in.ChatID)
	assert.Equal(t, "777", in.SenderID)
}

func TestToInboundUpdate_CallbackWithoutMessageUsesSender(t *testing.T) {
	update := decodeUpdate(t, `{"update_id": 12, "callback_query": {"id": "cb", "data": "latest", "from": {"id": 9, "is_bot": false, "first_name": "X"}}}`)

	in, ok := ToInboundUpdate(update)
	require.True(t, ok)
	assert.Equal(t, "9", in.ChatID)
}

func TestToInboundUpdate_Ignored(t *testing.T) {
	_, ok := ToInboundUpdate(nil)
	assert.False(t, ok)

	_, ok = ToInboundUpdate(decodeUpdate(t, `{"update_id": 13, "edited_message": {"message_id": 1, "date": 0, "chat": {"id": 1, "type": "private"}}}`))
	assert.False(t, ok)
}
