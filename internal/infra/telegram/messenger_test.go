package telegram

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"marketbot/config"
	"marketbot/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTelegramAPI struct {
	mu       sync.Mutex
	getMe    atomic.Int32
	failMe   atomic.Bool
	requests []map[string]string
	reply    string
}

func (f *fakeTelegramAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
	w.Header().Set("Content-Type", "application/json")

	if method == "getMe" {
		f.getMe.Add(1)
		if f.failMe.Load() {
			_, _ = io.WriteString(w, `{"ok":false,"error_code":401,"description":"Unauthorized"}`)

			return
		}
		_, _ = io.WriteString(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"Autos","username":"AutosBot"}}`)

		return
	}

	_ = r.ParseForm()
	values := map[string]string{"method": method}
	for k := range r.PostForm {
		values[k] = r.PostForm.Get(k)
	}
	f.mu.Lock()
	f.requests = append(f.requests, values)
	f.mu.Unlock()

	if f.reply != "" {
		_, _ = io.WriteString(w, f.reply)

		return
	}
	if method == "answerCallbackQuery" {
		_, _ = io.WriteString(w, `{"ok":true,"result":true}`)

		return
	}
	_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":42,"type":"private"}}}`)
}

func newTestProvider(t *testing.T, api *fakeTelegramAPI) *BotProvider {
	t.Helper()

	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	cfg := &config.Config{Telegram: &config.TelegramConfig{
		BotToken:    "123:abc",
		APIEndpoint: server.URL + "/bot%s/%s",
	}}
	provider, err := NewBotProvider(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return provider
}

func TestNewBotProvider_MissingToken(t *testing.T) {
	_, err := NewBotProvider(&config.Config{}, slog.Default())
	assert.Error(t, err)

	_, err = NewBotProvider(&config.Config{Telegram: &config.TelegramConfig{}}, slog.Default())
	assert.Error(t, err)
}

func TestBotProvider_InitializesOnce(t *testing.T) {
	api := &fakeTelegramAPI{}
	provider := newTestProvider(t, api)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := provider.Bot()
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), api.getMe.Load())
}

func TestBotProvider_RetriesAfterFailure(t *testing.T) {
	api := &fakeTelegramAPI{}
	api.failMe.Store(true)
	provider := newTestProvider(t, api)

	require.Error(t, provider.Ready())

	api.failMe.Store(false)
	bot, err := provider.Bot()
	require.NoError(t, err)
	assert.Equal(t, "AutosBot", bot.Self.UserName)
	assert.Equal(t, int32(2), api.getMe.Load())
}

func TestMessenger_Send(t *testing.T) {
	api := &fakeTelegramAPI{}
	m := NewMessenger(newTestProvider(t, api), slog.Default())

	msg := entity.OutboundMessage{
		Text: "<b>Hola</b>",
		Buttons: [][]entity.Button{
			{entity.URLButton("Ver", "https://example.com/vehiculos/1")},
			{entity.CallbackButton("Más", "latest")},
		},
	}
	require.NoError(t, m.Send(context.Background(), "42", msg))

	require.Len(t, api.requests, 1)
	req := api.requests[0]
	assert.Equal(t, "sendMessage", req["method"])
	assert.Equal(t, "42", req["chat_id"])
	assert.Equal(t, "<b>Hola</b>", req["text"])
	assert.Equal(t, "HTML", req["parse_mode"])

	var markup struct {
		InlineKeyboard [][]struct {
			Text         string  `json:"text"`
			URL          *string `json:"url"`
			CallbackData *string `json:"callback_data"`
		} `json:"inline_keyboard"`
	}
	require.NoError(t, json.Unmarshal([]byte(req["reply_markup"]), &markup))
	require.Len(t, markup.InlineKeyboard, 2)
	require.NotNil(t, markup.InlineKeyboard[0][0].URL)
	assert.Equal(t, "https://example.com/vehiculos/1", *markup.InlineKeyboard[0][0].URL)
	require.NotNil(t, markup.InlineKeyboard[1][0].CallbackData)
	assert.Equal(t, "latest", *markup.InlineKeyboard[1][0].CallbackData)
}

func TestMessenger_SendWithoutButtons(t *testing.T) {
	api := &fakeTelegramAPI{}
	m := NewMessenger(newTestProvider(t, api), slog.Default())

	require.NoError(t, m.Send(context.Background(), "42", entity.OutboundMessage{Text: "hola"}))

	require.Len(t, api.requests, 1)
	_, hasMarkup := api.requests[0]["reply_markup"]
	assert.False(t, hasMarkup)
}

func TestMessenger_SendErrors(t *testing.T) {
	t.Run("invalid chat id", func(t *testing.T) {
		api := &fakeTelegramAPI{}
		m := NewMessenger(newTestProvider(t, api), slog.Default())

		err := m.Send(context.Background(), "not-a-number", entity.OutboundMessage{Text: "hola"})
		assert.Error(t, err)
		assert.Empty(t, api.requests)
	})

	t.Run("api rejects message", func(t *testing.T) {
		api := &fakeTelegramAPI{reply: `{"ok":false,"error_code":403,"description":"Forbidden: bot was blocked by the user"}`}
		m := NewMessenger(newTestProvider(t, api), slog.Default())

		err := m.Send(context.Background(), "42", entity.OutboundMessage{Text: "hola"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "blocked")
	})

	t.Run("cancelled context", func(t *testing.T) {
		api := &fakeTelegramAPI{}
		m := NewMessenger(newTestProvider(t, api), slog.Default())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := m.Send(ctx, "42", entity.OutboundMessage{Text: "hola"})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, api.requests)
	})
}

func TestMessenger_AnswerCallback(t *testing.T) {
	api := &fakeTelegramAPI{}
	m := NewMessenger(newTestProvider(t, api), slog.Default())

	require.NoError(t, m.AnswerCallback(context.Background(), "cb-1", ""))

	require.Len(t, api.requests, 1)
	assert.Equal(t, "answerCallbackQuery", api.requests[0]["method"])
	assert.Equal(t, "cb-1", api.requests[0]["callback_query_id"])
}
