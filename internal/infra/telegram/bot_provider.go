// Package telegram adapts the Telegram Bot API to the messenger contracts.
package telegram

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"marketbot/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
)

const httpTimeout = 15 * time.Second

// BotProvider hands out a process wide bot client. The client is built on
// first use because construction calls getMe; a failed construction is
// retried on the next call.
type BotProvider struct {
	token       string
	apiEndpoint string
	client      tgbotapi.HTTPClient
	logger      *slog.Logger

	mu  sync.Mutex
	bot *tgbotapi.BotAPI
}

// NewBotProvider validates the bot configuration. A missing token is fatal.
func NewBotProvider(cfg *config.Config, logger *slog.Logger) (*BotProvider, error) {
	if cfg.Telegram == nil || cfg.Telegram.BotToken == "" {
		return nil, errors.New("telegram bot token is required")
	}

	endpoint := cfg.Telegram.APIEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	return &BotProvider{
		token:       cfg.Telegram.BotToken,
		apiEndpoint: endpoint,
		client:      &http.Client{Timeout: httpTimeout},
		logger:      logger,
	}, nil
}

// Bot returns the shared client, constructing it if needed.
func (p *BotProvider) Bot() (*tgbotapi.BotAPI, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bot != nil {
		return p.bot, nil
	}

	bot, err := tgbotapi.NewBotAPIWithClient(p.token, p.apiEndpoint, p.client)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize telegram bot")
	}

	p.logger.Info("[Bot] Telegram client initialized", slog.String("username", bot.Self.UserName))
	p.bot = bot

	return bot, nil
}

// Ready constructs the shared client if needed and reports whether it is
// usable.
func (p *BotProvider) Ready() error {
	_, err := p.Bot()

	return err
}
