package telegram

import (
	"context"
	"time"

	"crypto-alert-bot/internal/commands"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotConfig configuration of the bot
type BotConfig struct {
	Token          string
	Debug          bool
	UpdatesTimeout int
}

// AlertChecker triggers one on-demand alert cycle against a chat.
type AlertChecker interface {
	Check(ctx context.Context, chatID int64) error
}

// Bot telegram interaction client
type Bot struct {
	Bot       *tgbotapi.BotAPI
	Config    BotConfig
	Checker   AlertChecker
	Prices    commands.PriceSource
	StartedAt time.Time
}

// Message a telegram message struct
type Message struct {
	ChatID    int64
	MessageID int
	Text      string
}
