package telegram

import (
	"context"
	"net/http"
	"time"

	"crypto-alert-bot/internal/commands"
	"crypto-alert-bot/lib/helpers"
	"crypto-alert-bot/lib/translation"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// commandTimeout bounds the network work a single command may trigger.
const commandTimeout = 30 * time.Second

// NewBot creates new telegram bot
func NewBot(c BotConfig) (*Bot, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	bot, err := tgbotapi.NewBotAPIWithClient(c.Token, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, errors.Wrap(err, "could not create telegram bot")
	}

	bot.Debug = c.Debug

	return &Bot{
		Bot:       bot,
		Config:    c,
		StartedAt: time.Now(),
	}, nil
}

// GetUpdatesChannel gets new updates
func (b *Bot) GetUpdatesChannel() (tgbotapi.UpdatesChannel, error) {
	updatesConfig := tgbotapi.NewUpdate(0)
	if b.Config.UpdatesTimeout > 0 {
		updatesConfig.Timeout = b.Config.UpdatesTimeout
	}
	return b.Bot.GetUpdatesChan(updatesConfig), nil
}

// SendMessage sends a telegram message
func (b *Bot) SendMessage(m Message) error {
	msg := tgbotapi.NewMessage(m.ChatID, m.Text)
	msg.ReplyToMessageID = m.MessageID
	msg.DisableWebPagePreview = true
	msg.ParseMode = "MarkdownV2"
	_, err := b.Bot.Send(msg)
	return errors.Wrapf(err, "could not send message to chat %d", m.ChatID)
}

// Notify delivers one text message to one chat. Satisfies the alert cycle's
// notifier contract.
func (b *Bot) Notify(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "notify aborted")
	}
	return b.SendMessage(Message{ChatID: chatID, Text: text})
}

// HandleUpdate processes a command update and returns the reply text. An
// empty return means the handler already sent its own messages.
func (b *Bot) HandleUpdate(u tgbotapi.Update) string {
	log.Debugf("received command: %s", u.Message.Command())

	switch u.Message.Command() {
	case "start":
		return helpers.EscapeMarkdownV2(translation.Translate("Crypto Alert Bot is running! Use /check to get alerts."))
	case "ping":
		return helpers.EscapeMarkdownV2(translation.Translate("🏓 pong"))
	case "uptime":
		return commands.CommandUptime(b.StartedAt)
	case "price":
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		return commands.CommandPrice(ctx, b.Prices, u.Message.CommandArguments())
	case "check":
		return b.handleCheck(u)
	}

	return helpers.EscapeMarkdownV2(translation.Translate("Unknown command. Try /check, /price, /uptime or /ping."))
}

// handleCheck acknowledges, runs one cycle against the requesting chat, and
// reports the outcome. Diagnostic detail goes to the operator chat only.
func (b *Bot) handleCheck(u tgbotapi.Update) string {
	chatID := u.Message.Chat.ID

	err := b.SendMessage(Message{
		ChatID:    chatID,
		MessageID: u.Message.MessageID,
		Text:      helpers.EscapeMarkdownV2(translation.Translate("Checking for alerts...")),
	})
	if err != nil {
		log.Errorf("failed to send check acknowledgment: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if err := b.Checker.Check(ctx, chatID); err != nil {
		return helpers.EscapeMarkdownV2(translation.Translate("Check failed. The operator has been notified."))
	}
	return helpers.EscapeMarkdownV2(translation.Translate("Check complete."))
}
