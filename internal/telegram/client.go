// Package telegram wraps the Telegram Bot API calls the relay makes. The
// client carries no state beyond the authorized bot handle; retries,
// queuing and failure policy belong to the caller.
package telegram

import (
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ikagiorgadze/symphony2/internal/relay"
)

// Client is a thin wrapper around the Telegram Bot API.
type Client struct {
	bot *tgbotapi.BotAPI
}

// NewClient authenticates against the Bot API with the given token.
func NewClient(token string) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	log.Printf("Telegram bot authorized as @%s", bot.Self.UserName)
	return &Client{bot: bot}, nil
}

// SendText sends a plain text message and returns the platform-assigned
// message ID.
func (c *Client) SendText(chatID int64, text string) (int, error) {
	sent, err := c.bot.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return 0, fmt.Errorf("failed to send message: %w", err)
	}
	return sent.MessageID, nil
}

// SendMenu sends a text message with an inline keyboard attached.
func (c *Client) SendMenu(chatID int64, text string, menu relay.ButtonMenu) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = inlineKeyboard(menu)

	sent, err := c.bot.Send(msg)
	if err != nil {
		return 0, fmt.Errorf("failed to send message with buttons: %w", err)
	}
	return sent.MessageID, nil
}

// AckCallback acknowledges a button tap so the guest's client stops showing
// a spinner. Use IsExpiredCallback to distinguish the benign stale-button
// failure from real errors.
func (c *Client) AckCallback(callbackQueryID string) error {
	if _, err := c.bot.Request(tgbotapi.NewCallback(callbackQueryID, "")); err != nil {
		return fmt.Errorf("failed to answer callback query: %w", err)
	}
	return nil
}

// SetWebhook registers url as the webhook target and returns the upstream
// description of the result.
func (c *Client) SetWebhook(rawURL string) (string, error) {
	wh, err := tgbotapi.NewWebhook(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid webhook URL: %w", err)
	}

	resp, err := c.bot.Request(wh)
	if err != nil {
		return "", fmt.Errorf("failed to set webhook: %w", err)
	}
	return resp.Description, nil
}

// WebhookInfo queries the current webhook registration.
func (c *Client) WebhookInfo() (tgbotapi.WebhookInfo, error) {
	info, err := c.bot.GetWebhookInfo()
	if err != nil {
		return tgbotapi.WebhookInfo{}, fmt.Errorf("failed to get webhook info: %w", err)
	}
	return info, nil
}

// DeleteWebhook removes the current webhook registration.
func (c *Client) DeleteWebhook() error {
	if _, err := c.bot.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}
	return nil
}

// IsExpiredCallback reports whether err is the "query is too old" rejection
// Telegram returns when a guest taps a stale button. Expected and benign.
func IsExpiredCallback(err error) bool {
	return err != nil && strings.Contains(err.Error(), "query is too old")
}

// inlineKeyboard converts a ButtonMenu to the Bot API inline keyboard type.
func inlineKeyboard(menu relay.ButtonMenu) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(menu))
	for _, row := range menu {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Action))
		}
		rows = append(rows, buttons)
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}
