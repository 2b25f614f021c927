package channel

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/samber/oops"

	"github.com/janixware/site-backend/internal/modules/inquiry/domain"
)

// TelegramSender is the slice of the bot API used by the channel.
type TelegramSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// TelegramChannel posts the plain-text notification into an agency chat.
type TelegramChannel struct {
	sender TelegramSender
	chatID string
}

// NewTelegramChannel creates the channel with its own bot instance.
func NewTelegramChannel(token, chatID string) (*TelegramChannel, error) {
	b, err := bot.New(token)
	if err != nil {
		return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
	}
	return &TelegramChannel{sender: b, chatID: chatID}, nil
}

// NewTelegramChannelWithSender injects a prebuilt sender; used in tests.
func NewTelegramChannelWithSender(sender TelegramSender, chatID string) *TelegramChannel {
	return &TelegramChannel{sender: sender, chatID: chatID}
}

func (c *TelegramChannel) Name() string {
	return "telegram"
}

func (c *TelegramChannel) Send(ctx context.Context, n *domain.Notification) error {
	_, err := c.sender.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: c.chatID,
		Text:   n.TextBody,
	})
	if err != nil {
		return oops.With("channel", c.Name(), "chat_id", c.chatID).Wrap(err)
	}
	return nil
}
