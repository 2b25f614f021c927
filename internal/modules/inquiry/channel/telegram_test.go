package channel

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockTelegramSender struct {
	SendMessageFunc func(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

func (m *mockTelegramSender) SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	return m.SendMessageFunc(ctx, params)
}

func TestTelegramChannelSend(t *testing.T) {
	var captured *bot.SendMessageParams
	mock := &mockTelegramSender{SendMessageFunc: func(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error) {
		captured = params
		return &models.Message{}, nil
	}}

	ch := NewTelegramChannelWithSender(mock, "-1001234567890")
	n := testNotification()
	err := ch.Send(context.Background(), n)

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "-1001234567890", captured.ChatID)
	assert.Equal(t, n.TextBody, captured.Text)
}

func TestTelegramChannelSendFailure(t *testing.T) {
	mock := &mockTelegramSender{SendMessageFunc: func(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error) {
		return nil, fmt.Errorf("chat not found")
	}}

	ch := NewTelegramChannelWithSender(mock, "-1001234567890")
	err := ch.Send(context.Background(), testNotification())

	assert.Error(t, err)
}
