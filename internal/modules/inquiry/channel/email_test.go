package channel

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janixware/site-backend/internal/modules/inquiry/domain"
)

type mockSES struct {
	SendEmailFunc func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

func (m *mockSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	return m.SendEmailFunc(ctx, params, optFns...)
}

func testNotification() *domain.Notification {
	return &domain.Notification{
		Inquiry: &domain.Inquiry{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Message: "Hello",
		},
		Subject:  "New Contact Form Submission from Jane Doe",
		TextBody: "text body",
		HTMLBody: "<p>html body</p>",
	}
}

func TestEmailChannelSend(t *testing.T) {
	var captured *ses.SendEmailInput
	mock := &mockSES{SendEmailFunc: func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
		captured = params
		return &ses.SendEmailOutput{}, nil
	}}

	ch := NewEmailChannelWithClient(mock, "noreply@janixware.com", "janixware@gmail.com")
	err := ch.Send(context.Background(), testNotification())

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "noreply@janixware.com", *captured.Source)
	assert.Equal(t, []string{"janixware@gmail.com"}, captured.Destination.ToAddresses)
	assert.Equal(t, []string{"jane@example.com"}, captured.ReplyToAddresses)
	assert.Equal(t, "New Contact Form Submission from Jane Doe", *captured.Message.Subject.Data)
	assert.Equal(t, "text body", *captured.Message.Body.Text.Data)
	assert.Equal(t, "<p>html body</p>", *captured.Message.Body.Html.Data)
}

func TestEmailChannelSendFailure(t *testing.T) {
	mock := &mockSES{SendEmailFunc: func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
		return nil, fmt.Errorf("MessageRejected")
	}}

	ch := NewEmailChannelWithClient(mock, "noreply@janixware.com", "janixware@gmail.com")
	err := ch.Send(context.Background(), testNotification())

	assert.Error(t, err)
}
