package channel

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/samber/oops"

	"github.com/janixware/site-backend/internal/modules/inquiry/domain"
)

// SESAPI is the slice of the SES client used by the email channel, kept as an
// interface for mocking.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// EmailChannel delivers inquiry notifications to the agency inbox through
// SES. Replies go straight back to the visitor via Reply-To.
type EmailChannel struct {
	client SESAPI
	from   string
	to     string
}

// NewEmailChannel creates the channel with a freshly configured SES client.
func NewEmailChannel(ctx context.Context, region, from, to string) (*EmailChannel, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, oops.With("context", "load AWS config").Wrap(err)
	}
	return &EmailChannel{
		client: ses.NewFromConfig(awsCfg),
		from:   from,
		to:     to,
	}, nil
}

// NewEmailChannelWithClient injects a prebuilt client; used in tests.
func NewEmailChannelWithClient(client SESAPI, from, to string) *EmailChannel {
	return &EmailChannel{client: client, from: from, to: to}
}

func (c *EmailChannel) Name() string {
	return "email"
}

func (c *EmailChannel) Send(ctx context.Context, n *domain.Notification) error {
	_, err := c.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(c.from),
		Destination: &types.Destination{
			ToAddresses: []string{c.to},
		},
		ReplyToAddresses: []string{n.Inquiry.Email},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(n.Subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(n.TextBody)},
				Html: &types.Content{Data: aws.String(n.HTMLBody)},
			},
		},
	})
	if err != nil {
		return oops.With("channel", c.Name(), "to", c.to).Wrap(err)
	}
	return nil
}
