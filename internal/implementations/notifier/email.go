package notifier

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type EmailNotifier struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender    string
	recipient string
}

func NewEmail(awsConfig aws.Config, sender string, recipient string) *EmailNotifier {
	return &EmailNotifier{
		ses:       ses.NewFromConfig(awsConfig),
		sender:    sender,
		recipient: recipient,
	}
}

func (n *EmailNotifier) Show(ctx context.Context, title string, body string) error {
	_, err := n.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: &n.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{n.recipient},
			},
			Message: &types.Message{
				Subject: &types.Content{Data: aws.String(title)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	)
	return err
}
