package ses

import (
	"context"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"taxdesk/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendDeadlineReminder(ctx context.Context, toEmail string, deadlines []port.ReminderDeadline) error {
	subject := fmt.Sprintf("TaxDesk: %d filing deadline(s) approaching", len(deadlines))
	htmlBody := buildReminderHTML(deadlines)
	textBody := buildReminderText(deadlines)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildReminderText(deadlines []port.ReminderDeadline) string {
	var b strings.Builder
	b.WriteString("The following filing deadlines are coming up:\n\n")
	for _, d := range deadlines {
		fmt.Fprintf(&b, "- %s: due %s (%d day(s) left)\n",
			d.Title, d.DueDate.Format("02 Jan 2006"), d.DaysLeft)
	}
	b.WriteString("\nTaxDesk Compliance")
	return b.String()
}

func buildReminderHTML(deadlines []port.ReminderDeadline) string {
	var rows strings.Builder
	for _, d := range deadlines {
		fmt.Fprintf(&rows, `<tr>
    <td style="padding: 8px 12px; border-bottom: 1px solid #eee;">%s</td>
    <td style="padding: 8px 12px; border-bottom: 1px solid #eee;">%s</td>
    <td style="padding: 8px 12px; border-bottom: 1px solid #eee; text-align: right;">%d</td>
  </tr>`, d.Title, d.DueDate.Format("02 Jan 2006"), d.DaysLeft)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Upcoming filing deadlines</h2>
  <p>The following obligations are coming due:</p>
  <table style="width: 100%%; border-collapse: collapse;">
    <tr>
      <th style="text-align: left; padding: 8px 12px; border-bottom: 2px solid #333;">Obligation</th>
      <th style="text-align: left; padding: 8px 12px; border-bottom: 2px solid #333;">Due Date</th>
      <th style="text-align: right; padding: 8px 12px; border-bottom: 2px solid #333;">Days Left</th>
    </tr>
    %s
  </table>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">TaxDesk - GST &amp; TDS Compliance Platform</p>
</body>
</html>`, rows.String())
}
