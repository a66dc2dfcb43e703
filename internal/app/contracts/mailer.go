package contracts

import "context"

type EmailPayload struct {
	ReceiverEmail string `json:"receiver_email"`
	Subject       string `json:"subject"`
	Body          string `json:"body"`
	HTML          bool   `json:"html"`
}

// MailerService queues outbound email; a separate worker drains the
// queue and talks SMTP.
type MailerService interface {
	QueueEmail(ctx context.Context, payload EmailPayload) error
}
