package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/goccy/go-json"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/contracts"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/drivers/mailer"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/constvars"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/exceptions"
	"github.com/rabbitmq/amqp091-go"
)

type mailerService struct {
	Channel *amqp091.Channel
	Queue   string
}

func NewMailerService(rabbitMQConnection *amqp091.Connection, queue string) (contracts.MailerService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &mailerService{
		Channel: channel,
		Queue:   queue,
	}, nil
}

func (s *mailerService) QueueEmail(ctx context.Context, payload contracts.EmailPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	return nil
}

// SMTPSender delivers queued email payloads. It is used by the mailer
// worker, not by the API process.
type SMTPSender struct {
	Client      *mailer.SMTPClient
	EmailSender string
}

func NewSMTPSender(client *mailer.SMTPClient, emailSender string) *SMTPSender {
	return &SMTPSender{Client: client, EmailSender: emailSender}
}

func (s *SMTPSender) Send(payload contracts.EmailPayload) error {
	format := constvars.EmailSendBasicFormat
	if payload.HTML {
		format = constvars.EmailSendHTMLFormat
	}

	msg := []byte(fmt.Sprintf(format, payload.ReceiverEmail, payload.Subject, payload.Body))
	addr := fmt.Sprintf("%s:%d", s.Client.Host, s.Client.Port)
	err := smtp.SendMail(addr, s.Client.Auth, s.EmailSender, []string{payload.ReceiverEmail}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, s.Client.Host)
	}
	return nil
}
