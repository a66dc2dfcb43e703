package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/config"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/contracts"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/drivers/logger"
	driverMailer "github.com/mmhmddd/khobaraalafia-server/internal/app/drivers/mailer"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/drivers/messaging"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/shared/mailer"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(driverConfig)

	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	defer rabbitMQConnection.Close()

	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		log.Fatalf("Error opening channel: %v", err)
	}
	defer channel.Close()

	queue := internalConfig.App.RabbitMQMailerQueue
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		log.Fatalf("Error declaring queue %s: %v", queue, err)
	}

	deliveries, err := channel.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("Error consuming queue %s: %v", queue, err)
	}

	smtpClient := driverMailer.NewSMTPClient(driverConfig)
	sender := mailer.NewSMTPSender(smtpClient, internalConfig.App.MailerEmailSender)

	log.WithField("queue", queue).Info("mailer worker started")

	go func() {
		for delivery := range deliveries {
			var payload contracts.EmailPayload
			if err := json.Unmarshal(delivery.Body, &payload); err != nil {
				log.WithError(err).Error("cannot decode email payload, dropping message")
				delivery.Nack(false, false)
				continue
			}

			if err := sender.Send(payload); err != nil {
				log.WithFields(logrus.Fields{
					"receiver": payload.ReceiverEmail,
					"subject":  payload.Subject,
				}).WithError(err).Error("failed to send email, requeueing")
				delivery.Nack(false, true)
				continue
			}

			log.WithFields(logrus.Fields{
				"receiver": payload.ReceiverEmail,
				"subject":  payload.Subject,
			}).Info("email sent")
			delivery.Ack(false)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info("mailer worker exiting")
}
