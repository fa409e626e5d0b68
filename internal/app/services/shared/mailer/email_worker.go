package mailer

import (
	"dentaflow-service/internal/app/contracts"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/constvars"
	"dentaflow-service/internal/pkg/exceptions"
	"errors"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const emailWorkerConsumerTag = "dentaflow-email-worker"

type EmailWorker struct {
	Sender contracts.EmailSender
	Log    *zap.Logger
}

func NewEmailWorker(sender contracts.EmailSender, logger *zap.Logger) *EmailWorker {
	return &EmailWorker{
		Sender: sender,
		Log:    logger,
	}
}

// Start consumes queue until the returned stop func is called. Stop waits for
// the in-flight message to finish.
func (w *EmailWorker) Start(rabbitMQConnection *amqp091.Connection, queue string) (func(), error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	if err := channel.Qos(1, 0, false); err != nil {
		channel.Close()
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	deliveries, err := channel.Consume(queue, emailWorkerConsumerTag, false, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for delivery := range deliveries {
			w.HandleDelivery(delivery)
		}
	}()

	w.Log.Info("EmailWorker.Start consuming", zap.String(constvars.LoggingQueueKey, queue))

	var once sync.Once
	stop := func() {
		once.Do(func() {
			if err := channel.Cancel(emailWorkerConsumerTag, false); err != nil {
				w.Log.Error("EmailWorker.Stop error cancelling consumer", zap.Error(err))
			}
			wg.Wait()
			channel.Close()
		})
	}
	return stop, nil
}

// HandleDelivery sends one queued email. Failures are dropped without requeue.
func (w *EmailWorker) HandleDelivery(delivery amqp091.Delivery) {
	requestID := delivery.MessageId

	var message models.EmailMessage
	if err := json.Unmarshal(delivery.Body, &message); err != nil {
		w.Log.Error("EmailWorker.HandleDelivery error decoding message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		w.reject(delivery)
		return
	}

	if len(message.To) == 0 {
		w.Log.Error("EmailWorker.HandleDelivery message has no recipients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(errors.New("empty recipient list")),
		)
		w.reject(delivery)
		return
	}

	if err := w.Sender.SendHTMLEmail(message.To, message.Subject, message.HTML); err != nil {
		w.Log.Error("EmailWorker.HandleDelivery error calling Sender.SendHTMLEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Strings(constvars.LoggingEmailToKey, message.To),
			zap.Error(err),
		)
		w.reject(delivery)
		return
	}

	if err := delivery.Ack(false); err != nil {
		w.Log.Error("EmailWorker.HandleDelivery error acknowledging message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	w.Log.Info("EmailWorker.HandleDelivery email sent",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Strings(constvars.LoggingEmailToKey, message.To),
		zap.String(constvars.LoggingEmailSubjectKey, message.Subject),
	)
}

func (w *EmailWorker) reject(delivery amqp091.Delivery) {
	if err := delivery.Nack(false, false); err != nil {
		w.Log.Error("EmailWorker.reject error", zap.Error(err))
	}
}
