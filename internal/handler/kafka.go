package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/SergeyBogomolovv/donation-service/internal/config"
	"github.com/SergeyBogomolovv/donation-service/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/kafka-go"
)

const eventTypeVerified = "donation.verified"

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	logger *slog.Logger
	writer MessageWriter
}

// NewKafkaPublisher пишет подтвержденные платежи в топик.
// Ключ сообщения - payment id, события одного платежа попадают в одну партицию.
func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return newKafkaPublisher(logger, &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequireAll,
	})
}

func newKafkaPublisher(logger *slog.Logger, w MessageWriter) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("handler", "kafka_publisher")),
		writer: w,
	}
}

func (p *kafkaPublisher) RecordPayment(ctx context.Context, payment entities.VerifiedPayment) error {
	event := DonationEventFromEntity(payment)
	event.EventID = uuid.NewString()

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal donation event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(payment.PaymentID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventTypeVerified)},
			{Key: "event_id", Value: []byte(event.EventID)},
		},
	}

	// В библиотеке уже есть retry
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		publishErrors.Inc()
		return fmt.Errorf("failed to publish donation event: %w", err)
	}

	eventsPublished.Inc()
	p.logger.DebugContext(ctx, "donation event published",
		slog.String("event_id", event.EventID),
		slog.String("payment_id", payment.PaymentID),
	)
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type PaymentSaver interface {
	RecordPayment(ctx context.Context, p entities.VerifiedPayment) error
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaConsumer struct {
	dlq      MessageWriter
	reader   MessageReader
	logger   *slog.Logger
	validate *validator.Validate
	saver    PaymentSaver
}

func NewKafkaConsumer(logger *slog.Logger, cfg config.Kafka, saver PaymentSaver) *kafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.Topic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return newKafkaConsumer(logger, reader, dlq, saver)
}

func newKafkaConsumer(logger *slog.Logger, reader MessageReader, dlq MessageWriter, saver PaymentSaver) *kafkaConsumer {
	return &kafkaConsumer{
		logger:   logger.With(slog.String("handler", "kafka_consumer")),
		reader:   reader,
		dlq:      dlq,
		validate: validator.New(),
		saver:    saver,
	}
}

func (h *kafkaConsumer) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		timer := prometheus.NewTimer(donationProcessingDuration)

		// В операции сохранения уже есть retry
		if err := h.handleDonation(ctx, m); err != nil {
			donationsFailed.Inc()
			h.logger.Error("failed to handle message", slog.Any("error", err))

			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				timer.ObserveDuration()
				continue
			}
			donationsDLQ.Inc()
		} else {
			donationsProcessed.Inc()
		}
		timer.ObserveDuration()

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaConsumer) handleDonation(ctx context.Context, m kafka.Message) error {
	var event DonationEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal donation event: %w", err)
	}

	if err := h.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid donation event: %w", err)
	}

	h.logger.DebugContext(ctx, "handling donation event",
		slog.String("event_id", event.EventID),
		slog.String("payment_id", event.PaymentID),
	)

	return h.saver.RecordPayment(ctx, DonationEventToEntity(event))
}

func (h *kafkaConsumer) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	dlq := kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	}
	return h.dlq.WriteMessages(ctx, dlq)
}

func (h *kafkaConsumer) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
