package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"ridermatch/internal/entities"
	retrierconfig "ridermatch/pkg/retrier"
	"ridermatch/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// Gateway публикует уведомления райдерам в Kafka. Сообщения ключуются
// rider_id, чтобы события одного райдера читались по порядку.
type Gateway struct {
	producer producer
	retrier  retrier
	topic    string
}

func New(producer producer, topic string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
	}

	return &Gateway{
		producer: producer,
		retrier:  backoff_adapter.New(retryConfig),
		topic:    topic,
	}
}

func (g *Gateway) AssignmentOffered(ctx context.Context, riderID int64, assignment entities.Assignment, shift entities.Shift) error {
	envelope := Envelope{
		Event:      EventAssignmentOffered,
		RiderID:    riderID,
		OccurredAt: assignment.AssignedAt,
		Assignment: &Offer{
			AssignmentID: assignment.ID,
			AssignedAt:   assignment.AssignedAt,
		},
		Shift: toShiftBrief(shift),
	}

	return g.publish(ctx, EventAssignmentOffered, riderID, envelope)
}

func (g *Gateway) ShiftCancelled(ctx context.Context, riderID int64, shift entities.Shift) error {
	envelope := Envelope{
		Event:      EventShiftCancelled,
		RiderID:    riderID,
		OccurredAt: time.Now().UTC(),
		Shift:      toShiftBrief(shift),
	}

	return g.publish(ctx, EventShiftCancelled, riderID, envelope)
}

func (g *Gateway) publish(ctx context.Context, event string, riderID int64, envelope Envelope) error {
	value, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("gateway notifier, marshal %s: %w", event, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(riderID, 10)),
		Value: sarama.ByteEncoder(value),
	}

	start := time.Now()

	err = g.retrier.ExecuteWithContext(ctx, func(_ context.Context) error {
		_, _, err := g.producer.SendMessage(msg)
		return err
	})

	NotificationDuration.WithLabelValues(event).Observe(time.Since(start).Seconds())

	if err != nil {
		NotificationsSentTotal.WithLabelValues(event, "error").Inc()
		return fmt.Errorf("gateway notifier, publish %s: %w", event, err)
	}

	NotificationsSentTotal.WithLabelValues(event, "ok").Inc()
	return nil
}
