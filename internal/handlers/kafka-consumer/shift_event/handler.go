package shift_event

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"ridermatch/pkg/logger"
)

// shiftEvent — событие из внешнего контура (админка пиццерий), сигнал о том,
// что состояние смен изменилось и стоит перепрогнать мэтчинг. Payload
// используется только для логов: движок сам перечитывает открытые смены.
type shiftEvent struct {
	ShiftID int64  `json:"shift_id"`
	Event   string `json:"event"`
}

type Handler struct {
	service                  Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, service Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		service:                  service,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("shift.events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("shift.events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение. Возвращает true, если нужно
// прервать ConsumeClaim (при отмене контекста).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event shiftEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("shift.events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("shift_id", event.ShiftID),
		logger.NewField("event", event.Event),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("shift.events processing")

	created, err := h.service.RunBatch(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shift.events handler context cancelled, message will be reprocessed")
			return true
		}

		msgLog.With(
			logger.NewField("error", err),
		).Warn("shift.events handler failed to run matching")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("assignments_created", created),
	).Info("shift.events: processed")

	sess.MarkMessage(message, "")
	return false
}
