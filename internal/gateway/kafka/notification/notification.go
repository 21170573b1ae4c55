package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"dispatch/internal/entities"
)

// Gateway publishes delivery lifecycle notifications. Failures are the
// caller's business to log and swallow; publishing never gates a state
// transition.
type Gateway struct {
	producer sarama.SyncProducer
	topic    string
}

func New(producer sarama.SyncProducer, topic string) *Gateway {
	return &Gateway{
		producer: producer,
		topic:    topic,
	}
}

func (g *Gateway) Arrived(ctx context.Context, delivery *entities.Delivery) error {
	return g.publish(ctx, eventArrived, delivery, []string{recipientCustomer, recipientPharmacy})
}

func (g *Gateway) Delivered(ctx context.Context, order *entities.Order, delivery *entities.Delivery) error {
	return g.publish(ctx, eventDelivered, delivery, []string{recipientCustomer, recipientPharmacy})
}

func (g *Gateway) TimeoutCancelled(ctx context.Context, delivery *entities.Delivery) error {
	return g.publish(ctx, eventTimeoutCancelled, delivery, []string{recipientCustomer, recipientCourier, recipientPharmacy})
}

func (g *Gateway) publish(_ context.Context, eventType string, delivery *entities.Delivery, recipients []string) error {
	event := notificationEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		DeliveryID: delivery.ID,
		OrderID:    delivery.OrderID,
		CourierID:  delivery.CourierID,
		Recipients: recipients,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", eventType, err)
	}

	// Key by delivery so events for one delivery stay ordered per partition.
	_, _, err = g.producer.SendMessage(&sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(delivery.ID, 10)),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("publish %s event: %w", eventType, err)
	}

	return nil
}
