package events

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/segmentio/kafka-go"
)

// DishEvent is a best-effort analytics notification emitted when a diner
// clicks a dish or places an order. Consumers aggregate these; the catalog
// itself never reads them back.
type DishEvent struct {
	Type         string    `json:"type"` // "dish.click" or "dish.order"
	DishID       string    `json:"dish_id"`
	DishName     string    `json:"dish_name,omitempty"`
	Quantity     int64     `json:"quantity,omitempty"`
	CustomerName string    `json:"customer_name,omitempty"`
	TableNumber  string    `json:"table_number,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// Publisher delivers dish events without any delivery guarantee. Publish
// must never block the caller's request and must swallow failures.
type Publisher interface {
	Publish(event DishEvent)
}

// KafkaPublisher writes dish events to a Kafka topic. Errors are logged
// and dropped.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisherFromEnv returns a publisher backed by KAFKA_BROKER, or
// a NopPublisher when no broker is configured.
func NewKafkaPublisherFromEnv() Publisher {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		return NopPublisher{}
	}

	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "dish-events"
	}

	log.Printf("Publishing dish events to kafka broker %s topic %s", broker, topic)
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(broker),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *KafkaPublisher) Publish(event DishEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		payload, err := json.Marshal(event)
		if err != nil {
			log.Printf("WARNING: dropping dish event: %v", err)
			return
		}

		err = p.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(event.DishID),
			Value: payload,
		})
		if err != nil {
			log.Printf("WARNING: failed to publish %s event for dish %s: %v", event.Type, event.DishID, err)
		}
	}()
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher discards every event. Used when Kafka is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(DishEvent) {}
