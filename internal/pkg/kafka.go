package pkg

import (
	"context"
	"strconv"

	"github.com/segmentio/kafka-go"
)

// EventProducer 把 chat_outbox 事件投递到 Kafka
type EventProducer struct {
	writer *kafka.Writer
}

func NewEventProducer(brokers []string, topic string) *EventProducer {
	return &EventProducer{writer: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}}
}

func (p *EventProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// Publish 按 subject 分区，同一会话/好友边的事件分区内有序；
// 事件类型放 header，payload 原样透传
func (p *EventProducer) Publish(ctx context.Context, eventType string, subjectID uint64, payload []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(strconv.FormatUint(subjectID, 10)),
		Value:   payload,
		Headers: []kafka.Header{{Key: "event_type", Value: []byte(eventType)}},
	})
}
