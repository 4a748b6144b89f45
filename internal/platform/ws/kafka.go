package ws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// eventWriter and eventReader narrow the kafka-go client surface so the
// bridge can be tested without a broker.
type eventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type eventReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// Bridge relays booking events through Kafka so every server instance sees
// every event. Publish produces to the topic; Run consumes and feeds the
// local hub. Each instance consumes with a unique group id, so the
// producing instance receives its own events through the same path and
// clients get at most one copy.
type Bridge struct {
	hub    *Hub
	writer eventWriter
	reader eventReader
	logger zerolog.Logger
}

func NewBridge(brokers []string, topic string, hub *Hub, logger zerolog.Logger) *Bridge {
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  brokers,
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	})
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: "clinic-server-" + uuid.New().String(),
	})
	return &Bridge{hub: hub, writer: writer, reader: reader, logger: logger}
}

// Publish implements Publisher by producing the event to the topic. Local
// clients receive it when Run consumes it back.
func (b *Bridge) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := b.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.DoctorID),
		Value: data,
	}); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	return nil
}

// Run consumes events until ctx is cancelled, broadcasting each to the
// local hub. Malformed messages are logged and skipped.
func (b *Bridge) Run(ctx context.Context) {
	for {
		msg, err := b.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			b.logger.Error().Err(err).Msg("kafka read failed")
			return
		}

		var event Event
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			b.logger.Warn().Err(err).Msg("skipping malformed event")
			continue
		}
		b.hub.Broadcast(event)
	}
}

// Close releases the Kafka writer and reader.
func (b *Bridge) Close() error {
	werr := b.writer.Close()
	rerr := b.reader.Close()
	if werr != nil {
		return werr
	}
	return rerr
}
