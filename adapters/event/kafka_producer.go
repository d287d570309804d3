package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/hoangnp/careernet/internal/config"
)

const (
	TopicUserEvents = "user.events"
	TopicPostEvents = "post.events"
)

const (
	UserEventTypeRegistered     = "user.registered"
	UserEventTypeFriendAccepted = "friend.accepted"

	PostEventTypeLiked   = "post.liked"
	PostEventTypeUnliked = "post.unliked"
)

type UserEventPayload struct {
	EventType string    `json:"event_type"`
	UserID    uuid.UUID `json:"user_id"`
	PeerID    uuid.UUID `json:"peer_id,omitempty"`
}

type PostEventPayload struct {
	EventType string    `json:"event_type"`
	PostID    uuid.UUID `json:"post_id"`
	ActorID   uuid.UUID `json:"actor_id"`
	LikeCount int       `json:"like_count"`
}

type KafkaProducerClient struct {
	UserEventsWriter *kafka.Writer
	PostEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	userWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicUserEvents,
		Balancer: &kafka.LeastBytes{},
	}

	postWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicPostEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		UserEventsWriter: userWriter,
		PostEventsWriter: postWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishUserEvent(ctx context.Context, payload UserEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal user event: %w", err)
	}
	return c.UserEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.UserID.String()),
		Value: value,
	})
}

func (c *KafkaProducerClient) PublishPostEvent(ctx context.Context, payload PostEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal post event: %w", err)
	}
	return c.PostEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.PostID.String()),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.UserEventsWriter != nil {
		c.UserEventsWriter.Close()
	}
	if c.PostEventsWriter != nil {
		c.PostEventsWriter.Close()
	}
}
