package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/hoangnp/careernet/adapters/event"
	"github.com/hoangnp/careernet/adapters/persistence"
	workerUC "github.com/hoangnp/careernet/internal/application/usecase/post"
	"github.com/hoangnp/careernet/internal/config"
	"github.com/hoangnp/careernet/pkg/logger"
)

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()

	leaderboard := persistence.NewRedisLikeLeaderboard(redisClient)
	processPostEventUC := workerUC.NewProcessPostEventUseCase(leaderboard, appLogger)

	// Kafka Consumer
	postConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicPostEvents,
		GroupID:  "like-leaderboard-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer postConsumer.Close()

	appLogger.Info("Worker listening on topic '" + event.TopicPostEvents + "'...")

	ctx := context.Background()
	for {
		msg, err := postConsumer.ReadMessage(ctx)
		if err != nil {
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		var payload event.PostEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			appLogger.Error("Failed to unmarshal event, skipping", err, zap.String("key", string(msg.Key)))
			commitMessage(postConsumer, msg, appLogger)
			continue
		}

		if err := processPostEventUC.Execute(ctx, payload); err != nil {
			appLogger.Error("Failed to process event", err, zap.String("post_id", payload.PostID.String()))
			continue
		}

		commitMessage(postConsumer, msg, appLogger)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Error("Failed to commit message", err)
	}
}
