package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/anshiiika/autoelite-dealership/config"
	"github.com/anshiiika/autoelite-dealership/internal/email"
	"github.com/anshiiika/autoelite-dealership/internal/kafka"
	"github.com/joho/godotenv"
	kafkaGo "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// The worker consumes accepted test-drive requests and sends confirmation
// emails, keeping delivery out of the request path.
func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.Kafka.Enabled() {
		log.Fatal("kafka brokers and booking_topic must be configured for the worker")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.BookingTopic)
	defer consumer.Close()

	sender := email.NewSender(logger)

	logger.Info("notifications worker started", zap.String("topic", cfg.Kafka.BookingTopic))

	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event kafka.TestDriveEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Warn("skip undecodable event", zap.Error(err))
			return nil
		}
		return sender.Send(ctx, event)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("consumer stopped", zap.Error(err))
	}
}
