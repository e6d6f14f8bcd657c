// The notifier consumes order created events and renders the WhatsApp
// message the shop owner acts on. Delivery is manual for now: the
// notifier logs the prefilled wa.me link.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"vesture-be/internal/config"
	"vesture-be/internal/db"
	"vesture-be/internal/logger"
	"vesture-be/internal/messaging"
	"vesture-be/internal/notify"
	"vesture-be/internal/order"

	"go.uber.org/zap"
)

const consumerGroup = "order-notifier"

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	if len(cfg.KafkaBrokers) == 0 {
		log.Fatal("KAFKA_BROKERS not set")
	}

	var orderRepo order.Repository
	if database, err := db.Connect(cfg); err == nil {
		defer database.Close()
		orderRepo = order.NewRepository(database)
	} else {
		log.Warn("postgres unreachable, reading orders from file store", zap.Error(err))
		orderRepo, err = order.NewFileRepository(cfg.DataDir)
		if err != nil {
			log.Fatal("file store init failed", zap.Error(err))
		}
	}

	consumer := messaging.NewConsumer(cfg.KafkaBrokers, cfg.OrdersTopic, consumerGroup)
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("notifier consuming",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("topic", cfg.OrdersTopic),
	)

	err := consumer.Consume(ctx, func(ctx context.Context, payload []byte) error {
		var event order.CreatedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			// A malformed event is dropped, not retried forever
			log.Error("malformed order event", zap.Error(err))
			return nil
		}

		o, err := orderRepo.GetByID(ctx, event.OrderID)
		if err != nil {
			if errors.Is(err, order.ErrOrderNotFound) {
				log.Warn("event for unknown order", zap.String("order_id", event.OrderID))
				return nil
			}
			return err
		}

		msg := notify.OrderMessage(*o)
		log.Info("order notification ready",
			zap.String("order_id", o.ID),
			zap.Float64("final_total", o.FinalTotal),
			zap.String("wa_link", notify.Link(cfg.StoreWaPhone, msg)),
		)
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("consumer stopped", zap.Error(err))
	}

	log.Info("notifier stopped")
}
