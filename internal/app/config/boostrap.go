package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Logger         *zap.Logger
	Minio          *minio.Client
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// SweeperStop stops the report archive sweeper when it was started.
	SweeperStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.SweeperStop != nil {
		b.SweeperStop()
		log.Println("Successfully stopped report archive sweeper")
	}

	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.RabbitMQ != nil {
		if err := b.RabbitMQ.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	// stdout cannot be synced on some platforms, which is not worth failing shutdown over
	_ = b.Logger.Sync()
	log.Println("Successfully closing Logger")

	return nil
}
