package events

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/foodmarket/internal/config"
)

// Module exposes the purchase event publisher to the fx graph.
var Module = fx.Provide(newPublisher)

type publisherParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *zap.Logger
}

func newPublisher(p publisherParams) Publisher {
	logger := p.Logger.Named("events")
	if len(p.Config.KafkaBrokers) == 0 {
		logger.Info("kafka brokers not configured, events will be logged")
		return NewLogPublisher(logger)
	}

	publisher := NewKafkaPublisher(p.Config.KafkaBrokers, p.Config.KafkaTopic, logger)
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}
