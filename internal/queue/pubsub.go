package queue

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/orionbeers/planting-backend/internal/config"
	"github.com/orionbeers/planting-backend/internal/domain/models"
)

// Publisher sends prediction requests onto the queue.
type Publisher interface {
	PublishPrediction(ctx context.Context, msg models.PredictionMessage) error
}

// Handler processes one validated prediction message.
type Handler interface {
	HandlePredictionMessage(ctx context.Context, msg models.PredictionMessage) error
}

// PubSub is the Google Cloud Pub/Sub backed transport for the prediction topic.
type PubSub struct {
	client       *pubsub.Client
	topic        *pubsub.Topic
	subscription *pubsub.Subscription
	logger       *zap.Logger
}

// New connects to Pub/Sub and binds the prediction topic and subscription.
func New(ctx context.Context, cfg config.PubSubConfig, logger *zap.Logger) (*PubSub, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	client, err := pubsub.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize pubsub client: %w", err)
	}

	return &PubSub{
		client:       client,
		topic:        client.Topic(cfg.Topic),
		subscription: client.Subscription(cfg.Subscription),
		logger:       logger,
	}, nil
}

// PublishPrediction validates, encodes and publishes a prediction message,
// blocking until the server acknowledges it.
func (p *PubSub) PublishPrediction(ctx context.Context, msg models.PredictionMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	data, err := msg.Encode()
	if err != nil {
		return fmt.Errorf("encode prediction message: %w", err)
	}

	result := p.topic.Publish(ctx, &pubsub.Message{Data: data})
	id, err := result.Get(ctx)
	if err != nil {
		return fmt.Errorf("publish prediction message: %w", err)
	}

	p.logger.Info("prediction message published", zap.String("message_id", id))
	return nil
}

// Listen consumes the prediction subscription until the context is cancelled.
// Malformed payloads are acked and dropped so they are not redelivered
// forever; handler failures are logged and acked too, since nothing in the
// pipeline is retried.
func (p *PubSub) Listen(ctx context.Context, handler Handler) error {
	p.logger.Info("prediction subscriber listening", zap.String("subscription", p.subscription.ID()))

	err := p.subscription.Receive(ctx, func(ctx context.Context, m *pubsub.Message) {
		msg, err := models.DecodePredictionMessage(m.Data)
		if err != nil {
			p.logger.Error("rejecting malformed prediction message", zap.Error(err))
			m.Ack()
			return
		}

		if err := handler.HandlePredictionMessage(ctx, msg); err != nil {
			p.logger.Error("prediction run failed",
				zap.String("id_user", msg.IDUser),
				zap.String("id_request", msg.IDRequest),
				zap.Error(err))
		}
		m.Ack()
	})
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("pubsub receive: %w", err)
	}
	return nil
}

// Close flushes the topic and releases the client.
func (p *PubSub) Close() error {
	p.topic.Stop()
	return p.client.Close()
}
