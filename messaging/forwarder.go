package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/WelcomerTeam/Swyft/discord"
	"github.com/WelcomerTeam/Swyft/gateway"
	"github.com/WelcomerTeam/Swyft/swyftjson"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/savsgio/gotils/strings"
)

const (
	DefaultQueueSize      = 256
	DefaultPublishTimeout = 5 * time.Second
)

// Payload is the envelope published for every forwarded dispatch.
type Payload struct {
	Metadata Metadata          `json:"__swyft"`
	Type     string            `json:"t"`
	Data     json.RawMessage   `json:"d"`
	Sequence int64             `json:"s"`
	Op       discord.GatewayOp `json:"op"`
}

type Metadata struct {
	ReceivedAt time.Time         `json:"received_at"`
	ID         uuid.UUID         `json:"id"`
	ChannelID  discord.Snowflake `json:"channel_id,omitempty"`
	GuildID    discord.Snowflake `json:"guild_id,omitempty"`
}

// ForwarderOptions configures a Forwarder. An empty EventTypes forwards every
// dispatch that is not in Blacklist.
type ForwarderOptions struct {
	Channel        string
	EventTypes     []string
	Blacklist      []string
	QueueSize      int
	PublishTimeout time.Duration
}

type subscriber interface {
	Subscribe(eventType string, handler gateway.Handler) (unsubscribe func())
}

// Forwarder publishes gateway dispatches to an MQClient. Events are queued by the
// session handler and published by Run so a slow broker never blocks the session.
type Forwarder struct {
	Logger zerolog.Logger

	client  MQClient
	options ForwarderOptions
	queue   chan *Payload

	now   func() time.Time
	newID func() uuid.UUID
}

func NewForwarder(client MQClient, options ForwarderOptions, logger zerolog.Logger) *Forwarder {
	if options.QueueSize <= 0 {
		options.QueueSize = DefaultQueueSize
	}

	if options.PublishTimeout <= 0 {
		options.PublishTimeout = DefaultPublishTimeout
	}

	if options.Channel == "" {
		options.Channel = client.Channel()
	}

	return &Forwarder{
		Logger:  logger.With().Str("component", "forwarder").Str("client", client.String()).Logger(),
		client:  client,
		options: options,
		queue:   make(chan *Payload, options.QueueSize),
		now:     time.Now,
		newID:   uuid.New,
	}
}

// Attach forwards the dispatches of session until the returned function is called.
func (f *Forwarder) Attach(session subscriber) (detach func()) {
	return session.Subscribe(gateway.AllEvents, func(event *gateway.Event) {
		if err := f.Forward(event); err != nil {
			f.Logger.Warn().Err(err).Str("type", event.Type).Msg("Failed to forward event")
		}
	})
}

// Allowed reports whether events of eventType are forwarded.
func (f *Forwarder) Allowed(eventType string) bool {
	if strings.Include(f.options.Blacklist, eventType) {
		return false
	}

	return len(f.options.EventTypes) == 0 || strings.Include(f.options.EventTypes, eventType)
}

// Forward queues event for publishing. It never blocks.
func (f *Forwarder) Forward(event *gateway.Event) error {
	if !f.Allowed(event.Type) {
		return nil
	}

	payload := &Payload{
		Op:       discord.GatewayOpDispatch,
		Type:     event.Type,
		Data:     event.Data,
		Sequence: event.Sequence,
		Metadata: Metadata{
			ID:         f.newID(),
			ReceivedAt: f.now().UTC(),
			ChannelID:  event.ChannelID,
			GuildID:    event.GuildID,
		},
	}

	select {
	case f.queue <- payload:
		return nil
	default:
		discardedEventCount.WithLabelValues(f.client.String(), "queue_full").Inc()

		return ErrForwarderQueue
	}
}

// Run publishes queued events until ctx is cancelled.
func (f *Forwarder) Run(ctx context.Context) error {
	f.Logger.Debug().Str("channel", f.options.Channel).Msg("Starting forwarder")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case payload := <-f.queue:
			if err := f.publish(ctx, payload); err != nil {
				discardedEventCount.WithLabelValues(f.client.String(), "publish").Inc()
				f.Logger.Error().Err(err).Str("type", payload.Type).Msg("Failed to publish event")
			}
		}
	}
}

func (f *Forwarder) publish(ctx context.Context, payload *Payload) error {
	data, err := swyftjson.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, f.options.PublishTimeout)
	defer cancel()

	if err = f.client.Publish(ctx, f.options.Channel, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", f.client.String(), err)
	}

	forwardedEventCount.WithLabelValues(f.client.String(), payload.Type).Inc()

	return nil
}
