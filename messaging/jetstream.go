package messaging

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

func init() {
	MQClients = append(MQClients, "jetstream")
}

// JetStreamMQClient publishes to a memory backed stream named after the channel.
// Subjects are channel.<event type>.
type JetStreamMQClient struct {
	NatsClient      *nats.Conn          `json:"-"`
	JetStreamClient jetstream.JetStream `json:"-"`
	JetStreamStream jetstream.Stream    `json:"-"`

	channel string
}

func (jetstreamMQ *JetStreamMQClient) String() string {
	return "jetstream"
}

func (jetstreamMQ *JetStreamMQClient) Channel() string {
	return jetstreamMQ.channel
}

func (jetstreamMQ *JetStreamMQClient) Connect(ctx context.Context, clientName string, args map[string]interface{}) error {
	address, err := getString(args, "jetstreamMQ", "Address")
	if err != nil {
		return err
	}

	if jetstreamMQ.channel, err = getString(args, "jetstreamMQ", "Channel"); err != nil {
		return err
	}

	jetstreamMQ.NatsClient, err = nats.Connect(address, nats.Name(clientName))
	if err != nil {
		return fmt.Errorf("jetstreamMQ connect nats: %w", err)
	}

	jetstreamMQ.JetStreamClient, err = jetstream.New(jetstreamMQ.NatsClient)
	if err != nil {
		return fmt.Errorf("jetstreamMQ new: %w", err)
	}

	jetstreamMQ.JetStreamStream, err = jetstreamMQ.JetStreamClient.CreateOrUpdateStream(ctx, streamConfig(jetstreamMQ.channel, args))
	if err != nil {
		return fmt.Errorf("jetstreamMQ create stream: %w", err)
	}

	return nil
}

func streamConfig(channel string, args map[string]interface{}) jetstream.StreamConfig {
	retention := jetstream.WorkQueuePolicy

	if interest, ok := GetEntry(args, "UseInterestPolicy").(string); ok {
		if v, _ := strconv.ParseBool(interest); v {
			retention = jetstream.InterestPolicy
		}
	}

	return jetstream.StreamConfig{
		Name:              channel,
		Subjects:          []string{channel + ".*"},
		Retention:         retention,
		Discard:           jetstream.DiscardOld,
		MaxAge:            5 * time.Minute,
		Storage:           jetstream.MemoryStorage,
		MaxMsgsPerSubject: 1_000_000,
		MaxMsgSize:        math.MaxInt32,
	}
}

func (jetstreamMQ *JetStreamMQClient) Publish(ctx context.Context, channelName string, data []byte) error {
	if jetstreamMQ.JetStreamClient == nil {
		return ErrClientClosed
	}

	_, err := jetstreamMQ.JetStreamClient.Publish(ctx, jetstreamMQ.channel+"."+channelName, data)

	return err
}

func (jetstreamMQ *JetStreamMQClient) Close() error {
	if jetstreamMQ.NatsClient == nil {
		return nil
	}

	err := jetstreamMQ.NatsClient.Drain()

	jetstreamMQ.NatsClient = nil
	jetstreamMQ.JetStreamClient = nil

	return err
}
