package messaging

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
)

func init() {
	MQClients = append(MQClients, "nats")
}

// NatsMQClient publishes to core NATS subjects under the configured channel.
type NatsMQClient struct {
	NatsClient *nats.Conn `json:"-"`

	channel string
}

func (natsMQ *NatsMQClient) String() string {
	return "nats"
}

func (natsMQ *NatsMQClient) Channel() string {
	return natsMQ.channel
}

func (natsMQ *NatsMQClient) Connect(ctx context.Context, clientName string, args map[string]interface{}) (err error) {
	address, err := getString(args, "natsMQ", "Address")
	if err != nil {
		return err
	}

	if natsMQ.channel, err = getString(args, "natsMQ", "Channel"); err != nil {
		return err
	}

	natsMQ.NatsClient, err = nats.Connect(address, nats.Name(clientName))
	if err != nil {
		return fmt.Errorf("natsMQ connect: %w", err)
	}

	return nil
}

func (natsMQ *NatsMQClient) Publish(ctx context.Context, channelName string, data []byte) error {
	if natsMQ.NatsClient == nil {
		return ErrClientClosed
	}

	return natsMQ.NatsClient.Publish(natsMQ.channel+"."+channelName, data)
}

func (natsMQ *NatsMQClient) Close() error {
	if natsMQ.NatsClient == nil {
		return nil
	}

	err := natsMQ.NatsClient.Drain()
	natsMQ.NatsClient = nil

	return err
}
