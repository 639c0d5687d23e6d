package messaging

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/stan.go"
)

func init() {
	MQClients = append(MQClients, "stan")
}

// StanMQClient publishes to NATS streaming.
type StanMQClient struct {
	NatsClient *nats.Conn `json:"-"`
	StanClient stan.Conn  `json:"-"`

	async bool

	channel string
	cluster string
}

func (stanMQ *StanMQClient) String() string {
	return "stan"
}

func (stanMQ *StanMQClient) Channel() string {
	return stanMQ.channel
}

func (stanMQ *StanMQClient) Cluster() string {
	return stanMQ.cluster
}

func (stanMQ *StanMQClient) Connect(ctx context.Context, clientName string, args map[string]interface{}) (err error) {
	address, err := getString(args, "stanMQ", "Address")
	if err != nil {
		return err
	}

	if stanMQ.cluster, err = getString(args, "stanMQ", "Cluster"); err != nil {
		return err
	}

	if stanMQ.channel, err = getString(args, "stanMQ", "Channel"); err != nil {
		return err
	}

	useNatsConnection := true

	if useNatsConnectionStr, ok := GetEntry(args, "UseNATSConnection").(string); ok {
		if v, parseErr := strconv.ParseBool(useNatsConnectionStr); parseErr == nil {
			useNatsConnection = v
		}
	}

	if asyncStr, ok := GetEntry(args, "Async").(string); ok {
		stanMQ.async, _ = strconv.ParseBool(asyncStr)
	}

	var option stan.Option

	if useNatsConnection {
		stanMQ.NatsClient, err = nats.Connect(address, nats.Name(clientName))
		if err != nil {
			return fmt.Errorf("stanMQ connect nats: %w", err)
		}

		option = stan.NatsConn(stanMQ.NatsClient)
	} else {
		option = stan.NatsURL(address)
	}

	stanMQ.StanClient, err = stan.Connect(stanMQ.cluster, clientName, option)
	if err != nil {
		return fmt.Errorf("stanMQ connect stan: %w", err)
	}

	return nil
}

func (stanMQ *StanMQClient) Publish(ctx context.Context, channelName string, data []byte) (err error) {
	if stanMQ.StanClient == nil {
		return ErrClientClosed
	}

	if stanMQ.async {
		_, err = stanMQ.StanClient.PublishAsync(channelName, data, nil)

		return
	}

	return stanMQ.StanClient.Publish(channelName, data)
}

func (stanMQ *StanMQClient) Close() error {
	if stanMQ.StanClient == nil {
		return nil
	}

	err := stanMQ.StanClient.Close()
	stanMQ.StanClient = nil

	if stanMQ.NatsClient != nil {
		stanMQ.NatsClient.Close()
		stanMQ.NatsClient = nil
	}

	return err
}
