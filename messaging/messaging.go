// Package messaging publishes gateway dispatches to message brokers.
package messaging

import (
	"context"
	"fmt"
	"strings"
)

// MQClients lists all current mqclients we have available.
var MQClients = []string{}

// MQClient is a connection to a message broker.
type MQClient interface {
	String() string
	Channel() string

	Connect(ctx context.Context, clientName string, args map[string]interface{}) (err error)
	Publish(ctx context.Context, channel string, data []byte) (err error)
	Close() error
}

// NewMQClient returns an unconnected client of the given type.
func NewMQClient(mqType string) (MQClient, error) {
	switch strings.ToLower(mqType) {
	case "redis":
		return &RedisMQClient{}, nil
	case "nats":
		return &NatsMQClient{}, nil
	case "jetstream":
		return &JetStreamMQClient{}, nil
	case "stan":
		return &StanMQClient{}, nil
	case "kafka":
		return &KafkaMQClient{}, nil
	default:
		return nil, fmt.Errorf("%w: %q, expected one of %s", ErrUnknownMQClient, mqType, strings.Join(MQClients, ", "))
	}
}

// GetEntry returns the first match from a map and handles keys as non case sensitive.
func GetEntry(m map[string]interface{}, key string) interface{} {
	key = strings.ToLower(key)
	for i, k := range m {
		if strings.ToLower(i) == key {
			return k
		}
	}

	return nil
}

func getString(args map[string]interface{}, client, key string) (string, error) {
	value, ok := GetEntry(args, key).(string)
	if !ok {
		return "", fmt.Errorf("%s connect: string type assertion failed for %s", client, key)
	}

	return value, nil
}
