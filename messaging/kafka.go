package messaging

import (
	"context"
	"strconv"
	"strings"

	"github.com/segmentio/kafka-go"
)

func init() {
	MQClients = append(MQClients, "kafka")
}

// KafkaMQClient writes each event to the topic named by the channel.
type KafkaMQClient struct {
	KafkaClient *kafka.Writer

	channel string
}

func parseKafkaBalancer(balancer string) kafka.Balancer {
	switch strings.ToLower(balancer) {
	case "crc32":
		return &kafka.CRC32Balancer{}
	case "hash":
		return &kafka.Hash{}
	case "murmur2":
		return &kafka.Murmur2Balancer{}
	case "roundrobin":
		return &kafka.RoundRobin{}
	case "leastbytes":
		return &kafka.LeastBytes{}
	default:
		return nil
	}
}

func (kafkaMQ *KafkaMQClient) String() string {
	return "kafka"
}

func (kafkaMQ *KafkaMQClient) Channel() string {
	return kafkaMQ.channel
}

func (kafkaMQ *KafkaMQClient) Connect(ctx context.Context, clientName string, args map[string]interface{}) (err error) {
	address, err := getString(args, "kafkaMQ", "Address")
	if err != nil {
		return err
	}

	kafkaMQ.channel, _ = GetEntry(args, "Channel").(string)

	balancerStr, _ := GetEntry(args, "Balancer").(string)

	var async bool

	if asyncStr, ok := GetEntry(args, "Async").(string); ok {
		async, _ = strconv.ParseBool(asyncStr)
	}

	kafkaMQ.KafkaClient = &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(address, ",")...),
		Balancer: parseKafkaBalancer(balancerStr),
		Async:    async,
		Transport: &kafka.Transport{
			ClientID: clientName,
		},
	}

	return nil
}

func (kafkaMQ *KafkaMQClient) Publish(ctx context.Context, channelName string, data []byte) (err error) {
	if kafkaMQ.KafkaClient == nil {
		return ErrClientClosed
	}

	return kafkaMQ.KafkaClient.WriteMessages(ctx, kafka.Message{
		Topic: channelName,
		Value: data,
	})
}

func (kafkaMQ *KafkaMQClient) Close() error {
	if kafkaMQ.KafkaClient == nil {
		return nil
	}

	err := kafkaMQ.KafkaClient.Close()
	kafkaMQ.KafkaClient = nil

	return err
}
