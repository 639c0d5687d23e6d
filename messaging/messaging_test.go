package messaging

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/WelcomerTeam/Swyft/discord"
	"github.com/WelcomerTeam/Swyft/gateway"
	"github.com/WelcomerTeam/Swyft/swyftjson"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	channel string
	data    []byte
}

type fakeMQClient struct {
	mu        sync.Mutex
	published []published
	err       error
	notify    chan struct{}
}

func newFakeMQClient() *fakeMQClient {
	return &fakeMQClient{notify: make(chan struct{}, 16)}
}

func (c *fakeMQClient) String() string  { return "fake" }
func (c *fakeMQClient) Channel() string { return "swyft" }

func (c *fakeMQClient) Connect(context.Context, string, map[string]interface{}) error { return nil }

func (c *fakeMQClient) Publish(_ context.Context, channel string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	defer func() { c.notify <- struct{}{} }()

	if c.err != nil {
		return c.err
	}

	c.published = append(c.published, published{channel: channel, data: data})

	return nil
}

func (c *fakeMQClient) Close() error { return nil }

func (c *fakeMQClient) snapshot() []published {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]published{}, c.published...)
}

type fakeSession struct {
	handlers map[string][]gateway.Handler
}

func (s *fakeSession) Subscribe(eventType string, handler gateway.Handler) func() {
	if s.handlers == nil {
		s.handlers = make(map[string][]gateway.Handler)
	}

	s.handlers[eventType] = append(s.handlers[eventType], handler)

	return func() { delete(s.handlers, eventType) }
}

func (s *fakeSession) emit(event *gateway.Event) {
	for _, handler := range s.handlers[gateway.AllEvents] {
		handler(event)
	}
}

func waitPublished(t *testing.T, client *fakeMQClient) {
	t.Helper()

	select {
	case <-client.notify:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for publish")
	}
}

func TestNewMQClient(t *testing.T) {
	for name, want := range map[string]MQClient{
		"redis":     &RedisMQClient{},
		"NATS":      &NatsMQClient{},
		"jetstream": &JetStreamMQClient{},
		"stan":      &StanMQClient{},
		"kafka":     &KafkaMQClient{},
	} {
		client, err := NewMQClient(name)
		require.NoError(t, err, name)
		assert.IsType(t, want, client)
	}

	_, err := NewMQClient("carrier-pigeon")
	assert.ErrorIs(t, err, ErrUnknownMQClient)

	assert.ElementsMatch(t, []string{"redis", "nats", "jetstream", "stan", "kafka"}, MQClients)
}

func TestGetEntry(t *testing.T) {
	args := map[string]interface{}{"address": "localhost:6379", "DB": "2"}

	assert.Equal(t, "localhost:6379", GetEntry(args, "Address"))
	assert.Equal(t, "2", GetEntry(args, "db"))
	assert.Nil(t, GetEntry(args, "Password"))
}

func TestConnectMissingAddress(t *testing.T) {
	for _, mqType := range []string{"redis", "nats", "jetstream", "stan", "kafka"} {
		client, err := NewMQClient(mqType)
		require.NoError(t, err)

		err = client.Connect(context.Background(), "swyft", map[string]interface{}{})
		assert.ErrorContains(t, err, "Address", mqType)
	}
}

func TestPublishBeforeConnect(t *testing.T) {
	for _, mqType := range []string{"redis", "nats", "jetstream", "stan", "kafka"} {
		client, err := NewMQClient(mqType)
		require.NoError(t, err)

		assert.ErrorIs(t, client.Publish(context.Background(), "swyft", []byte("{}")), ErrClientClosed, mqType)
		assert.NoError(t, client.Close(), mqType)
	}
}

func TestParseKafkaBalancer(t *testing.T) {
	assert.IsType(t, &kafka.RoundRobin{}, parseKafkaBalancer("RoundRobin"))
	assert.IsType(t, &kafka.Murmur2Balancer{}, parseKafkaBalancer("murmur2"))
	assert.Nil(t, parseKafkaBalancer(""))
}

func TestForwarderAllowed(t *testing.T) {
	forwarder := NewForwarder(newFakeMQClient(), ForwarderOptions{
		Blacklist: []string{"PRESENCE_UPDATE"},
	}, zerolog.Nop())

	assert.True(t, forwarder.Allowed(discord.EventMessageCreate))
	assert.False(t, forwarder.Allowed("PRESENCE_UPDATE"))

	forwarder = NewForwarder(newFakeMQClient(), ForwarderOptions{
		EventTypes: []string{discord.EventMessageCreate},
	}, zerolog.Nop())

	assert.True(t, forwarder.Allowed(discord.EventMessageCreate))
	assert.False(t, forwarder.Allowed(discord.EventGuildCreate))
}

func TestForwarderPublishes(t *testing.T) {
	client := newFakeMQClient()

	forwarder := NewForwarder(client, ForwarderOptions{
		EventTypes: []string{discord.EventMessageCreate},
	}, zerolog.Nop())

	id := uuid.MustParse("0b6c8a3e-1d43-4c1e-9a55-6d6f8bc0e1a2")
	receivedAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	forwarder.newID = func() uuid.UUID { return id }
	forwarder.now = func() time.Time { return receivedAt }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = forwarder.Run(ctx) }()

	session := &fakeSession{}
	detach := forwarder.Attach(session)

	session.emit(&gateway.Event{Type: discord.EventGuildCreate, Data: []byte(`{}`)})
	session.emit(&gateway.Event{
		Type:      discord.EventMessageCreate,
		Data:      []byte(`{"content":"hi"}`),
		Sequence:  4,
		ChannelID: 10,
		GuildID:   20,
	})

	waitPublished(t, client)

	messages := client.snapshot()
	require.Len(t, messages, 1)
	assert.Equal(t, "swyft", messages[0].channel)

	var payload Payload
	require.NoError(t, swyftjson.Unmarshal(messages[0].data, &payload))

	assert.Equal(t, discord.GatewayOpDispatch, payload.Op)
	assert.Equal(t, discord.EventMessageCreate, payload.Type)
	assert.Equal(t, int64(4), payload.Sequence)
	assert.JSONEq(t, `{"content":"hi"}`, string(payload.Data))
	assert.Equal(t, id, payload.Metadata.ID)
	assert.True(t, receivedAt.Equal(payload.Metadata.ReceivedAt))
	assert.Equal(t, discord.Snowflake(10), payload.Metadata.ChannelID)
	assert.Equal(t, discord.Snowflake(20), payload.Metadata.GuildID)

	detach()
	assert.Empty(t, session.handlers)
}

func TestForwarderQueueFull(t *testing.T) {
	forwarder := NewForwarder(newFakeMQClient(), ForwarderOptions{QueueSize: 1}, zerolog.Nop())

	event := &gateway.Event{Type: discord.EventMessageCreate, Data: []byte(`{}`)}

	require.NoError(t, forwarder.Forward(event))
	assert.ErrorIs(t, forwarder.Forward(event), ErrForwarderQueue)
}

func TestForwarderPublishFailure(t *testing.T) {
	client := newFakeMQClient()
	client.err = errors.New("broker down")

	forwarder := NewForwarder(client, ForwarderOptions{}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- forwarder.Run(ctx) }()

	require.NoError(t, forwarder.Forward(&gateway.Event{Type: discord.EventMessageCreate, Data: []byte(`{}`)}))
	waitPublished(t, client)

	assert.Empty(t, client.snapshot())

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
