package gateway

import (
	"context"
	"errors"
	"net/http/httptest"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/WelcomerTeam/Swyft/discord"
	"github.com/WelcomerTeam/Swyft/swyftjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func connectTestSession(t *testing.T, fg *fakeGateway, opts ...SessionOption) *Session {
	t.Helper()

	s := newTestSession(t, fg, opts...)
	require.NoError(t, s.Connect(context.Background()))

	fg.expect(discord.GatewayOpIdentify)

	assert.Eventually(t, func() bool { return s.Status() == StatusIdentified }, testTimeout, 5*time.Millisecond)

	return s
}

func TestConnectMissingToken(t *testing.T) {
	s := NewSession("", discord.IntentGuilds, nil)

	err := s.Connect(context.Background())

	var argumentError *discord.ArgumentError
	require.ErrorAs(t, err, &argumentError)
	assert.ErrorIs(t, err, discord.ErrPrecondition)
	assert.Equal(t, "token", argumentError.Argument)
	assert.Equal(t, StatusDisconnected, s.Status())
}

func TestConnectIdentify(t *testing.T) {
	fg := newFakeGateway(t)

	s := NewSession("token", discord.IntentGuilds|discord.IntentGuildMessages, []string{"MESSAGE", "CHANNEL"},
		WithGatewayURL(fg.url))
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Connect(context.Background()))

	query := fg.expectQuery()
	assert.Equal(t, "10", query.Get("v"))
	assert.Equal(t, "json", query.Get("encoding"))
	assert.Equal(t, "513", query.Get("intents"))
	assert.Equal(t, "MESSAGE,CHANNEL", query.Get("partials"))

	payload := fg.expect(discord.GatewayOpIdentify)

	var identify discord.Identify
	require.NoError(t, swyftjson.Unmarshal(payload.Data, &identify))

	assert.Equal(t, "token", identify.Token)
	assert.Equal(t, discord.IntentGuilds|discord.IntentGuildMessages, identify.Intents)
	require.NotNil(t, identify.Properties)
	assert.Equal(t, runtime.GOOS, identify.Properties.OS)
	require.NotNil(t, identify.Presence)
	assert.Equal(t, discord.PresenceStatusOnline, identify.Presence.Status)
	assert.Nil(t, identify.Presence.Since)
	assert.Empty(t, identify.Presence.Activities)

	assert.Eventually(t, func() bool { return s.Status() == StatusIdentified }, testTimeout, 5*time.Millisecond)
	assert.ErrorIs(t, s.Connect(context.Background()), ErrSessionActive)
}

func TestIdentifyUsesConfiguredPresence(t *testing.T) {
	fg := newFakeGateway(t)

	s := newTestSession(t, fg,
		WithPresence(&discord.UpdateStatus{
			Status:     discord.PresenceStatusIdle,
			Activities: []discord.Activity{{Name: "tests", Type: discord.ActivityTypeWatching}},
		}),
		WithIdentifyProperties(discord.IdentifyProperties{OS: "plan9", Browser: "b", Device: "d"}),
	)
	require.NoError(t, s.Connect(context.Background()))

	var identify discord.Identify
	require.NoError(t, swyftjson.Unmarshal(fg.expect(discord.GatewayOpIdentify).Data, &identify))

	assert.Equal(t, "plan9", identify.Properties.OS)
	assert.Equal(t, discord.PresenceStatusIdle, identify.Presence.Status)
	require.Len(t, identify.Presence.Activities, 1)
	assert.Equal(t, discord.ActivityTypeWatching, identify.Presence.Activities[0].Type)
}

func TestReadyFiresOnce(t *testing.T) {
	fg := newFakeGateway(t)
	s := newTestSession(t, fg)

	readyCount := atomic.NewInt32(0)
	s.OnReady(func() { readyCount.Inc() })

	synced := make(chan struct{}, 1)
	s.Subscribe("SYNC", func(*Event) { synced <- struct{}{} })

	require.NoError(t, s.Connect(context.Background()))
	fg.expect(discord.GatewayOpIdentify)

	fg.dispatch(discord.EventReady, `{"session_id":"abc","v":10,"user":{"id":"1"}}`)
	fg.dispatch(discord.EventReady, `{"session_id":"abc","v":10,"user":{"id":"1"}}`)
	fg.dispatch("SYNC", `{}`)

	waitFor(t, synced)

	assert.Equal(t, int32(1), readyCount.Load())
	assert.Equal(t, StatusReady, s.Status())
}

func TestDispatchHandlersInOrder(t *testing.T) {
	fg := newFakeGateway(t)
	s := newTestSession(t, fg)

	var calls []string

	done := make(chan *Event, 2)

	s.Subscribe(discord.EventMessageCreate, func(*Event) { calls = append(calls, "first") })
	s.Subscribe(discord.EventMessageCreate, func(*Event) { calls = append(calls, "second") })
	s.Subscribe(discord.EventMessageCreate, func(e *Event) { done <- e })

	require.NoError(t, s.Connect(context.Background()))
	fg.expect(discord.GatewayOpIdentify)

	fg.dispatch("UNHANDLED_EVENT", `{"channel_id":"99"}`)
	fg.dispatch(discord.EventMessageCreate, `{"id":"1","channel_id":"10","guild_id":"20","content":"hi"}`)

	event := waitFor(t, done)

	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, discord.EventMessageCreate, event.Type)
	assert.Equal(t, int64(1), event.Sequence)
	assert.Equal(t, discord.Snowflake(10), event.ChannelID)
	assert.Equal(t, discord.Snowflake(20), event.GuildID)

	var message discord.Message
	require.NoError(t, event.Decode(&message))
	assert.Equal(t, "hi", message.Content)

	assert.Equal(t, discord.Snowflake(10), s.CurrentChannelID())
	assert.Equal(t, discord.Snowflake(20), s.CurrentGuildID())

	// Direct messages carry no guild so the cached guild stays.
	fg.dispatch(discord.EventMessageCreate, `{"id":"2","channel_id":"11"}`)

	event = waitFor(t, done)

	assert.True(t, event.GuildID.IsNil())
	assert.Equal(t, discord.Snowflake(11), s.CurrentChannelID())
	assert.Equal(t, discord.Snowflake(20), s.CurrentGuildID())
}

func TestSubscribeAllEvents(t *testing.T) {
	fg := newFakeGateway(t)
	s := newTestSession(t, fg)

	var order []string

	done := make(chan struct{}, 1)

	s.Subscribe(AllEvents, func(e *Event) {
		order = append(order, "all:"+e.Type)

		if e.Type == "SYNC" {
			done <- struct{}{}
		}
	})
	s.Subscribe(discord.EventGuildCreate, func(*Event) { order = append(order, "guild") })

	require.NoError(t, s.Connect(context.Background()))
	fg.expect(discord.GatewayOpIdentify)

	fg.dispatch(discord.EventGuildCreate, `{"id":"1"}`)
	fg.dispatch("SYNC", `{}`)

	waitFor(t, done)

	assert.Equal(t, []string{"guild", "all:GUILD_CREATE", "all:SYNC"}, order)
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	fg := newFakeGateway(t)
	s := newTestSession(t, fg)

	first := atomic.NewInt32(0)
	second := atomic.NewInt32(0)
	done := make(chan struct{}, 2)

	var unsubscribe func()
	unsubscribe = s.Subscribe("TYPING_START", func(*Event) {
		first.Inc()
		unsubscribe()
	})
	s.Subscribe("TYPING_START", func(*Event) { second.Inc() })
	s.Subscribe("TYPING_START", func(*Event) { done <- struct{}{} })

	require.NoError(t, s.Connect(context.Background()))
	fg.expect(discord.GatewayOpIdentify)

	fg.dispatch("TYPING_START", `{}`)
	waitFor(t, done)

	fg.dispatch("TYPING_START", `{}`)
	waitFor(t, done)

	assert.Equal(t, int32(1), first.Load())
	assert.Equal(t, int32(2), second.Load())
}

func TestHandlerPanicIsReported(t *testing.T) {
	fg := newFakeGateway(t)
	s := newTestSession(t, fg)
	errs := errorSink(s)

	done := make(chan struct{}, 1)

	s.Subscribe("BOOM", func(*Event) { panic("boom") })
	s.Subscribe("BOOM", func(*Event) { done <- struct{}{} })

	require.NoError(t, s.Connect(context.Background()))
	fg.expect(discord.GatewayOpIdentify)

	fg.dispatch("BOOM", `{}`)

	waitFor(t, done)
	assert.Contains(t, waitFor(t, errs).Error(), "boom")
}

func TestMalformedFrame(t *testing.T) {
	fg := newFakeGateway(t)
	s := newTestSession(t, fg)
	errs := errorSink(s)

	done := make(chan struct{}, 1)
	s.Subscribe("SYNC", func(*Event) { done <- struct{}{} })

	require.NoError(t, s.Connect(context.Background()))
	fg.expect(discord.GatewayOpIdentify)

	fg.sendRaw(`{"op":0,"t":`)

	var protocolError *discord.ProtocolError
	require.ErrorAs(t, waitFor(t, errs), &protocolError)

	fg.dispatch("SYNC", `{}`)
	waitFor(t, done)

	assert.Equal(t, StatusIdentified, s.Status())
}

func TestHeartbeat(t *testing.T) {
	fg := newFakeGateway(t)
	s := connectTestSession(t, fg)

	fg.sendOp(discord.GatewayOpHello, discord.Hello{HeartbeatInterval: 20})

	first := fg.expect(discord.GatewayOpHeartbeat)
	assert.JSONEq(t, `{"op":1,"d":null}`, string(first.Raw))

	fg.sendOp(discord.GatewayOpHeartbeatACK, nil)

	fg.expect(discord.GatewayOpHeartbeat)

	assert.Eventually(t, func() bool { return !s.lastHeartbeatAck.Load().IsZero() }, testTimeout, 5*time.Millisecond)
}

func TestHeartbeatRequest(t *testing.T) {
	fg := newFakeGateway(t)
	connectTestSession(t, fg)

	fg.sendOp(discord.GatewayOpHello, discord.Hello{HeartbeatInterval: 60000})
	fg.sendOp(discord.GatewayOpHeartbeat, nil)

	payload := fg.expect(discord.GatewayOpHeartbeat)
	assert.JSONEq(t, `{"op":1,"d":null}`, string(payload.Raw))
}

// countHeartbeats counts heartbeat frames received within window.
func countHeartbeats(fg *fakeGateway, window time.Duration) int {
	deadline := time.After(window)
	count := 0

	for {
		select {
		case received := <-fg.received:
			if received.Op == discord.GatewayOpHeartbeat {
				count++
			}
		case <-deadline:
			return count
		}
	}
}

func TestHelloRestartsHeartbeat(t *testing.T) {
	fg := newFakeGateway(t)
	connectTestSession(t, fg)

	fg.sendOp(discord.GatewayOpHello, discord.Hello{HeartbeatInterval: 100})
	time.Sleep(30 * time.Millisecond)
	fg.sendOp(discord.GatewayOpHello, discord.Hello{HeartbeatInterval: 100})

	// One ticker gives ~10 heartbeats a second, two would give ~20.
	count := countHeartbeats(fg, time.Second)
	assert.GreaterOrEqual(t, count, 6)
	assert.LessOrEqual(t, count, 14)
}

func TestCloseStopsHeartbeat(t *testing.T) {
	fg := newFakeGateway(t)
	s := connectTestSession(t, fg)

	fg.sendOp(discord.GatewayOpHello, discord.Hello{HeartbeatInterval: 20})
	fg.expect(discord.GatewayOpHeartbeat)

	require.NoError(t, s.Close())
	waitClosed(t, s)

	// Drop anything already in flight before the close.
	countHeartbeats(fg, 10*time.Millisecond)

	assert.Zero(t, countHeartbeats(fg, 200*time.Millisecond))
}

func TestIgnoredOps(t *testing.T) {
	fg := newFakeGateway(t)
	s := connectTestSession(t, fg)
	errs := errorSink(s)

	done := make(chan struct{}, 1)
	s.Subscribe("SYNC", func(*Event) { done <- struct{}{} })

	fg.sendOp(discord.GatewayOpReconnect, nil)
	fg.sendOp(discord.GatewayOpInvalidSession, false)
	fg.sendRaw(`{"op":42,"d":null}`)
	fg.dispatch("SYNC", `{}`)

	waitFor(t, done)

	assert.Empty(t, errs)
	assert.Equal(t, StatusIdentified, s.Status())
}

func TestSetPresence(t *testing.T) {
	fg := newFakeGateway(t)
	s := newTestSession(t, fg)

	err := s.SetPresence(context.Background(), discord.PresenceStatusDND, "watching", "you")
	assert.ErrorIs(t, err, ErrNotConnected)

	require.NoError(t, s.Connect(context.Background()))
	fg.expect(discord.GatewayOpIdentify)
	assert.Eventually(t, func() bool { return s.Status() == StatusIdentified }, testTimeout, 5*time.Millisecond)

	require.NoError(t, s.SetPresence(context.Background(), discord.PresenceStatusDND, "watching", "you"))

	payload := fg.expect(discord.GatewayOpStatusUpdate)
	assert.Equal(t, "you", swyftjson.Get(payload.Raw, "d", "game", "name").ToString())

	var status discord.UpdateStatus
	require.NoError(t, swyftjson.Unmarshal(payload.Data, &status))

	assert.Equal(t, discord.PresenceStatusDND, status.Status)
	assert.Nil(t, status.Since)
	assert.False(t, status.AFK)
	require.Len(t, status.Activities, 1)
	assert.Equal(t, "you", status.Activities[0].Name)
	assert.Equal(t, discord.ActivityTypeWatching, status.Activities[0].Type)

	require.NoError(t, s.SetPresence(context.Background(), discord.PresenceStatusOnline, "juggling", "balls"))
	require.NoError(t, swyftjson.Unmarshal(fg.expect(discord.GatewayOpStatusUpdate).Data, &status))
	assert.Equal(t, discord.ActivityTypeGame, status.Activities[0].Type)

	require.NoError(t, s.SetPresence(context.Background(), discord.PresenceStatusOnline, "Watching", "you"))
	require.NoError(t, swyftjson.Unmarshal(fg.expect(discord.GatewayOpStatusUpdate).Data, &status))
	assert.Equal(t, discord.ActivityTypeGame, status.Activities[0].Type)
}

func TestClose(t *testing.T) {
	fg := newFakeGateway(t)
	s := connectTestSession(t, fg)
	errs := errorSink(s)

	require.NoError(t, s.Close())
	waitClosed(t, s)

	assert.Equal(t, StatusClosed, s.Status())
	assert.Empty(t, errs)
	assert.ErrorIs(t, s.Connect(context.Background()), ErrSessionClosed)
	assert.ErrorIs(t, s.SetPresence(context.Background(), discord.PresenceStatusOnline, "", ""), ErrNotConnected)
	assert.NoError(t, s.Close())
}

func TestCloseBeforeConnect(t *testing.T) {
	s := NewSession("token", discord.IntentGuilds, nil)

	require.NoError(t, s.Close())
	waitClosed(t, s)

	assert.ErrorIs(t, s.Connect(context.Background()), ErrSessionClosed)
}

func TestContextCancelClosesSession(t *testing.T) {
	fg := newFakeGateway(t)
	s := newTestSession(t, fg)

	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, s.Connect(ctx))
	fg.expect(discord.GatewayOpIdentify)

	cancel()
	waitClosed(t, s)

	assert.Equal(t, StatusClosed, s.Status())
}

func TestRemoteAbnormalClose(t *testing.T) {
	fg := newFakeGateway(t)
	s := connectTestSession(t, fg)
	errs := errorSink(s)

	fg.closeWith <- discord.CloseAuthenticationFailed

	waitClosed(t, s)

	var transportError *discord.TransportError
	require.ErrorAs(t, waitFor(t, errs), &transportError)
	assert.Equal(t, StatusClosed, s.Status())
}

func TestDialFailure(t *testing.T) {
	server := httptest.NewServer(nil)
	gatewayURL := "ws" + strings.TrimPrefix(server.URL, "http")
	server.Close()

	s := NewSession("token", discord.IntentGuilds, nil, WithGatewayURL(gatewayURL))
	errs := errorSink(s)

	require.NoError(t, s.Connect(context.Background()))
	waitClosed(t, s)

	err := waitFor(t, errs)

	var transportError *discord.TransportError
	require.ErrorAs(t, err, &transportError)
	assert.Equal(t, "dial", transportError.Op)
	assert.False(t, errors.Is(err, discord.ErrPrecondition))
	assert.Equal(t, StatusClosed, s.Status())
}
