package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/WelcomerTeam/Swyft/discord"
	"github.com/WelcomerTeam/Swyft/swyftjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

const markerEvent = "MARKER"

type collectOutcome struct {
	err    error
	events []*Event
}

// startCollect runs Collect in the background and returns once the collector is
// receiving events. MARKER dispatches are sent until the filter sees one.
func startCollect(t *testing.T, ctx context.Context, s *Session, fg *fakeGateway,
	filter func(*Event) bool, limit int, timeout time.Duration,
) <-chan collectOutcome {
	t.Helper()

	marked := atomic.NewBool(false)
	outcome := make(chan collectOutcome, 1)

	go func() {
		events, err := s.Collect(ctx, func(e *Event) bool {
			if e.Type == markerEvent {
				marked.Store(true)

				return false
			}

			return filter(e)
		}, limit, timeout)

		outcome <- collectOutcome{events: events, err: err}
	}()

	require.Eventually(t, func() bool {
		fg.dispatch(markerEvent, `{}`)

		return marked.Load()
	}, testTimeout, 10*time.Millisecond)

	return outcome
}

func isMessageCreate(e *Event) bool {
	return e.Type == discord.EventMessageCreate
}

func messageID(e *Event) string {
	return swyftjson.Get(e.Data, "id").ToString()
}

func TestCollectArguments(t *testing.T) {
	s := NewSession("token", discord.IntentGuilds, nil)

	_, err := s.Collect(context.Background(), nil, 1, time.Second)
	assert.ErrorIs(t, err, discord.ErrPrecondition)

	_, err = s.Collect(context.Background(), isMessageCreate, 0, time.Second)
	assert.ErrorIs(t, err, discord.ErrPrecondition)

	_, err = s.Collect(context.Background(), isMessageCreate, 1, 0)
	assert.ErrorIs(t, err, discord.ErrPrecondition)

	_, err = s.Collect(context.Background(), isMessageCreate, 1, time.Second)
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestCollectReachesMax(t *testing.T) {
	fg := newFakeGateway(t)
	s := connectTestSession(t, fg)

	outcome := startCollect(t, context.Background(), s, fg, isMessageCreate, 2, testTimeout)

	fg.dispatch("TYPING_START", `{"channel_id":"1"}`)
	fg.dispatch(discord.EventMessageCreate, `{"id":"1"}`)
	fg.dispatch(discord.EventMessageCreate, `{"id":"2"}`)
	fg.dispatch(discord.EventMessageCreate, `{"id":"3"}`)

	result := waitFor(t, outcome)
	require.NoError(t, result.err)
	require.Len(t, result.events, 2)
	assert.Equal(t, "1", messageID(result.events[0]))
	assert.Equal(t, "2", messageID(result.events[1]))
}

func TestCollectTimeout(t *testing.T) {
	fg := newFakeGateway(t)
	s := connectTestSession(t, fg)

	timeout := 500 * time.Millisecond

	outcome := startCollect(t, context.Background(), s, fg, isMessageCreate, 3, timeout)

	fg.dispatch(discord.EventMessageCreate, `{"id":"1"}`)

	result := waitFor(t, outcome)
	assert.Nil(t, result.events)
	assert.ErrorIs(t, result.err, ErrCollectorTimeout)

	var timeoutError *CollectTimeoutError
	require.ErrorAs(t, result.err, &timeoutError)
	assert.Equal(t, 1, timeoutError.Collected)
	assert.Equal(t, 3, timeoutError.Wanted)
	assert.Equal(t, timeout, timeoutError.Timeout)

	// The collector is gone so a new one may start.
	outcome = startCollect(t, context.Background(), s, fg, isMessageCreate, 1, testTimeout)
	fg.dispatch(discord.EventMessageCreate, `{"id":"2"}`)

	result = waitFor(t, outcome)
	require.NoError(t, result.err)
	assert.Equal(t, "2", messageID(result.events[0]))
}

func TestCollectConflict(t *testing.T) {
	fg := newFakeGateway(t)
	s := connectTestSession(t, fg)

	outcome := startCollect(t, context.Background(), s, fg, isMessageCreate, 1, testTimeout)

	_, err := s.Collect(context.Background(), isMessageCreate, 1, testTimeout)
	assert.ErrorIs(t, err, ErrCollectorActive)

	fg.dispatch(discord.EventMessageCreate, `{"id":"7"}`)

	result := waitFor(t, outcome)
	require.NoError(t, result.err)
	require.Len(t, result.events, 1)
	assert.Equal(t, "7", messageID(result.events[0]))
}

func TestCollectSessionClosed(t *testing.T) {
	fg := newFakeGateway(t)
	s := connectTestSession(t, fg)

	outcome := startCollect(t, context.Background(), s, fg, isMessageCreate, 5, testTimeout)

	require.NoError(t, s.Close())

	result := waitFor(t, outcome)
	assert.ErrorIs(t, result.err, ErrSessionClosed)

	waitClosed(t, s)

	_, err := s.Collect(context.Background(), isMessageCreate, 1, time.Second)
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestCollectContextCancel(t *testing.T) {
	fg := newFakeGateway(t)
	s := connectTestSession(t, fg)

	ctx, cancel := context.WithCancel(context.Background())

	outcome := startCollect(t, ctx, s, fg, isMessageCreate, 2, testTimeout)

	cancel()

	result := waitFor(t, outcome)
	assert.ErrorIs(t, result.err, context.Canceled)

	outcome = startCollect(t, context.Background(), s, fg, isMessageCreate, 1, testTimeout)
	fg.dispatch(discord.EventMessageCreate, `{"id":"3"}`)

	result = waitFor(t, outcome)
	require.NoError(t, result.err)
	assert.Equal(t, "3", messageID(result.events[0]))
}

func TestCollectFilterPanics(t *testing.T) {
	fg := newFakeGateway(t)
	s := connectTestSession(t, fg)
	errs := errorSink(s)

	outcome := startCollect(t, context.Background(), s, fg, func(e *Event) bool {
		if messageID(e) == "bad" {
			panic("bad filter")
		}

		return isMessageCreate(e)
	}, 1, testTimeout)

	fg.dispatch(discord.EventMessageCreate, `{"id":"bad"}`)
	fg.dispatch(discord.EventMessageCreate, `{"id":"good"}`)

	result := waitFor(t, outcome)
	require.NoError(t, result.err)
	assert.Equal(t, "good", messageID(result.events[0]))
	assert.Contains(t, waitFor(t, errs).Error(), "bad filter")
}
