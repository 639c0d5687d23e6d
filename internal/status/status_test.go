package status

import (
	"testing"
	"time"

	"github.com/WelcomerTeam/Swyft/discord"
	"github.com/WelcomerTeam/Swyft/gateway"
	"github.com/WelcomerTeam/Swyft/swyftjson"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

type fakeSession struct{}

func (fakeSession) Status() gateway.SessionStatus { return gateway.StatusReady }
func (fakeSession) HeartbeatLatency() time.Duration { return 42 * time.Millisecond }
func (fakeSession) CurrentGuildID() discord.Snowflake { return 20 }

func request(t *testing.T, s *Server, path string) *fasthttp.RequestCtx {
	t.Helper()

	var ctx fasthttp.RequestCtx

	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI(path)

	s.HandleRequest(&ctx)

	return &ctx
}

func TestStatus(t *testing.T) {
	s := NewServer(fakeSession{}, prometheus.NewRegistry(), "1.0.0", zerolog.Nop())

	ctx := request(t, s, "/api/status")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, contentTypeJSON, string(ctx.Response.Header.ContentType()))

	body := ctx.Response.Body()
	assert.True(t, swyftjson.Get(body, "success").ToBool())
	assert.Equal(t, "READY", swyftjson.Get(body, "response", "status").ToString())
	assert.Equal(t, "1.0.0", swyftjson.Get(body, "response", "version").ToString())
	assert.Equal(t, int64(42), swyftjson.Get(body, "response", "heartbeat_latency_ms").ToInt64())
	assert.Equal(t, "20", swyftjson.Get(body, "response", "current_guild_id").ToString())
}

func TestMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "swyft_test_total",
		Help: "Test counter",
	})
	registry.MustRegister(counter)
	counter.Inc()

	s := NewServer(fakeSession{}, registry, "1.0.0", zerolog.Nop())

	ctx := request(t, s, "/metrics")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), "swyft_test_total 1")
}

func TestNotFound(t *testing.T) {
	s := NewServer(fakeSession{}, prometheus.NewRegistry(), "1.0.0", zerolog.Nop())

	ctx := request(t, s, "/api/missing")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
	assert.False(t, swyftjson.Get(ctx.Response.Body(), "success").ToBool())
	assert.Equal(t, "not found", swyftjson.Get(ctx.Response.Body(), "error").ToString())
}
