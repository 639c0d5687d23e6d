package gateway

import (
	"context"
	"time"

	"github.com/WelcomerTeam/Swyft/discord"
	"github.com/WelcomerTeam/Swyft/swyftjson"
)

// OnMessage decodes a raw frame and routes it by opcode.
func (s *Session) OnMessage(ctx context.Context, data []byte) {
	var msg discord.GatewayPayload

	if err := swyftjson.Unmarshal(data, &msg); err != nil {
		s.Logger.Error().Err(err).Msg("Failed to unmarshal message")
		s.reportError(&discord.ProtocolError{Err: err})

		return
	}

	gatewayEventCount.WithLabelValues(msg.Op.String()).Inc()

	switch msg.Op {
	case discord.GatewayOpDispatch:
		s.OnDispatch(msg)
	case discord.GatewayOpHello:
		s.onHello(msg)
	case discord.GatewayOpHeartbeat:
		s.Logger.Debug().Msg("Received heartbeat request")

		if err := s.Heartbeat(ctx); err != nil {
			s.Logger.Warn().Err(err).Msg("Failed to send heartbeat in response to heartbeat request")
			s.reportError(err)
		}
	case discord.GatewayOpHeartbeatACK:
		s.onHeartbeatAck()
	case discord.GatewayOpReconnect:
		s.Logger.Warn().Msg("Received reconnect request, ignoring as reconnection is not supported")
	case discord.GatewayOpInvalidSession:
		s.Logger.Warn().RawJSON("data", msg.Data).Msg("Received invalid session")
	default:
		s.Logger.Warn().Int("op", int(msg.Op)).Msg("Gateway sent unknown packet")
	}
}

func (s *Session) onHello(msg discord.GatewayPayload) {
	var hello discord.Hello

	if err := swyftjson.Unmarshal(msg.Data, &hello); err != nil {
		s.reportError(&discord.ProtocolError{Err: err, Op: msg.Op})

		return
	}

	if hello.HeartbeatInterval <= 0 {
		s.reportError(&discord.ProtocolError{Err: errInvalidHeartbeatInterval, Op: msg.Op})

		return
	}

	interval := time.Duration(hello.HeartbeatInterval) * time.Millisecond

	s.Logger.Debug().Dur("interval", interval).Msg("Received HELLO event")

	if s.heartbeater != nil {
		s.heartbeater.Stop()
	}

	s.heartbeater = time.NewTicker(interval)
}

func (s *Session) onHeartbeatAck() {
	now := time.Now().UTC()
	s.lastHeartbeatAck.Store(now)

	sent := s.lastHeartbeatSent.Load()
	if sent.IsZero() {
		return
	}

	latency := now.Sub(sent)

	s.heartbeatLatency.Store(latency)
	gatewayLatency.Set(latency.Seconds())

	s.Logger.Trace().Dur("latency", latency).Msg("Received heartbeat ACK")
}

// OnDispatch updates the cached channel and guild, then hands the event to the
// handlers and the active collector.
func (s *Session) OnDispatch(msg discord.GatewayPayload) {
	event := newEvent(msg)

	gatewayDispatchEventCount.WithLabelValues(event.Type).Inc()

	if !event.ChannelID.IsNil() {
		s.currentChannelID.Store(int64(event.ChannelID))
	}

	if !event.GuildID.IsNil() {
		s.currentGuildID.Store(int64(event.GuildID))
	}

	if event.Type == discord.EventReady && !s.readyFired {
		s.readyFired = true

		s.SetStatus(StatusReady)
		s.Logger.Info().Msg("Session is ready")
		s.fireReady()
	}

	s.fireHandlers(event)
	s.feedCollector(event)
}
