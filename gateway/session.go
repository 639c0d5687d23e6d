package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/WelcomerTeam/Swyft/discord"
	"github.com/WelcomerTeam/Swyft/swyftjson"
	"github.com/rs/zerolog"
	gotils_strconv "github.com/savsgio/gotils/strconv"
	"go.uber.org/atomic"
	"nhooyr.io/websocket"
)

const (
	// DefaultGatewayURL is used unless WithGatewayURL is given.
	DefaultGatewayURL = "wss://gateway.discord.gg"
	GatewayVersion    = 10

	WebsocketReadLimit   = 512 << 20
	MessageChannelBuffer = 64
)

// Session is a single connection to the discord gateway.
//
// All inbound frames, heartbeat ticks and collector requests are handled in order
// by one event loop goroutine, and handlers are called on it. A handler that blocks
// stalls the session.
type Session struct {
	Logger zerolog.Logger

	handlers *handlerRegistry

	token      string
	gatewayURL string
	partials   []string
	properties discord.IdentifyProperties
	presence   *discord.UpdateStatus
	intents    discord.GatewayIntent

	lifecycleMu sync.Mutex
	status      *atomic.Uint32

	wsConnMu sync.RWMutex
	wsConn   *websocket.Conn

	currentChannelID *atomic.Int64
	currentGuildID   *atomic.Int64

	lastHeartbeatSent *atomic.Time
	lastHeartbeatAck  *atomic.Time
	heartbeatLatency  *atomic.Duration

	collectRequests chan *collectRequest
	collectCancels  chan collectCancel
	collectorID     *atomic.Uint64

	closing   chan struct{}
	closeOnce sync.Once
	done      chan struct{}

	// Owned by the event loop.
	heartbeater *time.Ticker
	collector   *collector
	readyFired  bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

func WithLogger(logger zerolog.Logger) SessionOption {
	return func(s *Session) {
		s.Logger = logger.With().Str("component", "gateway").Logger()
	}
}

// WithGatewayURL overrides the gateway address. Query parameters are added by the session.
func WithGatewayURL(gatewayURL string) SessionOption {
	return func(s *Session) {
		s.gatewayURL = gatewayURL
	}
}

func WithIdentifyProperties(properties discord.IdentifyProperties) SessionOption {
	return func(s *Session) {
		s.properties = properties
	}
}

// WithPresence sets the presence sent with identify.
func WithPresence(presence *discord.UpdateStatus) SessionOption {
	return func(s *Session) {
		s.presence = presence
	}
}

// NewSession creates a disconnected session. Nothing is validated until Connect.
func NewSession(token string, intents discord.GatewayIntent, partials []string, opts ...SessionOption) *Session {
	s := &Session{
		Logger: zerolog.Nop(),

		handlers: newHandlerRegistry(),

		token:      token,
		gatewayURL: DefaultGatewayURL,
		partials:   partials,
		intents:    intents,
		properties: discord.IdentifyProperties{
			OS:      runtime.GOOS,
			Browser: "Swyft",
			Device:  "Swyft",
		},

		status: atomic.NewUint32(uint32(StatusDisconnected)),

		currentChannelID: atomic.NewInt64(0),
		currentGuildID:   atomic.NewInt64(0),

		lastHeartbeatSent: atomic.NewTime(time.Time{}),
		lastHeartbeatAck:  atomic.NewTime(time.Time{}),
		heartbeatLatency:  atomic.NewDuration(0),

		collectRequests: make(chan *collectRequest),
		collectCancels:  make(chan collectCancel),
		collectorID:     atomic.NewUint64(0),

		closing: make(chan struct{}),
		done:    make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Connect starts connecting to the gateway and returns once the connection has been
// scheduled. Failures after that point are delivered to the OnError handlers.
// Cancelling ctx closes the session.
func (s *Session) Connect(ctx context.Context) error {
	if s.token == "" {
		return discord.NewArgumentError("token", "a token is required to connect")
	}

	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	switch s.Status() {
	case StatusDisconnected:
	case StatusClosed:
		return ErrSessionClosed
	default:
		return ErrSessionActive
	}

	gatewayURL, err := s.buildGatewayURL()
	if err != nil {
		return discord.NewArgumentError("gatewayURL", err.Error())
	}

	s.SetStatus(StatusConnecting)

	go s.run(ctx, gatewayURL)

	return nil
}

func (s *Session) buildGatewayURL() (string, error) {
	u, err := url.Parse(s.gatewayURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse gateway url: %w", err)
	}

	query := u.Query()
	query.Set("v", strconv.Itoa(GatewayVersion))
	query.Set("encoding", "json")
	query.Set("intents", strconv.FormatUint(uint64(s.intents), 10))

	if len(s.partials) > 0 {
		query.Set("partials", strings.Join(s.partials, ","))
	}

	u.RawQuery = query.Encode()

	return u.String(), nil
}

// Close closes the connection with a normal closure. It does not wait for the
// event loop to finish; use Done for that. Closing is terminal.
func (s *Session) Close() error {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	switch s.Status() {
	case StatusClosed:
		return nil
	case StatusDisconnected:
		s.Logger.Debug().Msg("Closing session that never connected")
		s.SetStatus(StatusClosed)
		close(s.done)

		return nil
	}

	s.closeOnce.Do(func() {
		s.Logger.Info().Msg("Closing session")
		close(s.closing)
	})

	return nil
}

// Done is closed once the session has reached CLOSED.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) Status() SessionStatus {
	return SessionStatus(s.status.Load())
}

func (s *Session) SetStatus(status SessionStatus) {
	s.Logger.Debug().Str("status", status.String()).Msg("Session status changed")

	s.status.Store(uint32(status))
}

// CurrentChannelID is the channel of the last dispatch that carried one.
func (s *Session) CurrentChannelID() discord.Snowflake {
	return discord.Snowflake(s.currentChannelID.Load())
}

// CurrentGuildID is the guild of the last dispatch that carried one.
func (s *Session) CurrentGuildID() discord.Snowflake {
	return discord.Snowflake(s.currentGuildID.Load())
}

// HeartbeatLatency is the round trip of the last acknowledged heartbeat.
func (s *Session) HeartbeatLatency() time.Duration {
	return s.heartbeatLatency.Load()
}

// run is the event loop. It owns the heartbeat ticker and the collector.
func (s *Session) run(parent context.Context, gatewayURL string) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	s.Logger.Debug().Str("url", gatewayURL).Msg("Connecting session")

	conn, err := s.dial(ctx, gatewayURL)
	if err != nil {
		s.Logger.Error().Err(err).Msg("Failed to dial websocket")

		if parent.Err() == nil && !s.isClosing() {
			s.reportError(&discord.TransportError{Op: "dial", Err: err})
		}

		s.teardown()

		return
	}

	conn.SetReadLimit(WebsocketReadLimit)

	s.wsConnMu.Lock()
	s.wsConn = conn
	s.wsConnMu.Unlock()

	errorCh, messageCh := s.feedWebsocket(ctx, conn)

	if err = s.Identify(ctx); err != nil {
		s.Logger.Error().Err(err).Msg("Failed to send identify")
		s.reportError(err)
	} else {
		s.SetStatus(StatusIdentified)
	}

	for {
		var heartbeatC, collectorC <-chan time.Time

		if s.heartbeater != nil {
			heartbeatC = s.heartbeater.C
		}

		if s.collector != nil {
			collectorC = s.collector.timer.C
		}

		select {
		case msg := <-messageCh:
			s.OnMessage(ctx, msg)
		case <-heartbeatC:
			if err := s.Heartbeat(ctx); err != nil {
				s.Logger.Warn().Err(err).Msg("Failed to send heartbeat")
				s.reportError(err)
			}
		case req := <-s.collectRequests:
			s.startCollector(req)
		case req := <-s.collectCancels:
			s.cancelCollector(req)
		case <-collectorC:
			s.timeoutCollector()
		case err := <-errorCh:
			s.drainMessages(ctx, messageCh)

			if parent.Err() == nil && !s.isClosing() && !isNormalClosure(err) {
				s.reportError(&discord.TransportError{Op: "read", Err: err})
			}

			s.Logger.Debug().Err(err).Msg("Websocket reader stopped")
			s.CloseWS(websocket.StatusNormalClosure)
			s.teardown()

			return
		case <-s.closing:
			s.CloseWS(websocket.StatusNormalClosure)
			s.teardown()

			return
		case <-parent.Done():
			s.CloseWS(websocket.StatusNormalClosure)
			s.teardown()

			return
		}
	}
}

// drainMessages handles frames that were read before the reader stopped.
func (s *Session) drainMessages(ctx context.Context, messageCh chan []byte) {
	for {
		select {
		case msg := <-messageCh:
			s.OnMessage(ctx, msg)
		default:
			return
		}
	}
}

// dial connects to the gateway. Close interrupts a pending dial.
func (s *Session) dial(ctx context.Context, gatewayURL string) (*websocket.Conn, error) {
	dialCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-s.closing:
			cancel()
		case <-dialCtx.Done():
		}
	}()

	conn, _, err := websocket.Dial(dialCtx, gatewayURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to websocket: %w", err)
	}

	return conn, nil
}

func (s *Session) isClosing() bool {
	select {
	case <-s.closing:
		return true
	default:
		return false
	}
}

func isNormalClosure(err error) bool {
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return true
	default:
		return false
	}
}

// feedWebsocket reads raw frames from conn until it fails.
func (s *Session) feedWebsocket(ctx context.Context, conn *websocket.Conn) (errorCh chan error, messageCh chan []byte) {
	messageCh = make(chan []byte, MessageChannelBuffer)
	errorCh = make(chan error, 1)

	go func() {
		for {
			_, data, err := conn.Read(ctx)
			if err != nil {
				errorCh <- err

				return
			}

			select {
			case messageCh <- data:
			case <-ctx.Done():
				return
			}
		}
	}()

	return errorCh, messageCh
}

// teardown stops everything owned by the event loop and marks the session closed.
func (s *Session) teardown() {
	if s.heartbeater != nil {
		s.heartbeater.Stop()
		s.heartbeater = nil
	}

	if s.collector != nil {
		s.finishCollector(nil, ErrSessionClosed)
	}

	s.lifecycleMu.Lock()
	s.SetStatus(StatusClosed)
	s.lifecycleMu.Unlock()

	close(s.done)

	s.drainCollectRequests()
}

// drainCollectRequests rejects requests racing with teardown.
func (s *Session) drainCollectRequests() {
	for {
		select {
		case req := <-s.collectRequests:
			req.result <- collectResult{err: ErrSessionClosed}
		default:
			return
		}
	}
}

// Identify sends the identify packet to discord.
func (s *Session) Identify(ctx context.Context) error {
	presence := s.presence
	if presence == nil {
		presence = &discord.UpdateStatus{
			Status:     discord.PresenceStatusOnline,
			Activities: []discord.Activity{},
		}
	}

	properties := s.properties

	s.Logger.Debug().Msg("Sending identify")

	return s.SendEvent(ctx, discord.GatewayOpIdentify, discord.Identify{
		Token:      s.token,
		Properties: &properties,
		Presence:   presence,
		Intents:    s.intents,
	})
}

// Heartbeat sends a heartbeat. Sequence numbers are not tracked so the payload is always null.
func (s *Session) Heartbeat(ctx context.Context) error {
	s.lastHeartbeatSent.Store(time.Now().UTC())

	return s.SendEvent(ctx, discord.GatewayOpHeartbeat, nil)
}

// SendEvent sends an event to discord.
func (s *Session) SendEvent(ctx context.Context, op discord.GatewayOp, data interface{}) error {
	err := s.WriteJSON(ctx, discord.SentPayload{
		Op:   op,
		Data: data,
	})
	if err != nil {
		return &discord.TransportError{Op: "send " + op.String(), Err: err}
	}

	return nil
}

// WriteJSON writes json data to the websocket.
func (s *Session) WriteJSON(ctx context.Context, i interface{}) error {
	s.wsConnMu.RLock()
	wsConn := s.wsConn
	s.wsConnMu.RUnlock()

	if wsConn == nil {
		return ErrNotConnected
	}

	res, err := swyftjson.Marshal(i)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	s.Logger.Trace().Msg("<<< " + gotils_strconv.B2S(res))

	err = wsConn.Write(ctx, websocket.MessageText, res)
	if err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

// CloseWS closes the websocket. Errors are logged and suppressed.
func (s *Session) CloseWS(statusCode websocket.StatusCode) {
	s.wsConnMu.Lock()
	defer s.wsConnMu.Unlock()

	if s.wsConn == nil {
		return
	}

	s.Logger.Debug().Int("code", int(statusCode)).Msg("Closing websocket connection")

	err := s.wsConn.Close(statusCode, "")
	if err != nil && !errors.Is(err, context.Canceled) && websocket.CloseStatus(err) == -1 {
		s.Logger.Debug().Err(err).Msg("Encountered error closing websocket")
	}

	s.wsConn = nil
}

func (s *Session) connected() bool {
	s.wsConnMu.RLock()
	defer s.wsConnMu.RUnlock()

	return s.wsConn != nil
}
