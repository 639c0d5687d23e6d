package gateway

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/WelcomerTeam/Swyft/discord"
	"github.com/WelcomerTeam/Swyft/swyftjson"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

const testTimeout = 2 * time.Second

// frame is a payload sent by the session along with its raw bytes.
type frame struct {
	discord.GatewayPayload
	Raw []byte
}

// fakeGateway accepts a single session and records every frame it sends.
type fakeGateway struct {
	t      *testing.T
	server *httptest.Server
	url    string

	query     chan url.Values
	received  chan frame
	send      chan []byte
	closeWith chan int
}

func newFakeGateway(t *testing.T) *fakeGateway {
	t.Helper()

	fg := &fakeGateway{
		t:         t,
		query:     make(chan url.Values, 1),
		received:  make(chan frame, 64),
		send:      make(chan []byte, 64),
		closeWith: make(chan int, 1),
	}

	fg.server = httptest.NewServer(http.HandlerFunc(fg.handle))
	fg.url = "ws" + strings.TrimPrefix(fg.server.URL, "http")

	t.Cleanup(fg.server.Close)

	return fg
}

func (fg *fakeGateway) handle(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		fg.t.Errorf("upgrade: %v", err)

		return
	}
	defer conn.Close()

	fg.query <- r.URL.Query()

	readerDone := make(chan struct{})

	go func() {
		defer close(readerDone)

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}

			var payload discord.GatewayPayload
			if err := swyftjson.Unmarshal(data, &payload); err != nil {
				fg.t.Errorf("client sent invalid json: %v", err)

				return
			}

			fg.received <- frame{GatewayPayload: payload, Raw: data}
		}
	}()

	for {
		select {
		case data := <-fg.send:
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case code := <-fg.closeWith:
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(code, ""))

			return
		case <-readerDone:
			return
		}
	}
}

func (fg *fakeGateway) sendRaw(data string) {
	fg.send <- []byte(data)
}

func (fg *fakeGateway) sendOp(op discord.GatewayOp, data interface{}) {
	fg.t.Helper()

	body, err := swyftjson.Marshal(discord.SentPayload{Op: op, Data: data})
	require.NoError(fg.t, err)

	fg.send <- body
}

func (fg *fakeGateway) dispatch(eventType, data string) {
	fg.sendRaw(`{"op":0,"t":"` + eventType + `","s":1,"d":` + data + `}`)
}

// expect waits for the next frame with the given op, skipping any others.
func (fg *fakeGateway) expect(op discord.GatewayOp) frame {
	fg.t.Helper()

	deadline := time.After(testTimeout)

	for {
		select {
		case received := <-fg.received:
			if received.Op == op {
				return received
			}
		case <-deadline:
			fg.t.Fatalf("timed out waiting for op %s", op)

			return frame{}
		}
	}
}

func (fg *fakeGateway) expectQuery() url.Values {
	fg.t.Helper()

	select {
	case query := <-fg.query:
		return query
	case <-time.After(testTimeout):
		fg.t.Fatal("timed out waiting for connection")

		return nil
	}
}

func newTestSession(t *testing.T, fg *fakeGateway, opts ...SessionOption) *Session {
	t.Helper()

	s := NewSession("token", discord.IntentGuilds|discord.IntentGuildMessages, nil,
		append([]SessionOption{WithGatewayURL(fg.url)}, opts...)...)

	t.Cleanup(func() {
		_ = s.Close()

		select {
		case <-s.Done():
		case <-time.After(testTimeout):
			t.Error("session did not close")
		}
	})

	return s
}

// errorSink collects errors reported to OnError.
func errorSink(s *Session) chan error {
	errs := make(chan error, 16)

	s.OnError(func(err error) {
		select {
		case errs <- err:
		default:
		}
	})

	return errs
}

func waitFor[T any](t *testing.T, ch <-chan T) T {
	t.Helper()

	select {
	case v := <-ch:
		return v
	case <-time.After(testTimeout):
		t.Fatal("timed out waiting for value")

		var zero T

		return zero
	}
}

func waitClosed(t *testing.T, s *Session) {
	t.Helper()

	select {
	case <-s.Done():
	case <-time.After(testTimeout):
		t.Fatal("session did not close")
	}
}
