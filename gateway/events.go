package gateway

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/WelcomerTeam/Swyft/discord"
	"github.com/WelcomerTeam/Swyft/swyftjson"
)

// Event is a dispatch received from the gateway.
// ChannelID and GuildID are lifted from the top level of the payload and are
// zero when the payload does not carry them.
type Event struct {
	Type      string
	Data      json.RawMessage
	Sequence  int64
	ChannelID discord.Snowflake
	GuildID   discord.Snowflake
}

// Decode unmarshals the event payload into v.
func (e *Event) Decode(v interface{}) error {
	if err := swyftjson.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", e.Type, err)
	}

	return nil
}

func newEvent(msg discord.GatewayPayload) *Event {
	event := &Event{
		Type: msg.Type,
		Data: msg.Data,
	}

	if msg.Sequence != nil {
		event.Sequence = *msg.Sequence
	}

	if len(msg.Data) > 0 {
		event.ChannelID = liftSnowflake(msg.Data, "channel_id")
		event.GuildID = liftSnowflake(msg.Data, "guild_id")
	}

	return event
}

func liftSnowflake(data []byte, key string) discord.Snowflake {
	value := swyftjson.Get(data, key).ToString()
	if value == "" {
		return 0
	}

	snowflake, err := discord.ParseSnowflake(value)
	if err != nil {
		return 0
	}

	return snowflake
}

// AllEvents subscribes a handler to every dispatch. These handlers run after the
// handlers registered for the specific type.
const AllEvents = "*"

// Handler is called on the session event loop for every matching dispatch.
type Handler func(event *Event)

type handlerEntry struct {
	fn Handler
}

// handlerRegistry maps event types to their ordered handlers.
// Subscribe may be called from any goroutine; dispatch always iterates a copy.
type handlerRegistry struct {
	mu sync.RWMutex

	handlers      map[string][]*handlerEntry
	readyHandlers []func()
	errorHandlers []func(error)
}

func newHandlerRegistry() *handlerRegistry {
	return &handlerRegistry{
		handlers: make(map[string][]*handlerEntry),
	}
}

func (r *handlerRegistry) subscribe(eventType string, handler Handler) func() {
	entry := &handlerEntry{fn: handler}

	r.mu.Lock()
	r.handlers[eventType] = append(r.handlers[eventType], entry)
	r.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()

			entries := r.handlers[eventType]
			for i, e := range entries {
				if e == entry {
					r.handlers[eventType] = append(entries[:i:i], entries[i+1:]...)

					break
				}
			}

			if len(r.handlers[eventType]) == 0 {
				delete(r.handlers, eventType)
			}
		})
	}
}

func (r *handlerRegistry) get(eventType string) []*handlerEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.handlers[eventType]
	if len(entries) == 0 {
		return nil
	}

	handlers := make([]*handlerEntry, len(entries))
	copy(handlers, entries)

	return handlers
}

func (r *handlerRegistry) onReady(fn func()) {
	r.mu.Lock()
	r.readyHandlers = append(r.readyHandlers, fn)
	r.mu.Unlock()
}

func (r *handlerRegistry) onError(fn func(error)) {
	r.mu.Lock()
	r.errorHandlers = append(r.errorHandlers, fn)
	r.mu.Unlock()
}

func (r *handlerRegistry) getReady() []func() {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]func(){}, r.readyHandlers...)
}

func (r *handlerRegistry) getError() []func(error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]func(error){}, r.errorHandlers...)
}

// Subscribe registers handler for dispatches of eventType, such as "MESSAGE_CREATE".
// Handlers of the same type run in registration order. The returned function
// removes the handler and is safe to call from within a handler.
func (s *Session) Subscribe(eventType string, handler Handler) (unsubscribe func()) {
	return s.handlers.subscribe(eventType, handler)
}

// OnReady registers a function that is called once, when the session receives READY.
func (s *Session) OnReady(fn func()) {
	s.handlers.onReady(fn)
}

// OnError registers a function that receives gateway errors. Errors are never
// returned from the event loop any other way.
func (s *Session) OnError(fn func(error)) {
	s.handlers.onError(fn)
}

func (s *Session) fireHandlers(event *Event) {
	for _, entry := range s.handlers.get(event.Type) {
		s.safeCall(event.Type, func() { entry.fn(event) })
	}

	for _, entry := range s.handlers.get(AllEvents) {
		s.safeCall(event.Type, func() { entry.fn(event) })
	}
}

func (s *Session) fireReady() {
	for _, fn := range s.handlers.getReady() {
		s.safeCall(discord.EventReady, fn)
	}
}

func (s *Session) reportError(err error) {
	handlers := s.handlers.getError()

	if len(handlers) == 0 {
		s.Logger.Error().Err(err).Msg("Gateway error with no error handlers registered")

		return
	}

	for _, fn := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					s.Logger.Warn().Interface("recovered", r).Msg("Recovered panic in error handler")
				}
			}()

			fn(err)
		}()
	}
}

// safeCall keeps a panicking handler from taking down the event loop.
func (s *Session) safeCall(eventType string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.Logger.Warn().Str("type", eventType).Interface("recovered", r).Msg("Recovered panic in handler")
			s.reportError(fmt.Errorf("handler for %s panicked: %v", eventType, r))
		}
	}()

	fn()
}
