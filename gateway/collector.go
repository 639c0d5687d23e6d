package gateway

import (
	"context"
	"time"

	"github.com/WelcomerTeam/Swyft/discord"
)

type collectResult struct {
	err    error
	events []*Event
}

type collectRequest struct {
	filter  func(*Event) bool
	result  chan collectResult
	id      uint64
	limit   int
	timeout time.Duration
}

type collectCancel struct {
	err error
	id  uint64
}

type collector struct {
	request *collectRequest
	timer   *time.Timer
	events  []*Event
}

// Collect waits for limit dispatch events accepted by filter and returns them in
// arrival order. It fails with a *CollectTimeoutError if fewer arrived within timeout,
// with ErrSessionClosed if the session closes first and with the context error when
// ctx is cancelled. Only one collection may run per session at a time.
func (s *Session) Collect(ctx context.Context, filter func(*Event) bool, limit int, timeout time.Duration) ([]*Event, error) {
	switch {
	case filter == nil:
		return nil, discord.NewArgumentError("filter", "filter is required")
	case limit < 1:
		return nil, discord.NewArgumentError("limit", "must collect at least one event")
	case timeout <= 0:
		return nil, discord.NewArgumentError("timeout", "timeout must be positive")
	}

	switch s.Status() {
	case StatusClosed:
		return nil, ErrSessionClosed
	case StatusDisconnected:
		return nil, ErrNotConnected
	}

	req := &collectRequest{
		id:      s.collectorID.Inc(),
		filter:  filter,
		limit:   limit,
		timeout: timeout,
		result:  make(chan collectResult, 1),
	}

	select {
	case s.collectRequests <- req:
	case <-s.done:
		return nil, ErrSessionClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case res := <-req.result:
		return res.events, res.err
	case <-ctx.Done():
		select {
		case s.collectCancels <- collectCancel{id: req.id, err: ctx.Err()}:
		case <-s.done:
		case res := <-req.result:
			return res.events, res.err
		}

		res := <-req.result

		return res.events, res.err
	}
}

func (s *Session) startCollector(req *collectRequest) {
	if s.collector != nil {
		req.result <- collectResult{err: ErrCollectorActive}

		return
	}

	s.Logger.Debug().Int("limit", req.limit).Dur("timeout", req.timeout).Msg("Starting collector")

	s.collector = &collector{
		request: req,
		timer:   time.NewTimer(req.timeout),
		events:  make([]*Event, 0, req.limit),
	}
}

func (s *Session) feedCollector(event *Event) {
	c := s.collector
	if c == nil {
		return
	}

	var matched bool

	s.safeCall(event.Type, func() { matched = c.request.filter(event) })

	if !matched {
		return
	}

	c.events = append(c.events, event)

	if len(c.events) >= c.request.limit {
		s.finishCollector(c.events, nil)
	}
}

func (s *Session) timeoutCollector() {
	c := s.collector
	if c == nil {
		return
	}

	s.finishCollector(nil, &CollectTimeoutError{
		Collected: len(c.events),
		Wanted:    c.request.limit,
		Timeout:   c.request.timeout,
	})
}

func (s *Session) cancelCollector(cancel collectCancel) {
	c := s.collector
	if c == nil || c.request.id != cancel.id {
		return
	}

	s.finishCollector(nil, cancel.err)
}

// finishCollector delivers the result and removes the collector in one step, so a
// later event or timer fire finds nothing to act on.
func (s *Session) finishCollector(events []*Event, err error) {
	c := s.collector
	s.collector = nil

	c.timer.Stop()

	c.request.result <- collectResult{events: events, err: err}
}
