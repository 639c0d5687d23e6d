package gateway

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrSessionActive = errors.New("session has already been connected")
	ErrSessionClosed = errors.New("session is closed")
	ErrNotConnected  = errors.New("session is not connected")

	ErrCollectorActive  = errors.New("a collector is already running on this session")
	ErrCollectorTimeout = errors.New("collector timed out")
)

// CollectTimeoutError is returned when a collector did not gather enough events
// before its timeout. Collected is how many had matched by then.
type CollectTimeoutError struct {
	Collected int
	Wanted    int
	Timeout   time.Duration
}

func (e *CollectTimeoutError) Error() string {
	return fmt.Sprintf("collector timed out after %s with %d/%d events", e.Timeout, e.Collected, e.Wanted)
}

func (e *CollectTimeoutError) Unwrap() error {
	return ErrCollectorTimeout
}

var errInvalidHeartbeatInterval = errors.New("hello carried no heartbeat interval")
