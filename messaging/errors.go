package messaging

import "errors"

var (
	ErrUnknownMQClient = errors.New("unknown mq client")
	ErrClientClosed    = errors.New("mq client is not connected")
	ErrForwarderQueue  = errors.New("forwarder queue is full")
)
