package gateway

// SessionStatus is the lifecycle state of a Session.
type SessionStatus uint8

const (
	StatusDisconnected SessionStatus = iota
	StatusConnecting
	// Set once the identify payload has been written to the socket.
	StatusIdentified
	// Set when the first READY dispatch has been handled.
	StatusReady
	// Terminal. A closed Session cannot be connected again.
	StatusClosed
)

func (s SessionStatus) String() string {
	switch s {
	case StatusDisconnected:
		return "DISCONNECTED"
	case StatusConnecting:
		return "CONNECTING"
	case StatusIdentified:
		return "IDENTIFIED"
	case StatusReady:
		return "READY"
	case StatusClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}
