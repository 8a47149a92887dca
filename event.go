package irc

// CloseReason explains why a Closed event terminated the event stream.
type CloseReason int

const (
	// ManuallyClosed means a caller invoked the Writer's close method.
	ManuallyClosed CloseReason = iota
	// DoNotReconnect means the reader loop dropped its socket while
	// ReconnectionSettings forbade reconnecting.
	DoNotReconnect
	// MaxAttemptsReached means the reconnect sub-loop ran out of
	// attempts per ReconnectionSettings.MaxAttempts.
	MaxAttemptsReached
)

// String implements fmt.Stringer.
func (r CloseReason) String() string {
	switch r {
	case ManuallyClosed:
		return "manually_closed"
	case DoNotReconnect:
		return "do_not_reconnect"
	case MaxAttemptsReached:
		return "max_attempts_reached"
	default:
		return "unknown"
	}
}

// EventKind discriminates the Event union below.
type EventKind int

const (
	EventMessage EventKind = iota
	EventParseError
	EventDisconnected
	EventReconnecting
	EventReconnected
	EventReconnectionError
	EventClosed
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	switch k {
	case EventMessage:
		return "Message"
	case EventParseError:
		return "ParseError"
	case EventDisconnected:
		return "Disconnected"
	case EventReconnecting:
		return "Reconnecting"
	case EventReconnected:
		return "Reconnected"
	case EventReconnectionError:
		return "ReconnectionError"
	case EventClosed:
		return "Closed"
	default:
		return "unknown"
	}
}

// Event is the single discriminated union delivered to consumers of a
// connection's event stream (§3). Kind selects which of Message,
// ParseErr, Err, and Reason are meaningful:
//
//	EventMessage           Message
//	EventParseError        ParseErr
//	EventDisconnected      (none)
//	EventReconnecting      (none)
//	EventReconnected       (none)
//	EventReconnectionError Err
//	EventClosed            Reason, Err (Err set only for MaxAttemptsReached,
//	                       the aggregated history of every failed dial)
type Event struct {
	Kind     EventKind
	Message  *Message
	ParseErr *ParseError
	Err      error
	Reason   CloseReason
}

func messageEvent(m *Message) Event {
	return Event{Kind: EventMessage, Message: m}
}

func parseErrorEvent(e *ParseError) Event {
	return Event{Kind: EventParseError, ParseErr: e}
}

func disconnectedEvent() Event {
	return Event{Kind: EventDisconnected}
}

func reconnectingEvent() Event {
	return Event{Kind: EventReconnecting}
}

func reconnectedEvent() Event {
	return Event{Kind: EventReconnected}
}

func reconnectionErrorEvent(err error) Event {
	return Event{Kind: EventReconnectionError, Err: err}
}

func closedEvent(reason CloseReason) Event {
	return Event{Kind: EventClosed, Reason: reason}
}

func closedEventWithErr(reason CloseReason, err error) Event {
	return Event{Kind: EventClosed, Reason: reason, Err: err}
}

// EventReader is a blocking receive of Event values, terminating (the
// channel closes) when the reader task exits — per §6.2.
type EventReader <-chan Event
