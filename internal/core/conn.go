package core

// Frame is one marshaled event ready for the wire.
type Frame []byte

// ConnectionID identifies a single live connection. Assigned by the
// transport at connect time, stable until disconnect, and used as the
// participant primary key.
type ConnectionID string

// SignalConnection abstracts a system messaging transport.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}

// PublishResult reports delivery stats/backpressure after a room broadcast.
type PublishResult struct {
	SentTo  int
	Dropped []ConnectionID
}
