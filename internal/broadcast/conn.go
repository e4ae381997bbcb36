package broadcast

import (
	"encoding/json"
	"io"
	"sync"
)

// Conn is one subscriber connection. Writes are serialized with a mutex so
// concurrent publishes never interleave frames on the wire.
type Conn struct {
	mu      sync.Mutex
	encoder *json.Encoder
}

// NewConn wraps a transport writer, typically a *websocket.Conn.
func NewConn(w io.Writer) *Conn {
	return &Conn{encoder: json.NewEncoder(w)}
}

// Send encodes one event frame onto the transport.
func (c *Conn) Send(event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.encoder.Encode(event)
}
