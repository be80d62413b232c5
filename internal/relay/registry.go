// Package relay implements the cross-device sync fan-out: every message
// received on one connection is forwarded unmodified to every other open
// connection. The relay keeps no history, so there is no replay for late
// joiners, and it never inspects payloads.
package relay

import (
	"sync"

	"go.uber.org/zap"
)

// Registry owns the set of open relay connections. It is passed by
// reference into the connection handler; there is no package-level state.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]*Conn
}

func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[string]*Conn),
	}
}

func (r *Registry) add(c *Conn) {
	r.mu.Lock()
	r.conns[c.id] = c
	r.mu.Unlock()

	zap.L().Info("relay client connected", zap.String("conn_id", c.id))
}

func (r *Registry) remove(id string) {
	r.mu.Lock()
	c, ok := r.conns[id]
	if ok {
		delete(r.conns, id)
		close(c.send)
	}
	r.mu.Unlock()

	if ok {
		zap.L().Info("relay client disconnected", zap.String("conn_id", id))
	}
}

// Broadcast forwards payload to every connection except the sender.
// A peer whose send buffer is full is dropped rather than blocking the
// rest of the fan-out. If no other connections exist, the message is
// discarded.
func (r *Registry) Broadcast(senderID string, payload []byte) {
	r.mu.RLock()
	var stale []string
	for id, c := range r.conns {
		if id == senderID {
			continue
		}
		select {
		case c.send <- payload:
		default:
			stale = append(stale, id)
		}
	}
	r.mu.RUnlock()

	for _, id := range stale {
		r.remove(id)
	}
}

// Count reports the number of open connections.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.conns)
}
