package sync

import "sync"

const channelBufferSize = 64

// Hub connects same-process sync clients by name, mirroring the
// same-origin broadcast channel browsers provide. A hub has no
// connect/disconnect lifecycle: publishing on a channel with no other
// subscribers simply discards the message.
type Hub struct {
	mu       sync.RWMutex
	channels map[string]map[*Channel]struct{}
}

func NewHub() *Hub {
	return &Hub{
		channels: make(map[string]map[*Channel]struct{}),
	}
}

// Open subscribes a new channel under name. Messages published on the
// returned channel are delivered to every other channel with the same
// name, never back to the publisher.
func (h *Hub) Open(name string) *Channel {
	c := &Channel{
		name:     name,
		hub:      h,
		messages: make(chan []byte, channelBufferSize),
	}

	h.mu.Lock()
	if h.channels[name] == nil {
		h.channels[name] = make(map[*Channel]struct{})
	}
	h.channels[name][c] = struct{}{}
	h.mu.Unlock()

	return c
}

func (h *Hub) publish(sender *Channel, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.channels[sender.name] {
		if c == sender {
			continue
		}
		select {
		case c.messages <- payload:
		default:
			// Subscriber is not draining; drop rather than block.
		}
	}
}

func (h *Hub) remove(c *Channel) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs := h.channels[c.name]
	if _, ok := subs[c]; !ok {
		return
	}
	delete(subs, c)
	if len(subs) == 0 {
		delete(h.channels, c.name)
	}
	close(c.messages)
}

// Channel is one subscription on a Hub.
type Channel struct {
	name     string
	hub      *Hub
	messages chan []byte
}

// Send publishes payload to every sibling channel. It never fails:
// with no subscribers the payload is simply discarded.
func (c *Channel) Send(payload []byte) error {
	c.hub.publish(c, payload)

	return nil
}

// Messages yields payloads published by sibling channels. The channel is
// closed by Close.
func (c *Channel) Messages() <-chan []byte {
	return c.messages
}

func (c *Channel) Close() {
	c.hub.remove(c)
}
