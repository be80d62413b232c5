package sync

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	initialBackoff      = time.Second
	maxBackoff          = 10 * time.Second
	maxConnectAttempts  = 5
	socketWriteDeadline = 10 * time.Second
)

// ErrSocketClosed is returned by Send when the relay connection is down,
// either between reconnect attempts or after reconnection was abandoned.
var ErrSocketClosed = errors.New("sync: relay socket is not connected")

// Socket maintains the websocket connection to the relay. Reconnects use
// exponential backoff starting at one second, doubling up to ten seconds,
// and give up after five consecutive failures; resuming after that
// requires a fresh Socket.
type Socket struct {
	url       string
	onMessage func(payload []byte)

	mu        sync.Mutex
	conn      *websocket.Conn
	connected bool
	abandoned bool
}

// NewSocket prepares a relay connection to url (e.g.
// "ws://localhost:8080/ws"). onMessage is invoked for every inbound
// payload; it must not block for long.
func NewSocket(url string, onMessage func(payload []byte)) *Socket {
	return &Socket{
		url:       url,
		onMessage: onMessage,
	}
}

// Run connects and reads until ctx is cancelled or reconnection is
// abandoned. It is meant to be called on its own goroutine.
func (s *Socket) Run(ctx context.Context) {
	attempts := 0
	for {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.url, nil)
		if err != nil {
			attempts++
			if attempts >= maxConnectAttempts {
				s.mu.Lock()
				s.abandoned = true
				s.mu.Unlock()

				zap.L().Warn("relay connection abandoned",
					zap.String("url", s.url),
					zap.Int("attempts", attempts),
					zap.Error(err))

				return
			}

			wait := backoffDelay(attempts)
			zap.L().Info("relay reconnect scheduled",
				zap.Int("attempt", attempts),
				zap.Duration("backoff", wait))

			select {
			case <-time.After(wait):
				continue
			case <-ctx.Done():
				return
			}
		}

		attempts = 0
		s.setConn(conn)
		s.readLoop(ctx, conn)
		s.setConn(nil)

		if ctx.Err() != nil {
			return
		}
	}
}

// Send writes payload to the relay. Payloads sent while disconnected are
// dropped with ErrSocketClosed; sync degrades to same-origin only.
func (s *Socket) Send(payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return ErrSocketClosed
	}

	s.conn.SetWriteDeadline(time.Now().Add(socketWriteDeadline))
	if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return err
	}

	return nil
}

// Connected reports whether the relay link is currently up. The UI shows
// an offline indicator when it is not.
func (s *Socket) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.connected
}

// Abandoned reports whether reconnection has been given up on.
func (s *Socket) Abandoned() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.abandoned
}

func (s *Socket) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}

	return s.conn.Close()
}

func (s *Socket) setConn(conn *websocket.Conn) {
	s.mu.Lock()
	s.conn = conn
	s.connected = conn != nil
	s.mu.Unlock()
}

func (s *Socket) readLoop(ctx context.Context, conn *websocket.Conn) {
	defer conn.Close()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				zap.L().Warn("relay connection lost", zap.Error(err))
			}

			return
		}

		if s.onMessage != nil {
			s.onMessage(payload)
		}
	}
}

// backoffDelay returns the wait before reconnect attempt n+1, where n
// failures have happened so far: 1s, 2s, 4s, 8s, then capped at 10s.
func backoffDelay(failures int) time.Duration {
	delay := initialBackoff
	for i := 1; i < failures; i++ {
		delay *= 2
		if delay >= maxBackoff {
			return maxBackoff
		}
	}

	return delay
}
