package sync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoffDelay_Schedule(t *testing.T) {
	want := []time.Duration{
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		10 * time.Second,
		10 * time.Second,
	}

	for failures, expected := range want {
		assert.Equal(t, expected, backoffDelay(failures+1), "after %d failures", failures+1)
	}
}

func TestSocket_SendWhileDisconnected(t *testing.T) {
	s := NewSocket("ws://127.0.0.1:0/ws", nil)

	assert.ErrorIs(t, s.Send([]byte("payload")), ErrSocketClosed)
	assert.False(t, s.Connected())
	assert.False(t, s.Abandoned())
}
