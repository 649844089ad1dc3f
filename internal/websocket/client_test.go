package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientQueueDeliversToSendChannel(t *testing.T) {
	c := NewClient(1, "chef", nil, NewHub())

	assert.True(t, c.queue([]byte(`{"type":"pong"}`)))
	assert.Equal(t, []byte(`{"type":"pong"}`), <-c.send)
}

func TestClientQueueDropsWhenBufferFull(t *testing.T) {
	c := &Client{send: make(chan []byte)} // unbuffered, no reader

	assert.False(t, c.queue([]byte("x")))
}

func TestClientQueueSurvivesClosedChannel(t *testing.T) {
	// The hub closes send when it disconnects a slow client; a pong
	// queued from the read pump at that moment must not panic.
	c := NewClient(1, "chef", nil, NewHub())
	close(c.send)

	assert.NotPanics(t, func() {
		assert.False(t, c.queue([]byte("x")))
	})
}
