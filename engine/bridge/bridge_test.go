package bridge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	kind string
}

type testRenderData struct {
	frame int
}

func TestBridgeRenderExchange(t *testing.T) {
	b := New[testEvent, testRenderData](nil)
	assert.Equal(t, StateIdle, b.State())

	go func() {
		for {
			ev, ok := b.Receive()
			if !ok {
				return
			}
			if ev.kind == "render" {
				b.SubmitRenderData(testRenderData{frame: 7})
			}
		}
	}()

	data, err := b.RequestRenderData(testEvent{kind: "render"})
	require.NoError(t, err)
	assert.Equal(t, 7, data.frame)
	assert.Equal(t, StateIdle, b.State())
}

func TestBridgeForwardDeliversInOrder(t *testing.T) {
	b := New[testEvent, testRenderData](nil)

	b.Forward(testEvent{kind: "resize"})
	b.Forward(testEvent{kind: "key"})
	b.CloseToUser()

	var kinds []string
	for {
		ev, ok := b.Receive()
		if !ok {
			break
		}
		kinds = append(kinds, ev.kind)
	}
	assert.Equal(t, []string{"resize", "key"}, kinds)
}

func TestBridgeRejectsNestedExchange(t *testing.T) {
	b := New[testEvent, testRenderData](nil)
	b.state = StateRenderPending

	_, err := b.RequestRenderData(testEvent{kind: "render"})
	assert.ErrorIs(t, err, ErrBusy)

	err = b.NotifyClose(testEvent{kind: "close"})
	assert.ErrorIs(t, err, ErrBusy)
}

func TestBridgeRenderExchangeDiscardsStrayCloseAck(t *testing.T) {
	b := New[testEvent, testRenderData](nil)

	go func() {
		ev, ok := b.Receive()
		require.True(t, ok)
		require.Equal(t, "render", ev.kind)
		// A protocol violation: the ack arrives before the render data. The
		// exchange must skip it and still complete.
		b.AckClose()
		b.SubmitRenderData(testRenderData{frame: 3})
	}()

	data, err := b.RequestRenderData(testEvent{kind: "render"})
	require.NoError(t, err)
	assert.Equal(t, 3, data.frame)
}

func TestBridgeRenderExchangeFailsOnDisconnect(t *testing.T) {
	b := New[testEvent, testRenderData](nil)

	go func() {
		_, ok := b.Receive()
		require.True(t, ok)
		b.CloseUserSide()
	}()

	_, err := b.RequestRenderData(testEvent{kind: "render"})
	assert.ErrorIs(t, err, ErrBridgeClosed)
}

func TestBridgeCloseExchange(t *testing.T) {
	b := New[testEvent, testRenderData](nil)

	userDone := make(chan struct{})
	go func() {
		defer close(userDone)
		defer b.CloseUserSide()
		for {
			ev, ok := b.Receive()
			if !ok {
				return
			}
			if ev.kind == "close" {
				// Stale render data queued before the ack must be skipped by
				// the waiting side.
				b.SubmitRenderData(testRenderData{frame: 9})
				b.AckClose()
			}
		}
	}()

	require.NoError(t, b.NotifyClose(testEvent{kind: "close"}))
	b.CloseToUser()

	select {
	case <-userDone:
	case <-time.After(time.Second):
		t.Fatal("user loop never exited after CloseToUser")
	}
}

func TestBridgeCloseExchangeToleratesDisconnect(t *testing.T) {
	b := New[testEvent, testRenderData](nil)

	go func() {
		_, ok := b.Receive()
		require.True(t, ok)
		b.CloseUserSide()
	}()

	err := b.NotifyClose(testEvent{kind: "close"})
	assert.ErrorIs(t, err, ErrBridgeClosed)
}

func TestBridgeForwardAfterDisconnectIsDropped(t *testing.T) {
	b := New[testEvent, testRenderData](nil)
	b.CloseToUser()

	// Must not panic or block.
	b.Forward(testEvent{kind: "late"})

	_, ok := b.Receive()
	assert.False(t, ok)
}
