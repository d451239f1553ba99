// internal/realtime/hub_test.go
package realtime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	messages []Message
	fail     bool
}

func (f *fakeConn) WriteJSON(v interface{}) error {
	if f.fail {
		return errors.New("write: broken pipe")
	}
	f.messages = append(f.messages, v.(Message))
	return nil
}

func TestHub_PublishReachesAllSubscribers(t *testing.T) {
	hub := NewHub()
	a := &fakeConn{}
	b := &fakeConn{}
	hub.Register(a)
	hub.Register(b)

	hub.Publish(ProductAdded, map[string]int{"id": 4})

	require.Len(t, a.messages, 1)
	require.Len(t, b.messages, 1)
	assert.Equal(t, ProductAdded, a.messages[0].Event)
	assert.Equal(t, map[string]int{"id": 4}, a.messages[0].Data)
}

func TestHub_PublishWithNoSubscribers(t *testing.T) {
	hub := NewHub()

	// Must not panic or block.
	hub.Publish(CategoryDeleted, map[string]int{"id": 1})
	assert.Zero(t, hub.SubscriberCount())
}

func TestHub_FailedWriterIsDropped(t *testing.T) {
	hub := NewHub()
	healthy := &fakeConn{}
	broken := &fakeConn{fail: true}
	hub.Register(healthy)
	hub.Register(broken)

	hub.Publish(ProductUpdated, nil)

	assert.Equal(t, 1, hub.SubscriberCount())
	require.Len(t, healthy.messages, 1)

	// The dropped subscriber stays gone on the next publish.
	hub.Publish(ProductDeleted, nil)
	assert.Len(t, healthy.messages, 2)
}

func TestHub_Unregister(t *testing.T) {
	hub := NewHub()
	c := &fakeConn{}
	hub.Register(c)
	hub.Unregister(c)

	hub.Publish(CategoryAdded, nil)
	assert.Empty(t, c.messages)

	// Unregistering an unknown connection is a no-op.
	hub.Unregister(&fakeConn{})
}
