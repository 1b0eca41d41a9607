package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesCollectionSubscribers(t *testing.T) {
	h := NewHub()

	orders, err := h.Subscribe(CollectionOrders)
	require.NoError(t, err)
	defer orders.Close()

	projects, err := h.Subscribe(CollectionProjects)
	require.NoError(t, err)
	defer projects.Close()

	h.Publish(Event{Collection: CollectionOrders, Action: ActionUpdate, ID: 5})

	select {
	case ev := <-orders.C:
		assert.Equal(t, ActionUpdate, ev.Action)
		assert.Equal(t, uint(5), ev.ID)
	case <-time.After(time.Second):
		t.Fatal("orders subscriber did not receive the event")
	}

	select {
	case ev := <-projects.C:
		t.Fatalf("projects subscriber received foreign event: %+v", ev)
	default:
	}
}

func TestSubscribeRejectsUnknownCollection(t *testing.T) {
	h := NewHub()
	_, err := h.Subscribe("invoices")
	assert.Error(t, err)
}

func TestCloseUnsubscribes(t *testing.T) {
	h := NewHub()

	sub, err := h.Subscribe(CollectionEmployees)
	require.NoError(t, err)
	assert.Equal(t, 1, h.SubscriberCount(CollectionEmployees))

	sub.Close()
	sub.Close() // double close is safe
	assert.Equal(t, 0, h.SubscriberCount(CollectionEmployees))

	// Publishing after close must not panic.
	h.Publish(Event{Collection: CollectionEmployees, Action: ActionDelete, ID: 1})
}

func TestSlowSubscriberDoesNotBlockPublish(t *testing.T) {
	h := NewHub()

	sub, err := h.Subscribe(CollectionOrders)
	require.NoError(t, err)
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		// Well past the subscriber buffer; must return without a reader.
		for i := 0; i < subscriberBuffer*4; i++ {
			h.Publish(Event{Collection: CollectionOrders, Action: ActionCreate, ID: uint(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}
