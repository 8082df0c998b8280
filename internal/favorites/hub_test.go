package favorites

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_OneSetPerClient(t *testing.T) {
	h := NewHub()
	h.Add("alice", "p1")
	h.Add("bob", "p2")

	assert.Equal(t, []string{"p1"}, h.IDs("alice"))
	assert.Equal(t, []string{"p2"}, h.IDs("bob"))
	assert.True(t, h.Contains("alice", "p1"))
	assert.False(t, h.Contains("bob", "p1"))
	assert.Equal(t, 2, h.Clients())
}

func TestHub_ReadsDoNotRetainClients(t *testing.T) {
	h := NewHub()
	for i := 0; i < 1000; i++ {
		client := fmt.Sprintf("client-%d", i)
		assert.Empty(t, h.IDs(client))
		assert.False(t, h.Contains(client, "p1"))
		assert.Empty(t, h.Remove(client, "p1"))
	}
	assert.Zero(t, h.Clients())
}

func TestHub_DropsEmptiedSets(t *testing.T) {
	h := NewHub()

	assert.Equal(t, []string{"p1"}, h.Add("alice", "p1"))
	assert.Equal(t, 1, h.Clients())

	assert.Empty(t, h.Remove("alice", "p1"))
	assert.Zero(t, h.Clients())

	favorite, ids := h.Toggle("bob", "p2")
	assert.True(t, favorite)
	assert.Equal(t, []string{"p2"}, ids)
	favorite, ids = h.Toggle("bob", "p2")
	assert.False(t, favorite)
	assert.Empty(t, ids)
	assert.Zero(t, h.Clients())
}

func TestHub_SubscriberKeepsSetUntilCancel(t *testing.T) {
	h := NewHub()

	current, updates, cancel := h.Subscribe("alice", 1)
	assert.Empty(t, current)
	assert.Equal(t, 1, h.Clients())

	h.Add("alice", "p1")
	assert.Equal(t, []string{"p1"}, <-updates)

	h.Remove("alice", "p1")
	assert.Empty(t, <-updates)
	assert.Equal(t, 1, h.Clients(), "a listening client keeps its empty set")

	cancel()
	cancel()
	_, open := <-updates
	assert.False(t, open)
	assert.Zero(t, h.Clients())
}

func TestHub_CancelKeepsNonEmptySet(t *testing.T) {
	h := NewHub()
	_, _, cancel := h.Subscribe("alice", 1)
	h.Add("alice", "p1")

	cancel()
	require.Equal(t, 1, h.Clients())
	assert.Equal(t, []string{"p1"}, h.IDs("alice"))
}
