package favorites

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_AddRemoveToggle(t *testing.T) {
	s := NewSet()

	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("a"))
	assert.True(t, s.Add("b"))
	assert.True(t, s.Add("c"))
	assert.Equal(t, []string{"a", "b", "c"}, s.IDs())

	assert.True(t, s.Remove("b"))
	assert.False(t, s.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, s.IDs())
	assert.True(t, s.Contains("c"))

	assert.False(t, s.Toggle("a"))
	assert.True(t, s.Toggle("d"))
	assert.Equal(t, []string{"c", "d"}, s.IDs())
	assert.Equal(t, 2, s.Len())

	// index stays consistent after removals from the middle
	assert.True(t, s.Remove("c"))
	assert.True(t, s.Remove("d"))
	assert.Empty(t, s.IDs())
}

func TestSet_IDsIsACopy(t *testing.T) {
	s := NewSet()
	s.Add("a")
	ids := s.IDs()
	ids[0] = "changed"
	assert.Equal(t, []string{"a"}, s.IDs())
}

func TestSet_SubscribeReceivesSnapshots(t *testing.T) {
	s := NewSet()
	ch, cancel := s.Subscribe(4)
	defer cancel()

	s.Add("a")
	s.Add("a") // no change, no event
	s.Toggle("b")
	s.Remove("a")

	assert.Equal(t, []string{"a"}, <-ch)
	assert.Equal(t, []string{"a", "b"}, <-ch)
	assert.Equal(t, []string{"b"}, <-ch)
	assert.Empty(t, ch)
}

func TestSet_SlowSubscriberKeepsNewest(t *testing.T) {
	s := NewSet()
	ch, cancel := s.Subscribe(1)
	defer cancel()

	for _, id := range []string{"a", "b", "c"} {
		s.Add(id)
	}

	require.Len(t, ch, 1)
	assert.Equal(t, []string{"a", "b", "c"}, <-ch)
}

func TestSet_CancelClosesChannel(t *testing.T) {
	s := NewSet()
	ch, cancel := s.Subscribe(1)
	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	s.Add("a") // must not panic on the closed channel
}

func TestSet_ConcurrentWritersAndReaders(t *testing.T) {
	s := NewSet()
	ch, cancel := s.Subscribe(1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range ch {
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.Toggle(string(rune('a' + w)))
			}
		}(w)
	}
	wg.Wait()
	cancel()
	<-done

	// Each id was toggled an even number of times.
	assert.Empty(t, s.IDs())
}
