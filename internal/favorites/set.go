package favorites

import (
	"sync"
)

// Set is an ordered set of favorited property ids. Every change is published
// to subscribers as a full snapshot of the ids.
type Set struct {
	mu     sync.Mutex
	ids    []string
	index  map[string]int
	subs   map[int]chan []string
	nextID int
}

func NewSet() *Set {
	return &Set{
		index: make(map[string]int),
		subs:  make(map[int]chan []string),
	}
}

// Add reports whether id was newly added.
func (s *Set) Add(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
	s.publish()
	return true
}

// Remove reports whether id was present.
func (s *Set) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.remove(id) {
		return false
	}
	s.publish()
	return true
}

// Toggle flips membership of id and returns whether it is now a favorite.
func (s *Set) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.remove(id) {
		s.publish()
		return false
	}
	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
	s.publish()
	return true
}

func (s *Set) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.index[id]
	return ok
}

// IDs returns the favorites in the order they were added.
func (s *Set) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// idle reports whether the set holds nothing and nobody listens.
func (s *Set) idle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids) == 0 && len(s.subs) == 0
}

// Subscribe returns a channel of snapshots and a cancel func that closes it.
// A subscriber that falls behind loses older snapshots, never the newest.
func (s *Set) Subscribe(buffer int) (<-chan []string, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan []string, buffer)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (s *Set) remove(id string) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.ids = append(s.ids[:i], s.ids[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.ids); j++ {
		s.index[s.ids[j]] = j
	}
	return true
}

func (s *Set) snapshot() []string {
	return append(make([]string, 0, len(s.ids)), s.ids...)
}

// publish runs under s.mu, so it is the only sender on every channel.
func (s *Set) publish() {
	for _, ch := range s.subs {
		offer(ch, s.snapshot())
	}
}

// offer sends without blocking, evicting the oldest pending snapshot if needed.
func offer(ch chan []string, ids []string) {
	for {
		select {
		case ch <- ids:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
