package favorites

import "sync"

// Hub keeps one favorites Set per client id. Sets are created by the first
// write or subscription and dropped again once they are empty with no
// subscribers, so reads for unknown clients never allocate.
type Hub struct {
	mu   sync.Mutex
	sets map[string]*Set
}

func NewHub() *Hub {
	return &Hub{sets: make(map[string]*Set)}
}

// IDs returns the favorites of clientID; an unknown client has none.
func (h *Hub) IDs(clientID string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if s, ok := h.sets[clientID]; ok {
		return s.IDs()
	}
	return []string{}
}

func (h *Hub) Contains(clientID, id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.sets[clientID]
	return ok && s.Contains(id)
}

// Add marks id as a favorite of clientID and returns the resulting ids.
func (h *Hub) Add(clientID, id string) []string {
	var ids []string
	h.update(clientID, func(s *Set) {
		s.Add(id)
		ids = s.IDs()
	})
	return ids
}

// Remove unmarks id. An unknown client is left untouched.
func (h *Hub) Remove(clientID, id string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.sets[clientID]
	if !ok {
		return []string{}
	}
	s.Remove(id)
	ids := s.IDs()
	h.release(clientID, s)
	return ids
}

// Toggle flips id and reports whether it is now a favorite, with the resulting ids.
func (h *Hub) Toggle(clientID, id string) (bool, []string) {
	var (
		favorite bool
		ids      []string
	)
	h.update(clientID, func(s *Set) {
		favorite = s.Toggle(id)
		ids = s.IDs()
	})
	return favorite, ids
}

// Subscribe returns the current ids of clientID and a channel of every later
// change. cancel closes the channel and may drop the set.
func (h *Hub) Subscribe(clientID string, buffer int) ([]string, <-chan []string, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s := h.get(clientID)
	updates, unsubscribe := s.Subscribe(buffer)
	current := s.IDs()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			unsubscribe()
			h.mu.Lock()
			h.release(clientID, s)
			h.mu.Unlock()
		})
	}
	return current, updates, cancel
}

// Clients returns how many clients currently hold a set.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sets)
}

func (h *Hub) update(clientID string, fn func(s *Set)) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s := h.get(clientID)
	fn(s)
	h.release(clientID, s)
}

// get and release run under h.mu.
func (h *Hub) get(clientID string) *Set {
	s, ok := h.sets[clientID]
	if !ok {
		s = NewSet()
		h.sets[clientID] = s
	}
	return s
}

func (h *Hub) release(clientID string, s *Set) {
	if h.sets[clientID] == s && s.idle() {
		delete(h.sets, clientID)
	}
}
