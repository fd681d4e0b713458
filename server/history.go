package server

import (
	"sync"
)

// History keeps every level generated by this process, newest first.
type History struct {
	mu     sync.RWMutex
	levels []*Level
	byID   map[string]*Level
}

func NewHistory() *History {
	return &History{byID: make(map[string]*Level)}
}

func (h *History) Add(level Level) {
	h.mu.Lock()
	defer h.mu.Unlock()

	l := level
	l.Grid = level.Grid.Clone()
	h.levels = append([]*Level{&l}, h.levels...)
	h.byID[l.ID] = &l
}

// Get returns a copy whose grid may be modified freely.
func (h *History) Get(id string) (Level, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	l, ok := h.byID[id]
	if !ok {
		return Level{}, ErrLevelNotFound
	}
	out := *l
	out.Grid = l.Grid.Clone()
	return out, nil
}

func (h *History) List() []Level {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Level, 0, len(h.levels))
	for _, l := range h.levels {
		c := *l
		c.Grid = l.Grid.Clone()
		out = append(out, c)
	}
	return out
}

// RecordScore keeps the higher of final and the stored best.
func (h *History) RecordScore(id string, final int) (best int, improved bool, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	l, ok := h.byID[id]
	if !ok {
		return 0, false, ErrLevelNotFound
	}
	if !l.HasBest || final > l.BestScore {
		l.BestScore = final
		l.HasBest = true
		improved = true
	}
	return l.BestScore, improved, nil
}
