package status

import (
	"slices"
	"sync"
)

// MetricMap holds metrics of one value type by name.
// Pointers returned by Get stay valid for the life of the map, so callers
// cache them at setup and update the value without touching the map again.
type MetricMap[T any] struct {
	mu    sync.Mutex
	items map[string]*T
	keys  []string // sorted, maintained on insert
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric registered under name, registering a zero value first if needed
func (m *MetricMap[T]) Get(name string) *T {
	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := m.items[name]; ok {
		return v
	}
	v := new(T)
	m.items[name] = v
	i, _ := slices.BinarySearch(m.keys, name)
	m.keys = slices.Insert(m.keys, i, name)
	return v
}

func (m *MetricMap[T]) Has(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[name]
	return ok
}

// Len is the number of registered names
func (m *MetricMap[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.keys)
}

// Range calls fn for each metric in name order.
// fn runs outside the lock and may call Get.
func (m *MetricMap[T]) Range(fn func(name string, v *T)) {
	m.mu.Lock()
	names := slices.Clone(m.keys)
	vals := make([]*T, len(names))
	for i, n := range names {
		vals[i] = m.items[n]
	}
	m.mu.Unlock()

	for i, n := range names {
		fn(n, vals[i])
	}
}
