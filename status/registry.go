// Package status is a small metrics registry for loop counters and timings.
// Metrics are created on first Get and written through cached pointers, so the
// hot path never touches the map.
package status

import (
	"fmt"
	"io"
	"strconv"
	"sync/atomic"
)

// Registry groups metric maps by value type
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[Gauge]
	Strings *MetricMap[Label]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[Gauge](),
		Strings: NewMetricMap[Label](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Len() + r.Floats.Len() + r.Strings.Len()
}

// Dump writes every metric as "key=value", one per line, ints then floats then strings
func (r *Registry) Dump(w io.Writer) error {
	var err error
	write := func(key, val string) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%s=%s\n", key, val)
	}

	r.Ints.Range(func(key string, v *atomic.Int64) {
		write(key, strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(key string, v *Gauge) {
		write(key, strconv.FormatFloat(v.Get(), 'f', 3, 64))
	})
	r.Strings.Range(func(key string, v *Label) {
		write(key, strconv.Quote(v.Load()))
	})
	return err
}
