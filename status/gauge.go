package status

import (
	"math"
	"sync/atomic"
)

// Gauge is a last-value float64 metric
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(v float64) { g.bits.Store(math.Float64bits(v)) }

func (g *Gauge) Get() float64 { return math.Float64frombits(g.bits.Load()) }
