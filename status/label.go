package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// MaxLabelLen bounds a Label in bytes
const MaxLabelLen = 32

// Label is a last-value short string metric
type Label struct {
	v atomic.Value // string
}

// Store keeps at most MaxLabelLen bytes, cut on a rune boundary
func (l *Label) Store(s string) {
	if len(s) > MaxLabelLen {
		cut := MaxLabelLen
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	l.v.Store(s)
}

func (l *Label) Load() string {
	s, _ := l.v.Load().(string)
	return s
}
