package engine

import (
	"sync/atomic"

	"github.com/vovakirdan/ghostmaze/internal/core"
)

// Intent buffers the latest direction request between ticks. Any goroutine
// may Set; the tick loop Takes. The last write before a Take wins.
type Intent struct {
	v atomic.Uint32
}

// Set records a request, replacing any pending one.
func (i *Intent) Set(d core.Direction) {
	i.v.Store(uint32(d))
}

// Take returns the pending request and clears it. It returns DirNone when
// nothing was requested since the last Take.
func (i *Intent) Take() core.Direction {
	return core.Direction(i.v.Swap(uint32(core.DirNone)))
}

// Peek returns the pending request without clearing it.
func (i *Intent) Peek() core.Direction {
	return core.Direction(i.v.Load())
}
