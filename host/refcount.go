package host

import (
	"sync/atomic"

	"github.com/gogpu/rive"
)

// refCount tracks the references of one handle. The creator holds the
// first reference.
type refCount struct {
	n atomic.Int32
}

func (r *refCount) init() { r.n.Store(1) }

func (r *refCount) ref() { r.n.Add(1) }

// release drops a reference and reports whether it was the last one.
// Releasing past zero is logged and otherwise ignored.
func (r *refCount) release(c Capability, h Handle) bool {
	n := r.n.Add(-1)
	if n < 0 {
		r.n.Store(0)
		rive.Logger().Warn("host: reference count underflow",
			"capability", c.String(), "handle", uint64(h))
		return false
	}
	return n == 0
}

func (r *refCount) count() int32 { return r.n.Load() }
