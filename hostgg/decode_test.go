package hostgg

import (
	"image/color"
	"testing"

	"github.com/gogpu/rive/host"
	"github.com/gogpu/rive/hosttest"
)

func TestDecodeCacheSharesPixels(t *testing.T) {
	h := New()
	fd := h.FactoryDelegates()
	f := h.NewFactory()
	data := hosttest.PNG(3, 2, color.White)

	a := fd.DecodeImage(f, data)
	b := fd.DecodeImage(f, data)
	if a == host.Null || b == host.Null || a == b {
		t.Fatalf("handles = %v, %v; want two distinct live handles", a, b)
	}
	pa, _ := h.images.Get(a)
	pb, _ := h.images.Get(b)
	if pa != pb {
		t.Error("identical bytes decoded twice")
	}
	if s := h.decoded.Stats(); s.Hits != 1 || s.Len != 1 {
		t.Errorf("cache stats = %+v", s)
	}

	// Releasing one handle leaves the other usable.
	h.ImageDelegates().Release(a)
	if w := h.ImageDelegates().Width(b); w != 3 {
		t.Errorf("Width after sibling release = %d, want 3", w)
	}
}

func TestDecodeCacheDisabled(t *testing.T) {
	h := New(WithDecodeCache(0))
	fd := h.FactoryDelegates()
	f := h.NewFactory()
	data := hosttest.PNG(1, 1, color.Black)

	pa, _ := h.images.Get(fd.DecodeImage(f, data))
	pb, _ := h.images.Get(fd.DecodeImage(f, data))
	if pa == nil || pa == pb {
		t.Error("pixels shared with the cache disabled")
	}
}

func TestDecodeFailureNotCached(t *testing.T) {
	h := New()
	f := h.NewFactory()
	if got := h.FactoryDelegates().DecodeImage(f, []byte{0x89, 'P', 'N', 'G'}); got != host.Null {
		t.Errorf("truncated PNG decoded to %v", got)
	}
	if h.decoded.Len() != 0 {
		t.Error("failed decode was cached")
	}
}

func TestNewPathDropsTruncatedVerbs(t *testing.T) {
	// The cubic needs three points but only one follows the move.
	p := newPath([]float32{0, 0, 1, 1}, []uint8{0, 4}, 1)
	if len(p.verbs) != 1 || len(p.points) != 1 {
		t.Errorf("verbs %v points %v, want the move only", p.verbs, p.points)
	}

	// Unknown verbs stop decoding.
	p = newPath([]float32{0, 0, 1, 1}, []uint8{0, 9, 1}, 0)
	if len(p.verbs) != 1 {
		t.Errorf("verbs %v, want the move only", p.verbs)
	}
}
