package host

import "github.com/gogpu/rive/engine"

// Element is the set of element types a Buffer can hold.
type Element interface {
	float32 | uint16 | uint32
}

// Buffer is an engine.RenderBuffer holding a private copy of its data.
type Buffer[T Element] struct {
	data []T
}

var (
	_ engine.RenderBuffer = (*Buffer[float32])(nil)
	_ engine.RenderBuffer = (*Buffer[uint16])(nil)
	_ engine.RenderBuffer = (*Buffer[uint32])(nil)
)

// NewBuffer copies data into a new buffer.
func NewBuffer[T Element](data []T) *Buffer[T] {
	return &Buffer[T]{data: append([]T(nil), data...)}
}

// Count returns the number of elements.
func (b *Buffer[T]) Count() int { return len(b.data) }

// Data returns the buffer contents. The slice must not be modified.
func (b *Buffer[T]) Data() []T { return b.data }

func bufferData[T Element](buf engine.RenderBuffer) []T {
	if buf == nil {
		return nil
	}
	b, ok := buf.(*Buffer[T])
	if !ok {
		panic(ErrForeignObject)
	}
	return b.data
}
