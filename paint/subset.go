package paint

import (
	"fmt"
	"iter"

	"github.com/gogpu/selbounds"
)

// ChunkSubset is the immutable list of chunks produced by one paint pass,
// in paint order.
type ChunkSubset struct {
	chunks     []*Chunk
	generation uint64
	// latest points at the controller's pass counter.
	latest *uint64
}

// Len returns the number of chunks.
func (s *ChunkSubset) Len() int { return len(s.chunks) }

// At returns the i-th chunk in paint order.
func (s *ChunkSubset) At(i int) *Chunk { return s.chunks[i] }

// Generation returns the number of the pass that produced the subset.
func (s *ChunkSubset) Generation() uint64 { return s.generation }

// IsCurrent reports whether no later pass has completed since s was
// produced.
func (s *ChunkSubset) IsCurrent() bool {
	return s.latest == nil || *s.latest == s.generation
}

// All returns the chunks with their paint-order index.
func (s *ChunkSubset) All() iter.Seq2[int, *Chunk] {
	return func(yield func(int, *Chunk) bool) {
		for i, c := range s.chunks {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Find returns the chunk with the given id.
func (s *ChunkSubset) Find(id ChunkID) (*Chunk, bool) {
	for _, c := range s.chunks {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// ChunkAt returns the topmost chunk whose global bounds contain p.
func (s *ChunkSubset) ChunkAt(p selbounds.Point) (*Chunk, bool) {
	for i := len(s.chunks) - 1; i >= 0; i-- {
		c := s.chunks[i]
		if !c.Bounds.IsEmpty() && c.GlobalBounds().ContainsEdge(p) {
			return c, true
		}
	}
	return nil, false
}

// Iter returns a read-only iterator positioned before the first chunk.
func (s *ChunkSubset) Iter() *Iterator {
	return &Iterator{subset: s, index: -1}
}

// Iterator walks a ChunkSubset in paint order. It is only valid until the
// controller completes another pass; using it afterwards panics.
//
//	for it := subset.Iter(); it.Next(); {
//	    use(it.Chunk())
//	}
type Iterator struct {
	subset *ChunkSubset
	index  int
}

func (it *Iterator) check() {
	if !it.subset.IsCurrent() {
		panic(fmt.Sprintf("paint: chunk iterator from pass %d used after pass %d",
			it.subset.generation, *it.subset.latest))
	}
}

// Next advances to the next chunk and reports whether there is one.
func (it *Iterator) Next() bool {
	it.check()
	if it.index < len(it.subset.chunks) {
		it.index++
	}
	return it.index < len(it.subset.chunks)
}

// Chunk returns the current chunk.
func (it *Iterator) Chunk() *Chunk {
	it.check()
	if it.index < 0 || it.index >= len(it.subset.chunks) {
		return nil
	}
	return it.subset.chunks[it.index]
}

// Index returns the paint-order index of the current chunk.
func (it *Iterator) Index() int {
	it.check()
	return it.index
}

// Skip advances by n chunks, as n calls to Next would, and reports whether
// the iterator is on a chunk afterwards. A negative n moves back, stopping
// before the first chunk.
func (it *Iterator) Skip(n int) bool {
	it.check()
	it.index = max(-1, min(it.index+n, len(it.subset.chunks)))
	return it.index >= 0 && it.index < len(it.subset.chunks)
}

// Reset moves the iterator back before the first chunk.
func (it *Iterator) Reset() {
	it.check()
	it.index = -1
}
