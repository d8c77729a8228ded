// Package memo provides bounded memoization for pure fallible operations.
//
// A deferred computation is re-executable because it is pure; memo exploits
// the same purity to cache outcomes instead of recomputing them. Failed
// outcomes are cached like successes: a pure operation that failed once for
// a given input fails identically forever.
//
// WARNING: do not memoize impure operations (those depending on time, I/O,
// etc). The cache would pin their first observed outcome.
package memo

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/half-applied/deferred_go/deferred"
)

// Binary memoizes a pure binary operation producing an Outcome. The cache
// holds at most 2*maxSize entries via dual-map rotation.
func Binary[I comparable, A, E any](
	fn func(I, I) deferred.Outcome[A, E],
	maxSize uint32,
) func(I, I) deferred.Outcome[A, E] {
	memo := newTable[I, deferred.Outcome[A, E]](maxSize)
	return func(a, b I) deferred.Outcome[A, E] {
		key := keyOf(a, b)
		out, ok := memo.load(key, a, b)
		if !ok {
			out = fn(a, b)
			memo.store(key, a, b, out)
		}
		return out
	}
}

func keyOf[I comparable](a, b I) uint64 {
	return xxhash.Sum64String(fmt.Sprintf("%v|%v", a, b))
}

// entry keeps the operands alongside the cached value: the hash is only a
// bucket key, never cache identity. Entries chain within a bucket and a hit
// requires both operands to match, so colliding pairs stay distinct.
type entry[I comparable, O any] struct {
	a, b I
	out  O
}

// table is a bounded cache with dual-map rotation: when the active map
// reaches maxSize entries, it becomes the stale map, which lookups still
// consult until the next rotation drops it.
type table[I comparable, O any] struct {
	mu      sync.Mutex
	memos   [2]map[uint64][]entry[I, O]
	sizes   [2]uint32
	headIdx int
	maxSize uint32
}

func newTable[I comparable, O any](maxSize uint32) *table[I, O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &table[I, O]{
		memos:   [2]map[uint64][]entry[I, O]{{}, {}},
		maxSize: maxSize,
	}
}

func (t *table[I, O]) load(key uint64, a, b I) (O, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, idx := range [2]int{t.headIdx, 1 - t.headIdx} {
		for _, e := range t.memos[idx][key] {
			if e.a == a && e.b == b {
				return e.out, true
			}
		}
	}
	var zero O
	return zero, false
}

func (t *table[I, O]) store(key uint64, a, b I, value O) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.sizes[t.headIdx] == t.maxSize {
		t.headIdx = 1 - t.headIdx
		t.memos[t.headIdx] = make(map[uint64][]entry[I, O], t.maxSize)
		t.sizes[t.headIdx] = 0
	}
	t.memos[t.headIdx][key] = append(t.memos[t.headIdx][key], entry[I, O]{a: a, b: b, out: value})
	t.sizes[t.headIdx]++
}
