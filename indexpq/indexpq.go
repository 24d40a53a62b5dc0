// SPDX-License-Identifier: MIT

package indexpq

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
)

// Sentinel errors returned by IndexMinPQ.
var (
	ErrNegativeCapacity = errors.New("indexpq: capacity must be non-negative")
	ErrIndexOutOfRange  = errors.New("indexpq: index out of range")
	ErrDuplicateIndex   = errors.New("indexpq: index is already in the priority queue")
	ErrIndexNotFound    = errors.New("indexpq: index is not in the priority queue")
	ErrKeyNotDecreased  = errors.New("indexpq: key does not strictly decrease")
	ErrKeyNotIncreased  = errors.New("indexpq: key does not strictly increase")
	ErrUnderflow        = errors.New("indexpq: priority queue underflow")
)

// IndexMinPQ is an indexed min-priority queue over keys of type K.
type IndexMinPQ[K any] struct {
	less func(a, b K) bool

	n    int   // number of queued indices
	pq   []int // heap position -> index, 1-based
	qp   []int // index -> heap position, -1 if absent
	keys []K   // keys[i] = priority of index i
}

// New returns an empty queue for indices 0..n-1 ordered by cmp.Less.
func New[K cmp.Ordered](n int) (*IndexMinPQ[K], error) {
	return NewFunc[K](n, cmp.Less[K])
}

// NewFunc returns an empty queue for indices 0..n-1 ordered by less.
// less must be a strict weak ordering.
func NewFunc[K any](n int, less func(a, b K) bool) (*IndexMinPQ[K], error) {
	if n < 0 {
		return nil, fmt.Errorf("NewFunc(%d): %w", n, ErrNegativeCapacity)
	}
	q := &IndexMinPQ[K]{
		less: less,
		pq:   make([]int, n+1),
		qp:   make([]int, n),
		keys: make([]K, n),
	}
	for i := range q.qp {
		q.qp[i] = -1
	}

	return q, nil
}

// Cap returns N, the size of the index domain.
func (q *IndexMinPQ[K]) Cap() int { return len(q.qp) }

// Size returns the number of queued indices.
func (q *IndexMinPQ[K]) Size() int { return q.n }

// IsEmpty reports whether no index is queued.
func (q *IndexMinPQ[K]) IsEmpty() bool { return q.n == 0 }

// Contains reports whether index i is queued.
func (q *IndexMinPQ[K]) Contains(i int) (bool, error) {
	if err := q.validate(i); err != nil {
		return false, err
	}

	return q.qp[i] != -1, nil
}

// KeyOf returns the key associated with index i.
func (q *IndexMinPQ[K]) KeyOf(i int) (K, error) {
	var zero K
	if err := q.mustContain(i); err != nil {
		return zero, err
	}

	return q.keys[i], nil
}

// Insert associates key with index i and queues it.
func (q *IndexMinPQ[K]) Insert(i int, key K) error {
	if err := q.validate(i); err != nil {
		return err
	}
	if q.qp[i] != -1 {
		return fmt.Errorf("Insert(%d): %w", i, ErrDuplicateIndex)
	}
	q.n++
	q.qp[i] = q.n
	q.pq[q.n] = i
	q.keys[i] = key
	q.swim(q.n)

	return nil
}

// MinIndex returns an index with the smallest key without removing it.
func (q *IndexMinPQ[K]) MinIndex() (int, error) {
	if q.n == 0 {
		return 0, ErrUnderflow
	}

	return q.pq[1], nil
}

// MinKey returns the smallest key without removing it.
func (q *IndexMinPQ[K]) MinKey() (K, error) {
	if q.n == 0 {
		var zero K
		return zero, ErrUnderflow
	}

	return q.keys[q.pq[1]], nil
}

// DeleteMin removes an index with the smallest key and returns it.
func (q *IndexMinPQ[K]) DeleteMin() (int, error) {
	if q.n == 0 {
		return 0, ErrUnderflow
	}
	top := q.pq[1]
	q.exch(1, q.n)
	q.n--
	q.sink(1)
	q.forget(top, q.n+1)

	return top, nil
}

// ChangeKey sets the key of queued index i, moving it up or down as needed.
func (q *IndexMinPQ[K]) ChangeKey(i int, key K) error {
	if err := q.mustContain(i); err != nil {
		return err
	}
	q.keys[i] = key
	q.swim(q.qp[i])
	q.sink(q.qp[i])

	return nil
}

// DecreaseKey lowers the key of queued index i to key.
// key must be strictly smaller than the current key.
func (q *IndexMinPQ[K]) DecreaseKey(i int, key K) error {
	if err := q.mustContain(i); err != nil {
		return err
	}
	if !q.less(key, q.keys[i]) {
		return fmt.Errorf("DecreaseKey(%d): %w", i, ErrKeyNotDecreased)
	}
	q.keys[i] = key
	q.swim(q.qp[i])

	return nil
}

// IncreaseKey raises the key of queued index i to key.
// key must be strictly larger than the current key.
func (q *IndexMinPQ[K]) IncreaseKey(i int, key K) error {
	if err := q.mustContain(i); err != nil {
		return err
	}
	if !q.less(q.keys[i], key) {
		return fmt.Errorf("IncreaseKey(%d): %w", i, ErrKeyNotIncreased)
	}
	q.keys[i] = key
	q.sink(q.qp[i])

	return nil
}

// Delete removes index i and its key from the queue.
func (q *IndexMinPQ[K]) Delete(i int) error {
	if err := q.mustContain(i); err != nil {
		return err
	}
	k := q.qp[i]
	q.exch(k, q.n)
	q.n--
	// The former last element now sits at k; it may need to go either way.
	if k <= q.n {
		q.swim(k)
		q.sink(k)
	}
	q.forget(i, q.n+1)

	return nil
}

// All yields the queued indices in ascending key order. The queue itself is
// not modified; iteration works on a copy taken when the sequence starts.
func (q *IndexMinPQ[K]) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		c := q.clone()
		for !c.IsEmpty() {
			i, _ := c.DeleteMin()
			if !yield(i) {
				return
			}
		}
	}
}

// clone returns an independent copy of q.
func (q *IndexMinPQ[K]) clone() *IndexMinPQ[K] {
	c := &IndexMinPQ[K]{
		less: q.less,
		n:    q.n,
		pq:   make([]int, len(q.pq)),
		qp:   make([]int, len(q.qp)),
		keys: make([]K, len(q.keys)),
	}
	copy(c.pq, q.pq)
	copy(c.qp, q.qp)
	copy(c.keys, q.keys)

	return c
}

// forget clears the bookkeeping of index i, which used to live at heap slot k.
func (q *IndexMinPQ[K]) forget(i, k int) {
	var zero K
	q.qp[i] = -1
	q.keys[i] = zero
	q.pq[k] = -1
}

func (q *IndexMinPQ[K]) validate(i int) error {
	if i < 0 || i >= len(q.qp) {
		return fmt.Errorf("index %d not in [0,%d): %w", i, len(q.qp), ErrIndexOutOfRange)
	}

	return nil
}

func (q *IndexMinPQ[K]) mustContain(i int) error {
	if err := q.validate(i); err != nil {
		return err
	}
	if q.qp[i] == -1 {
		return fmt.Errorf("index %d: %w", i, ErrIndexNotFound)
	}

	return nil
}

// greater compares the keys at heap positions a and b.
func (q *IndexMinPQ[K]) greater(a, b int) bool {
	return q.less(q.keys[q.pq[b]], q.keys[q.pq[a]])
}

func (q *IndexMinPQ[K]) exch(a, b int) {
	q.pq[a], q.pq[b] = q.pq[b], q.pq[a]
	q.qp[q.pq[a]] = a
	q.qp[q.pq[b]] = b
}

func (q *IndexMinPQ[K]) swim(k int) {
	for k > 1 && q.greater(k/2, k) {
		q.exch(k, k/2)
		k /= 2
	}
}

func (q *IndexMinPQ[K]) sink(k int) {
	for 2*k <= q.n {
		j := 2 * k
		if j < q.n && q.greater(j, j+1) {
			j++
		}
		if !q.greater(k, j) {
			break
		}
		q.exch(k, j)
		k = j
	}
}
