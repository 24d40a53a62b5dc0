// SPDX-License-Identifier: MIT

// Package unionfind implements a fixed-size disjoint-set forest over the
// elements 0..n-1, with union by size and path compression.
//
// Find, Union and Connected run in amortized O(α(n)) time, where α is the
// inverse Ackermann function. Every element starts in its own singleton set.
//
// Errors:
//
//	ErrNegativeSize    – New with n < 0
//	ErrIndexOutOfRange – element outside [0,n)
package unionfind

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeSize indicates New was called with a negative element count.
	ErrNegativeSize = errors.New("unionfind: size must be non-negative")

	// ErrIndexOutOfRange indicates an element outside [0,n).
	ErrIndexOutOfRange = errors.New("unionfind: index out of range")
)

// UnionFind is a disjoint-set forest. The zero value is an empty structure
// over zero elements; use New to size it.
type UnionFind struct {
	parent []int // parent[p] == p iff p is a root
	size   []int // size[r] = element count of the tree rooted at r (roots only)
	count  int   // number of disjoint sets
}

// New returns a UnionFind with n singleton sets.
// Complexity: O(n).
func New(n int) (*UnionFind, error) {
	if n < 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrNegativeSize)
	}
	u := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range u.parent {
		u.parent[i] = i
		u.size[i] = 1
	}

	return u, nil
}

// Len returns the number of elements.
func (u *UnionFind) Len() int { return len(u.parent) }

// Count returns the number of disjoint sets.
func (u *UnionFind) Count() int { return u.count }

// Find returns the canonical root of the set containing p.
// Complexity: amortized O(α(n)).
func (u *UnionFind) Find(p int) (int, error) {
	if err := u.validate(p); err != nil {
		return 0, err
	}

	return u.root(p), nil
}

// Connected reports whether p and q belong to the same set.
func (u *UnionFind) Connected(p, q int) (bool, error) {
	if err := u.validate(p); err != nil {
		return false, err
	}
	if err := u.validate(q); err != nil {
		return false, err
	}

	return u.root(p) == u.root(q), nil
}

// Union merges the sets containing p and q. It reports whether a merge
// happened; false means p and q were already connected.
// Complexity: amortized O(α(n)).
func (u *UnionFind) Union(p, q int) (bool, error) {
	if err := u.validate(p); err != nil {
		return false, err
	}
	if err := u.validate(q); err != nil {
		return false, err
	}

	rp, rq := u.root(p), u.root(q)
	if rp == rq {
		return false, nil
	}
	// Attach the smaller tree under the larger root.
	if u.size[rp] < u.size[rq] {
		rp, rq = rq, rp
	}
	u.parent[rq] = rp
	u.size[rp] += u.size[rq]
	u.count--

	return true, nil
}

// root walks to the root of p, halving the path on the way.
func (u *UnionFind) root(p int) int {
	for u.parent[p] != p {
		u.parent[p] = u.parent[u.parent[p]]
		p = u.parent[p]
	}

	return p
}

func (u *UnionFind) validate(p int) error {
	if p < 0 || p >= len(u.parent) {
		return fmt.Errorf("element %d not in [0,%d): %w", p, len(u.parent), ErrIndexOutOfRange)
	}

	return nil
}
