// SPDX-License-Identifier: MIT

// Package indexpq provides IndexMinPQ, a binary min-heap whose entries are
// addressed by a caller-chosen integer index in [0,N). Besides the usual
// Insert/DeleteMin it supports O(log n) key updates of any queued index,
// which is what eager Prim and Dijkstra need for decrease-key.
//
// Layout:
//
//	pq[1..n]  heap position → index   (1-based, slot 0 unused)
//	qp[i]     index → heap position   (-1 when i is not queued)
//	keys[i]   key of index i          (meaningful only while queued)
//
// Invariants: pq[qp[i]] == i for every queued i; qp[pq[k]] == k for 1 ≤ k ≤ n;
// keys along every root-to-leaf path are non-decreasing under less.
//
// Complexity:
//
//	Insert, ChangeKey, DecreaseKey, IncreaseKey, Delete, DeleteMin  O(log n)
//	Contains, KeyOf, MinIndex, MinKey, Size, IsEmpty               O(1)
//	All                                                            O(n log n)
//
// Errors:
//
//	ErrNegativeCapacity – New/NewFunc with n < 0
//	ErrIndexOutOfRange  – index outside [0,N)
//	ErrDuplicateIndex   – Insert of an index already queued
//	ErrIndexNotFound    – key query/update of an index not queued
//	ErrKeyNotDecreased  – DecreaseKey with a key not strictly smaller
//	ErrKeyNotIncreased  – IncreaseKey with a key not strictly larger
//	ErrUnderflow        – DeleteMin/MinIndex/MinKey on an empty queue
//
// Every failing call leaves the queue unchanged.
package indexpq
