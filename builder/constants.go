// SPDX-License-Identifier: MIT

// Package builder defines shared constants used by graph builders, ensuring
// consistent error context and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodShift is the canonical name for the Shift combinator.
	MethodShift = "Shift"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a ring without loops or parallel edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star: one center plus one leaf.
const MinStarNodes = 2

// MinWheelRim is the smallest rim of a wheel; the hub comes on top.
const MinWheelRim = 3

// MinCompleteNodes is the smallest size for K_n; K_1 has no edges but is valid.
const MinCompleteNodes = 1

// MinPartition is the smallest size of either side of K_{n1,n2}.
const MinPartition = 1

// MinGridDim is the smallest allowed dimension (rows or cols) for a 2D Grid.
// A grid of size 1×1 has no edges, but is considered valid.
const MinGridDim = 1

// MinRandomSparseNodes is the smallest vertex count for RandomSparse.
const MinRandomSparseNodes = 1

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for the probability parameter p in RandomSparse.
const MinProbability = 0.0

// MaxProbability is the upper bound for the probability parameter p in RandomSparse.
const MaxProbability = 1.0
