// SPDX-License-Identifier: MIT
//
// File: io.go
// Role: plain-text edge-list reader and writer.
// Format:
//
//	V
//	E
//	v w weight   (repeated E times)
//
// Tokens are whitespace separated, so line breaks are not significant.

package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// tokenReader yields whitespace-separated tokens and remembers their ordinal
// so parse errors can point at the offending token.
type tokenReader struct {
	sc  *bufio.Scanner
	pos int // 1-based ordinal of the last token returned
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenReader{sc: sc}
}

func (t *tokenReader) next(what string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", fmt.Errorf("reading %s: %w", what, err)
		}
		return "", fmt.Errorf("token %d: missing %s: %w", t.pos+1, what, ErrMalformedInput)
	}
	t.pos++

	return t.sc.Text(), nil
}

func (t *tokenReader) nextInt(what string) (int, error) {
	s, err := t.next(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("token %d: %s %q is not an integer: %w", t.pos, what, s, ErrMalformedInput)
	}

	return n, nil
}

func (t *tokenReader) nextFloat(what string) (float64, error) {
	s, err := t.next(what)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("token %d: %s %q is not a number: %w", t.pos, what, s, ErrMalformedInput)
	}

	return f, nil
}

// ReadGraph parses the edge-list format from r into a new Graph.
//
// Errors:
//   - ErrMalformedInput for missing, unparsable or trailing tokens and negative counts.
//   - ErrMalformedInput and ErrVertexCountTooLarge for a vertex count above MaxVertices.
//   - ErrVertexOutOfRange / ErrBadWeight / ErrLoopNotAllowed from edge insertion.
//
// Complexity: O(V+E).
func ReadGraph(r io.Reader, opts ...GraphOption) (*Graph, error) {
	tr := newTokenReader(r)

	// 1) Header: vertex and edge counts.
	v, err := tr.nextInt("vertex count")
	if err != nil {
		return nil, err
	}
	if v < 0 {
		return nil, fmt.Errorf("token %d: vertex count %d: %w", tr.pos, v, ErrMalformedInput)
	}
	e, err := tr.nextInt("edge count")
	if err != nil {
		return nil, err
	}
	if e < 0 {
		return nil, fmt.Errorf("token %d: edge count %d: %w", tr.pos, e, ErrMalformedInput)
	}

	if v > MaxVertices {
		return nil, fmt.Errorf("token 1: vertex count %d: %w: %w", v, ErrVertexCountTooLarge, ErrMalformedInput)
	}
	g, err := NewGraph(v, opts...)
	if err != nil {
		return nil, err
	}

	// 2) Body: exactly e triples.
	for i := 0; i < e; i++ {
		from, err := tr.nextInt("edge endpoint")
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		to, err := tr.nextInt("edge endpoint")
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		weight, err := tr.nextFloat("edge weight")
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		if _, err = g.Connect(from, to, weight); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	// 3) Nothing may follow the declared edges.
	if tok, err := tr.next("end of input"); err == nil {
		return nil, fmt.Errorf("token %d: unexpected %q after %d edges: %w", tr.pos, tok, e, ErrMalformedInput)
	} else if !errors.Is(err, ErrMalformedInput) {
		return nil, err
	}

	return g, nil
}

// WriteTo writes g in the edge-list format accepted by ReadGraph, emitting
// edges in Edges() order. It implements io.WriterTo.
func (g *Graph) WriteTo(w io.Writer) (int64, error) {
	edges := g.Edges()
	bw := bufio.NewWriter(w)

	var total int64
	n, err := fmt.Fprintf(bw, "%d\n%d\n", g.V(), len(edges))
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, e := range edges {
		n, err = fmt.Fprintf(bw, "%d %d %s\n", e.v, e.w, strconv.FormatFloat(e.weight, 'g', -1, 64))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, bw.Flush()
}
