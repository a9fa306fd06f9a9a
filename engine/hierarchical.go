package engine

import (
	"context"
	"math"
	"sort"

	"github.com/hupe1980/seggo/model"
	"gonum.org/v1/gonum/mat"
)

// splitWindow bounds the candidate split search of the hierarchical
// engine: up to splitWindow positions are tried on each side of the
// midpoint, at a stride that grows with the range length. The bounded
// candidate set is what keeps total work near O(N log N) instead of
// the exact engine's O(N²).
const splitWindow = 8

// Hierarchical computes an approximate segmentation by binary
// divide-and-merge, trading optimality for speed on large inputs.
//
// Starting from the whole range, each considered range is either kept
// as one segment or split in two near its midpoint: the best candidate
// two-part total is compared against the range's own likelihood, and
// the split is taken only when it improves the local total and the
// segment budget allows it. Accepted splits recurse into both halves
// with the budget divided between them. Ranges are tracked on an
// explicit work stack, so deep recursions cannot grow the call stack.
//
// Because each decision is local, a range whose immediate two-way
// split looks unattractive is kept whole even when deeper splits of
// its descendants would have paid off. This is an intrinsic
// approximation trade-off of the method, not an error condition; the
// result never scores higher than Exact on the same input.
func (e *Engine) Hierarchical(ctx context.Context, data mat.Matrix, oracle model.Oracle, maxSegments int) (model.Segmentation, error) {
	n, err := validate(data, maxSegments)
	if err != nil {
		return nil, err
	}

	cache := newLLCache(n)

	// A work item is a 0-based inclusive column range with the number
	// of segments it may still produce.
	type workItem struct {
		start, end int
		budget     int
	}

	stack := []workItem{{start: 0, end: n - 1, budget: maxSegments}}
	var leaves model.Segmentation

	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		length := it.end - it.start + 1
		if it.budget <= 1 || length < 2 {
			leaves = append(leaves, model.Segment{Start: it.start + 1, End: it.end + 1})
			continue
		}

		cands := splitCandidates(it.start, it.end)

		// One batch scores the undivided range and both parts of
		// every candidate split.
		segs := make([]model.Segment, 0, 1+2*len(cands))
		segs = append(segs, model.Segment{Start: it.start + 1, End: it.end + 1})
		for _, m := range cands {
			segs = append(segs,
				model.Segment{Start: it.start + 1, End: m + 1},
				model.Segment{Start: m + 2, End: it.end + 1},
			)
		}
		vals, err := e.scoreSegments(ctx, data, oracle, cache, segs)
		if err != nil {
			return nil, err
		}

		whole := vals[0]
		bestM, bestTotal := -1, math.Inf(-1)
		for ci, m := range cands {
			total := vals[1+2*ci] + vals[2+2*ci]
			if total > bestTotal {
				bestM, bestTotal = m, total
			}
		}

		if bestTotal > whole {
			leftBudget := (it.budget + 1) / 2
			rightBudget := it.budget - leftBudget
			// Right goes first so the stack pops left-to-right.
			stack = append(stack,
				workItem{start: bestM + 1, end: it.end, budget: rightBudget},
				workItem{start: it.start, end: bestM, budget: leftBudget},
			)
			continue
		}

		leaves = append(leaves, model.Segment{Start: it.start + 1, End: it.end + 1})
	}

	sort.Slice(leaves, func(i, j int) bool { return leaves[i].Start < leaves[j].Start })

	e.logger.DebugContext(ctx, "hierarchical segmentation completed",
		"n", n,
		"max_segments", maxSegments,
		"segments", len(leaves),
	)

	return leaves, nil
}

// splitCandidates returns the 0-based candidate split positions for
// the range [start, end], each the last column of a prospective left
// part. The set is the midpoint plus up to splitWindow strided
// positions on either side, deduplicated and in increasing order.
// It is deterministic, so repeated runs split identically.
func splitCandidates(start, end int) []int {
	length := end - start + 1
	mid := (start + end) / 2
	stride := length / 16
	if stride < 1 {
		stride = 1
	}

	cands := make([]int, 0, 2*splitWindow+1)
	for d := -splitWindow; d <= splitWindow; d++ {
		m := mid + d*stride
		if m < start || m > end-1 {
			continue
		}
		if len(cands) > 0 && m == cands[len(cands)-1] {
			continue
		}
		cands = append(cands, m)
	}
	return cands
}
