package board

import (
	"fmt"
	"math"
	"sort"

	"github.com/OpenTraceLab/OpenTraceSVG/pkg/svgpath"
)

// bucket is a composite integer key for the spatial quantization grid.
// Using an integer pair instead of a formatted string avoids per-endpoint
// allocation and ambiguity with negative coordinates.
type bucket struct {
	X, Y int
}

func quantize(p svgpath.Point, tolerance float64) bucket {
	return bucket{
		X: int(math.Round(p.X / tolerance)),
		Y: int(math.Round(p.Y / tolerance)),
	}
}

// representative reconstructs the bucket's coordinate. This is a lossy
// stand-in for the original endpoints, good to within one tolerance step.
func (b bucket) representative(tolerance float64) svgpath.Point {
	return svgpath.Point{
		X: float64(b.X) * tolerance,
		Y: float64(b.Y) * tolerance,
	}
}

// BuildJunctions quantizes every trace's endpoints into tolerance-sized
// buckets, emits a Junction for each bucket shared by two or more traces,
// and rewrites each trace's Connected set accordingly.
//
// Connectivity is built as a fresh id-to-set mapping and merged back in a
// single pass, so the builder is idempotent: running it again on the same
// traces reproduces the same junctions and never double-appends. Two
// endpoints within tolerance of each other can still land in different
// buckets when they straddle a bucket edge; that approximation is accepted,
// a strict neighbor search would change the junction set.
//
// Traces with absent or NaN endpoints contribute nothing. A non-positive
// tolerance is a precondition violation and fails before any processing.
func BuildJunctions(traces []Trace, tolerance float64) ([]Junction, error) {
	if tolerance <= 0 {
		return nil, fmt.Errorf("board: tolerance must be positive, got %g", tolerance)
	}

	buckets := make(map[bucket][]string)
	for i := range traces {
		t := &traces[i]
		if !t.ValidGeometry() {
			continue
		}
		for _, ep := range []*svgpath.Point{t.Start, t.End} {
			if ep == nil {
				continue
			}
			key := quantize(*ep, tolerance)
			buckets[key] = append(buckets[key], t.ID)
		}
	}

	var junctions []Junction
	connected := make(map[string]map[string]struct{})

	for key, ids := range buckets {
		// A trace whose start and end share a bucket appears twice
		uniq := dedupSorted(ids)
		if len(uniq) < 2 {
			continue
		}

		junctions = append(junctions, Junction{
			Point:    key.representative(tolerance),
			TraceIDs: uniq,
		})

		for _, a := range uniq {
			for _, b := range uniq {
				if a == b {
					continue
				}
				if connected[a] == nil {
					connected[a] = make(map[string]struct{})
				}
				connected[a][b] = struct{}{}
			}
		}
	}

	// Merge the connectivity mapping back in one pass. Traces outside any
	// junction get their set cleared, keeping reruns idempotent.
	for i := range traces {
		set := connected[traces[i].ID]
		if len(set) == 0 {
			traces[i].Connected = nil
			continue
		}
		ids := make([]string, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		traces[i].Connected = ids
	}

	sort.Slice(junctions, func(i, j int) bool {
		a, b := junctions[i].Point, junctions[j].Point
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})

	return junctions, nil
}

// dedupSorted returns the sorted unique elements of ids.
func dedupSorted(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	uniq := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}
	sort.Strings(uniq)
	return uniq
}
