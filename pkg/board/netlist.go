package board

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Net is a connected set of traces that share the same electrical net.
type Net struct {
	ID       int      `json:"id"`
	TraceIDs []string `json:"trace_ids"`
}

// Netlist derives electrical nets from pairwise trace connectivity using a
// union-find structure with path compression and union by rank.
type Netlist struct {
	parent map[string]string
	rank   map[string]int

	// All trace ids in the netlist, in insertion order
	ids []string

	// Final nets after calling Finalize()
	Nets []*Net
}

// NewNetlist creates a netlist over the given trace ids. Initially every
// trace is in its own isolated net.
func NewNetlist(ids []string) *Netlist {
	nl := &Netlist{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
		ids:    make([]string, len(ids)),
	}
	copy(nl.ids, ids)

	for _, id := range ids {
		nl.parent[id] = id
		nl.rank[id] = 0
	}

	return nl
}

// NetlistFromJunctions builds a netlist over the enriched traces and
// connects every pair of trace ids that shares a junction.
func NetlistFromJunctions(traces []Trace, junctions []Junction) *Netlist {
	ids := make([]string, len(traces))
	for i := range traces {
		ids[i] = traces[i].ID
	}
	nl := NewNetlist(ids)

	for _, j := range junctions {
		for i := 1; i < len(j.TraceIDs); i++ {
			nl.Connect(j.TraceIDs[0], j.TraceIDs[i])
		}
	}

	return nl
}

// Connect marks two traces as electrically connected, merging their nets.
func (nl *Netlist) Connect(a, b string) {
	rootA := nl.Find(a)
	rootB := nl.Find(b)

	if rootA == rootB {
		return // Already in the same net
	}

	switch {
	case nl.rank[rootA] < nl.rank[rootB]:
		nl.parent[rootA] = rootB
	case nl.rank[rootA] > nl.rank[rootB]:
		nl.parent[rootB] = rootA
	default:
		nl.parent[rootB] = rootA
		nl.rank[rootA]++
	}
}

// Find returns the representative id for the net containing the given
// trace, compressing the path along the way.
func (nl *Netlist) Find(id string) string {
	root := id
	for nl.parent[root] != root {
		root = nl.parent[root]
	}

	current := id
	for current != root {
		next := nl.parent[current]
		nl.parent[current] = root
		current = next
	}

	return root
}

// Finalize builds the final net list. Only nets with 2+ traces are kept;
// an isolated trace is not a net. Net ids are assigned in order of each
// net's smallest trace id, so repeated runs produce identical output.
func (nl *Netlist) Finalize() {
	groups := make(map[string][]string)
	for _, id := range nl.ids {
		root := nl.Find(id)
		groups[root] = append(groups[root], id)
	}

	var members [][]string
	for _, ids := range groups {
		if len(ids) < 2 {
			continue
		}
		sort.Strings(ids)
		members = append(members, ids)
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i][0] < members[j][0]
	})

	nl.Nets = make([]*Net, 0, len(members))
	for netID, ids := range members {
		nl.Nets = append(nl.Nets, &Net{ID: netID, TraceIDs: ids})
	}
}

// NetCount returns the number of nets. Only valid after Finalize().
func (nl *Netlist) NetCount() int {
	return len(nl.Nets)
}

// ExportJSON exports the netlist to JSON.
func (nl *Netlist) ExportJSON() ([]byte, error) {
	if nl.Nets == nil {
		return nil, fmt.Errorf("board: netlist not finalized")
	}

	output := struct {
		Version     string `json:"version"`
		NetCount    int    `json:"net_count"`
		Nets        []*Net `json:"nets"`
		GeneratedBy string `json:"generated_by"`
	}{
		Version:     "1.0",
		NetCount:    nl.NetCount(),
		Nets:        nl.Nets,
		GeneratedBy: "svg trace topology recovery",
	}

	return json.MarshalIndent(output, "", "  ")
}

// ExportKiCad exports the netlist as a simplified KiCad netlist
// s-expression, suitable for basic connectivity import.
func (nl *Netlist) ExportKiCad() (string, error) {
	if nl.Nets == nil {
		return "", fmt.Errorf("board: netlist not finalized")
	}

	var b strings.Builder
	b.WriteString("(export (version D)\n")
	b.WriteString("  (design\n")
	b.WriteString("    (source \"SVG Trace Topology Recovery\")\n")
	b.WriteString("  )\n")

	b.WriteString("  (components\n")
	for _, net := range nl.Nets {
		for _, id := range net.TraceIDs {
			fmt.Fprintf(&b, "    (comp (ref %s))\n", id)
		}
	}
	b.WriteString("  )\n")

	b.WriteString("  (nets\n")
	for _, net := range nl.Nets {
		fmt.Fprintf(&b, "    (net (code %d) (name Net-%d)\n", net.ID, net.ID)
		for _, id := range net.TraceIDs {
			fmt.Fprintf(&b, "      (node (ref %s))\n", id)
		}
		b.WriteString("    )\n")
	}
	b.WriteString("  )\n")
	b.WriteString(")\n")

	return b.String(), nil
}
