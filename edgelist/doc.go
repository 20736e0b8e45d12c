// Package edgelist parses graph edge lists from memory-mapped files.
//
// An edge list is a line-oriented text format with one edge per line:
// two node id columns and an optional weight column, separated by
// whitespace or a configurable byte. Lines starting with a comment
// prefix and blank lines are skipped.
//
//	# comment
//	0 1
//	1 2 0.5
//
// Reading runs in parallel over line-aligned chunks of the mapped
// file:
//
//	f, _ := mapline.Open("graph.edges")
//	defer f.Close()
//
//	r := edgelist.NewReader(func(o *edgelist.Options) {
//	    o.FirstNode = 1
//	    o.ReadWeights = true
//	})
//	err := r.Read(ctx, f, func(chunk int, e edgelist.Edge) error {
//	    g.AddEdge(e.U, e.V, e.Weight)
//	    return nil
//	})
//
// Summarize aggregates counts, node id bounds and the distinct node
// set in one pass without materializing any edges.
package edgelist
