package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/graphkit/mapline"
	"github.com/graphkit/mapline/edgelist"
)

var (
	edgesWorkers   int
	edgesComment   string
	edgesSep       string
	edgesFirstNode uint64
	edgesWeighted  bool
)

func init() {
	edgesCmd.Flags().IntVarP(&edgesWorkers, "workers", "w", 0, "worker goroutines (0 = all cores)")
	edgesCmd.Flags().StringVar(&edgesComment, "comment", "#", "comment line prefix")
	edgesCmd.Flags().StringVar(&edgesSep, "sep", "", "column separator byte (default: whitespace runs)")
	edgesCmd.Flags().Uint64Var(&edgesFirstNode, "first-node", 0, "smallest node id used by the file")
	edgesCmd.Flags().BoolVar(&edgesWeighted, "weighted", false, "parse a third column as edge weight")
	rootCmd.AddCommand(edgesCmd)
}

var edgesCmd = &cobra.Command{
	Use:   "edges FILE",
	Short: "Summarize a graph edge list",
	Long: `Parses an edge list of "u v [w]" records and prints edge, node and
comment counts plus the node id range, scanning chunks on all cores.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(edgesSep) > 1 {
			return fmt.Errorf("--sep must be a single byte, got %q", edgesSep)
		}

		f, err := mapline.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		r := edgelist.NewReader(func(o *edgelist.Options) {
			o.Workers = edgesWorkers
			o.Comment = edgesComment
			if edgesSep != "" {
				o.Separator = edgesSep[0]
			}
			o.FirstNode = edgesFirstNode
			o.ReadWeights = edgesWeighted
		})

		start := time.Now()
		s, err := r.Summarize(cmd.Context(), f)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Printf("%s: %s\n", f.Path(), humanize.IBytes(uint64(f.Size())))
		fmt.Printf("  lines:      %s\n", humanize.Comma(s.Lines))
		fmt.Printf("  comments:   %s\n", humanize.Comma(s.Comments))
		fmt.Printf("  edges:      %s\n", humanize.Comma(s.Edges))
		fmt.Printf("  self-loops: %s\n", humanize.Comma(s.SelfLoops))
		fmt.Printf("  nodes:      %s (ids %d..%d)\n",
			humanize.Comma(int64(s.Nodes)), s.MinNode, s.MaxNode)
		if edgesWeighted {
			fmt.Printf("  weight sum: %.4f\n", s.TotalWeight)
		}
		fmt.Printf("  scanned in %s\n", elapsed.Round(time.Millisecond))
		return nil
	},
}
