package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/graphkit/mapline"
)

var chunkCount int

func init() {
	chunksCmd.Flags().IntVarP(&chunkCount, "count", "n", 8, "requested number of chunks")
	rootCmd.AddCommand(chunksCmd)
}

var chunksCmd = &cobra.Command{
	Use:   "chunks FILE",
	Short: "Show the line-aligned chunk layout for a split",
	Long: `Splits the file into at most the requested number of chunks and prints
the resulting byte ranges. Chunk bounds always land immediately after a
line terminator, so each chunk holds whole lines.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := mapline.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		chunks, err := f.Chunks(chunkCount)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %s in %d segment(s), %d chunk(s)\n",
			f.Path(), humanize.IBytes(uint64(f.Size())), f.NumSegments(), len(chunks))
		for _, c := range chunks {
			fmt.Printf("  %4d  [%12d, %12d)  %s\n",
				c.Index, c.Start, c.End, humanize.IBytes(uint64(c.Len())))
		}
		return nil
	},
}
