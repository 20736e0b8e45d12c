package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/graphkit/mapline"
)

var linesWorkers int

func init() {
	linesCmd.Flags().IntVarP(&linesWorkers, "workers", "w", 0, "worker goroutines (0 = all cores)")
	rootCmd.AddCommand(linesCmd)
}

var linesCmd = &cobra.Command{
	Use:   "lines FILE",
	Short: "Count lines and bytes in parallel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := mapline.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		var lines, payload atomic.Int64
		start := time.Now()
		err = f.IngestLines(cmd.Context(), func(chunk int, s mapline.Span, line []byte) error {
			lines.Add(1)
			payload.Add(int64(s.Len))
			return nil
		}, mapline.WithWorkers(linesWorkers))
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		if elapsed <= 0 {
			elapsed = time.Nanosecond
		}

		rate := float64(f.Size()) / elapsed.Seconds()
		fmt.Printf("%s lines, %s (%s payload) in %s (%s/s)\n",
			humanize.Comma(lines.Load()),
			humanize.IBytes(uint64(f.Size())),
			humanize.IBytes(uint64(payload.Load())),
			elapsed.Round(time.Millisecond),
			humanize.IBytes(uint64(rate)))
		return nil
	},
}
