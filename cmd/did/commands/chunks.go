package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"dataid/pkg/chunker"
	"dataid/pkg/core"
	"dataid/pkg/sketch"

	"github.com/spf13/cobra"
)

var chunksVerbose bool

var chunksCmd = &cobra.Command{
	Use:   "chunks [file]",
	Short: "Show chunk boundaries of a file (debug)",
	Long: `Run the content-defined chunker over a file and print each chunk's
offset, size and feature. Useful to inspect boundary stability across edits.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		c := chunker.New(f)
		var offset int64
		for {
			data, err := c.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return fmt.Errorf("chunking failed: %w", err)
			}

			if chunksVerbose {
				obj := core.NewChunk(data)
				fmt.Printf("%10d %8d  %016x  %s\n", offset, len(data), sketch.Feature(data), obj.ID())
			} else {
				fmt.Printf("%10d %8d\n", offset, len(data))
			}
			offset += int64(len(data))
		}

		fmt.Printf("total: %d chunks, %d bytes\n", c.Count(), offset)
		return nil
	},
}

func init() {
	chunksCmd.Flags().BoolVarP(&chunksVerbose, "verbose", "v", false, "also print feature and CAS hash per chunk")
	rootCmd.AddCommand(chunksCmd)
}
