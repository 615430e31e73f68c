package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List registered blobs",
	RunE: func(cmd *cobra.Command, args []string) error {
		if DID == nil {
			return fmt.Errorf("app not initialized")
		}

		records, err := DID.Catalog.List(context.Background())
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Println("No blobs registered.")
			return nil
		}

		fmt.Printf("%-16s %10s %7s  %s\n", "DATA-ID", "SIZE", "CHUNKS", "PATH")
		for _, r := range records {
			fmt.Printf("%-16s %10d %7d  %s\n", r.DataID, r.Size, r.ChunkCount, r.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
