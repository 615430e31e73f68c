package commands

import (
	"context"
	"errors"
	"fmt"

	"dataid/pkg/catalog"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm [paths...]",
	Short: "Remove blobs from the catalog",
	Long: `Remove catalog records by path. Stored chunks and manifests stay in the
object store; only the path registration is deleted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if DID == nil {
			return fmt.Errorf("app not initialized")
		}
		ctx := context.Background()

		count := 0
		for _, path := range args {
			err := DID.Catalog.Remove(ctx, path)
			if errors.Is(err, catalog.ErrRecordNotFound) {
				fmt.Printf("⚠️  not registered: %s\n", path)
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to remove %s: %w", path, err)
			}
			fmt.Printf("Removed: %s\n", path)
			count++
		}

		if count > 0 {
			fmt.Printf("✅ Removed %d records from catalog.\n", count)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
