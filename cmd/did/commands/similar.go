package commands

import (
	"context"
	"errors"
	"fmt"

	"dataid/pkg/catalog"
	"dataid/pkg/identifier"
	"dataid/pkg/types"

	"github.com/spf13/cobra"
)

var similarMaxDist int

var similarCmd = &cobra.Command{
	Use:   "similar [path-or-id]",
	Short: "Find blobs similar to the given one",
	Long: `Search the catalog for blobs whose similarity identifier is within the
given Hamming distance. The argument is either a registered path or a DataID.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if DID == nil {
			return fmt.Errorf("app not initialized")
		}
		ctx := context.Background()

		// 1. 解析参数：先当 catalog 里的路径查，查不到再当 DataID 用
		var id types.DataID
		rec, err := DID.Catalog.GetByPath(ctx, args[0])
		switch {
		case err == nil:
			id = rec.DataID
		case errors.Is(err, catalog.ErrRecordNotFound):
			id = types.DataID(args[0])
			if err := identifier.Validate(id); err != nil {
				return fmt.Errorf("'%s' is neither a registered path nor a valid data id", args[0])
			}
		default:
			return err
		}

		// 2. 按汉明距离检索
		results, err := DID.Catalog.FindSimilar(ctx, id, similarMaxDist)
		if err != nil {
			return fmt.Errorf("similarity search failed: %w", err)
		}

		if len(results) == 0 {
			fmt.Println("No similar blobs found.")
			return nil
		}

		// 3. 输出：距离越小越相似，0 表示 Sketch 完全一致
		fmt.Printf("%-5s %-16s %s\n", "DIST", "DATA-ID", "PATH")
		for _, r := range results {
			fmt.Printf("%-5d %-16s %s\n", r.Distance, r.DataID, r.Path)
		}
		return nil
	},
}

func init() {
	similarCmd.Flags().IntVar(&similarMaxDist, "max-dist", 16, "maximum Hamming distance (0-64)")
	rootCmd.AddCommand(similarCmd)
}
