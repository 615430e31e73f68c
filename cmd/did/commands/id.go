package commands

import (
	"fmt"
	"os"

	"dataid/pkg/identifier"

	"github.com/spf13/cobra"
)

var idCmd = &cobra.Command{
	Use:   "id [files...]",
	Short: "Compute the similarity identifier of files",
	Long: `Compute the content-defined similarity identifier (DataID) for one or
more files without touching any repository or storage. Use "-" to read stdin.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			var id string

			if path == "-" {
				dataID, err := identifier.FromReader(os.Stdin)
				if err != nil {
					return fmt.Errorf("failed to identify stdin: %w", err)
				}
				id = dataID.String()
			} else {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				dataID, err := identifier.FromReader(f)
				f.Close() // 循环内不 defer，一个文件算完立刻关
				if err != nil {
					return fmt.Errorf("failed to identify %s: %w", path, err)
				}
				id = dataID.String()
			}

			// 多文件时带上文件名 (仿 sha256sum 输出格式)
			if len(args) > 1 {
				fmt.Printf("%s  %s\n", id, path)
			} else {
				fmt.Println(id)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(idCmd)
}
