package commands

import (
	"context"
	"fmt"
	"os"

	"dataid/pkg/assembler"
	"dataid/pkg/types"

	"github.com/spf13/cobra"
)

var catRaw bool

var catCmd = &cobra.Command{
	Use:   "cat [hash]",
	Short: "Reassemble blob content by manifest hash",
	Long: `Stream the reconstructed blob to stdout, given its manifest hash (short
prefixes are expanded). With --raw, pretty-print the stored object instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if DID == nil {
			return fmt.Errorf("app not initialized")
		}
		ctx := context.Background()

		// 短哈希扩展：让用户少敲 60 个字符
		hash := types.Hash(args[0])
		if !hash.IsValid() {
			expanded, err := DID.Store.ExpandHash(ctx, types.HashPrefix(args[0]))
			if err != nil {
				return fmt.Errorf("cannot resolve '%s': %w", args[0], err)
			}
			hash = expanded
		}

		asm := assembler.New(DID.Store)

		// --raw: 调试视角，看对象本身 (CBOR 字段或 chunk 十六进制预览)
		if catRaw {
			return asm.PrintObject(ctx, hash, os.Stdout)
		}

		// 默认：重组整个 Blob 流到 stdout
		// 文本文件直接显示；二进制可以 > file.bin 重定向
		if err := asm.AssembleBlob(ctx, hash, os.Stdout); err != nil {
			return fmt.Errorf("cat failed: %w", err)
		}
		return nil
	},
}

func init() {
	catCmd.Flags().BoolVar(&catRaw, "raw", false, "pretty-print the stored object instead of reassembling")
	rootCmd.AddCommand(catCmd)
}
