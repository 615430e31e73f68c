package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"

	"dataid/pkg/catalog"
	"dataid/pkg/identifier"
	"dataid/pkg/ingester"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var addCmd = &cobra.Command{
	Use:   "add [path]",
	Short: "Register file contents in the repository",
	Long: `Chunk the given file (or every file under the given directory), store the
chunks and manifest, and record the similarity identifier in the catalog.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if DID == nil {
			return fmt.Errorf("app not initialized")
		}
		targetPath := args[0] // 用户输入的路径，可能是文件，也可能是目录

		ctx := context.Background()
		ing := ingester.NewIngester(DID.Store)
		start := time.Now()

		// 1. 先收集文件列表 (遍历很快，ingest 很慢，分开做)
		var files []string
		walkFn := func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err // 权限错误等
			}

			// [安全防御]：永远跳过自己的元数据目录
			if d.IsDir() && (d.Name() == ".did" || d.Name() == ".git") {
				return filepath.SkipDir
			}
			if d.IsDir() {
				return nil
			}

			// .didignore + 系统默认规则
			if DID.Ignore.Matches(path) {
				return nil
			}

			files = append(files, path)
			return nil
		}

		// 如果 targetPath 是文件，WalkDir 也会正常工作（只回调一次）
		if err := filepath.WalkDir(targetPath, walkFn); err != nil {
			return fmt.Errorf("walk failed: %w", err)
		}

		if len(files) == 0 {
			fmt.Println("⚠️  No files added.")
			return nil
		}

		// 2. 并行 ingest
		// 单个文件内部的切分是严格串行的，文件之间并行才安全。
		var addedCount, totalSize atomic.Int64

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(runtime.NumCPU())
		for _, path := range files {
			g.Go(func() error {
				size, err := addFile(gctx, ing, path)
				if err != nil {
					return fmt.Errorf("failed to ingest %s: %w", path, err)
				}
				addedCount.Add(1)
				totalSize.Add(size)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		duration := time.Since(start)
		fmt.Printf("✅ Added %d files (%d bytes) in %s\n", addedCount.Load(), totalSize.Load(), duration)
		return nil
	},
}

// addFile 跑完单个文件的整条管道：chunk -> store -> manifest -> catalog
func addFile(ctx context.Context, ing *ingester.Ingester, path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	manifest, err := ing.IngestBlob(ctx, f)
	if err != nil {
		return 0, err
	}

	// Digest 冗余存进 catalog，相似检索不用再解码 Base58
	digest, err := identifier.Digest(manifest.DataID)
	if err != nil {
		return 0, err
	}

	rec := &catalog.BlobRecord{
		Path:       path,
		DataID:     manifest.DataID,
		Digest:     digest,
		CASHash:    manifest.ID(),
		Size:       manifest.TotalSize,
		ChunkCount: manifest.ChunkCount(),
	}
	if err := DID.Catalog.Upsert(ctx, rec); err != nil {
		return 0, fmt.Errorf("failed to record %s in catalog: %w", path, err)
	}

	fmt.Printf("%s  %s\n", manifest.DataID, path)
	return manifest.TotalSize, nil
}

func init() {
	rootCmd.AddCommand(addCmd)
}
