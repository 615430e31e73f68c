package ingester

import (
	"context"
	"errors"
	"fmt"
	"io"

	"dataid/pkg/chunker"
	"dataid/pkg/core"
	"dataid/pkg/identifier"
	"dataid/pkg/sketch"
	"dataid/pkg/storage"
)

// Ingester 驱动整条管道：
// 字节流 -> CDC 切分 -> 逐块入库 (去重) -> 特征 -> Sketch -> DataID -> Manifest
type Ingester struct {
	store storage.Store
}

func NewIngester(store storage.Store) *Ingester {
	return &Ingester{store: store}
}

// IngestBlob 流式消费一个 Reader，返回密封好的 Manifest
// 块严格按流序处理：入库顺序、ChunkRef 顺序都不许重排。
// 任何一步失败立即中止，不落半截 Manifest。
func (ing *Ingester) IngestBlob(ctx context.Context, r io.Reader) (*core.Manifest, error) {
	c := chunker.New(r)
	sk := sketch.New()

	var refs []core.ChunkRef
	var total int64

	for {
		data, err := c.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to chunk blob: %w", err)
		}

		// 响应取消：大文件 ingest 可能跑很久
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		chunkObj := core.NewChunk(data)
		if err := ing.store.Put(ctx, chunkObj); err != nil {
			return nil, fmt.Errorf("failed to store chunk: %w", err)
		}

		sk.Add(sketch.Feature(data))
		refs = append(refs, core.ChunkRef{Hash: chunkObj.ID(), Size: chunkObj.Size()})
		total += chunkObj.Size()
	}

	// 密封 Manifest (DataID 进清单，清单进 CAS)
	manifest, err := core.NewManifest(total, identifier.Encode(sk.PackLSB()), refs)
	if err != nil {
		return nil, fmt.Errorf("failed to create manifest: %w", err)
	}

	if err := ing.store.Put(ctx, manifest); err != nil {
		return nil, fmt.Errorf("failed to store manifest: %w", err)
	}

	return manifest, nil
}
