package assembler

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"

	"dataid/pkg/core"
	"dataid/pkg/storage"
	"dataid/pkg/types"
)

// Assembler 按 Manifest 把块按流序拼回完整的 Blob
type Assembler struct {
	store storage.Store
}

func New(store storage.Store) *Assembler {
	return &Assembler{store: store}
}

// AssembleBlob 根据 Manifest 的 CAS Hash，把还原的数据流写入 writer
func (a *Assembler) AssembleBlob(ctx context.Context, hash types.Hash, w io.Writer) error {
	manifest, err := a.loadManifest(ctx, hash)
	if err != nil {
		return err
	}

	// 逐块读取并写出 (Reassembly)，严格按 ChunkRef 顺序
	var written int64
	for i, ref := range manifest.Chunks {
		// 匿名函数构建 Scope，保证每个块的 Reader 及时关闭，不堆积句柄
		err := func() error {
			rc, err := a.store.Get(ctx, ref.Hash)
			if err != nil {
				return fmt.Errorf("failed to get chunk %d: %w", i, err)
			}
			defer rc.Close()

			n, err := io.Copy(w, rc)
			if err != nil {
				return fmt.Errorf("failed to write chunk %d data: %w", i, err)
			}
			if n != ref.Size {
				return fmt.Errorf("chunk %d size mismatch: manifest says %d, store gave %d", i, ref.Size, n)
			}
			written += n
			return nil
		}()
		if err != nil {
			return err
		}
	}

	// 完整性对账
	if written != manifest.TotalSize {
		return fmt.Errorf("assembled %d bytes, manifest says %d", written, manifest.TotalSize)
	}
	return nil
}

// Manifest 读取并解码一个 Manifest (CLI similar/cat 都要用)
func (a *Assembler) Manifest(ctx context.Context, hash types.Hash) (*core.Manifest, error) {
	return a.loadManifest(ctx, hash)
}

func (a *Assembler) loadManifest(ctx context.Context, hash types.Hash) (*core.Manifest, error) {
	rc, err := a.store.Get(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get manifest: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest bytes: %w", err)
	}

	var manifest core.Manifest
	if err := core.DecodeObject(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}

	// 类型防御
	if manifest.TypeVal != core.TypeManifest {
		return nil, fmt.Errorf("object is not a manifest, got: %s", manifest.TypeVal)
	}
	return &manifest, nil
}

// PrintObject 打印一个对象的概要 (调试用)
// Manifest 打结构化概要；Chunk 只打前 100 字节的 Hex，防止终端乱码。
func (a *Assembler) PrintObject(ctx context.Context, hash types.Hash, w io.Writer) error {
	rc, err := a.store.Get(ctx, hash)
	if err != nil {
		return err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return err
	}

	// 尝试按 Manifest 解码探测类型
	var header struct {
		TypeVal core.ObjectType `cbor:"t"`
	}
	if err := core.DecodeObject(data, &header); err != nil || header.TypeVal != core.TypeManifest {
		// 解不出来就是 Chunk (Raw Data)
		fmt.Fprintf(w, "Type: Chunk (Raw Data)\nSize: %d bytes\n\n", len(data))
		preview := data
		if len(preview) > 100 {
			preview = preview[:100]
		}
		fmt.Fprintf(w, "Preview (hex): %s\n", hex.EncodeToString(preview))
		return nil
	}

	var manifest core.Manifest
	if err := core.DecodeObject(data, &manifest); err != nil {
		return fmt.Errorf("failed to decode manifest: %w", err)
	}

	fmt.Fprintf(w, "Type:    Manifest\nDataID:  %s\nSize:    %d bytes\nChunks:  %d\n",
		manifest.DataID, manifest.TotalSize, len(manifest.Chunks))
	return nil
}
