package ingester

import (
	"bytes"
	"context"
	"crypto/rand"
	"testing"

	"dataid/pkg/identifier"
	"dataid/pkg/storage/disk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestFlow(t *testing.T) {
	// 1. 准备环境
	tmpDir := t.TempDir()
	store, err := disk.NewAdapter(tmpDir)
	require.NoError(t, err)

	ing := NewIngester(store)
	ctx := context.Background()

	// 2. 准备一个足以触发多次切分的文件 (约 135KB 重复数据)
	content := bytes.Repeat([]byte("dataid similarity vault "), 5000)

	// 3. 执行 Ingest
	manifest, err := ing.IngestBlob(ctx, bytes.NewReader(content))
	require.NoError(t, err)

	// 4. 验证 Manifest
	assert.Equal(t, int64(len(content)), manifest.TotalSize)
	assert.Greater(t, manifest.ChunkCount(), 1, "应该被切分成多个块")
	assert.NoError(t, identifier.Validate(manifest.DataID), "DataID 必须是合法编码")

	// ChunkRef 的 Size 总和必须等于 TotalSize (无缺口、无重叠)
	var sum int64
	for _, ref := range manifest.Chunks {
		sum += ref.Size
	}
	assert.Equal(t, manifest.TotalSize, sum)

	// 5. 验证落盘
	exists, err := store.Has(ctx, manifest.ID())
	require.NoError(t, err)
	assert.True(t, exists, "Manifest 应该被持久化")

	exists, err = store.Has(ctx, manifest.Chunks[0].Hash)
	require.NoError(t, err)
	assert.True(t, exists, "Chunk 应该被持久化")
}

func TestIngest_DedupAndStability(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := disk.NewAdapter(tmpDir)
	require.NoError(t, err)
	ing := NewIngester(store)
	ctx := context.Background()

	data := make([]byte, 400*1024)
	_, err = rand.Read(data)
	require.NoError(t, err)

	m1, err := ing.IngestBlob(ctx, bytes.NewReader(data))
	require.NoError(t, err)
	m2, err := ing.IngestBlob(ctx, bytes.NewReader(data))
	require.NoError(t, err)

	// 同样的数据：CAS 地址和 DataID 都必须稳定
	assert.Equal(t, m1.ID(), m2.ID())
	assert.Equal(t, m1.DataID, m2.DataID)

	// 流水线结果与纯计算路径必须一致
	pure, err := identifier.FromBytes(data)
	require.NoError(t, err)
	assert.Equal(t, pure, m1.DataID)
}

func TestIngest_EmptyBlob(t *testing.T) {
	store, err := disk.NewAdapter(t.TempDir())
	require.NoError(t, err)
	ing := NewIngester(store)

	manifest, err := ing.IngestBlob(context.Background(), bytes.NewReader(nil))
	require.NoError(t, err)

	assert.Equal(t, int64(0), manifest.TotalSize)
	assert.Equal(t, 0, manifest.ChunkCount())
	assert.NoError(t, identifier.Validate(manifest.DataID))
}

func TestIngest_CancelledContext(t *testing.T) {
	store, err := disk.NewAdapter(t.TempDir())
	require.NoError(t, err)
	ing := NewIngester(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	data := make([]byte, 100*1024)
	_, err = ing.IngestBlob(ctx, bytes.NewReader(data))
	assert.ErrorIs(t, err, context.Canceled)
}
