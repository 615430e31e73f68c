package assembler

import (
	"bytes"
	"context"
	"crypto/rand"
	"testing"

	"dataid/pkg/ingester"
	"dataid/pkg/storage"
	"dataid/pkg/storage/disk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_RoundTrip(t *testing.T) {
	store, err := disk.NewAdapter(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	// 1. Ingest 一份随机数据
	data := make([]byte, 600*1024)
	_, err = rand.Read(data)
	require.NoError(t, err)

	manifest, err := ingester.NewIngester(store).IngestBlob(ctx, bytes.NewReader(data))
	require.NoError(t, err)

	// 2. Assemble 回来，必须逐字节一致
	var out bytes.Buffer
	require.NoError(t, New(store).AssembleBlob(ctx, manifest.ID(), &out))
	assert.Equal(t, data, out.Bytes())
}

func TestAssemble_MissingManifest(t *testing.T) {
	store, err := disk.NewAdapter(t.TempDir())
	require.NoError(t, err)

	var out bytes.Buffer
	err = New(store).AssembleBlob(context.Background(),
		"0000000000000000000000000000000000000000000000000000000000000000", &out)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestAssemble_RejectsChunkAsManifest(t *testing.T) {
	store, err := disk.NewAdapter(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	// 直接把一个 Chunk 的哈希当 Manifest 用 -> 类型防御要挡住
	manifest, err := ingester.NewIngester(store).IngestBlob(ctx, bytes.NewReader(bytes.Repeat([]byte("x"), 4096)))
	require.NoError(t, err)
	require.NotEmpty(t, manifest.Chunks)

	var out bytes.Buffer
	err = New(store).AssembleBlob(ctx, manifest.Chunks[0].Hash, &out)
	assert.Error(t, err)
}

func TestPrintObject(t *testing.T) {
	store, err := disk.NewAdapter(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	manifest, err := ingester.NewIngester(store).IngestBlob(ctx, bytes.NewReader(bytes.Repeat([]byte("y"), 8192)))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, New(store).PrintObject(ctx, manifest.ID(), &out))
	assert.Contains(t, out.String(), "Manifest")
	assert.Contains(t, out.String(), string(manifest.DataID))

	out.Reset()
	require.NoError(t, New(store).PrintObject(ctx, manifest.Chunks[0].Hash, &out))
	assert.Contains(t, out.String(), "Chunk")
}
