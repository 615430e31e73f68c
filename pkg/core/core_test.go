package core

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"dataid/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockHash 生成一个合法的 64 字符 Hex Hash
func mockHash(input string) types.Hash {
	sum := sha256.Sum256([]byte(input))
	return types.Hash(hex.EncodeToString(sum[:]))
}

func TestChunk_Addressing(t *testing.T) {
	data := []byte("hello dataid")
	c := NewChunk(data)

	assert.Equal(t, TypeChunk, c.Type())
	assert.Equal(t, data, c.Bytes())
	assert.True(t, c.ID().IsValid(), "Chunk Hash 必须是 64 字符 Hex")

	// 内容寻址：同内容同地址
	assert.Equal(t, c.ID(), NewChunk(data).ID())
	assert.NotEqual(t, c.ID(), NewChunk([]byte("hello dataid!")).ID())
}

func TestManifest_SealDeterministic(t *testing.T) {
	refs := []ChunkRef{
		{Hash: mockHash("chunk-0"), Size: 100},
		{Hash: mockHash("chunk-1"), Size: 250},
	}

	m1, err := NewManifest(350, "CDCfakeid", refs)
	require.NoError(t, err)
	m2, err := NewManifest(350, "CDCfakeid", refs)
	require.NoError(t, err)

	// 规范化 CBOR：同样的逻辑对象必须得到同样的 Hash
	assert.Equal(t, m1.ID(), m2.ID())
	assert.Equal(t, m1.Bytes(), m2.Bytes())
	assert.True(t, m1.ID().IsValid())
	assert.Equal(t, 2, m1.ChunkCount())
}

func TestManifest_RoundTrip(t *testing.T) {
	refs := []ChunkRef{{Hash: mockHash("only"), Size: 42}}
	m, err := NewManifest(42, "CDCroundtrip", refs)
	require.NoError(t, err)

	var decoded Manifest
	require.NoError(t, DecodeObject(m.Bytes(), &decoded))

	assert.Equal(t, TypeManifest, decoded.TypeVal)
	assert.Equal(t, int64(42), decoded.TotalSize)
	assert.Equal(t, types.DataID("CDCroundtrip"), decoded.DataID)
	assert.Equal(t, refs, decoded.Chunks)
}

func TestManifest_HashChangesWithContent(t *testing.T) {
	refs := []ChunkRef{{Hash: mockHash("a"), Size: 1}}

	m1, err := NewManifest(1, "CDCone", refs)
	require.NoError(t, err)
	m2, err := NewManifest(1, "CDCtwo", refs)
	require.NoError(t, err)

	// DataID 参与序列化，所以它变了 Manifest 的 CAS 地址也要变
	assert.NotEqual(t, m1.ID(), m2.ID())
}
