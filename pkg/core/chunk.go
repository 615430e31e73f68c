package core

import "dataid/pkg/types"

// Chunk 代表 CDC 切分出来的物理数据块
// 直接按原始字节做 CAS 寻址，不套 CBOR —— 块本身就是叶子。
type Chunk struct {
	hash types.Hash
	data []byte
}

func NewChunk(data []byte) *Chunk {
	return &Chunk{
		hash: CalculateBlobHash(data),
		data: data,
	}
}

func (c *Chunk) Type() ObjectType { return TypeChunk }
func (c *Chunk) ID() types.Hash   { return c.hash }
func (c *Chunk) Bytes() []byte    { return c.data }
func (c *Chunk) Size() int64      { return int64(len(c.data)) }
