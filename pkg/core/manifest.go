package core

import "dataid/pkg/types"

// ChunkRef 描述 Manifest 对底层 Chunk 的一条引用
// Size 必须保留：重组时靠它算 offset，也靠它做完整性对账。
type ChunkRef struct {
	Hash types.Hash `cbor:"h"`
	Size int64      `cbor:"s"`
}

// Manifest 是一个 Blob 的完整描述：
// 有序的块引用 (重组用) + 总大小 + 相似性标识符 DataID。
// 它自己也是 CAS 对象 —— 规范化 CBOR 编码后按 SHA256 寻址。
//
// 注意两个标识符的分工：
//   - ID()   是精确寻址 (内容变一个字节就换地址)
//   - DataID 是相似性标识 (内容变一点，标识符只漂移几个 bit)
type Manifest struct {
	hash     types.Hash `cbor:"-"` // 不参与序列化
	rawBytes []byte     `cbor:"-"` // 缓存序列化后的数据

	TypeVal   ObjectType   `cbor:"t"`  // 必须是 "manifest"
	TotalSize int64        `cbor:"ts"` // Blob 总大小
	DataID    types.DataID `cbor:"id"` // 相似性标识符
	Chunks    []ChunkRef   `cbor:"cs"` // 按流序排列的块引用
}

// NewManifest 密封一个 Manifest (计算规范编码和 CAS Hash)
func NewManifest(totalSize int64, dataID types.DataID, chunks []ChunkRef) (*Manifest, error) {
	m := &Manifest{
		TypeVal:   TypeManifest,
		TotalSize: totalSize,
		DataID:    dataID,
		Chunks:    chunks,
	}
	h, b, err := CalculateHash(m)
	if err != nil {
		return nil, err
	}
	m.hash = h
	m.rawBytes = b
	return m, nil
}

func (m *Manifest) Type() ObjectType { return TypeManifest }
func (m *Manifest) ID() types.Hash   { return m.hash }
func (m *Manifest) Bytes() []byte    { return m.rawBytes }

// ChunkCount 是块数 (catalog 记录用)
func (m *Manifest) ChunkCount() int { return len(m.Chunks) }
