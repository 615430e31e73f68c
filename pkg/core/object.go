package core

import "dataid/pkg/types"

// ObjectType 定义了 CAS 里的对象类型
type ObjectType string

const (
	TypeChunk    ObjectType = "chunk"    // CDC 切出来的原始数据块 (L1)
	TypeManifest ObjectType = "manifest" // 整个 Blob 的块清单 + DataID (L2)
)

// Object 是所有 CAS 节点的通用接口
type Object interface {
	// Type 返回对象类型
	Type() ObjectType

	// ID 返回对象的 CAS 哈希 (SHA256)
	ID() types.Hash

	// Bytes 返回对象的序列化数据 (用于存储)
	Bytes() []byte
}
