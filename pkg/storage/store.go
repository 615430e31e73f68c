package storage

import (
	"context"
	"errors"
	"io"

	"dataid/pkg/core"
	"dataid/pkg/types"
)

var (
	ErrNotFound = errors.New("object not found")
	// ErrAmbiguousHash 短哈希匹配了多个对象
	ErrAmbiguousHash = errors.New("ambiguous hash prefix")
)

// Store 是存储后端的统一接口
// 实现可以是本地磁盘、S3，或者叠了 Redis 缓存的装饰器。
type Store interface {
	// Put 将一个核心对象持久化
	// 不需要返回 Hash，因为 Hash 已经在 core.Object 里了。
	// CAS 语义：对象已存在时 Put 是无害的 no-op (幂等)。
	Put(ctx context.Context, obj core.Object) error

	// Get 根据 Hash 读取原始数据
	// 返回 io.ReadCloser 而不是 []byte：重组大文件时按块流式读，
	// 不把整个 Blob 拽进内存。
	Get(ctx context.Context, hash types.Hash) (io.ReadCloser, error)

	// Has 检查对象是否存在 (去重逻辑的热路径)
	Has(ctx context.Context, hash types.Hash) (bool, error)

	// ExpandHash 把 CLI 输入的短前缀扩展成完整 Hash
	// 0 个匹配 -> ErrNotFound，多个 -> ErrAmbiguousHash
	ExpandHash(ctx context.Context, prefix types.HashPrefix) (types.Hash, error)
}
