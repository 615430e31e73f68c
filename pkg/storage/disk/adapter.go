package disk

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dataid/pkg/core"
	"dataid/pkg/storage"
	"dataid/pkg/types"
)

// Adapter 实现了 storage.Store 接口 (本地磁盘后端)
type Adapter struct {
	rootPath string // 比如: /home/user/.did/objects
}

// NewAdapter 创建一个新的磁盘存储适配器
func NewAdapter(root string) (*Adapter, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create root storage dir: %w", err)
	}
	return &Adapter{rootPath: root}, nil
}

// layout 返回哈希对应的物理路径
// 策略：前 2 个字符作为子目录 (Sharding)，避免单目录百万文件
// Example: hash "aabbcc..." -> root/aa/bbcc...
func (s *Adapter) layout(hash types.Hash) string {
	h := string(hash)
	if len(h) < 2 {
		return filepath.Join(s.rootPath, h)
	}
	return filepath.Join(s.rootPath, h[:2], h[2:])
}

func (s *Adapter) Put(ctx context.Context, obj core.Object) error {
	targetPath := s.layout(obj.ID())

	// 1. 幂等性检查：已存在直接跳过 (CAS 的好处)
	if _, err := os.Stat(targetPath); err == nil {
		return nil
	}

	dir := filepath.Dir(targetPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// 2. 原子写入：先写临时文件再 Rename。
	// 保证要么文件不存在，要么文件是完整的，绝不留半截对象。
	tempFile, err := os.CreateTemp(dir, "temp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tempFile.Name()) // Rename 成功后这句失效，无害

	if _, err := tempFile.Write(obj.Bytes()); err != nil {
		tempFile.Close()
		return err
	}
	if err := tempFile.Close(); err != nil { // 必须先关闭才能 Rename
		return err
	}

	return os.Rename(tempFile.Name(), targetPath)
}

func (s *Adapter) Get(ctx context.Context, hash types.Hash) (io.ReadCloser, error) {
	f, err := os.Open(s.layout(hash))
	if os.IsNotExist(err) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Adapter) Has(ctx context.Context, hash types.Hash) (bool, error) {
	_, err := os.Stat(s.layout(hash))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ExpandHash 在 Shard 目录里按前缀找完整哈希
func (s *Adapter) ExpandHash(ctx context.Context, prefix types.HashPrefix) (types.Hash, error) {
	p := string(prefix)
	if len(p) < 4 {
		return "", fmt.Errorf("hash prefix too short (need >= 4 chars)")
	}

	shard := p[:2]
	rest := p[2:]

	entries, err := os.ReadDir(filepath.Join(s.rootPath, shard))
	if os.IsNotExist(err) {
		return "", storage.ErrNotFound
	}
	if err != nil {
		return "", err
	}

	var found types.Hash
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), rest) {
			continue
		}
		if found != "" {
			return "", storage.ErrAmbiguousHash
		}
		found = types.Hash(shard + e.Name())
	}

	if found == "" {
		return "", storage.ErrNotFound
	}
	return found, nil
}
