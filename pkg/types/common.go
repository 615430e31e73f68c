// pkg/types/common.go
package types

// Hash 代表 CAS 对象的唯一标识符 (SHA256 Hex String)
// 这是一个“值对象”，应当是不可变的。
type Hash string

func (h Hash) String() string { return string(h) }

// 验证 Hash 合法性
func (h Hash) IsZero() bool  { return h == "" }
func (h Hash) IsValid() bool { return len(h) == 64 } // 简单的长度检查

// DataID 是相似性标识符 (Base58 编码的 9 字节 Digest)
// 注意：它不是 CAS 地址！内容相似的两个文件 DataID 的汉明距离很小，
// 但只有完全相同的文件 Hash 才相等。
type DataID string

func (id DataID) String() string { return string(id) }
func (id DataID) IsZero() bool   { return id == "" }

// HashPrefix 用于短哈希查找 (如 CLI 里输入前 8 位)
type HashPrefix string

func (p HashPrefix) String() string { return string(p) }

type RepoPath string
