package catalog

import (
	"time"

	"dataid/pkg/types"

	"gorm.io/datatypes"
)

// BlobRecord 是一个已登记 Blob 在关系型数据库中的投影
// CAS 里已经有完整的 Manifest，这里只放需要被查询的字段：
// 按路径找 ID、按 ID 找路径、按汉明距离找相似文件。
type BlobRecord struct {
	// Path 是主键：一个路径同一时刻只对应一个 Blob
	Path string `gorm:"primaryKey;type:varchar(512)"`

	// DataID 相似性标识符 (B-Tree 索引，支持精确反查)
	DataID types.DataID `gorm:"index;type:varchar(32);not null"`

	// Digest 是解码后的 8 字节 Sketch 位
	// 冗余存储是刻意的：相似检索扫描它算汉明距离，
	// 不用每条记录都走一遍 Base58 解码
	Digest []byte `gorm:"not null"`

	// CASHash 指向 Manifest 的精确地址
	CASHash types.Hash `gorm:"type:char(64);not null"`

	Size       int64
	ChunkCount int

	// Meta: 任意的用户标签/属性 (JSON 列)
	Meta datatypes.JSON

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 强制指定表名
func (BlobRecord) TableName() string {
	return "blobs"
}
