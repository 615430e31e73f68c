package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"dataid/pkg/types"

	"github.com/fxamacker/cbor/v2"
)

// 规范化 CBOR 编码选项
// Manifest 的 Hash 必须对“同一个逻辑对象”唯一，所以编码必须确定：
// Map Key 排序、禁止不定长、时间戳用 Unix 整数。
var encOptions = cbor.EncOptions{
	Sort:          cbor.SortCanonical,
	ShortestFloat: cbor.ShortestFloatNone,
	Time:          cbor.TimeUnix,
	TimeTag:       cbor.EncTagNone,
	IndefLength:   cbor.IndefLengthForbidden,
	BigIntConvert: cbor.BigIntConvertShortest,
}

// 全局复用的编码模式
var em, _ = encOptions.EncMode()

// 解码选项：除了对应的规范性约束，还限制容器大小防 DoS
var decOptions = cbor.DecOptions{
	MaxArrayElements: 1 << 20, // 大文件的 Manifest 可能有几十万个 ChunkRef
	MaxMapPairs:      10000,
	MaxNestedLevels:  100,
	IndefLength:      cbor.IndefLengthForbidden,
	DupMapKey:        cbor.DupMapKeyEnforcedAPF,
	BignumTag:        cbor.BignumTagForbidden,
	TimeTag:          cbor.DecTagIgnored,
}

var dm, _ = decOptions.DecMode()

// CalculateHash 计算对象的 CAS Hash 和序列化数据
func CalculateHash(v any) (types.Hash, []byte, error) {
	data, err := em.Marshal(v)
	if err != nil {
		return "", nil, fmt.Errorf("failed to marshal object: %w", err)
	}

	hashBytes := sha256.Sum256(data)
	return types.Hash(hex.EncodeToString(hashBytes[:])), data, nil
}

// CalculateBlobHash 计算原始数据块的 Hash
func CalculateBlobHash(data []byte) types.Hash {
	hashBytes := sha256.Sum256(data)
	return types.Hash(hex.EncodeToString(hashBytes[:]))
}

// DecodeObject 通用的解码函数 (供 assembler 等外部使用)
func DecodeObject(data []byte, v any) error {
	return dm.Unmarshal(data, v)
}
