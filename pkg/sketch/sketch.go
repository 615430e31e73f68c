// pkg/sketch/sketch.go
package sketch

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	minhash "github.com/dgryski/go-minhash"
	"github.com/spaolacci/murmur3"
)

// Size 是签名槽位数。64 个槽位取 LSB 正好压成 8 字节 Digest
const Size = 64

// Feature 计算单个块的特征值 (非加密快速哈希)
// 块内容 -> 特征，是 Sketch 的输入粒度；Sketch 自己不关心块的字节。
func Feature(chunk []byte) uint64 {
	return xxhash.Sum64(chunk)
}

// Sketch 把一个变长的特征多重集压缩成固定大小的 Min-wise 签名
// 两个特征集的 Jaccard 相似度 ≈ 签名槽位的相等比例，
// 这是整个“相似文件 -> 相近标识符”链路的数学根基。
//
// 顺序无关：特征以任意顺序喂入，签名相同。
// 但上游管道仍然必须按流序消费块 —— 那是存储去重的要求，不是这里的。
type Sketch struct {
	mw *minhash.MinWise
}

// New 创建一个空签名
// 两个独立的哈希族 (xxhash64 / murmur3) 组合出 Size 个排列。
func New() *Sketch {
	return &Sketch{
		mw: minhash.NewMinWise(xxhash.Sum64, murmur3.Sum64, Size),
	}
}

// Add 喂入一个特征值
func (s *Sketch) Add(feature uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], feature)
	s.mw.Push(buf[:])
}

// Signature 返回 Size 个槽位的最小值
func (s *Sketch) Signature() []uint64 {
	return s.mw.Signature()
}

// PackLSB 取每个槽位的最低位，按 MSB-first 压进字节
// (第 0 个槽位落在第 0 字节的最高位)，返回 Size/8 字节。
func (s *Sketch) PackLSB() []byte {
	sig := s.mw.Signature()
	out := make([]byte, len(sig)/8)
	for i, v := range sig {
		if v&1 == 1 {
			out[i/8] |= 0x80 >> (i % 8)
		}
	}
	return out
}
