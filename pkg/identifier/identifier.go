// pkg/identifier/identifier.go
package identifier

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/bits"

	"dataid/pkg/chunker"
	"dataid/pkg/sketch"
	"dataid/pkg/types"

	"github.com/mr-tron/base58"
)

// Header 是 Digest 的 1 字节版本头
// 编码后的 DataID 以它开头，顺便起到格式自校验的作用。
const Header byte = 0x20

// DigestSize = 1 字节头 + 8 字节 Sketch LSB
const DigestSize = 1 + sketch.Size/8

var ErrMalformed = errors.New("identifier: malformed data id")

// FromReader 跑完整管道：CDC 切分 -> 逐块特征 -> Min-wise 签名 -> Digest -> Base58
// 只算标识符，不落任何存储。r 在会话期间被独占。
func FromReader(r io.Reader) (types.DataID, error) {
	sk := sketch.New()

	c := chunker.New(r)
	for {
		chunk, err := c.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("identifier: chunking failed: %w", err)
		}
		sk.Add(sketch.Feature(chunk))
	}

	return Encode(sk.PackLSB()), nil
}

// FromBytes 是 FromReader 的便利封装
func FromBytes(data []byte) (types.DataID, error) {
	return FromReader(bytes.NewReader(data))
}

// Encode 把 8 字节 Sketch 压缩位装配成 DataID
func Encode(packed []byte) types.DataID {
	digest := make([]byte, 0, DigestSize)
	digest = append(digest, Header)
	digest = append(digest, packed...)
	return types.DataID(base58.Encode(digest))
}

// Digest 解码并校验一个 DataID，返回 8 字节的 Sketch 部分
func Digest(id types.DataID) ([]byte, error) {
	raw, err := base58.Decode(string(id))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(raw) != DigestSize || raw[0] != Header {
		return nil, fmt.Errorf("%w: bad header or length", ErrMalformed)
	}
	return raw[1:], nil
}

// Validate 只做格式检查
func Validate(id types.DataID) error {
	_, err := Digest(id)
	return err
}

// Distance 返回两个 DataID 的汉明距离 (0..64)
// 距离越小，底层内容的重叠越多。
func Distance(a, b types.DataID) (int, error) {
	da, err := Digest(a)
	if err != nil {
		return 0, err
	}
	db, err := Digest(b)
	if err != nil {
		return 0, err
	}

	d := 0
	for i := range da {
		d += bits.OnesCount8(da[i] ^ db[i])
	}
	return d, nil
}

// Similarity 把距离折算成 [0, 1] 的相似度估计
func Similarity(a, b types.DataID) (float64, error) {
	d, err := Distance(a, b)
	if err != nil {
		return 0, err
	}
	return 1 - float64(d)/float64(sketch.Size), nil
}

// HammingDistance 是对原始 Digest 字节的距离计算 (catalog 批量排序用，
// 免得每条记录都走一遍 Base58 解码)
func HammingDistance(da, db []byte) int {
	d := 0
	for i := range da {
		d += bits.OnesCount8(da[i] ^ db[i])
	}
	return d
}
