package chunker

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain 把一个会话的所有块按序收集出来
func drain(t *testing.T, c *Chunker) [][]byte {
	t.Helper()
	var chunks [][]byte
	for {
		chunk, err := c.Next()
		if errors.Is(err, io.EOF) {
			return chunks
		}
		require.NoError(t, err)
		require.NotEmpty(t, chunk, "绝不允许产出空块")
		chunks = append(chunks, chunk)
	}
}

func TestChunker_Coverage(t *testing.T) {
	// 覆盖性：所有块按序拼接必须完全还原原始流，无缺口、无重叠
	data := make([]byte, 1024*1024)
	_, err := rand.Read(data)
	require.NoError(t, err)

	chunks := drain(t, New(bytes.NewReader(data)))
	require.NotEmpty(t, chunks)

	assert.Equal(t, data, bytes.Join(chunks, nil))
}

func TestChunker_EmptySource(t *testing.T) {
	// 空流：零个块，无错误
	c := New(bytes.NewReader(nil))
	_, err := c.Next()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 0, c.Count())

	// EOF 之后继续调用也必须稳定返回 EOF
	_, err = c.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestChunker_Deterministic(t *testing.T) {
	data := make([]byte, 512*1024)
	_, err := rand.Read(data)
	require.NoError(t, err)

	chunks1 := drain(t, New(bytes.NewReader(data)))
	chunks2 := drain(t, New(bytes.NewReader(data)))

	require.Equal(t, len(chunks1), len(chunks2), "相同输入两次切分，块数必须一致")
	for i := range chunks1 {
		assert.Equal(t, chunks1[i], chunks2[i], "chunk %d 不一致", i)
	}
}

func TestChunker_BoundsAndPhaseSwitch(t *testing.T) {
	// 2MB 随机数据：细相位块 <= 640B，100 块内必然切到粗相位
	data := make([]byte, 2*1024*1024)
	_, err := rand.Read(data)
	require.NoError(t, err)

	chunks := drain(t, New(bytes.NewReader(data)))
	require.Greater(t, len(chunks), PhaseSwitchCount, "数据量足够，必须越过相位切换点")

	for i, chunk := range chunks {
		last := i == len(chunks)-1

		// 按块序号选相位：0-99 细，100+ 粗
		p := FinePhase
		if i >= PhaseSwitchCount {
			p = CoarsePhase
		}

		assert.LessOrEqual(t, len(chunk), p.MaxSize, "chunk %d 超过硬上限", i)
		if !last {
			// 只有流的最后一块允许低于 MinSize
			assert.GreaterOrEqual(t, len(chunk), p.MinSize, "chunk %d 低于硬下限", i)
		}
	}
}

func TestChunker_EditLocality(t *testing.T) {
	// 编辑局部性：流中部插入几个字节，只有编辑点附近的块会变，
	// 远处的块 (前缀和后缀) 保持逐字节一致
	base := make([]byte, 2*1024*1024)
	_, err := rand.Read(base)
	require.NoError(t, err)

	// 在 75% 处插入 16 字节 (远离相位切换区，避免块计数漂移搅局)
	editAt := len(base) * 3 / 4
	edited := make([]byte, 0, len(base)+16)
	edited = append(edited, base[:editAt]...)
	edited = append(edited, []byte("0123456789abcdef")...)
	edited = append(edited, base[editAt:]...)

	chunksA := drain(t, New(bytes.NewReader(base)))
	chunksB := drain(t, New(bytes.NewReader(edited)))

	// 公共前缀
	prefix := 0
	for prefix < len(chunksA) && prefix < len(chunksB) &&
		bytes.Equal(chunksA[prefix], chunksB[prefix]) {
		prefix++
	}

	// 公共后缀
	suffix := 0
	for suffix < len(chunksA)-prefix && suffix < len(chunksB)-prefix &&
		bytes.Equal(chunksA[len(chunksA)-1-suffix], chunksB[len(chunksB)-1-suffix]) {
		suffix++
	}

	changedA := len(chunksA) - prefix - suffix
	changedB := len(chunksB) - prefix - suffix

	assert.Greater(t, prefix, 0, "编辑点之前应该有完全一致的块")
	assert.Greater(t, suffix, 0, "编辑点之后块应该重新对齐")
	assert.LessOrEqual(t, changedA, 8, "受影响的块数应该是局部的，实际 %d", changedA)
	assert.LessOrEqual(t, changedB, 8, "受影响的块数应该是局部的，实际 %d", changedB)
}

func TestChunker_ExactMaxSizeStream(t *testing.T) {
	// 全 1 掩码永不命中 -> 每块都硬切在 MaxSize。
	// 流长恰好是 MaxSize 的整数倍时，不允许出现尾部空块
	p := Params{
		NormSize:      40,
		MinSize:       20,
		MaxSize:       640,
		MaskPrimary:   ^uint64(0),
		MaskSecondary: ^uint64(0),
	}
	c, err := NewWithPhases(bytes.NewReader(make([]byte, 3*640)), p, p)
	require.NoError(t, err)

	chunks := drain(t, c)
	require.Len(t, chunks, 3)
	for _, chunk := range chunks {
		assert.Len(t, chunk, 640)
	}
}

func TestChunker_ShortStream(t *testing.T) {
	// 比 MinSize 还短的流：一个短尾块
	c := New(bytes.NewReader([]byte("hello")))
	chunk, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), chunk)

	_, err = c.Next()
	assert.ErrorIs(t, err, io.EOF)
}

// failReader 先吐一段数据，然后报错。用于验证读失败语义
type failReader struct {
	data []byte
	err  error
}

func (f *failReader) Read(p []byte) (int, error) {
	if len(f.data) == 0 {
		return 0, f.err
	}
	n := copy(p, f.data)
	f.data = nil
	return n, nil
}

func TestChunker_SourceReadError(t *testing.T) {
	boom := errors.New("disk on fire")
	c := New(&failReader{data: make([]byte, 100), err: boom})

	_, err := c.Next()
	require.Error(t, err)

	// 必须是带类型的错误，并且保留原始错误链
	var srcErr *SourceError
	assert.ErrorAs(t, err, &srcErr)
	assert.ErrorIs(t, err, boom)
}

func TestNewWithPhases_RejectsInvalidParams(t *testing.T) {
	bad := Params{NormSize: 10, MinSize: 20, MaxSize: 640}

	_, err := NewWithPhases(bytes.NewReader(nil), bad, CoarsePhase)
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = NewWithPhases(bytes.NewReader(nil), FinePhase, bad)
	assert.ErrorIs(t, err, ErrInvalidParams)
}
