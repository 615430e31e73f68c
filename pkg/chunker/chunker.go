package chunker

import (
	"errors"
	"fmt"
	"io"
)

// SourceError 包装底层 Reader 的读取失败
// 对整个会话是致命的：不重试、不吐半截块，直接上抛给调用方。
// (重试策略如果有，属于调用方/Source 自己的事)
type SourceError struct {
	Err error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("chunker: source read failed: %v", e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// Chunker 是拉模式 (Pull-based) 的流式切分器
// 它在会话期间独占底层 Reader，按流序产出 CDC 块。
//
// 状态机：Fine (counter < 100) -> Coarse (counter >= 100) -> Done。
// 切换单向，绝不回退。
//
// 并发模型：单个流的切分天然串行 (每次边界判定依赖之前的缓冲状态)，
// 不支持也没有意义并发。多个独立流各建各的 Chunker 即可，零共享状态。
type Chunker struct {
	r       io.Reader
	section []byte // 工作窗口：尚未产出的字节，永远是原始流的连续后缀
	scratch []byte // 读取用的临时缓冲
	counter int    // 已产出的块数，决定当前相位
	eof     bool   // 底层 Reader 已耗尽

	fine   Params
	coarse Params
}

// New 用默认相位 (FinePhase / CoarsePhase) 创建切分器
// Chunker 在会话期间独占 r，调用方不要再碰它。
func New(r io.Reader) *Chunker {
	c, _ := NewWithPhases(r, FinePhase, CoarsePhase)
	return c
}

// NewWithPhases 用自定义相位创建切分器
// 非法参数组在这里直接拒绝 (见 Params.Validate)。
func NewWithPhases(r io.Reader, fine, coarse Params) (*Chunker, error) {
	if err := fine.Validate(); err != nil {
		return nil, fmt.Errorf("fine phase: %w", err)
	}
	if err := coarse.Validate(); err != nil {
		return nil, fmt.Errorf("coarse phase: %w", err)
	}

	// 读缓冲直接按粗相位的上限开 (Open Question 的取舍)：
	// 细相位阶段最多浪费 64KB 容量，换来填充逻辑完全不用关心相位切换。
	return &Chunker{
		r:       r,
		scratch: make([]byte, coarse.MaxSize),
		fine:    fine,
		coarse:  coarse,
	}, nil
}

// phase 根据计数器选择当前相位 (参数即数据，不复制分支逻辑)
func (c *Chunker) phase() Params {
	if c.counter < PhaseSwitchCount {
		return c.fine
	}
	return c.coarse
}

// fill 把窗口补到至少 max 字节 (或者读到 EOF)
// 【关键】边界判定器必须看到 >= MaxSize 的窗口，才能保证
// 要么找到真边界，要么正确地硬切；窗口不足只允许发生在流末尾。
func (c *Chunker) fill(max int) error {
	for !c.eof && len(c.section) < max {
		n, err := c.r.Read(c.scratch)
		if n > 0 {
			c.section = append(c.section, c.scratch[:n]...)
		}
		if errors.Is(err, io.EOF) {
			c.eof = true
			return nil
		}
		if err != nil {
			return &SourceError{Err: err}
		}
	}
	return nil
}

// Next 产出下一个块，流结束时返回 io.EOF
// 返回的切片是独立拷贝，调用方可以随意保留。
//
// 终止保证：所有块按序拼接 == 原始流，不多不少不重叠；
// 空流产出零个块，不会有尾部空块。
func (c *Chunker) Next() ([]byte, error) {
	p := c.phase()

	if err := c.fill(p.MaxSize); err != nil {
		return nil, err
	}
	if len(c.section) == 0 {
		return nil, io.EOF
	}

	b := ChunkLength(c.section, p)

	chunk := make([]byte, b)
	copy(chunk, c.section[:b])

	// 已产出的字节绝不回到窗口里
	c.section = c.section[b:]
	c.counter++

	return chunk, nil
}

// Count 返回本会话已产出的块数
func (c *Chunker) Count() int {
	return c.counter
}
