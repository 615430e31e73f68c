package chunker

import (
	"errors"
	"fmt"
)

// ErrInvalidParams 表示参数组违反了 MinSize <= NormSize <= MaxSize
// 架构决策：构造时直接拒绝，绝不悄悄 Clamp —— 参数被偷偷改掉比报错可怕得多
var ErrInvalidParams = errors.New("chunker: invalid parameter set")

// Params 是一个切分相位 (Phase) 的不可变参数组
// 两个掩码的零位越多，命中越难，期望块长越长。
// MaskPrimary (严) 用在 NormSize 之前，MaskSecondary (宽) 用在之后，
// 让块长分布收敛到 NormSize 附近，而不是顶着 MaxSize 跑。
type Params struct {
	NormSize      int    // 期望块长 (归一化目标)
	MinSize       int    // 硬下限 (最后一块除外)
	MaxSize       int    // 硬上限
	MaskPrimary   uint64 // [MinSize, NormSize) 区间的严掩码
	MaskSecondary uint64 // [NormSize, MaxSize) 区间的宽掩码
}

// 相位常量沿用原型的取值：
// 流的开头 (头部、小的结构化区域) 用细粒度，指纹分辨率高；
// 第 100 块之后切到粗粒度，吞吐高、Sketch 小。
var (
	// FinePhase 细粒度相位：目标 40B，上限 640B
	FinePhase = Params{
		NormSize:      40,
		MinSize:       20,
		MaxSize:       640,
		MaskPrimary:   0x0001_6118,
		MaskSecondary: 0x0000_A0B1,
	}

	// CoarsePhase 粗粒度相位：目标 4KB，上限 64KB
	CoarsePhase = Params{
		NormSize:      4096,
		MinSize:       2048,
		MaxSize:       65536,
		MaskPrimary:   0x0003_5907_0353_0000,
		MaskSecondary: 0x0000_D900_0353_0000,
	}
)

// PhaseSwitchCount 是细 -> 粗的切换点 (已产出的块数)
// 单向切换，会话内绝不回退。
const PhaseSwitchCount = 100

// Validate 检查参数组的不变量
func (p Params) Validate() error {
	if p.MinSize <= 0 {
		return fmt.Errorf("%w: min size must be positive, got %d", ErrInvalidParams, p.MinSize)
	}
	if p.MinSize > p.NormSize || p.NormSize > p.MaxSize {
		return fmt.Errorf("%w: require min <= norm <= max, got %d/%d/%d",
			ErrInvalidParams, p.MinSize, p.NormSize, p.MaxSize)
	}
	return nil
}
