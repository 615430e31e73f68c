package chunker

// ChunkLength 是边界判定器 (Boundary Evaluator)：
// 给定当前缓冲窗口和参数组，返回本块应该在哪里结束。
// 纯函数 —— 结果只依赖窗口内容和参数，与字节流里的绝对位置无关。
// 这正是 CDC 的“局部性”来源：插入/删除只扰动编辑点附近的块。
//
// 返回值 b 满足 0 < b <= len(data)，块为 data[:b]。
func ChunkLength(data []byte, p Params) int {
	n := len(data)

	// 剩余不足 MinSize：整段收尾成一个短块。
	// 只有流末尾才允许走到这里 (引擎保证窗口在非 EOF 时 >= MaxSize)。
	if n <= p.MinSize {
		return n
	}

	i := p.MinSize

	// Rolling Pattern: 每次边界搜索都从 0 开始，绝不跨块保留。
	// (pattern << 1) + gear 是前向指纹，没有减项，天然偏向最近的字节。
	var pattern uint64

	// 两段扫描：先严掩码 [min, norm)，再宽掩码 [norm, max)。
	// 注意 pattern 在两段之间不重置，只换掩码。
	barriers := [2]struct {
		mask  uint64
		limit int
	}{
		{p.MaskPrimary, min(p.NormSize, n)},
		{p.MaskSecondary, min(p.MaxSize, n)},
	}

	for _, b := range barriers {
		for i < b.limit {
			pattern = (pattern << 1) + gearTable[data[i]]
			if pattern&b.mask == 0 {
				return i
			}
			i++
		}
	}

	// 两段都没命中：硬切在 min(MaxSize, len(data))
	// (循环跑完后 i 正好等于这个值)
	return i
}
