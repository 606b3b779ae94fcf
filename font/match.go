package font

import "math"

// 计算描述与目标样式之间的误差，越小越好
// 字重差按 2 倍计，斜体不一致计 1
func Score(d Descriptor, isTargetItalic bool, targetWeight int) int {
	score := abs(d.FontWeight()-targetWeight) * 2
	if d.IsItalic() != isTargetItalic {
		score++
	}
	return score
}

// 在候选列表中选出误差最小的描述
// 误差相同时保留先出现的那个；列表为空时返回 false
func SelectBest[D Descriptor](fonts []D, isTargetItalic bool, targetWeight int) (D, bool) {
	var best D
	if len(fonts) == 0 {
		return best, false
	}

	bestScore := math.MaxInt // 当前最小误差
	for i, f := range fonts {
		score := Score(f, isTargetItalic, targetWeight)
		if i == 0 || bestScore > score {
			best = f
			bestScore = score
		}
	}
	return best, true
}
