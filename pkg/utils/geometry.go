package utils

import "math"

// Rect 轴对齐矩形（左上角 + 尺寸）
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right 返回矩形右边界
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom 返回矩形下边界
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX 返回矩形中心 X
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY 返回矩形中心 Y
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Overlaps 判断两个矩形是否重叠（AABB）
// 两个轴上的区间都严格相交才算重叠，边界刚好接触不算。结果与参数顺序无关。
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() &&
		r.Right() > o.X &&
		r.Y < o.Bottom() &&
		r.Bottom() > o.Y
}

// Contains 判断点是否在矩形内（含左上边界，不含右下边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp 将 v 限制在 [lo, hi]；hi < lo 时返回 lo
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// ClampInt 将整数限制在 [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Direction 返回从 (fromX, fromY) 指向 (toX, toY) 的单位向量和距离
// 两点重合时返回零向量
func Direction(fromX, fromY, toX, toY float64) (dx, dy, dist float64) {
	dx = toX - fromX
	dy = toY - fromY
	dist = math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0, 0
	}
	return dx / dist, dy / dist, dist
}

// FacingAway 返回从 (fromX, fromY) 背向 (toX, toY) 的朝向角（弧度）
// 即 atan2(dy, dx) + π
func FacingAway(fromX, fromY, toX, toY float64) float64 {
	return math.Atan2(toY-fromY, toX-fromX) + math.Pi
}
