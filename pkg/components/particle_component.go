package components

import "image/color"

// ParticleComponent 纯视觉粒子
// 每帧按速度移动，透明度线性衰减、尺寸按比例缩小，透明度归零后被销毁。
// 任何玩法规则都不读取粒子。
type ParticleComponent struct {
	VelocityX float64
	VelocityY float64

	Size      float64 // 半径（像素）
	SizeDecay float64 // 每帧尺寸乘数，如 0.95

	Alpha      float64 // 0 = 完全透明, 1 = 不透明
	AlphaDecay float64 // 每帧透明度减量，如 0.02

	Color color.RGBA
}
