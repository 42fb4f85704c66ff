package components

import "time"

// PlayerComponent 标识玩家战机并保存移动速度和射击冷却
type PlayerComponent struct {
	Speed        float64       // 每帧移动像素
	FireInterval time.Duration // 射击间隔
	LastFireAt   time.Duration // 上次射击的帧时间戳
}

// InvulnerabilityComponent 受伤后的无敌窗口
// Remaining 每帧按名义帧时长递减，归零时 Active 清除
type InvulnerabilityComponent struct {
	Active    bool
	Remaining time.Duration
}
