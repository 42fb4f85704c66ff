package components

import "time"

// EnemyVariant 敌机类型
type EnemyVariant int

const (
	// EnemyNormal 普通敌机：体型小、速度快、不射击
	EnemyNormal EnemyVariant = iota
	// EnemyElite 精英敌机：体型大、血厚、周期性向下射击
	EnemyElite
)

// String 返回敌机类型名称（用于日志与配置键）
func (v EnemyVariant) String() string {
	switch v {
	case EnemyNormal:
		return "normal"
	case EnemyElite:
		return "elite"
	default:
		return "unknown"
	}
}

// EnemyComponent 敌机数据
type EnemyComponent struct {
	Variant    EnemyVariant
	ScoreValue int // 击毁奖励分数

	// 射击（仅精英敌机）
	CanFire      bool
	FireInterval time.Duration
	LastFireAt   time.Duration
}
