package components

// HealthComponent 存储实体的生命值信息
// 用于玩家和敌机；玩家的 CurrentHealth 始终保持在 [0, MaxHealth]
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值
}
