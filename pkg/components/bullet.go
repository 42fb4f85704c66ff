package components

// BulletOwner 子弹归属
type BulletOwner int

const (
	// OwnerPlayer 玩家子弹，向上飞行，只与敌机碰撞
	OwnerPlayer BulletOwner = iota
	// OwnerEnemy 敌机子弹，向下飞行，只与玩家碰撞
	OwnerEnemy
)

// BulletComponent 子弹数据
type BulletComponent struct {
	Owner  BulletOwner
	Damage int
}
