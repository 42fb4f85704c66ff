package config

import (
	"fmt"
	"time"
)

// PlayerConfig 玩家战机参数
type PlayerConfig struct {
	Width        float64       `yaml:"width"`
	Height       float64       `yaml:"height"`
	Speed        float64       `yaml:"speed"`        // 每帧移动像素
	StartHealth  int           `yaml:"startHealth"`  // 进入游戏前显示的血量
	MaxHealth    int           `yaml:"maxHealth"`    // 每局开始时血量重置为该值
	FireInterval time.Duration `yaml:"fireInterval"` // 射击间隔
	BottomMargin float64       `yaml:"bottomMargin"` // 默认位置距底边的距离
}

// BulletConfig 子弹参数
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // 每帧移动像素（方向由归属决定）
	Damage int     `yaml:"damage"`
}

// EnemyVariantConfig 单个敌机类型的属性表
type EnemyVariantConfig struct {
	Width        float64       `yaml:"width"`
	Height       float64       `yaml:"height"`
	Speed        float64       `yaml:"speed"`
	Health       int           `yaml:"health"`
	Score        int           `yaml:"score"`
	CanFire      bool          `yaml:"canFire"`
	FireInterval time.Duration `yaml:"fireInterval"`
}

// SpawnConfig 敌机生成与难度递增参数
type SpawnConfig struct {
	InitialInterval  time.Duration `yaml:"initialInterval"`  // 初始生成间隔
	MinInterval      time.Duration `yaml:"minInterval"`      // 生成间隔下限
	Step             time.Duration `yaml:"step"`             // 每个难度窗口缩短的量
	DifficultyWindow time.Duration `yaml:"difficultyWindow"` // 难度提升周期
	EliteProbability float64       `yaml:"eliteProbability"`
}

// EffectsConfig 粒子特效参数
type EffectsConfig struct {
	HitSparks          int     `yaml:"hitSparks"`          // 子弹命中火花数
	ExplosionParticles int     `yaml:"explosionParticles"` // 爆炸粒子数
	ScreenParticles    int     `yaml:"screenParticles"`    // 必杀技全屏粒子数
	Spread             float64 `yaml:"spread"`             // 粒子初速度范围 [-spread/2, spread/2)
	AlphaDecay         float64 `yaml:"alphaDecay"`         // 每帧透明度减量
	SizeDecay          float64 `yaml:"sizeDecay"`          // 每帧尺寸乘数
}

// ShooterConfig 射击模式的完整参数表
type ShooterConfig struct {
	ArenaWidth  float64 `yaml:"arenaWidth"`
	ArenaHeight float64 `yaml:"arenaHeight"`

	// NominalFrame 名义帧时长：无敌计时与难度计时每帧按此值推进（约 60Hz）
	NominalFrame time.Duration `yaml:"nominalFrame"`

	Player       PlayerConfig       `yaml:"player"`
	PlayerBullet BulletConfig       `yaml:"playerBullet"`
	EnemyBullet  BulletConfig       `yaml:"enemyBullet"`
	Normal       EnemyVariantConfig `yaml:"normal"`
	Elite        EnemyVariantConfig `yaml:"elite"`
	Spawn        SpawnConfig        `yaml:"spawn"`
	Effects      EffectsConfig      `yaml:"effects"`

	InvulnerableDuration time.Duration `yaml:"invulnerableDuration"`
	ContactDamage        int           `yaml:"contactDamage"` // 与敌机相撞的伤害
	EscapePenalty        int           `yaml:"escapePenalty"` // 敌机从底部逃脱扣除的血量

	SkillCooldown time.Duration `yaml:"skillCooldown"`
	SkillOverlay  time.Duration `yaml:"skillOverlay"` // 释放必杀技后全屏特效持续时间
}

// DefaultShooterConfig 返回默认参数（与原版网页游戏一致）
func DefaultShooterConfig() *ShooterConfig {
	return &ShooterConfig{
		ArenaWidth:   800,
		ArenaHeight:  600,
		NominalFrame: 16 * time.Millisecond,
		Player: PlayerConfig{
			Width:        120,
			Height:       120,
			Speed:        5,
			StartHealth:  150,
			MaxHealth:    200,
			FireInterval: 150 * time.Millisecond,
			BottomMargin: 20,
		},
		PlayerBullet: BulletConfig{Width: 10, Height: 20, Speed: 8, Damage: 10},
		EnemyBullet:  BulletConfig{Width: 10, Height: 20, Speed: 6, Damage: 10},
		Normal: EnemyVariantConfig{
			Width: 60, Height: 60, Speed: 3, Health: 20, Score: 20,
			FireInterval: 3 * time.Second,
		},
		Elite: EnemyVariantConfig{
			Width: 80, Height: 80, Speed: 2, Health: 50, Score: 100,
			CanFire: true, FireInterval: 2 * time.Second,
		},
		Spawn: SpawnConfig{
			InitialInterval:  1500 * time.Millisecond,
			MinInterval:      800 * time.Millisecond,
			Step:             100 * time.Millisecond,
			DifficultyWindow: 10 * time.Second,
			EliteProbability: 0.1,
		},
		Effects: EffectsConfig{
			HitSparks:          3,
			ExplosionParticles: 30,
			ScreenParticles:    100,
			Spread:             5,
			AlphaDecay:         0.02,
			SizeDecay:          0.95,
		},
		InvulnerableDuration: time.Second,
		ContactDamage:        50,
		EscapePenalty:        10,
		SkillCooldown:        10 * time.Second,
		SkillOverlay:         time.Second,
	}
}

// Variant 按类型名返回敌机属性表
func (c *ShooterConfig) Variant(elite bool) EnemyVariantConfig {
	if elite {
		return c.Elite
	}
	return c.Normal
}

// Validate 验证参数的完整性和合法性
func (c *ShooterConfig) Validate() error {
	if c.ArenaWidth <= 0 || c.ArenaHeight <= 0 {
		return invalid("arena size must be positive, got %vx%v", c.ArenaWidth, c.ArenaHeight)
	}
	if c.NominalFrame <= 0 {
		return invalid("nominalFrame must be positive, got %v", c.NominalFrame)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return invalid("player size must be positive")
	}
	if c.Player.MaxHealth <= 0 {
		return invalid("player maxHealth must be positive, got %d", c.Player.MaxHealth)
	}
	if c.Player.StartHealth < 0 || c.Player.StartHealth > c.Player.MaxHealth {
		return invalid("player startHealth must be in [0, %d], got %d", c.Player.MaxHealth, c.Player.StartHealth)
	}
	if c.Player.FireInterval < 0 {
		return invalid("player fireInterval cannot be negative")
	}
	for name, b := range map[string]BulletConfig{"playerBullet": c.PlayerBullet, "enemyBullet": c.EnemyBullet} {
		if b.Width <= 0 || b.Height <= 0 || b.Speed <= 0 {
			return invalid("%s: size and speed must be positive", name)
		}
	}
	for name, v := range map[string]EnemyVariantConfig{"normal": c.Normal, "elite": c.Elite} {
		if v.Width <= 0 || v.Height <= 0 || v.Speed <= 0 {
			return invalid("%s: size and speed must be positive", name)
		}
		if v.Health <= 0 {
			return invalid("%s: health must be positive, got %d", name, v.Health)
		}
		if v.CanFire && v.FireInterval <= 0 {
			return invalid("%s: fireInterval must be positive for firing enemies", name)
		}
	}
	s := c.Spawn
	if s.MinInterval <= 0 || s.InitialInterval < s.MinInterval {
		return invalid("spawn: need 0 < minInterval <= initialInterval, got %v / %v", s.MinInterval, s.InitialInterval)
	}
	if s.Step < 0 || s.DifficultyWindow <= 0 {
		return invalid("spawn: step cannot be negative and difficultyWindow must be positive")
	}
	if s.EliteProbability < 0 || s.EliteProbability > 1 {
		return invalid("spawn: eliteProbability must be in [0, 1], got %v", s.EliteProbability)
	}
	if c.Effects.AlphaDecay <= 0 {
		return invalid("effects: alphaDecay must be positive so particles expire")
	}
	if c.InvulnerableDuration < 0 || c.SkillCooldown < 0 {
		return invalid("durations cannot be negative")
	}
	return nil
}

// LoadShooterConfig 从 YAML 文件加载射击模式参数
// 文件中未出现的字段保留默认值
func LoadShooterConfig(path string) (*ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := loadYAML(path, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shooter config in %s: %w", path, err)
	}
	return cfg, nil
}
