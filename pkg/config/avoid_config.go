package config

import "fmt"

// ChaserConfig 大头鱼参数（碰撞盒以中心为锚点）
type ChaserConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // 每帧移动像素
}

// TargetConfig 目标方块参数
type TargetConfig struct {
	Size   float64 `yaml:"size"`
	Reward int     `yaml:"reward"`
}

// AvoidConfig 躲避模式的完整参数表
type AvoidConfig struct {
	ArenaWidth  float64      `yaml:"arenaWidth"`
	ArenaHeight float64      `yaml:"arenaHeight"`
	Chaser      ChaserConfig `yaml:"chaser"`
	Target      TargetConfig `yaml:"target"`
}

// DefaultAvoidConfig 返回默认参数（与原版触屏小游戏一致）
func DefaultAvoidConfig() *AvoidConfig {
	return &AvoidConfig{
		ArenaWidth:  600,
		ArenaHeight: 400,
		Chaser:      ChaserConfig{Width: 60, Height: 40, Speed: 5},
		Target:      TargetConfig{Size: 30, Reward: 10},
	}
}

// Validate 验证参数
func (c *AvoidConfig) Validate() error {
	if c.ArenaWidth <= 0 || c.ArenaHeight <= 0 {
		return invalid("arena size must be positive, got %vx%v", c.ArenaWidth, c.ArenaHeight)
	}
	if c.Chaser.Width <= 0 || c.Chaser.Height <= 0 || c.Chaser.Speed <= 0 {
		return invalid("chaser size and speed must be positive")
	}
	if c.Chaser.Width >= c.ArenaWidth || c.Chaser.Height >= c.ArenaHeight {
		return invalid("chaser must fit inside the arena")
	}
	if c.Target.Size <= 0 {
		return invalid("target size must be positive, got %v", c.Target.Size)
	}
	// 方块离四边各留出一个方块的距离
	if c.Target.Size*3 > c.ArenaWidth || c.Target.Size*3 > c.ArenaHeight {
		return invalid("target size %v leaves no inset spawn area", c.Target.Size)
	}
	return nil
}

// LoadAvoidConfig 从 YAML 文件加载躲避模式参数
func LoadAvoidConfig(path string) (*AvoidConfig, error) {
	cfg := DefaultAvoidConfig()
	if err := loadYAML(path, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid avoid config in %s: %w", path, err)
	}
	return cfg, nil
}
