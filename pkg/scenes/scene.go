package scenes

import (
	"github.com/decker502/arcade/pkg/game"
)

// Scene 是 game.Scene 的别名
type Scene = game.Scene

var (
	_ Scene          = (*ShooterScene)(nil)
	_ Scene          = (*AvoidScene)(nil)
	_ game.SkillUser = (*ShooterScene)(nil)
)
