package scenes

import (
	"fmt"
	"math/rand"

	"github.com/decker502/arcade/internal/logger"
	"github.com/decker502/arcade/pkg/config"
	"github.com/decker502/arcade/pkg/game"
	"github.com/decker502/arcade/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options 创建场景所需的依赖，零值字段使用默认值
type Options struct {
	Shooter *config.ShooterConfig
	Avoid   *config.AvoidConfig

	// Store 最高分存储，nil 时使用仅内存的存储
	Store game.BestScoreStore

	// Rand 随机数源；nil 时按 Seed 创建（Seed 为空则按时间）
	Rand *rand.Rand
	Seed string

	Logger *zap.Logger

	// NewRunID 生成每局的唯一标识，默认 uuid
	NewRunID func() string
}

func (o Options) withDefaults() Options {
	if o.Shooter == nil {
		o.Shooter = config.DefaultShooterConfig()
	}
	if o.Avoid == nil {
		o.Avoid = config.DefaultAvoidConfig()
	}
	o.Logger = logger.OrNop(o.Logger)
	if o.Store == nil {
		o.Store = game.NewScoreStore(nil, o.Logger)
	}
	if o.Rand == nil {
		o.Rand = utils.NewRand(o.Seed)
	}
	if o.NewRunID == nil {
		o.NewRunID = uuid.NewString
	}
	return o
}

// New 按模式创建场景
func New(mode game.Mode, opts Options) (game.Scene, error) {
	switch mode {
	case game.ModeShooter:
		return NewShooterScene(opts), nil
	case game.ModeAvoid:
		return NewAvoidScene(opts), nil
	default:
		return nil, fmt.Errorf("no scene for mode %v", mode)
	}
}

// Factory 返回供 SceneManager 使用的场景工厂
func Factory(opts Options) game.SceneFactory {
	return func(mode game.Mode) (game.Scene, error) {
		return New(mode, opts)
	}
}

// loadBest 读取最高分，失败时记录日志并按 0 处理
func loadBest(store game.BestScoreStore, mode game.Mode, log *zap.Logger) int {
	best, err := store.Load(mode.String())
	if err != nil {
		log.Warn("failed to load best score", zap.Stringer("mode", mode), zap.Error(err))
		return 0
	}
	return best
}

// finishRun 结算一局：进入 GameOver，刷新并保存最高分
func finishRun(gs *game.GameState, store game.BestScoreStore, log *zap.Logger) {
	gs.Phase = game.PhaseGameOver
	newBest := gs.RecordBest()
	if newBest {
		if err := store.Save(gs.Mode.String(), gs.BestScore); err != nil {
			log.Warn("failed to save best score", zap.Int("score", gs.BestScore), zap.Error(err))
		}
	}
	log.Info("game over",
		zap.String("run", gs.RunID),
		zap.Int("score", gs.Score),
		zap.Int("best", gs.BestScore),
		zap.Bool("newBest", newBest),
		zap.Duration("played", gs.Now))
}
