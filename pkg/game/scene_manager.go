package game

import (
	"time"

	"go.uber.org/zap"
)

// SceneFactory 场景工厂函数类型
// 用于按模式创建场景，避免 game 包依赖具体场景实现
type SceneFactory func(mode Mode) (Scene, error)

// SceneManager 管理当前活动场景
// 任意时刻只有一个场景接收 Update。
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
	logger       *zap.Logger
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager(logger *zap.Logger) *SceneManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SceneManager{logger: logger.Named("scenes")}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 切换到指定场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// LoadMode 通过工厂创建并切换到指定模式的场景
// 创建失败时保留当前场景
func (sm *SceneManager) LoadMode(mode Mode) error {
	if sm.sceneFactory == nil {
		return errNoSceneFactory
	}

	scene, err := sm.sceneFactory(mode)
	if err != nil {
		sm.logger.Error("failed to create scene", zap.Stringer("mode", mode), zap.Error(err))
		return err
	}
	sm.SwitchTo(scene)
	sm.logger.Info("switched scene", zap.Stringer("mode", mode))
	return nil
}

// Update 更新当前场景；没有活动场景时什么都不做
func (sm *SceneManager) Update(dt time.Duration, in InputState) {
	if sm.currentScene != nil {
		sm.currentScene.Update(dt, in)
	}
}
