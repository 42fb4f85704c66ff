package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/decker502/arcade/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
)

// BestScoreStore 最高分的读写接口
type BestScoreStore interface {
	Load(key string) (int, error)
	Save(key string, score int) error
}

// 存储路径常量
const (
	scoresObject = "scores"
	// AppName gdata 应用名，决定存档目录
	AppName = "arcade_shooter"
)

// ScoreStore 基于 gdata 的最高分存储
//
// 每个游戏模式一个属性，值为十进制整数文本，保证读写往返完全一致。
// gdataManager 为 nil 时进入降级模式：分数只保存在内存中，进程退出后丢失。
type ScoreStore struct {
	gdataManager *gdata.Manager
	memory       map[string]int
	logger       *zap.Logger
}

// NewScoreStore 创建最高分存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
//   - logger: 可为 nil
func NewScoreStore(gdataManager *gdata.Manager, logger *zap.Logger) *ScoreStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScoreStore{
		gdataManager: gdataManager,
		memory:       make(map[string]int),
		logger:       logger.Named("scores"),
	}
}

// OpenScoreStore 打开 gdata 存储；失败时记录警告并退回降级模式
func OpenScoreStore(appName string, logger *zap.Logger) *ScoreStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := utils.EnsureStorageDir(); err != nil {
		logger.Warn("failed to prepare storage dir", zap.Error(err))
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Warn("persistent storage unavailable, best scores kept in memory",
			zap.String("app", appName), zap.Error(err))
		manager = nil
	}
	return NewScoreStore(manager, logger)
}

// Persistent 是否真正写入磁盘
func (s *ScoreStore) Persistent() bool {
	return s.gdataManager != nil
}

// Load 读取指定模式的最高分；从未保存过时返回 0
func (s *ScoreStore) Load(key string) (int, error) {
	if s.gdataManager == nil {
		return s.memory[key], nil
	}
	if !s.gdataManager.ObjectPropExists(scoresObject, key) {
		return 0, nil
	}

	data, err := s.gdataManager.LoadObjectProp(scoresObject, key)
	if err != nil {
		return 0, fmt.Errorf("%w: load %s: %v", ErrStorageUnavailable, key, err)
	}
	score, err := DecodeScore(data)
	if err != nil {
		return 0, fmt.Errorf("corrupt best score for %s: %w", key, err)
	}
	s.memory[key] = score
	return score, nil
}

// Save 写入指定模式的最高分
// 降级模式下只更新内存，不报错
func (s *ScoreStore) Save(key string, score int) error {
	s.memory[key] = score
	if s.gdataManager == nil {
		return nil
	}
	if err := s.gdataManager.SaveObjectProp(scoresObject, key, EncodeScore(score)); err != nil {
		return fmt.Errorf("%w: save %s: %v", ErrStorageUnavailable, key, err)
	}
	s.logger.Debug("best score saved", zap.String("mode", key), zap.Int("score", score))
	return nil
}

// EncodeScore 分数编码为十进制文本
func EncodeScore(score int) []byte {
	return []byte(strconv.Itoa(score))
}

// DecodeScore 解析十进制文本，容忍首尾空白
func DecodeScore(data []byte) (int, error) {
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to parse score %q: %w", string(data), err)
	}
	return score, nil
}
