package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/decker502/arcade/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 参数表校验失败
var ErrInvalidConfig = errors.New("invalid config")

// 默认配置文件路径（嵌入资源）
const (
	ShooterConfigPath = "data/shooter.yaml"
	AvoidConfigPath   = "data/avoid.yaml"
)

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// readConfigFile 优先从嵌入资源读取，不存在时回退到磁盘文件
func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// loadYAML 读取并解析 YAML，覆盖到 out 的已有值上
func loadYAML(path string, out interface{}) error {
	data, err := readConfigFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse config YAML from %s: %w", path, err)
	}
	return nil
}

// ParseShooterConfig 从 YAML 数据解析射击模式参数（未出现的字段保留默认值）
func ParseShooterConfig(data []byte) (*ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse shooter config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseAvoidConfig 从 YAML 数据解析躲避模式参数
func ParseAvoidConfig(data []byte) (*AvoidConfig, error) {
	cfg := DefaultAvoidConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse avoid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
