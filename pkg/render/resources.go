package render

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// 可选贴图路径（位于 data 文件系统中）
const (
	ImagePlayer      = "data/images/player.png"
	ImageEnemyNormal = "data/images/enemy_normal.png"
	ImageEnemyElite  = "data/images/enemy_elite.png"
)

// ResourceManager 贴图加载与缓存
//
// 贴图是可选的：加载失败时记录一次警告，之后该路径永久使用占位图形绘制，
// 不会重复尝试，也不影响模拟。
type ResourceManager struct {
	fsys       fs.FS
	imageCache map[string]*ebiten.Image
	failed     map[string]error
	logger     *zap.Logger
}

// NewResourceManager 创建资源管理器；fsys 为 nil 时所有贴图都使用占位图形
func NewResourceManager(fsys fs.FS, logger *zap.Logger) *ResourceManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResourceManager{
		fsys:       fsys,
		imageCache: make(map[string]*ebiten.Image),
		failed:     make(map[string]error),
		logger:     logger.Named("resources"),
	}
}

// Image 返回贴图；不可用时返回 nil，调用方应绘制占位图形
func (rm *ResourceManager) Image(path string) *ebiten.Image {
	if img, ok := rm.imageCache[path]; ok {
		return img
	}
	if _, failed := rm.failed[path]; failed {
		return nil
	}

	src, err := decodeImage(rm.fsys, path)
	if err != nil {
		rm.failed[path] = err
		rm.logger.Warn("image unavailable, using placeholder", zap.String("path", path), zap.Error(err))
		return nil
	}

	img := ebiten.NewImageFromImage(src)
	rm.imageCache[path] = img
	return img
}

// Failed 返回加载失败的贴图及原因
func (rm *ResourceManager) Failed() map[string]error {
	return rm.failed
}

// decodeImage 从文件系统读取并解码图片
func decodeImage(fsys fs.FS, path string) (image.Image, error) {
	if fsys == nil {
		return nil, fmt.Errorf("no asset filesystem for %s", path)
	}
	file, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}
