//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设为 1 时桌面端按移动端布局运行（显示触屏按钮，便于本地调试）
const MobileEmulateEnv = "ARCADE_MOBILE_EMULATE"

// IsMobile 是否按移动端运行；桌面端编译时只看环境变量
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
