//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设置为 "1" 时桌面端按移动端行为运行（用于本地调试）
const MobileEmulateEnv = "MINESWEEPER_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 移动端没有键盘，F11 全屏等桌面快捷键不生效
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
