//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/minesweeper/pkg/config"
)

// EnsureStorageDir 确保 Android 上高分榜的存储目录存在并可写
// gdata 在 Android 上以 /data/data/{package}/ 为根目录，但不会预先创建应用子目录，
// 必须在 gdata.Open 之前调用。
func EnsureStorageDir() error {
	dir := GetStoragePath()
	if dir == "" {
		return fmt.Errorf("failed to detect Android package name")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}

	testFile := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(testFile, nil, 0644); err != nil {
		return fmt.Errorf("storage directory %s is not writable: %w", dir, err)
	}
	return os.Remove(testFile)
}

// GetStoragePath 返回 /data/data/{package}/{app}，无法识别包名时返回空字符串
func GetStoragePath() string {
	pkg := androidPackageName()
	if pkg == "" {
		return ""
	}
	return filepath.Join("/data/data", pkg, config.StorageAppName)
}

// androidPackageName 从 /proc/self/cmdline 读取包名
func androidPackageName() string {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if r == 0 || r == '\n' {
			return -1
		}
		return r
	}, string(data))
}
