package config

// 窗口与帧循环相关的固定配置
// 这些值不随菜单配置文件变化

const (
	// WindowWidth 逻辑屏幕宽度（像素）
	WindowWidth = 1280
	// WindowHeight 逻辑屏幕高度（像素）
	WindowHeight = 720

	// WindowTitle 启动时的窗口标题，进入主菜单后会被 MenuConfig.Caption 覆盖
	WindowTitle = "Main Menu"

	// DefaultTPS 默认逻辑帧率（每秒更新次数）
	DefaultTPS = 30

	// MaxDeltaTime 单帧最大时间步长（秒），防止窗口拖动等卡顿后出现超大步长
	MaxDeltaTime = 0.1
)

// 存储相关常量
const (
	// StorageAppName gdata 存储使用的应用名
	StorageAppName = "minesweeper"

	// DefaultMaxHighScores 高分榜默认保留条数
	DefaultMaxHighScores = 10
)

// MenuConfigPath 内嵌菜单配置文件路径
const MenuConfigPath = "data/menu.yaml"
