// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/minesweeper/pkg/config"
	"github.com/decker502/minesweeper/pkg/embedded"
	"github.com/decker502/minesweeper/pkg/game"
	"github.com/decker502/minesweeper/pkg/scenes"
	"github.com/decker502/minesweeper/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 菜单配置文件路径，为空则使用嵌入的 data/menu.yaml
	ConfigPath string
	// Fullscreen 启动时进入全屏
	Fullscreen bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	resourceManager *game.ResourceManager
	scoreManager    *game.ScoreManager
	menuConfig      *config.MenuConfig

	lastUpdate time.Time
	// now 当前时间，测试时可替换
	now func() time.Time
	// terminated 退出请求已处理（记录已保存）
	terminated bool
}

// NewApp 创建并初始化应用
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入资源；
// 未初始化时只能通过 cfg.ConfigPath 或默认值得到菜单配置。
//
// 非 verbose 模式下日志在初始化期间被丢弃；初始化失败时恢复原输出，
// 调用方随后打印的错误信息不会被吞掉。
func NewApp(cfg Config) (app *App, err error) {
	// 配置日志输出
	if !cfg.Verbose {
		output, flags := log.Writer(), log.Flags()
		log.SetOutput(io.Discard)
		log.SetFlags(0)
		defer func() {
			if err != nil {
				log.SetOutput(output)
				log.SetFlags(flags)
			}
		}()
	}

	menuConfig, err := loadMenuConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("菜单配置加载失败: %w", err)
	}

	// 创建资源管理器
	resourceManager := game.NewResourceManager()
	font, err := resourceManager.LoadTextRenderer(menuConfig.Font.Path, menuConfig.Font.Size)
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	// 高分榜存储，打开失败时降级为仅内存
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	gdataManager, err := gdata.Open(gdata.Config{
		AppName: config.StorageAppName,
	})
	if err != nil {
		log.Printf("[App] Warning: Failed to open storage: %v (high scores will not persist)", err)
		gdataManager = nil
	}
	scoreManager := game.NewScoreManager(gdataManager, menuConfig.HighScore.MaxEntries)

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.Register(game.SceneDashboard, func() game.Scene {
		return scenes.NewDashboardScene(resourceManager, sceneManager, menuConfig, font)
	})
	sceneManager.Register(game.SceneHighScore, func() game.Scene {
		return scenes.NewHighScoreScene(sceneManager, scoreManager, menuConfig, font)
	})

	if cfg.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := sceneManager.Load(game.SceneDashboard); err != nil {
		return nil, fmt.Errorf("主菜单创建失败: %w", err)
	}
	log.Printf("[App] Started with scenes: %v", sceneManager.SceneNames())

	return &App{
		sceneManager:    sceneManager,
		resourceManager: resourceManager,
		scoreManager:    scoreManager,
		menuConfig:      menuConfig,
		now:             time.Now,
	}, nil
}

// loadMenuConfig 按优先级加载菜单配置：磁盘路径 > 嵌入文件 > 默认值
func loadMenuConfig(path string) (*config.MenuConfig, error) {
	if path != "" {
		log.Printf("[Config] 加载菜单配置: %s", path)
		return config.LoadMenuConfig(path)
	}

	if embedded.IsInitialized() && embedded.Exists(config.MenuConfigPath) {
		data, err := embedded.ReadFile(config.MenuConfigPath)
		if err != nil {
			return nil, err
		}
		log.Printf("[Config] 加载嵌入菜单配置: %s", config.MenuConfigPath)
		return config.ParseMenuConfig(data)
	}

	log.Printf("[Config] 未找到菜单配置，使用默认值")
	return config.DefaultMenuConfig(), nil
}

// Update 更新逻辑
// 每个 tick 调用一次
func (a *App) Update() error {
	// F11 切换全屏（仅桌面端）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	return a.tick(a.now())
}

// tick 用给定时刻推进一帧
// 退出请求被处理后返回 ebiten.Termination
func (a *App) tick(now time.Time) error {
	if a.terminated {
		return ebiten.Termination
	}

	a.sceneManager.Update(a.deltaTime(now))

	if a.sceneManager.QuitRequested() {
		a.terminated = true
		if err := a.scoreManager.Save(); err != nil {
			log.Printf("[App] Warning: Failed to save high scores: %v", err)
		}
		log.Printf("[App] Quit requested, terminating")
		return ebiten.Termination
	}
	return nil
}

// deltaTime 返回距上一帧的秒数，首帧按 TPS 估算，最大为 config.MaxDeltaTime
func (a *App) deltaTime(now time.Time) float64 {
	var dt float64
	if a.lastUpdate.IsZero() {
		dt = 1.0 / float64(a.menuConfig.EffectiveTPS())
	} else {
		dt = now.Sub(a.lastUpdate).Seconds()
	}
	a.lastUpdate = now

	if dt < 0 {
		dt = 0
	}
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	return dt
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// ScoreManager 返回高分榜管理器
func (a *App) ScoreManager() *game.ScoreManager {
	return a.scoreManager
}

// MenuConfig 返回当前菜单配置
func (a *App) MenuConfig() *config.MenuConfig {
	return a.menuConfig
}

// RegisterScene 注册额外的场景，如主菜单 PLAY 选项进入的 game.ScenePlay
func (a *App) RegisterScene(name string, factory game.SceneFactory) {
	a.sceneManager.Register(name, factory)
}

// SubmitScore 提交一局的成绩并立即保存
//
// 返回名次（从 1 开始），未上榜返回 0。
// 保存失败只记录日志，成绩仍保留在内存中，退出时会再次保存。
func (a *App) SubmitScore(entry game.HighScoreEntry) int {
	rank := a.scoreManager.Submit(entry)
	if rank == 0 {
		return 0
	}
	if err := a.scoreManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save high scores: %v", err)
	}
	return rank
}
