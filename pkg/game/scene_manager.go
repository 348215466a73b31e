package game

import (
	"fmt"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 按名字延迟创建场景，避免场景之间的循环依赖
type SceneFactory func() Scene

// 内置场景名
const (
	SceneDashboard = "dashboard"
	SceneHighScore = "highscore"
	ScenePlay      = "play"
)

// SceneManager manages the application's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene  Scene
	factories     map[string]SceneFactory // 场景名 -> 工厂函数
	quitRequested bool
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or Load to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		currentScene: nil,
		factories:    make(map[string]SceneFactory),
	}
}

// Register 注册命名场景的工厂函数
// 重复注册会覆盖之前的工厂
func (sm *SceneManager) Register(name string, factory SceneFactory) {
	sm.factories[name] = factory
}

// HasScene 检查是否注册了指定名字的场景
func (sm *SceneManager) HasScene(name string) bool {
	_, ok := sm.factories[name]
	return ok
}

// SceneNames 返回所有已注册的场景名（排序后）
func (sm *SceneManager) SceneNames() []string {
	names := make([]string, 0, len(sm.factories))
	for name := range sm.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent game loop iterations.
// If the scene implements Enterable, OnEnter is called immediately.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	if enterable, ok := scene.(Enterable); ok {
		enterable.OnEnter()
	}
}

// Load 通过工厂函数创建并切换到指定名字的场景
//
// 返回：
//   - error: 场景未注册或工厂返回 nil
func (sm *SceneManager) Load(name string) error {
	factory, ok := sm.factories[name]
	if !ok {
		return fmt.Errorf("scene %q is not registered", name)
	}

	scene := factory()
	if scene == nil {
		return fmt.Errorf("scene factory for %q returned nil", name)
	}

	sm.SwitchTo(scene)
	log.Printf("[SceneManager] 切换到场景: %s", name)
	return nil
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// RequestQuit 请求在当前帧结束后退出程序
func (sm *SceneManager) RequestQuit() {
	if !sm.quitRequested {
		log.Printf("[SceneManager] 收到退出请求")
	}
	sm.quitRequested = true
}

// QuitRequested 返回是否已请求退出
func (sm *SceneManager) QuitRequested() bool {
	return sm.quitRequested
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
