package scenes

import (
	"image"
	"image/color"
	"testing"

	"github.com/decker502/minesweeper/pkg/config"
	"github.com/decker502/minesweeper/pkg/game"
	"github.com/decker502/minesweeper/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	menuWhite = color.RGBA{255, 255, 255, 255}
	menuRed   = color.RGBA{255, 0, 0, 255}
)

// newTestDashboard 创建使用默认配置和测试字体的主菜单
func newTestDashboard(t *testing.T) (*DashboardScene, *game.SceneManager) {
	t.Helper()
	sm := game.NewSceneManager()
	scene := NewDashboardScene(game.NewResourceManager(), sm, config.DefaultMenuConfig(), blockFont{})
	return scene, sm
}

// registerStub 注册一个返回固定 stubScene 的场景
func registerStub(sm *game.SceneManager, name string) *stubScene {
	stub := &stubScene{name: name}
	sm.Register(name, func() game.Scene { return stub })
	return stub
}

// TestDashboardLayout 测试标题与选项按钮的位置
func TestDashboardLayout(t *testing.T) {
	scene, _ := newTestDashboard(t)

	if got := scene.TitleRect(); got != image.Rect(585, 90, 695, 110) {
		t.Errorf("TitleRect() = %v, expected (585,90)-(695,110)", got)
	}

	tests := []struct {
		index int
		label string
		rect  image.Rectangle
	}{
		{0, "PLAY", image.Rect(620, 190, 660, 210)},
		{1, "HIGH SCORE", image.Rect(590, 240, 690, 260)},
		{2, "QUIT", image.Rect(620, 290, 660, 310)},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			button := scene.OptionButton(tt.index)
			if button == nil {
				t.Fatalf("OptionButton(%d) returned nil", tt.index)
			}
			if button.Label() != tt.label {
				t.Errorf("Label() = %q, expected %q", button.Label(), tt.label)
			}
			if button.Rect() != tt.rect {
				t.Errorf("Rect() = %v, expected %v", button.Rect(), tt.rect)
			}
			if button.TextColor() != menuWhite {
				t.Errorf("initial color = %v, expected white", button.TextColor())
			}
		})
	}

	if scene.OptionButton(3) != nil || scene.OptionButton(-1) != nil {
		t.Error("OptionButton out of range should return nil")
	}
}

// TestDashboardOnEnterCaption 测试进入时设置窗口标题
func TestDashboardOnEnterCaption(t *testing.T) {
	scene, sm := newTestDashboard(t)

	var caption string
	scene.setCaption = func(title string) { caption = title }
	sm.SwitchTo(scene)

	if caption != "Minesweeper Menu" {
		t.Errorf("caption = %q, expected Minesweeper Menu", caption)
	}
}

// TestDashboardHover 测试鼠标悬停只改变命中选项的颜色
func TestDashboardHover(t *testing.T) {
	scene, _ := newTestDashboard(t)

	scene.HandlePointer(image.Pt(640, 250), false)

	expected := []color.RGBA{menuWhite, menuRed, menuWhite}
	for i, clr := range expected {
		if got := scene.OptionButton(i).TextColor(); got != clr {
			t.Errorf("option %d color = %v, expected %v", i, got, clr)
		}
	}
	if _, ok := scene.Selected(); ok {
		t.Error("hovering should not select an option")
	}
}

// TestDashboardClickOptions 测试点击各选项的效果
func TestDashboardClickOptions(t *testing.T) {
	t.Run("HIGH_SCORE 切换到高分榜", func(t *testing.T) {
		scene, sm := newTestDashboard(t)
		highScore := registerStub(sm, game.SceneHighScore)

		scene.HandlePointer(image.Pt(640, 250), true)

		if sm.GetCurrentScene() != highScore {
			t.Error("clicking HIGH SCORE should switch to the high score scene")
		}
		if option, ok := scene.Selected(); !ok || option != config.MenuOptionHighScore {
			t.Errorf("Selected() = (%v, %v), expected HIGH_SCORE", option, ok)
		}
	})

	t.Run("QUIT 请求退出", func(t *testing.T) {
		scene, sm := newTestDashboard(t)

		scene.HandlePointer(image.Pt(640, 300), true)

		if !sm.QuitRequested() {
			t.Error("clicking QUIT should request quit")
		}
	})

	t.Run("PLAY 未注册游戏场景", func(t *testing.T) {
		scene, sm := newTestDashboard(t)
		sm.SwitchTo(scene)

		scene.HandlePointer(image.Pt(640, 200), true)

		if sm.GetCurrentScene() != scene {
			t.Error("PLAY without a play scene should stay on the dashboard")
		}
		if sm.QuitRequested() {
			t.Error("PLAY should not request quit")
		}
	})

	t.Run("PLAY 切换到游戏场景", func(t *testing.T) {
		scene, sm := newTestDashboard(t)
		play := registerStub(sm, game.ScenePlay)

		scene.HandlePointer(image.Pt(640, 200), true)

		if sm.GetCurrentScene() != play || play.entered != 1 {
			t.Error("PLAY should switch to the registered play scene")
		}
	})

	t.Run("点击选项之间的空白", func(t *testing.T) {
		scene, sm := newTestDashboard(t)
		registerStub(sm, game.SceneHighScore)

		// y=210 是 PLAY 的下边界（不包含），也不在 HIGH SCORE 内
		scene.HandlePointer(image.Pt(640, 210), true)

		if sm.GetCurrentScene() != nil || sm.QuitRequested() {
			t.Error("click between options should do nothing")
		}
		if _, ok := scene.Selected(); ok {
			t.Error("click between options should not select")
		}
	})
}

// TestDashboardKeyboardWithoutSelection 测试未选择时按键无效
func TestDashboardKeyboardWithoutSelection(t *testing.T) {
	scene, sm := newTestDashboard(t)
	registerStub(sm, game.SceneHighScore)

	for _, key := range []utils.MenuKey{utils.MenuKeyUp, utils.MenuKeyDown, utils.MenuKeyConfirm, utils.MenuKeyNone} {
		scene.HandleKey(key)
	}

	if _, ok := scene.Selected(); ok {
		t.Error("keys without a selection should not select anything")
	}
	if sm.GetCurrentScene() != nil || sm.QuitRequested() {
		t.Error("keys without a selection should not execute anything")
	}
}

// TestDashboardKeyboardNavigation 测试上下键循环选择与回车执行
func TestDashboardKeyboardNavigation(t *testing.T) {
	scene, sm := newTestDashboard(t)
	sm.SwitchTo(scene)
	highScore := registerStub(sm, game.SceneHighScore)

	// 点击 PLAY 获得选择（没有游戏场景，停留在主菜单）
	scene.HandlePointer(image.Pt(640, 200), true)

	steps := []struct {
		key      utils.MenuKey
		expected config.MenuOption
	}{
		{utils.MenuKeyUp, config.MenuOptionQuit},
		{utils.MenuKeyDown, config.MenuOptionPlay},
		{utils.MenuKeyDown, config.MenuOptionHighScore},
		{utils.MenuKeyDown, config.MenuOptionQuit},
		{utils.MenuKeyDown, config.MenuOptionPlay},
		{utils.MenuKeyNone, config.MenuOptionPlay},
		{utils.MenuKeyDown, config.MenuOptionHighScore},
	}

	for i, step := range steps {
		scene.HandleKey(step.key)
		if option, ok := scene.Selected(); !ok || option != step.expected {
			t.Fatalf("step %d: Selected() = (%v, %v), expected %v", i, option, ok, step.expected)
		}
	}

	// 选中项显示悬停色，其余为常态色
	scene.HandlePointer(image.Pt(0, 0), false)
	expected := []color.RGBA{menuWhite, menuRed, menuWhite}
	for i, clr := range expected {
		if got := scene.OptionButton(i).TextColor(); got != clr {
			t.Errorf("option %d color = %v, expected %v", i, got, clr)
		}
	}

	// 鼠标悬停在其它选项上不抢占选中项的高亮
	scene.HandlePointer(image.Pt(640, 300), false)
	for i, clr := range expected {
		if got := scene.OptionButton(i).TextColor(); got != clr {
			t.Errorf("hovering QUIT: option %d color = %v, expected %v", i, got, clr)
		}
	}

	scene.HandleKey(utils.MenuKeyConfirm)
	if sm.GetCurrentScene() != highScore {
		t.Error("Enter should execute the selected option")
	}
}

// TestDashboardExecuteOption 测试直接执行选项
func TestDashboardExecuteOption(t *testing.T) {
	scene, sm := newTestDashboard(t)
	sm.SwitchTo(scene)

	// 高分榜未注册：记录错误，停留在主菜单
	scene.ExecuteOption(config.MenuOptionHighScore)
	if sm.GetCurrentScene() != scene {
		t.Error("unregistered high score scene should keep the dashboard active")
	}

	scene.ExecuteOption(config.MenuOption(99))
	if sm.QuitRequested() {
		t.Error("unknown option should not request quit")
	}

	scene.ExecuteOption(config.MenuOptionQuit)
	if !sm.QuitRequested() {
		t.Error("QUIT should request quit")
	}
}

// TestDashboardCustomOptions 测试自定义选项顺序
func TestDashboardCustomOptions(t *testing.T) {
	cfg := config.DefaultMenuConfig()
	cfg.Options.Items = []config.MenuOption{config.MenuOptionQuit, config.MenuOptionPlay}
	cfg.Options.StartY = 300

	sm := game.NewSceneManager()
	scene := NewDashboardScene(game.NewResourceManager(), sm, cfg, blockFont{})

	if got := scene.OptionButton(0).Label(); got != "QUIT" {
		t.Errorf("first option = %q, expected QUIT", got)
	}
	if got := scene.OptionButton(1).Position(); got != image.Pt(640, 350) {
		t.Errorf("second option position = %v, expected (640,350)", got)
	}

	scene.HandlePointer(image.Pt(640, 300), true)
	if !sm.QuitRequested() {
		t.Error("first option should be QUIT")
	}
}

// TestDashboardMissingBackground 测试背景图加载失败时回退到纯色
func TestDashboardMissingBackground(t *testing.T) {
	cfg := config.DefaultMenuConfig()
	cfg.Background.Image = "missing/background.png"

	scene := NewDashboardScene(game.NewResourceManager(), game.NewSceneManager(), cfg, blockFont{})
	if scene.backgroundImage != nil {
		t.Error("missing background image should fall back to nil")
	}

	screen := ebiten.NewImage(config.WindowWidth, config.WindowHeight)
	scene.Draw(screen)
}
