// Package utils 提供通用工具函数
package utils

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的输入状态
// 用于统一处理鼠标和触摸输入
type InputState struct {
	// 是否有点击/触摸事件刚刚发生
	JustPressed bool
	// 点击/触摸位置
	X, Y int
	// 是否有活动的触摸
	IsTouching bool
}

// Point 返回指针位置
func (s InputState) Point() image.Point {
	return image.Pt(s.X, s.Y)
}

// GetInputState 获取当前帧的输入状态
// 同时支持鼠标点击和触摸输入，优先检测触摸
func GetInputState() InputState {
	state := InputState{}

	// 首先检查触摸输入（移动设备）
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		state.JustPressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		return state
	}

	// 检查是否有活动的触摸（用于悬停检测）
	allTouchIDs := ebiten.AppendTouchIDs(nil)
	if len(allTouchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(allTouchIDs[0])
		state.IsTouching = true
		return state
	}

	// 其次检查鼠标左键
	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	state.X, state.Y = ebiten.CursorPosition()
	return state
}

// MenuKey 菜单导航按键
type MenuKey int

const (
	// MenuKeyNone 本帧没有导航按键
	MenuKeyNone MenuKey = iota
	// MenuKeyUp 上移选择
	MenuKeyUp
	// MenuKeyDown 下移选择
	MenuKeyDown
	// MenuKeyConfirm 执行当前选择
	MenuKeyConfirm
	// MenuKeyBack 返回上一界面
	MenuKeyBack
)

// GetMenuKey 返回本帧刚按下的菜单导航按键
// 同一帧按下多个键时按 上、下、确认、返回 的顺序取第一个
func GetMenuKey() MenuKey {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		return MenuKeyUp
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		return MenuKeyDown
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		return MenuKeyConfirm
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return MenuKeyBack
	}
	return MenuKeyNone
}
