package systems

import (
	"image"

	"github.com/decker502/minesweeper/pkg/components"
	"github.com/decker502/minesweeper/pkg/ecs"
	"github.com/decker502/minesweeper/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责每帧刷新按钮的悬停颜色，并在点击时触发回调
//
// 职责：
//   - 用指针坐标刷新每个按钮的文字颜色
//   - 存在键盘焦点时只有焦点按钮显示悬停色，指针不再影响其它按钮的颜色
//   - 点击时对所有命中且启用的按钮触发 OnClick
//
// 注意：回调在遍历结束后才执行，回调里切换场景或销毁实体不会影响本帧的遍历
type ButtonSystem struct {
	entityManager *ecs.EntityManager

	focused    ecs.EntityID
	hasFocused bool
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// SetFocus 设置键盘焦点按钮
func (s *ButtonSystem) SetFocus(id ecs.EntityID) {
	s.focused = id
	s.hasFocused = true
}

// ClearFocus 清除键盘焦点
func (s *ButtonSystem) ClearFocus() {
	s.focused = 0
	s.hasFocused = false
}

// Focused 返回当前焦点按钮
func (s *ButtonSystem) Focused() (ecs.EntityID, bool) {
	return s.focused, s.hasFocused
}

// Update 读取本帧指针输入（鼠标或触摸）并处理按钮交互
func (s *ButtonSystem) Update(deltaTime float64) {
	input := utils.GetInputState()
	s.HandlePointer(input.Point(), input.JustPressed)
}

// HandlePointer 用给定指针状态处理按钮交互
//
// 参数：
//   - p: 指针坐标（屏幕坐标）
//   - clicked: 本帧是否刚按下
func (s *ButtonSystem) HandlePointer(p image.Point, clicked bool) {
	entities := ecs.GetEntitiesWith1[*components.Button](s.entityManager)

	var callbacks []func()
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.Button](s.entityManager, entityID)

		hoverPoint := p
		if s.hasFocused {
			// 焦点独占高亮：焦点按钮用自身中心刷新，其余按钮用区域外的点刷新
			hoverPoint = button.Position()
			if entityID != s.focused {
				hoverPoint = button.Rect().Min.Sub(image.Pt(1, 1))
			}
		}
		button.RefreshHoverState(hoverPoint)

		if !clicked || !button.IsInside(p) {
			continue
		}

		clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, entityID)
		if !ok || !clickable.IsEnabled || clickable.OnClick == nil {
			continue
		}
		callbacks = append(callbacks, clickable.OnClick)
	}

	for _, callback := range callbacks {
		callback()
	}
}
