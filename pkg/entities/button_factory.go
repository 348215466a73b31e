package entities

import (
	"image"
	"image/color"

	"github.com/decker502/minesweeper/pkg/components"
	"github.com/decker502/minesweeper/pkg/config"
	"github.com/decker502/minesweeper/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewMenuButton 创建按钮实体
//
// 参数：
//   - em: 实体管理器
//   - background: 背景图片，nil 表示纯文字按钮
//   - pos: 按钮中心点（屏幕坐标）
//   - label: 按钮文字
//   - font: 文字渲染器
//   - baseColor, hoverColor: 常态/悬停文字颜色
//   - onClick: 点击回调函数，可为 nil
//
// 返回：
//   - 按钮实体ID
func NewMenuButton(
	em *ecs.EntityManager,
	background *ebiten.Image,
	pos image.Point,
	label string,
	font components.TextRenderer,
	baseColor, hoverColor color.RGBA,
	onClick func(),
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, components.NewButton(background, pos, label, font, baseColor, hoverColor))
	ecs.AddComponent(em, entity, &components.ClickableComponent{
		OnClick:   onClick,
		IsEnabled: true,
	})

	return entity
}

// NewMenuOptionButton 创建主菜单选项按钮实体
// 按钮文字取自选项名，并附加 MenuOptionComponent 供键盘导航使用
func NewMenuOptionButton(
	em *ecs.EntityManager,
	option config.MenuOption,
	index int,
	pos image.Point,
	font components.TextRenderer,
	baseColor, hoverColor color.RGBA,
	onClick func(),
) ecs.EntityID {
	entity := NewMenuButton(em, nil, pos, option.Label(), font, baseColor, hoverColor, onClick)

	ecs.AddComponent(em, entity, &components.MenuOptionComponent{
		Option: option,
		Index:  index,
	})

	return entity
}
