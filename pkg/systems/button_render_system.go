package systems

import (
	"github.com/decker502/minesweeper/pkg/components"
	"github.com/decker502/minesweeper/pkg/ecs"
)

// ButtonRenderSystem 按钮渲染系统
// 按实体创建顺序绘制所有按钮，先创建的在下层
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen components.Canvas) {
	entities := ecs.GetEntitiesWith1[*components.Button](s.entityManager)

	for _, entityID := range entities {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
// 用于需要精确控制渲染顺序的场景
func (s *ButtonRenderSystem) DrawButton(screen components.Canvas, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.Button](s.entityManager, entityID)
	if !ok {
		return
	}
	button.Draw(screen)
}
