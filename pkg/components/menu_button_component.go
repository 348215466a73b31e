package components

import "github.com/decker502/minesweeper/pkg/config"

// MenuOptionComponent 标记按钮实体对应的主菜单选项
// 键盘导航通过它在实体和选项之间映射
type MenuOptionComponent struct {
	Option config.MenuOption
	// Index 选项在菜单中的顺序（从 0 开始）
	Index int
}
