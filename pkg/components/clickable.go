package components

// ClickableComponent 标记按钮实体可以被鼠标点击
// 禁用时按钮仍会刷新悬停颜色和绘制，但不会触发回调
type ClickableComponent struct {
	OnClick   func() // 点击回调，可为 nil
	IsEnabled bool   // 是否响应点击
}
