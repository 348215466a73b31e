package components

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ButtonType 定义按钮的背景类型
// 在构造时确定，按钮生命周期内不变
type ButtonType int

const (
	// ButtonTypeTextOnly 纯文字按钮：初始文字位图即按钮主体，点击区域等于文字包围盒
	ButtonTypeTextOnly ButtonType = iota
	// ButtonTypeImage 图片背景按钮：背景图决定点击区域，文字居中绘制在背景之上
	ButtonTypeImage
)

// TextRenderer 把文字渲染为位图
//
// 颜色被烘焙进返回的图像中，改变颜色只能重新渲染。
// 同一段文字以不同颜色渲染时，返回图像的尺寸必须一致。
// 返回的图像归调用方所有，Button 在替换时会释放旧图像。
type TextRenderer interface {
	RenderText(label string, clr color.RGBA) *ebiten.Image
}

// releaseTextImage 释放被替换掉的文字位图
var releaseTextImage = (*ebiten.Image).Deallocate

// Canvas 按钮的绘制目标，*ebiten.Image 满足该接口
type Canvas interface {
	DrawImage(img *ebiten.Image, options *ebiten.DrawImageOptions)
}

// Button 可交互的菜单按钮
//
// 按钮以 Position 为中心布局。Rect（点击区域）与 TextRect（文字区域）在构造时
// 计算一次，之后不再变化；悬停时只重新渲染文字位图的颜色。
//
// 悬停状态不做缓存：每次 RefreshHoverState 都由传入的坐标重新推导。
type Button struct {
	buttonType ButtonType
	background *ebiten.Image // 仅 ButtonTypeImage 时非 nil

	position   image.Point
	label      string
	font       TextRenderer
	baseColor  color.RGBA
	hoverColor color.RGBA

	// textImage 当前文字位图，textColor 为其渲染颜色
	textImage *ebiten.Image
	textColor color.RGBA

	rect     image.Rectangle
	textRect image.Rectangle
}

// NewButton 创建按钮
//
// 参数：
//   - background: 背景图片，nil 表示纯文字按钮
//   - pos: 按钮中心点（屏幕坐标）
//   - label: 按钮文字
//   - font: 文字渲染器
//   - baseColor: 常态文字颜色
//   - hoverColor: 悬停文字颜色
//
// 不返回错误：非法的字体或颜色属于调用方错误，由渲染库直接报出。
func NewButton(background *ebiten.Image, pos image.Point, label string, font TextRenderer, baseColor, hoverColor color.RGBA) *Button {
	b := &Button{
		position:   pos,
		label:      label,
		font:       font,
		baseColor:  baseColor,
		hoverColor: hoverColor,
	}

	b.textImage = font.RenderText(label, baseColor)
	b.textColor = baseColor

	body := b.textImage
	if background != nil {
		b.buttonType = ButtonTypeImage
		b.background = background
		body = background
	} else {
		b.buttonType = ButtonTypeTextOnly
	}

	b.rect = CenteredRect(pos, body.Bounds().Size())
	b.textRect = CenteredRect(pos, b.textImage.Bounds().Size())
	return b
}

// CenteredRect 返回以 center 为中心、尺寸为 size 的矩形
// 左上角为 center - size/2（整数除法），右下角为左上角 + size
func CenteredRect(center image.Point, size image.Point) image.Rectangle {
	topLeft := image.Pt(center.X-size.X/2, center.Y-size.Y/2)
	return image.Rectangle{Min: topLeft, Max: topLeft.Add(size)}
}

// Draw 把按钮绘制到 screen 上
// 先绘制背景（如果有），再在其上绘制文字
func (b *Button) Draw(screen Canvas) {
	if b.buttonType == ButtonTypeImage {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(b.rect.Min.X), float64(b.rect.Min.Y))
		screen.DrawImage(b.background, op)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(b.textRect.Min.X), float64(b.textRect.Min.Y))
	screen.DrawImage(b.textImage, op)
}

// IsInside 判断点是否在按钮点击区域内
// 左、上边界包含，右、下边界不包含
func (b *Button) IsInside(p image.Point) bool {
	return p.In(b.rect)
}

// RefreshHoverState 根据坐标重新渲染文字位图
// 坐标在按钮内时使用悬停色，否则使用常态色。每次调用都会重新渲染。
func (b *Button) RefreshHoverState(p image.Point) {
	clr := b.baseColor
	if b.IsInside(p) {
		clr = b.hoverColor
	}
	previous := b.textImage
	b.textImage = b.font.RenderText(b.label, clr)
	b.textColor = clr
	// 矩形在构造时已算好，旧位图不再被引用
	if previous != nil && previous != b.textImage {
		releaseTextImage(previous)
	}
}

// Type 返回按钮背景类型
func (b *Button) Type() ButtonType { return b.buttonType }

// Background 返回背景图片，纯文字按钮返回 nil
func (b *Button) Background() *ebiten.Image { return b.background }

// Position 返回按钮中心点
func (b *Button) Position() image.Point { return b.position }

// Label 返回按钮文字
func (b *Button) Label() string { return b.label }

// BaseColor 返回常态文字颜色
func (b *Button) BaseColor() color.RGBA { return b.baseColor }

// HoverColor 返回悬停文字颜色
func (b *Button) HoverColor() color.RGBA { return b.hoverColor }

// Rect 返回点击区域
func (b *Button) Rect() image.Rectangle { return b.rect }

// TextRect 返回文字绘制区域
func (b *Button) TextRect() image.Rectangle { return b.textRect }

// TextImage 返回当前文字位图
func (b *Button) TextImage() *ebiten.Image { return b.textImage }

// TextColor 返回当前文字位图的渲染颜色
func (b *Button) TextColor() color.RGBA { return b.textColor }
