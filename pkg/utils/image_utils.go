package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// NewPanelImage 生成带边框的纯色面板图片
// 用作没有美术资源时的按钮背景
//
// 参数：
//   - width, height: 图片尺寸（像素，最小为 1）
//   - fill: 填充色
//   - border: 边框色
//   - borderWidth: 边框宽度，<= 0 时不绘制边框
func NewPanelImage(width, height int, fill, border color.Color, borderWidth float32) *ebiten.Image {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	img := ebiten.NewImage(width, height)
	img.Fill(fill)

	if borderWidth > 0 {
		// 描边以线宽中心为准，向内偏移半个线宽使边框完整落在图片内
		half := borderWidth / 2
		vector.StrokeRect(img, half, half, float32(width)-borderWidth, float32(height)-borderWidth, borderWidth, border, false)
	}
	return img
}
