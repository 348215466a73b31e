package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// blockFont 每个字符 10x20 像素的测试字体
type blockFont struct{}

func (blockFont) RenderText(label string, clr color.RGBA) *ebiten.Image {
	width := len(label) * 10
	if width == 0 {
		width = 1
	}
	return ebiten.NewImage(width, 20)
}

// stubScene 记录被进入的次数
type stubScene struct {
	name    string
	entered int
}

func (s *stubScene) Update(deltaTime float64)  {}
func (s *stubScene) Draw(screen *ebiten.Image) {}
func (s *stubScene) OnEnter()                  { s.entered++ }
