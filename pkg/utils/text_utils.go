package utils

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// FaceRenderer 使用 Ebitengine text/v2 把文字渲染为独立位图
// 实现 components.TextRenderer
type FaceRenderer struct {
	face *text.GoTextFace
}

// NewFaceRenderer 创建文字渲染器
// face 为 nil 时 RenderText 会 panic（调用方错误）
func NewFaceRenderer(face *text.GoTextFace) *FaceRenderer {
	return &FaceRenderer{face: face}
}

// Face 返回底层字体
func (r *FaceRenderer) Face() *text.GoTextFace {
	return r.face
}

// MeasureText 返回文字位图的像素尺寸
//
// 宽度为排版宽度向上取整，高度为字体行高（ascent + descent）向上取整，
// 与文字颜色无关。宽、高最小为 1（空字符串得到 1 像素宽的位图）。
func (r *FaceRenderer) MeasureText(label string) image.Point {
	width, _ := text.Measure(label, r.face, 0)
	metrics := r.face.Metrics()
	height := metrics.HAscent + metrics.HDescent

	w := int(math.Ceil(width))
	h := int(math.Ceil(height))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return image.Pt(w, h)
}

// RenderText 以指定颜色把文字渲染为新位图
// 每次调用都创建新图像，不复用之前的结果
func (r *FaceRenderer) RenderText(label string, clr color.RGBA) *ebiten.Image {
	size := r.MeasureText(label)
	img := ebiten.NewImage(size.X, size.Y)

	if label == "" {
		return img
	}

	op := &text.DrawOptions{}
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(img, label, r.face, op)
	return img
}
