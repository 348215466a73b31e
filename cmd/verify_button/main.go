package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"os"
	"strings"

	"github.com/decker502/minesweeper/pkg/components"
	"github.com/decker502/minesweeper/pkg/config"
	"github.com/decker502/minesweeper/pkg/ecs"
	"github.com/decker502/minesweeper/pkg/entities"
	"github.com/decker502/minesweeper/pkg/game"
	"github.com/decker502/minesweeper/pkg/systems"
	"github.com/decker502/minesweeper/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	// 命令行参数
	verbose  = flag.Bool("verbose", false, "显示详细调试信息")
	labels   = flag.String("labels", "PLAY,HIGH SCORE,QUIT", "文字按钮标签，逗号分隔")
	fontPath = flag.String("font", "", "字体文件路径（默认内置 Go Regular）")
	fontSize = flag.Float64("font-size", 36, "字体大小")
	panelW   = flag.Int("panel-width", 240, "图片按钮背景宽度")
	panelH   = flag.Int("panel-height", 72, "图片按钮背景高度")
)

var (
	white      = color.RGBA{255, 255, 255, 255}
	red        = color.RGBA{255, 0, 0, 255}
	rectColor  = color.RGBA{0, 255, 0, 255}
	textColor  = color.RGBA{255, 255, 0, 255}
	panelFill  = color.RGBA{40, 40, 40, 255}
	panelFrame = color.RGBA{0xb6, 0x8f, 0x40, 255}
)

// VerifyButtonGame 按钮点击区域验证程序
// 绘制每个按钮的点击区域和文字区域，并显示指针坐标的命中结果
type VerifyButtonGame struct {
	entityManager      *ecs.EntityManager
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem

	buttons   []ecs.EntityID
	pointer   image.Point
	lastClick string
}

// NewVerifyButtonGame 创建验证程序实例
func NewVerifyButtonGame() (*VerifyButtonGame, error) {
	rm := game.NewResourceManager()
	font, err := rm.LoadTextRenderer(*fontPath, *fontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	em := ecs.NewEntityManager()
	g := &VerifyButtonGame{
		entityManager:      em,
		buttonSystem:       systems.NewButtonSystem(em),
		buttonRenderSystem: systems.NewButtonRenderSystem(em),
	}

	// 左列：文字按钮
	for i, label := range strings.Split(*labels, ",") {
		label = strings.TrimSpace(label)
		center := image.Pt(config.WindowWidth/3, 200+i*80)
		g.addButton(nil, center, label, font)
	}

	// 右列：图片背景按钮
	background := utils.NewPanelImage(*panelW, *panelH, panelFill, panelFrame, 2)
	g.addButton(background, image.Pt(config.WindowWidth*2/3, 200), "BACK", font)
	g.addButton(background, image.Pt(config.WindowWidth*2/3, 320), "", font)

	log.Printf("[VerifyButtonGame] 创建了 %d 个按钮", len(g.buttons))
	return g, nil
}

func (g *VerifyButtonGame) addButton(background *ebiten.Image, center image.Point, label string, font components.TextRenderer) {
	name := label
	if name == "" {
		name = "<empty>"
	}
	id := entities.NewMenuButton(g.entityManager, background, center, label, font, white, red, func() {
		g.lastClick = fmt.Sprintf("%s @ (%d,%d)", name, g.pointer.X, g.pointer.Y)
		log.Printf("[VerifyButtonGame] clicked %s", g.lastClick)
	})
	g.buttons = append(g.buttons, id)
}

// Update 更新逻辑
func (g *VerifyButtonGame) Update() error {
	// 快捷键：Q 键退出
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		log.Println("[VerifyButtonGame] 退出验证程序")
		return ebiten.Termination
	}

	input := utils.GetInputState()
	g.pointer = input.Point()
	g.buttonSystem.HandlePointer(g.pointer, input.JustPressed)
	return nil
}

// Draw 绘制按钮和调试信息
func (g *VerifyButtonGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.buttonRenderSystem.Draw(screen)

	var info strings.Builder
	fmt.Fprintf(&info, "Pointer: (%d,%d)\n", g.pointer.X, g.pointer.Y)
	for _, id := range g.buttons {
		button, ok := ecs.GetComponent[*components.Button](g.entityManager, id)
		if !ok {
			continue
		}
		g.drawRect(screen, button.Rect(), rectColor)
		g.drawRect(screen, button.TextRect(), textColor)
		fmt.Fprintf(&info, "%-12q rect=%v inside=%v\n", button.Label(), button.Rect(), button.IsInside(g.pointer))
	}
	fmt.Fprintf(&info, "Last click: %s\n", g.lastClick)
	info.WriteString("Green = hit area, Yellow = text area, Q = quit")

	ebitenutil.DebugPrintAt(screen, info.String(), 10, 10)
}

// drawRect 描出矩形轮廓
// 右、下边界不属于矩形，描边落在 Max-1 像素上
func (g *VerifyButtonGame) drawRect(screen *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.StrokeRect(screen,
		float32(r.Min.X)+0.5, float32(r.Min.Y)+0.5,
		float32(r.Dx()-1), float32(r.Dy()-1),
		1, clr, false)
}

// Layout 设置屏幕布局
func (g *VerifyButtonGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func main() {
	flag.Parse()

	// 默认静音运行；如需详细调试，传入 --verbose
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	verifyGame, err := NewVerifyButtonGame()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to create verify game: %v", err)
	}

	ebiten.SetWindowTitle("Button Hit Area Verification")
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)

	if err := ebiten.RunGame(verifyGame); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
