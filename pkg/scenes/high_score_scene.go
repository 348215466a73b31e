package scenes

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/decker502/minesweeper/pkg/components"
	"github.com/decker502/minesweeper/pkg/config"
	"github.com/decker502/minesweeper/pkg/ecs"
	"github.com/decker502/minesweeper/pkg/entities"
	"github.com/decker502/minesweeper/pkg/game"
	"github.com/decker502/minesweeper/pkg/systems"
	"github.com/decker502/minesweeper/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 返回按钮背景面板
const (
	backButtonWidth       = 200
	backButtonHeight      = 60
	backButtonBorderWidth = 2
)

var (
	backButtonFill   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	backButtonBorder = color.RGBA{R: 0xb6, G: 0x8f, B: 0x40, A: 255}
)

// HighScoreScene 高分榜界面
// 每次进入时根据 ScoreManager 重新生成记录行；点击 BACK 或按 Esc 返回主菜单
type HighScoreScene struct {
	sceneManager *game.SceneManager
	scores       *game.ScoreManager
	menuConfig   *config.MenuConfig
	font         components.TextRenderer

	entityManager      *ecs.EntityManager
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem
	backButton         ecs.EntityID

	titleImage *ebiten.Image
	titleRect  image.Rectangle

	lines      []string
	lineImages []*ebiten.Image
}

// NewHighScoreScene 创建高分榜界面
// 界面内容在 OnEnter 中生成
func NewHighScoreScene(sm *game.SceneManager, scores *game.ScoreManager, cfg *config.MenuConfig, font components.TextRenderer) *HighScoreScene {
	scene := &HighScoreScene{
		sceneManager: sm,
		scores:       scores,
		menuConfig:   cfg,
		font:         font,
	}

	scene.titleImage = font.RenderText(cfg.HighScore.Title, cfg.Title.Color.Color())
	scene.titleRect = components.CenteredRect(
		image.Pt(config.WindowWidth/2, cfg.Title.Y),
		scene.titleImage.Bounds().Size(),
	)
	return scene
}

// OnEnter 重新生成记录行和返回按钮
func (h *HighScoreScene) OnEnter() {
	h.entityManager = ecs.NewEntityManager()
	h.buttonSystem = systems.NewButtonSystem(h.entityManager)
	h.buttonRenderSystem = systems.NewButtonRenderSystem(h.entityManager)

	h.lines = FormatHighScoreLines(h.scores.Entries(), h.menuConfig.HighScore.MaxEntries)

	baseColor := h.menuConfig.Options.BaseColor.Color()
	h.lineImages = h.lineImages[:0]
	for _, line := range h.lines {
		h.lineImages = append(h.lineImages, h.font.RenderText(line, baseColor))
	}

	background := utils.NewPanelImage(backButtonWidth, backButtonHeight, backButtonFill, backButtonBorder, backButtonBorderWidth)
	h.backButton = entities.NewMenuButton(
		h.entityManager,
		background,
		image.Pt(config.WindowWidth/2, h.menuConfig.HighScore.BackY),
		h.menuConfig.HighScore.BackLabel,
		h.font,
		baseColor,
		h.menuConfig.Options.HoverColor.Color(),
		h.goBack,
	)

	log.Printf("[HighScoreScene] Showing %d entries", len(h.lines))
}

// FormatHighScoreLines 把高分记录格式化为显示行
// 没有记录时返回单行 "No scores yet"
func FormatHighScoreLines(entries []game.HighScoreEntry, maxEntries int) []string {
	if len(entries) == 0 {
		return []string{"No scores yet"}
	}
	if maxEntries > 0 && len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}

	lines := make([]string, 0, len(entries))
	for i, entry := range entries {
		lines = append(lines, fmt.Sprintf("%d. %s  %ds  %s", i+1, entry.Name, entry.Seconds, entry.Difficulty))
	}
	return lines
}

// Lines 返回当前显示的记录行
func (h *HighScoreScene) Lines() []string {
	return h.lines
}

// BackButton 返回 BACK 按钮
func (h *HighScoreScene) BackButton() *components.Button {
	if h.entityManager == nil {
		return nil
	}
	button, _ := ecs.GetComponent[*components.Button](h.entityManager, h.backButton)
	return button
}

// Update 处理返回按键和指针输入
func (h *HighScoreScene) Update(deltaTime float64) {
	if h.entityManager == nil {
		return
	}
	if h.HandleKey(utils.GetMenuKey()) {
		return
	}
	input := utils.GetInputState()
	h.HandlePointer(input.Point(), input.JustPressed)
}

// HandleKey 处理按键，返回是否已离开本界面
func (h *HighScoreScene) HandleKey(key utils.MenuKey) bool {
	if key != utils.MenuKeyBack {
		return false
	}
	h.goBack()
	return true
}

// HandlePointer 刷新 BACK 按钮悬停颜色，点击时返回主菜单
func (h *HighScoreScene) HandlePointer(p image.Point, clicked bool) {
	h.buttonSystem.HandlePointer(p, clicked)
}

func (h *HighScoreScene) goBack() {
	if err := h.sceneManager.Load(game.SceneDashboard); err != nil {
		log.Printf("[HighScoreScene] Failed to return to dashboard: %v", err)
	}
}

// Draw 绘制标题、记录行和 BACK 按钮
func (h *HighScoreScene) Draw(screen *ebiten.Image) {
	screen.Fill(h.menuConfig.Background.Color.Color())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.titleRect.Min.X), float64(h.titleRect.Min.Y))
	screen.DrawImage(h.titleImage, op)

	hs := h.menuConfig.HighScore
	for i, img := range h.lineImages {
		rect := components.CenteredRect(
			image.Pt(config.WindowWidth/2, hs.EntryStartY+i*hs.EntrySpacing),
			img.Bounds().Size(),
		)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
		screen.DrawImage(img, op)
	}

	if h.buttonRenderSystem != nil {
		h.buttonRenderSystem.Draw(screen)
	}
}
