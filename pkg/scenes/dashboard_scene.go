package scenes

import (
	"image"
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

// noSelection 表示键盘没有选中任何选项
const noSelection = -1

// DashboardScene represents the main menu screen.
// It shows the title and one text button per menu option, and dispatches the
// chosen option to the scene manager.
//
// Input:
//   - mouse/touch: hovering recolours an option, clicking selects and executes it
//   - Up/Down: move the selection with wrap-around (only once something is selected)
//   - Enter: execute the selected option
type DashboardScene struct {
	sceneManager *game.SceneManager
	menuConfig   *config.MenuConfig

	entityManager      *ecs.EntityManager
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem

	backgroundImage *ebiten.Image // 可为 nil
	titleImage      *ebiten.Image
	titleRect       image.Rectangle

	optionEntities []ecs.EntityID // 按菜单顺序
	selected       int            // optionEntities 下标，noSelection 表示未选择

	// setCaption 设置窗口标题，默认 ebiten.SetWindowTitle
	setCaption func(string)
}

// NewDashboardScene creates the main menu scene.
//
// Parameters:
//   - rm: used to load the optional background image
//   - sm: receives the scene switch / quit requests of the menu options
//   - cfg: menu layout and colours
//   - font: renders the title and option labels
//
// If the background image fails to load, the scene falls back to the solid background colour.
func NewDashboardScene(rm *game.ResourceManager, sm *game.SceneManager, cfg *config.MenuConfig, font components.TextRenderer) *DashboardScene {
	scene := &DashboardScene{
		sceneManager:  sm,
		menuConfig:    cfg,
		entityManager: ecs.NewEntityManager(),
		selected:      noSelection,
		setCaption:    ebiten.SetWindowTitle,
	}
	scene.buttonSystem = systems.NewButtonSystem(scene.entityManager)
	scene.buttonRenderSystem = systems.NewButtonRenderSystem(scene.entityManager)

	if cfg.Background.Image != "" {
		img, err := rm.LoadImage(cfg.Background.Image)
		if err != nil {
			log.Printf("[DashboardScene] Warning: Failed to load background image: %v", err)
		} else {
			scene.backgroundImage = img
		}
	}

	scene.titleImage = font.RenderText(cfg.Title.Text, cfg.Title.Color.Color())
	scene.titleRect = components.CenteredRect(
		image.Pt(config.WindowWidth/2, cfg.Title.Y),
		scene.titleImage.Bounds().Size(),
	)

	scene.initOptionButtons(font)
	log.Printf("[DashboardScene] Initialized with %d options", len(scene.optionEntities))
	return scene
}

// initOptionButtons 为每个菜单选项创建文字按钮
func (d *DashboardScene) initOptionButtons(font components.TextRenderer) {
	opts := d.menuConfig.Options
	for i, option := range opts.Items {
		index := i
		entity := entities.NewMenuOptionButton(
			d.entityManager,
			option,
			index,
			d.menuConfig.OptionCenter(index, config.WindowWidth),
			font,
			opts.BaseColor.Color(),
			opts.HoverColor.Color(),
			func() { d.onOptionClicked(index) },
		)
		d.optionEntities = append(d.optionEntities, entity)
	}
}

// OnEnter 设置窗口标题
func (d *DashboardScene) OnEnter() {
	if d.setCaption != nil {
		d.setCaption(d.menuConfig.Caption)
	}
}

// Update 处理本帧的键盘与指针输入
func (d *DashboardScene) Update(deltaTime float64) {
	d.HandleKey(utils.GetMenuKey())

	input := utils.GetInputState()
	d.HandlePointer(input.Point(), input.JustPressed)
}

// HandlePointer 刷新选项悬停颜色，点击时选中并执行命中的选项
func (d *DashboardScene) HandlePointer(p image.Point, clicked bool) {
	d.buttonSystem.HandlePointer(p, clicked)
}

// HandleKey 处理菜单导航按键
// 没有选中项时 Up/Down/Enter 都不起作用
func (d *DashboardScene) HandleKey(key utils.MenuKey) {
	if d.selected == noSelection {
		return
	}

	count := len(d.optionEntities)
	switch key {
	case utils.MenuKeyUp:
		d.selectIndex((d.selected - 1 + count) % count)
	case utils.MenuKeyDown:
		d.selectIndex((d.selected + 1) % count)
	case utils.MenuKeyConfirm:
		d.ExecuteOption(d.menuConfig.Options.Items[d.selected])
	}
}

// Selected 返回当前选中的选项
func (d *DashboardScene) Selected() (config.MenuOption, bool) {
	if d.selected == noSelection {
		return 0, false
	}
	return d.menuConfig.Options.Items[d.selected], true
}

// OptionButton 返回第 index 个选项的按钮
func (d *DashboardScene) OptionButton(index int) *components.Button {
	if index < 0 || index >= len(d.optionEntities) {
		return nil
	}
	button, _ := ecs.GetComponent[*components.Button](d.entityManager, d.optionEntities[index])
	return button
}

// TitleRect 返回标题绘制区域
func (d *DashboardScene) TitleRect() image.Rectangle {
	return d.titleRect
}

func (d *DashboardScene) selectIndex(index int) {
	d.selected = index
	d.buttonSystem.SetFocus(d.optionEntities[index])
}

func (d *DashboardScene) onOptionClicked(index int) {
	d.selectIndex(index)
	d.ExecuteOption(d.menuConfig.Options.Items[index])
}

// ExecuteOption 执行菜单选项
func (d *DashboardScene) ExecuteOption(option config.MenuOption) {
	switch option {
	case config.MenuOptionPlay:
		log.Println("Starting the game!")
		if d.sceneManager.HasScene(game.ScenePlay) {
			if err := d.sceneManager.Load(game.ScenePlay); err != nil {
				log.Printf("[DashboardScene] Failed to start game: %v", err)
			}
		}
	case config.MenuOptionHighScore:
		if err := d.sceneManager.Load(game.SceneHighScore); err != nil {
			log.Printf("[DashboardScene] Failed to open high scores: %v", err)
		}
	case config.MenuOptionQuit:
		d.sceneManager.RequestQuit()
	default:
		log.Printf("[DashboardScene] Unknown menu option: %v", option)
	}
}

// Draw renders the background, the title and the option buttons.
func (d *DashboardScene) Draw(screen *ebiten.Image) {
	screen.Fill(d.menuConfig.Background.Color.Color())
	if d.backgroundImage != nil {
		screen.DrawImage(d.backgroundImage, &ebiten.DrawImageOptions{})
	}
	d.drawTitle(screen)
	d.buttonRenderSystem.Draw(screen)
}

func (d *DashboardScene) drawTitle(screen components.Canvas) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(d.titleRect.Min.X), float64(d.titleRect.Min.Y))
	screen.DrawImage(d.titleImage, op)
}

