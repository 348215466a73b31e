package config

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// MenuOption 主菜单选项
type MenuOption int

const (
	// MenuOptionPlay 开始游戏
	MenuOptionPlay MenuOption = iota
	// MenuOptionHighScore 查看高分榜
	MenuOptionHighScore
	// MenuOptionQuit 退出程序
	MenuOptionQuit
)

var menuOptionNames = map[MenuOption]string{
	MenuOptionPlay:      "PLAY",
	MenuOptionHighScore: "HIGH_SCORE",
	MenuOptionQuit:      "QUIT",
}

// String 返回选项名，如 "HIGH_SCORE"
func (o MenuOption) String() string {
	if name, ok := menuOptionNames[o]; ok {
		return name
	}
	return fmt.Sprintf("MenuOption(%d)", int(o))
}

// Label 返回按钮上显示的文字：选项名中的下划线替换为空格
func (o MenuOption) Label() string {
	return strings.ReplaceAll(o.String(), "_", " ")
}

// ParseMenuOption 按名字解析选项（不区分大小写，空格与下划线等价）
func ParseMenuOption(name string) (MenuOption, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
	for option, optionName := range menuOptionNames {
		if optionName == normalized {
			return option, nil
		}
	}
	return 0, fmt.Errorf("unknown menu option %q", name)
}

// UnmarshalYAML 实现 yaml.Unmarshaler
func (o *MenuOption) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("line %d: menu option must be a string: %w", value.Line, err)
	}
	option, err := ParseMenuOption(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*o = option
	return nil
}

// MarshalYAML 实现 yaml.Marshaler
func (o MenuOption) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// MenuConfig 主菜单配置（data/menu.yaml）
type MenuConfig struct {
	// Caption 进入主菜单时设置的窗口标题
	Caption string `yaml:"caption"`
	// TPS 逻辑帧率，0 表示使用 DefaultTPS
	TPS int `yaml:"tps"`

	Title      TitleConfig      `yaml:"title"`
	Font       FontConfig       `yaml:"font"`
	Background BackgroundConfig `yaml:"background"`
	Options    OptionsConfig    `yaml:"options"`
	HighScore  HighScoreConfig  `yaml:"highScore"`
}

// TitleConfig 菜单标题
type TitleConfig struct {
	Text  string   `yaml:"text"`
	Y     int      `yaml:"y"`
	Color HexColor `yaml:"color"`
}

// FontConfig 字体
type FontConfig struct {
	// Path 字体文件路径，空字符串表示使用内置 Go Regular 字体
	Path string  `yaml:"path"`
	Size float64 `yaml:"size"`
}

// BackgroundConfig 背景
type BackgroundConfig struct {
	// Image 背景图片路径，可为空
	Image string `yaml:"image"`
	// Color 背景图片缺失时的填充色
	Color HexColor `yaml:"color"`
}

// OptionsConfig 菜单选项按钮布局
type OptionsConfig struct {
	// StartY 第一个选项中心的 Y 坐标
	StartY int `yaml:"startY"`
	// Spacing 相邻选项中心的垂直间距
	Spacing    int          `yaml:"spacing"`
	BaseColor  HexColor     `yaml:"baseColor"`
	HoverColor HexColor     `yaml:"hoverColor"`
	Items      []MenuOption `yaml:"items"`
}

// HighScoreConfig 高分榜界面
type HighScoreConfig struct {
	Title      string `yaml:"title"`
	MaxEntries int    `yaml:"maxEntries"`
	BackLabel  string `yaml:"backLabel"`
	// EntryStartY 第一行记录的 Y 坐标
	EntryStartY int `yaml:"entryStartY"`
	// EntrySpacing 记录行间距
	EntrySpacing int `yaml:"entrySpacing"`
	// BackY 返回按钮中心的 Y 坐标
	BackY int `yaml:"backY"`
}

// DefaultMenuConfig 返回默认菜单配置
func DefaultMenuConfig() *MenuConfig {
	white := HexColor(color.RGBA{255, 255, 255, 255})
	return &MenuConfig{
		Caption: "Minesweeper Menu",
		TPS:     DefaultTPS,
		Title: TitleConfig{
			Text:  "Minesweeper",
			Y:     100,
			Color: HexColor(color.RGBA{0xb6, 0x8f, 0x40, 0xff}),
		},
		Font: FontConfig{
			Path: "",
			Size: 36,
		},
		Background: BackgroundConfig{
			Image: "",
			Color: HexColor(color.RGBA{0, 0, 0, 255}),
		},
		Options: OptionsConfig{
			StartY:     200,
			Spacing:    50,
			BaseColor:  white,
			HoverColor: HexColor(color.RGBA{255, 0, 0, 255}),
			Items:      []MenuOption{MenuOptionPlay, MenuOptionHighScore, MenuOptionQuit},
		},
		HighScore: HighScoreConfig{
			Title:        "HIGH SCORE",
			MaxEntries:   DefaultMaxHighScores,
			BackLabel:    "BACK",
			EntryStartY:  200,
			EntrySpacing: 40,
			BackY:        640,
		},
	}
}

// ParseMenuConfig 解析 YAML 菜单配置
// 未出现的字段保留默认值
func ParseMenuConfig(data []byte) (*MenuConfig, error) {
	cfg := DefaultMenuConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse menu config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadMenuConfig 从磁盘加载菜单配置
func LoadMenuConfig(path string) (*MenuConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu config %s: %w", path, err)
	}
	return ParseMenuConfig(data)
}

// Validate 检查配置合法性
func (c *MenuConfig) Validate() error {
	if c.Font.Size <= 0 {
		return fmt.Errorf("invalid menu config: font.size must be positive, got %v", c.Font.Size)
	}
	if c.TPS < 0 {
		return fmt.Errorf("invalid menu config: tps must not be negative, got %d", c.TPS)
	}
	if len(c.Options.Items) == 0 {
		return fmt.Errorf("invalid menu config: options.items must not be empty")
	}
	seen := make(map[MenuOption]bool, len(c.Options.Items))
	for _, item := range c.Options.Items {
		if seen[item] {
			return fmt.Errorf("invalid menu config: duplicate option %s", item)
		}
		seen[item] = true
	}
	if c.Options.Spacing <= 0 {
		return fmt.Errorf("invalid menu config: options.spacing must be positive, got %d", c.Options.Spacing)
	}
	if c.HighScore.MaxEntries <= 0 {
		return fmt.Errorf("invalid menu config: highScore.maxEntries must be positive, got %d", c.HighScore.MaxEntries)
	}
	return nil
}

// EffectiveTPS 返回实际使用的逻辑帧率
func (c *MenuConfig) EffectiveTPS() int {
	if c.TPS == 0 {
		return DefaultTPS
	}
	return c.TPS
}

// OptionCenter 计算第 index 个选项按钮的中心点
// 水平居中于屏幕，垂直方向从 StartY 开始按 Spacing 递增
func (c *MenuConfig) OptionCenter(index, screenWidth int) image.Point {
	return image.Pt(screenWidth/2, c.Options.StartY+index*c.Options.Spacing)
}
