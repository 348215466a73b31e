// validate_menu_config 校验菜单配置文件并打印解析结果
//
// 用法：
//
//	go run ./cmd/validate_menu_config -config data/menu.yaml
//	go run ./cmd/validate_menu_config -config my_menu.yaml -dump
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/minesweeper/pkg/config"
	"gopkg.in/yaml.v3"
)

var (
	configPath = flag.String("config", config.MenuConfigPath, "菜单配置文件路径")
	dump       = flag.Bool("dump", false, "输出补全默认值后的完整配置")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadMenuConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ %s is valid\n", *configPath)
	fmt.Printf("Caption: %s (tps %d)\n", cfg.Caption, cfg.EffectiveTPS())
	fmt.Printf("Title:   %q at y=%d, color %s\n", cfg.Title.Text, cfg.Title.Y, cfg.Title.Color)

	font := cfg.Font.Path
	if font == "" {
		font = "<built-in Go Regular>"
	}
	fmt.Printf("Font:    %s, size %.1f\n", font, cfg.Font.Size)

	fmt.Printf("Options (base %s, hover %s):\n", cfg.Options.BaseColor, cfg.Options.HoverColor)
	for i, option := range cfg.Options.Items {
		center := cfg.OptionCenter(i, config.WindowWidth)
		fmt.Printf("  %d. %-10s center=(%d,%d)\n", i+1, option.Label(), center.X, center.Y)
	}
	fmt.Printf("High score: %q, max %d entries\n", cfg.HighScore.Title, cfg.HighScore.MaxEntries)

	if *dump {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ failed to marshal config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("---")
		fmt.Print(string(data))
	}
}
