package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"

	"github.com/decker502/minesweeper/pkg/embedded"
	"github.com/decker502/minesweeper/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontKey 内置字体在缓存中的键
const DefaultFontKey = "builtin:goregular"

// ResourceManager is responsible for centralized management of images and fonts.
// Resources are loaded only once and reused by every scene.
//
// Lookup order for a path:
//  1. the embedded data FS (when initialized and the file exists there)
//  2. the local file system
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps
// and must only be touched from the game loop goroutine.
//
// Usage:
//
//	rm := NewResourceManager()
//	face, err := rm.LoadFont("", 36) // built-in Go Regular
//	if err != nil {
//	    log.Printf("Failed to load font: %v", err)
//	}
type ResourceManager struct {
	imageCache      map[string]*ebiten.Image          // path -> Image
	fontSourceCache map[string]*text.GoTextFaceSource // path -> parsed font file
	fontFaceCache   map[string]*text.GoTextFace       // path:size -> face
}

// NewResourceManager creates a ResourceManager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:      make(map[string]*ebiten.Image),
		fontSourceCache: make(map[string]*text.GoTextFaceSource),
		fontFaceCache:   make(map[string]*text.GoTextFace),
	}
}

// readResource 读取资源文件，优先使用嵌入资源
func readResource(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// LoadImage loads an image (PNG or JPEG) and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be read or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := readResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// loadFontSource 解析字体文件，空路径返回内置 Go Regular 字体
func (rm *ResourceManager) loadFontSource(path string) (*text.GoTextFaceSource, error) {
	key := path
	if key == "" {
		key = DefaultFontKey
	}
	if source, exists := rm.fontSourceCache[key]; exists {
		return source, nil
	}

	var fontData []byte
	if path == "" {
		fontData = goregular.TTF
	} else {
		data, err := readResource(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
		}
		fontData = data
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", key, err)
	}

	rm.fontSourceCache[key] = source
	return source, nil
}

// LoadFont loads a TrueType/OpenType font at the given size.
// An empty path selects the built-in Go Regular font.
// Faces are cached per path and size; the parsed font file is shared between sizes.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, err := rm.loadFontSource(path)
	if err != nil {
		return nil, err
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// LoadTextRenderer 加载字体并包装为按钮使用的文字渲染器
func (rm *ResourceManager) LoadTextRenderer(path string, size float64) (*utils.FaceRenderer, error) {
	face, err := rm.LoadFont(path, size)
	if err != nil {
		return nil, err
	}
	return utils.NewFaceRenderer(face), nil
}
