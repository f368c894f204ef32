package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
	_ "golang.org/x/image/webp" // Register WebP decoder

	"github.com/decker502/plantbuddy/pkg/config"
	"github.com/decker502/plantbuddy/pkg/utils"
)

// ResourceManager is responsible for loading and caching the game's images and fonts.
//
// Stage images are read from an fs.FS (os.DirFS(".") in production, fstest.MapFS in tests).
// A missing or undecodable stage image never aborts startup: a procedural placeholder
// is generated for that stage instead.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All calls are expected to happen on the
// ebiten update goroutine.
type ResourceManager struct {
	assets        fs.FS                    // Asset file system rooted at the project directory
	imageDir      string                   // Directory holding stage images, relative to assets
	stageImages   map[string]*ebiten.Image // Cache: stage name -> Image
	placeholders  map[string]bool          // Stage names that fell back to a placeholder
	fontSource    *text.GoTextFaceSource   // Shared Go Regular font source
	fontFaceCache map[float64]*text.GoTextFace
}

// NewResourceManager creates a ResourceManager reading stage images from imageDir inside assets.
//
// Parameters:
//   - assets: The file system to read from. May be nil, in which case every stage uses a placeholder.
//   - imageDir: Directory of stage images (e.g., "assets/images").
func NewResourceManager(assets fs.FS, imageDir string) *ResourceManager {
	return &ResourceManager{
		assets:        assets,
		imageDir:      imageDir,
		stageImages:   make(map[string]*ebiten.Image),
		placeholders:  make(map[string]bool),
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}
}

// LoadStageImages loads the image for every stage, substituting placeholders on failure.
//
// Returns:
//   - The number of stages that fell back to a placeholder.
func (rm *ResourceManager) LoadStageImages(stages []config.GrowthStage) int {
	fallbacks := 0
	for _, stage := range stages {
		if !rm.loadStageImage(stage) {
			fallbacks++
		}
	}
	log.Printf("[ResourceManager] 加载 %d 个阶段图片，其中 %d 个使用占位图", len(stages), fallbacks)
	return fallbacks
}

// loadStageImage loads one stage image, returning false if a placeholder was used.
func (rm *ResourceManager) loadStageImage(stage config.GrowthStage) bool {
	if _, exists := rm.stageImages[stage.Name]; exists {
		return !rm.placeholders[stage.Name]
	}

	img, err := DecodeStageImage(rm.assets, path.Join(rm.imageDir, stage.Image))
	if err != nil {
		log.Printf("[ResourceManager] Warning: %v (using placeholder for %s)", err, stage.Name)
		rm.stageImages[stage.Name] = ebiten.NewImageFromImage(utils.GeneratePlaceholder(stage.Name))
		rm.placeholders[stage.Name] = true
		return false
	}

	rm.stageImages[stage.Name] = ebiten.NewImageFromImage(img)
	return true
}

// GetStageImage returns the cached image for the named stage, or nil if it was never loaded.
func (rm *ResourceManager) GetStageImage(name string) *ebiten.Image {
	return rm.stageImages[name]
}

// IsPlaceholder reports whether the named stage is drawn with a generated placeholder.
func (rm *ResourceManager) IsPlaceholder(name string) bool {
	return rm.placeholders[name]
}

// LoadFont returns a Go Regular text face of the given size, cached per size.
//
// Returns:
//   - A pointer to the text.GoTextFace ready for rendering.
//   - An error if the embedded font data cannot be parsed.
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if cachedFace, exists := rm.fontFaceCache[size]; exists {
		return cachedFace, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}

// DecodeStageImage reads and decodes a PNG, JPEG or WebP image from fsys.
func DecodeStageImage(fsys fs.FS, name string) (image.Image, error) {
	if fsys == nil {
		return nil, fmt.Errorf("no asset file system for %s", name)
	}

	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", name, err)
	}
	return img, nil
}
