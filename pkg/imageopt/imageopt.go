// Package imageopt 压缩植物阶段图片
//
// 每张图片被铺平到白色背景、等比缩小到最大边长以内，再以 JPEG 重新编码并覆盖原文件。
// 文件名保持不变（包括 .webp / .png 扩展名），游戏加载时通过 image.Decode 按内容识别格式。
package imageopt

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "image/png" // 注册 PNG 解码器

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // 注册 WebP 解码器
)

const (
	// DefaultQuality 默认 JPEG 质量
	DefaultQuality = 85
	// DefaultMaxSize 默认最大边长（像素）
	DefaultMaxSize = 400
)

// SupportedExtensions 参与压缩的文件扩展名（不区分大小写）
var SupportedExtensions = []string{".png", ".jpg", ".jpeg", ".webp"}

// ErrFolderNotFound 目标目录不存在
var ErrFolderNotFound = errors.New("folder not found")

// Options 压缩参数
type Options struct {
	Quality int // JPEG 质量 1-100
	MaxSize int // 最大宽高，<= 0 表示不缩放
}

// DefaultOptions 返回默认压缩参数
func DefaultOptions() Options {
	return Options{Quality: DefaultQuality, MaxSize: DefaultMaxSize}
}

// Validate 检查参数范围
func (o Options) Validate() error {
	if o.Quality < 1 || o.Quality > 100 {
		return fmt.Errorf("quality must be in [1, 100], got %d", o.Quality)
	}
	if o.MaxSize < 0 {
		return fmt.Errorf("max size must not be negative, got %d", o.MaxSize)
	}
	return nil
}

// Result 单个文件的压缩结果
type Result struct {
	Path         string
	OriginalSize int64
	NewSize      int64
	Width        int // 输出宽度
	Height       int // 输出高度
	Err          error
}

// Reduction 体积减少的百分比，原始大小未知时返回 0
func (r Result) Reduction() float64 {
	if r.OriginalSize <= 0 {
		return 0
	}
	return float64(r.OriginalSize-r.NewSize) / float64(r.OriginalSize) * 100
}

// IsSupported 判断文件名是否为可压缩的图片
func IsSupported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// FitSize 计算等比缩放到 maxSize 以内的尺寸，只缩小不放大
func FitSize(width, height, maxSize int) (int, int) {
	if maxSize <= 0 || (width <= maxSize && height <= maxSize) {
		return width, height
	}

	scale := math.Min(float64(maxSize)/float64(width), float64(maxSize)/float64(height))
	w := max(1, int(math.Round(float64(width)*scale)))
	h := max(1, int(math.Round(float64(height)*scale)))
	return min(w, maxSize), min(h, maxSize)
}

// Flatten 将图片铺平到白色背景上，去掉透明通道
func Flatten(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Over)
	return dst
}

// Resize 使用 Catmull-Rom 插值等比缩小到 maxSize 以内
func Resize(src image.Image, maxSize int) image.Image {
	bounds := src.Bounds()
	w, h := FitSize(bounds.Dx(), bounds.Dy(), maxSize)
	if w == bounds.Dx() && h == bounds.Dy() {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}

// Optimize 解码、铺平、缩放并以 JPEG 编码，返回编码后的字节与输出尺寸
func Optimize(data []byte, opts Options) ([]byte, image.Point, error) {
	if err := opts.Validate(); err != nil {
		return nil, image.Point{}, err
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, image.Point{}, fmt.Errorf("failed to decode image: %w", err)
	}

	out := Resize(Flatten(src), opts.MaxSize)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: opts.Quality}); err != nil {
		return nil, image.Point{}, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), out.Bounds().Size(), nil
}

// OptimizeFile 压缩单个文件并覆盖原文件
// 失败时原文件保持不变，错误记录在 Result.Err 中
func OptimizeFile(path string, opts Options) Result {
	result := Result{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Err = fmt.Errorf("failed to read %s: %w", path, err)
		return result
	}
	result.OriginalSize = int64(len(data))

	encoded, size, err := Optimize(data, opts)
	if err != nil {
		result.Err = fmt.Errorf("%s: %w", filepath.Base(path), err)
		return result
	}

	if err := os.WriteFile(path, encoded, 0644); err != nil {
		result.Err = fmt.Errorf("failed to write %s: %w", path, err)
		return result
	}

	result.NewSize = int64(len(encoded))
	result.Width, result.Height = size.X, size.Y
	return result
}

// OptimizeFolder 压缩目录下所有支持的图片（不递归）
//
// 单个文件失败不会中断处理，结果按文件名排序返回。
// 目录不存在时返回 ErrFolderNotFound。
func OptimizeFolder(dir string, opts Options) ([]Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, dir)
		}
		return nil, fmt.Errorf("failed to read folder %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !IsSupported(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	results := make([]Result, 0, len(names))
	for _, name := range names {
		results = append(results, OptimizeFile(filepath.Join(dir, name), opts))
	}
	return results, nil
}
