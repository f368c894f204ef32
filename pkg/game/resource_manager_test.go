package game

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.SetRGBA(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("编码测试 PNG 失败: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeStageImage(t *testing.T) {
	fsys := fstest.MapFS{
		"assets/images/seed.png":    {Data: encodeTestPNG(t, 8, 6)},
		"assets/images/broken.webp": {Data: []byte("not an image")},
	}

	img, err := DecodeStageImage(fsys, "assets/images/seed.png")
	if err != nil {
		t.Fatalf("解码失败: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
		t.Errorf("图片尺寸 = %v", img.Bounds())
	}

	if _, err := DecodeStageImage(fsys, "assets/images/broken.webp"); err == nil {
		t.Error("损坏的图片应返回错误")
	}
	if _, err := DecodeStageImage(fsys, "assets/images/missing.png"); err == nil {
		t.Error("缺失的图片应返回错误")
	}
	if _, err := DecodeStageImage(nil, "assets/images/seed.png"); err == nil {
		t.Error("nil 文件系统应返回错误")
	}
}

func TestResourceManager_GetStageImageUnloaded(t *testing.T) {
	rm := NewResourceManager(fstest.MapFS{}, "assets/images")
	if rm.GetStageImage("seed") != nil {
		t.Error("未加载的阶段图片应返回 nil")
	}
	if rm.IsPlaceholder("seed") {
		t.Error("未加载的阶段不应标记为占位图")
	}
}

func TestResourceManager_LoadFontCached(t *testing.T) {
	rm := NewResourceManager(nil, "")

	face1, err := rm.LoadFont(20)
	if err != nil {
		t.Fatalf("LoadFont 失败: %v", err)
	}
	face2, _ := rm.LoadFont(20)
	if face1 != face2 {
		t.Error("同一字号应返回缓存的字体")
	}

	face3, _ := rm.LoadFont(16)
	if face3 == face1 || face3.Size != 16 {
		t.Error("不同字号应返回不同字体")
	}
}
