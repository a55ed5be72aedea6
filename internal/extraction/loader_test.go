package extraction

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, dir, name string) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.Set(x, y, color.RGBA{200, 200, 200, 255})
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	return path
}

func TestImageCacheLoad(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), "sample.png")
	cache := NewImageCache()

	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 20 {
		t.Errorf("loaded bounds = %v, want 20x20", img.Bounds())
	}

	// Second load must hit the cache even after the file disappears.
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := cache.Load(path); err != nil {
		t.Errorf("cached Load failed: %v", err)
	}
}

func TestImageCacheEvict(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), "sample.png")
	cache := NewImageCache()

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Evict(path)
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := cache.Load(path); err == nil {
		t.Error("Load after Evict should re-read the missing file and fail")
	}
}

func TestImageCacheClear(t *testing.T) {
	dir := t.TempDir()
	a := writeTestPNG(t, dir, "a.png")
	b := writeTestPNG(t, dir, "b.png")
	cache := NewImageCache()

	for _, p := range []string{a, b} {
		if _, err := cache.Load(p); err != nil {
			t.Fatalf("Load %s: %v", p, err)
		}
	}

	cache.Clear()
	if err := os.Remove(a); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := cache.Load(a); err == nil {
		t.Error("Load after Clear should fail for removed file")
	}
}

func TestImageCacheMissingFile(t *testing.T) {
	cache := NewImageCache()
	if _, err := cache.Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("Load of missing file should fail")
	}
}

func TestImageCacheNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cache := NewImageCache()
	if _, err := cache.Load(path); err == nil {
		t.Error("Load of non-image file should fail")
	}
}
