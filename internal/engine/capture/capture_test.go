package capture

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFromGLPixelsFlips(t *testing.T) {
	// 1x2: bottom row red, top row blue.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FromGLPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FromGLPixels: %v", err)
	}

	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("top pixel: expected blue, got %v", got)
	}
	if got := img.NRGBAAt(0, 1); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("bottom pixel: expected red, got %v", got)
	}
}

func TestFromGLPixelsSizeMismatch(t *testing.T) {
	if _, err := FromGLPixels(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected size mismatch error")
	}
	if _, err := FromGLPixels(nil, 0, 0); err == nil {
		t.Error("expected invalid size error")
	}
}

func TestSavePixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	c := New(dir, "court")
	c.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	path, err := c.SavePixels(make([]byte, 4*3*2), 3, 2)
	if err != nil {
		t.Fatalf("SavePixels: %v", err)
	}
	if want := filepath.Join(dir, "court_2026-01-02_03-04-05.png"); path != want {
		t.Errorf("expected %s, got %s", want, path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("unexpected size %v", b)
	}
}

func TestFilenameWithoutDir(t *testing.T) {
	c := New("", "shot")
	if name := c.Filename(); strings.Contains(name, string(filepath.Separator)) || !strings.HasPrefix(name, "shot_") {
		t.Errorf("unexpected filename %s", name)
	}
}
