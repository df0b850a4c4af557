package asset

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
	"time"
)

func TestEmbeddedSprites(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sheets, err := Embedded().LoadSprites(ctx)
	if err != nil {
		t.Fatalf("LoadSprites failed: %v", err)
	}
	if len(sheets) != 5 {
		t.Fatalf("Expected 5 sheets, got %d", len(sheets))
	}
	for i, s := range sheets {
		b := s.Bounds()
		// Three 32x32 walk columns
		if b.Dx() < 96 || b.Dy() < 32 {
			t.Errorf("Sheet %d too small: %v", i, b)
		}
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(1, 1, color.NRGBA{255, 0, 0, 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestLoadAllPreservesOrder(t *testing.T) {
	data := pngBytes(t)
	fsys := fstest.MapFS{
		"img/a.png": {Data: data},
		"img/b.png": {Data: data},
	}
	imgs, err := NewLoader(fsys, "img").LoadAll(context.Background(), []string{"b.png", "a.png"})
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(imgs) != 2 || imgs[0] == nil || imgs[1] == nil {
		t.Fatalf("Expected two images, got %v", imgs)
	}
}

func TestLoadAllMissingFile(t *testing.T) {
	fsys := fstest.MapFS{"img/a.png": {Data: pngBytes(t)}}
	_, err := NewLoader(fsys, "img").LoadAll(context.Background(), []string{"a.png", "missing.png"})
	if err == nil {
		t.Fatal("Expected error for missing sheet")
	}
	if !strings.Contains(err.Error(), "missing.png") {
		t.Errorf("Error should name the file: %v", err)
	}
}

func TestLoadAllCorruptFile(t *testing.T) {
	fsys := fstest.MapFS{"img/bad.png": {Data: []byte("not a png")}}
	_, err := NewLoader(fsys, "img").LoadAll(context.Background(), []string{"bad.png"})
	if err == nil || !strings.Contains(err.Error(), "decode bad.png") {
		t.Errorf("Expected decode error, got %v", err)
	}
}

// blockingFS never finishes opening a file until released
type blockingFS struct {
	release chan struct{}
}

func (b blockingFS) Open(name string) (fs.File, error) {
	<-b.release
	return nil, fs.ErrNotExist
}

// TestLoadAllTimeout verifies a stalled load surfaces an error instead of hanging
func TestLoadAllTimeout(t *testing.T) {
	bfs := blockingFS{release: make(chan struct{})}
	defer close(bfs.release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := NewLoader(bfs, ".").LoadAll(ctx, []string{"a.png"})
	if err == nil {
		t.Fatal("Expected timeout error")
	}
	if !strings.Contains(err.Error(), "stalled at 0/1") {
		t.Errorf("Unexpected error: %v", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Error("LoadAll did not honour the deadline")
	}
}

func TestFromDirEmptyUsesEmbedded(t *testing.T) {
	l := FromDir("")
	img, err := l.Load("MzombieA.png")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Empty() {
		t.Error("Expected a non-empty sheet")
	}
}
