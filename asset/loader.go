package asset

import (
	"context"
	"embed"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"sync"

	"github.com/pkg/errors"
)

//go:embed sprites/*.png
var embedded embed.FS

const embeddedDir = "sprites"

// SpriteNames are the baddie sprite sheets in index order
var SpriteNames = []string{
	"MzombieA.png",
	"MzombieB.png",
	"MzombieC.png",
	"MzombieD.png",
	"Zomtemplate.png",
}

// Loader decodes images from a filesystem directory
type Loader struct {
	fsys fs.FS
	dir  string
}

// NewLoader reads from dir inside fsys
func NewLoader(fsys fs.FS, dir string) *Loader {
	return &Loader{fsys: fsys, dir: dir}
}

// Embedded returns a loader over the sheets compiled into the binary
func Embedded() *Loader {
	return NewLoader(embedded, embeddedDir)
}

// FromDir returns a loader over an on-disk directory, or the embedded
// sheets when dir is empty
func FromDir(dir string) *Loader {
	if dir == "" {
		return Embedded()
	}
	return NewLoader(os.DirFS(dir), ".")
}

// Load decodes a single image
func (l *Loader) Load(name string) (image.Image, error) {
	f, err := l.fsys.Open(path.Join(l.dir, name))
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", name)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}
	return img, nil
}

type loadResult struct {
	index int
	img   image.Image
	err   error
}

// LoadAll decodes every named image concurrently and returns them in name
// order. It is a barrier: it returns only when all images are decoded, one
// fails, or ctx ends
func (l *Loader) LoadAll(ctx context.Context, names []string) ([]image.Image, error) {
	results := make(chan loadResult, len(names))
	var wg sync.WaitGroup

	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			img, err := l.Load(name)
			results <- loadResult{index: i, img: img, err: err}
		}(i, name)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	images := make([]image.Image, len(names))
	loaded := 0
	for loaded < len(names) {
		select {
		case <-ctx.Done():
			return nil, errors.Wrapf(ctx.Err(), "sprite load stalled at %d/%d", loaded, len(names))
		case r, ok := <-results:
			if !ok {
				return nil, errors.Errorf("sprite load ended early at %d/%d", loaded, len(names))
			}
			if r.err != nil {
				return nil, r.err
			}
			images[r.index] = r.img
			loaded++
		}
	}
	return images, nil
}

// LoadSprites loads the baddie sheets
func (l *Loader) LoadSprites(ctx context.Context) ([]image.Image, error) {
	return l.LoadAll(ctx, SpriteNames)
}
