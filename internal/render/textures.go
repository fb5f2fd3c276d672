package render

import (
	"image/color"
	"os"
	"path/filepath"

	"github.com/1icebest1/shooter/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"
)

// placeholders are used for any key with no PNG on disk.
var placeholders = map[string]color.RGBA{
	"grass1":  {R: 96, G: 168, B: 72, A: 255},
	"grass2":  {R: 52, G: 104, B: 40, A: 255},
	"flower":  {R: 230, G: 110, B: 180, A: 255},
	"rock":    {R: 128, G: 128, B: 128, A: 255},
	"pistol":  {R: 70, G: 70, B: 80, A: 255},
	"ak47":    {R: 120, G: 84, B: 40, A: 255},
	"ammo":    {R: 200, G: 170, B: 40, A: 255},
	"heart":   {R: 220, G: 30, B: 50, A: 255},
	"red_orb": {R: 200, G: 20, B: 20, A: 255},
	"player":  {R: 40, G: 90, B: 220, A: 255},
	"slime":   {R: 90, G: 220, B: 110, A: 255},
}

var fallbackColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// Textures loads images lazily from an optional asset directory.
// Lookups are keyed by name, e.g. "grass1" reads <dir>/grass1.png.
type Textures struct {
	dir   string
	cache map[string]*ebiten.Image
}

func NewTextures(dir string) *Textures {
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			logger.Log.WithFields(logrus.Fields{
				"component": "textures",
				"dir":       dir,
			}).Warnf("Asset directory unavailable, using placeholders: %v", err)
			dir = ""
		}
	}
	return &Textures{dir: dir, cache: make(map[string]*ebiten.Image)}
}

// Get returns the image for key. A missing file yields a solid w x h placeholder.
func (t *Textures) Get(key string, w, h int) *ebiten.Image {
	if img, ok := t.cache[key]; ok {
		return img
	}
	img := t.load(key)
	if img == nil {
		img = ebiten.NewImage(w, h)
		img.Fill(placeholderColor(key))
	}
	t.cache[key] = img
	return img
}

func (t *Textures) load(key string) *ebiten.Image {
	if t.dir == "" {
		return nil
	}
	path := filepath.Join(t.dir, key+".png")
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "textures",
			"path":      path,
		}).Debug("Texture not found, using placeholder.")
		return nil
	}
	return img
}

// placeholderColor matches on the key's base name, so "slime_up_2" uses "slime".
func placeholderColor(key string) color.RGBA {
	if c, ok := placeholders[key]; ok {
		return c
	}
	for i := len(key) - 1; i > 0; i-- {
		if key[i] == '_' {
			if c, ok := placeholders[key[:i]]; ok {
				return c
			}
		}
	}
	return fallbackColor
}

// drawScaled draws img at screen (x, y) stretched to w x h.
func drawScaled(dst, img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	dst.DrawImage(img, op)
}
