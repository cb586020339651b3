package widget

import (
	"hash/fnv"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dialogbox/assets"
)

const portraitSize = 48

// portraits maps speaker names to images. Speakers without a configured or
// loadable image get a flat placeholder tinted from their name.
type portraits struct {
	paths  map[string]string
	images map[string]*ebiten.Image
}

func newPortraits(paths map[string]string) *portraits {
	return &portraits{paths: paths, images: map[string]*ebiten.Image{}}
}

func (p *portraits) get(name string) *ebiten.Image {
	if img, ok := p.images[name]; ok {
		return img
	}

	var img *ebiten.Image
	if path, ok := p.paths[name]; ok {
		if loaded, err := assets.LoadImage(path); err == nil {
			img = loaded
		}
	}
	if img == nil {
		img = ebiten.NewImage(portraitSize, portraitSize)
		img.Fill(placeholderColor(name))
	}

	p.images[name] = img
	return img
}

func placeholderColor(name string) color.NRGBA {
	if name == "" {
		return color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	sum := h.Sum32()
	return color.NRGBA{R: uint8(sum>>16) | 0x40, G: uint8(sum>>8) | 0x40, B: uint8(sum) | 0x40, A: 0xff}
}
