package widget

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/dialogbox/common"
)

// Progress is a bordered bar filled to Value, clamped to [0, 1].
type Progress struct {
	Value         float64
	Color         color.Color
	BorderWidth   float32
	BorderPadding float32
}

func NewProgress(clr color.Color) *Progress {
	return &Progress{Color: clr, BorderWidth: 2, BorderPadding: 2}
}

// Fill returns the filler rectangle for a bar at x, y of size w, h.
func (p *Progress) Fill(x, y, w, h float32) (fx, fy, fw, fh float32) {
	inset := p.BorderWidth + p.BorderPadding
	fx, fy = x+inset, y+inset
	fw, fh = w-2*inset, h-2*inset
	if fw < 0 {
		fw = 0
	}
	if fh < 0 {
		fh = 0
	}
	fw *= float32(common.Clamp(p.Value, 0, 1))
	return fx, fy, fw, fh
}

func (p *Progress) Draw(dst *ebiten.Image, x, y, w, h float32) {
	vector.StrokeRect(dst, x+p.BorderWidth/2, y+p.BorderWidth/2, w-p.BorderWidth, h-p.BorderWidth, p.BorderWidth, p.Color, false)
	fx, fy, fw, fh := p.Fill(x, y, w, h)
	if fw > 0 && fh > 0 {
		vector.DrawFilledRect(dst, fx, fy, fw, fh, p.Color, false)
	}
}
