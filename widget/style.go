package widget

import (
	"image/color"

	imageui "github.com/ebitenui/ebitenui/image"
)

// colorStyles memoizes one nine-slice per color.
type colorStyles struct {
	cache map[color.NRGBA]*imageui.NineSlice
}

func newColorStyles() *colorStyles {
	return &colorStyles{cache: map[color.NRGBA]*imageui.NineSlice{}}
}

func (c *colorStyles) get(clr color.Color) *imageui.NineSlice {
	key := color.NRGBAModel.Convert(clr).(color.NRGBA)
	if ns, ok := c.cache[key]; ok {
		return ns
	}
	ns := imageui.NewNineSliceColor(key)
	c.cache[key] = ns
	return ns
}
