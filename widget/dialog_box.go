package widget

import (
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/dialogbox/assets"
	"github.com/milk9111/dialogbox/common"
	"github.com/milk9111/dialogbox/dialog"
	"github.com/milk9111/dialogbox/prefabs"
)

// Widget is a frame-driven UI element.
type Widget interface {
	Update(now time.Duration)
	Draw(screen *ebiten.Image)
}

const (
	boxMargin      = 16
	progressHeight = 10
)

// DialogBox renders a dialog.Dialog at the bottom of the screen and feeds it
// keyboard input. The box slides in when the dialog opens.
type DialogBox struct {
	dialog *dialog.Dialog
	keys   KeyMap
	style  prefabs.Style
	logger *log.Logger

	face      ebtext.Face
	styles    *colorStyles
	portraits *portraits
	progress  *Progress
	blip      *audio.Player

	ui       *ebitenui.UI
	panel    *widget.Container
	portrait *widget.Graphic
	speaker  *widget.Text
	body     *widget.Text
	options  *widget.Container

	optionTexts []*widget.Text
	screen      screenTracker
	wrapped     string
	revealed    int
	width       float64

	spring    harmonica.Spring
	offset    float64
	velocity  float64
	offscreen *ebiten.Image
}

var _ Widget = (*DialogBox)(nil)

// NewDialogBox builds the box for d from a dialog prefab.
func NewDialogBox(d *dialog.Dialog, spec prefabs.DialogSpec, logger *log.Logger) (*DialogBox, error) {
	style, err := spec.Style.Resolve()
	if err != nil {
		return nil, err
	}
	keys, err := KeyMapFromSpec(spec.Keys)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}

	b := &DialogBox{
		dialog:      d,
		keys:        keys,
		style:       style,
		logger:      logger.WithPrefix("widget"),
		face:        ebtext.NewGoXFace(basicfont.Face7x13),
		styles:      newColorStyles(),
		portraits:   newPortraits(spec.Portraits),
		progress:    NewProgress(style.TextColor),
		screen:      newScreenTracker(),
		width:       common.BaseWidth,
		spring:      harmonica.NewSpring(harmonica.FPS(ebiten.TPS()), 8.0, 0.7),
	}
	b.offset = b.hiddenOffset()

	if blip, err := assets.LoadAudioPlayer("blip.wav"); err == nil {
		b.blip = blip
	} else {
		b.logger.Warn("typewriter sound disabled", "err", err)
	}

	b.build()
	return b, nil
}

func (b *DialogBox) build() {
	var face ebtext.Face = b.face
	pad := int(b.style.Padding + b.style.BorderWidth)
	border := int(b.style.BorderWidth)

	b.portrait = widget.NewGraphic(
		widget.GraphicOpts.Image(b.portraits.get("")),
	)
	portraitFrame := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(b.styles.get(b.style.BorderColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: border, Bottom: border, Left: border, Right: border}),
		)),
	)
	portraitFrame.AddChild(b.portrait)

	b.speaker = widget.NewText(widget.TextOpts.Text("", &face, b.style.TextColor))
	b.body = widget.NewText(widget.TextOpts.Text("", &face, b.style.TextColor))
	b.options = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	column.AddChild(b.speaker)
	column.AddChild(b.body)
	column.AddChild(b.options)

	b.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(b.styles.get(b.style.BackColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Spacing(pad),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: pad, Bottom: pad, Left: pad, Right: pad}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, int(b.style.Height)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
		),
	)
	b.panel.AddChild(portraitFrame)
	b.panel.AddChild(column)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout(
		widget.AnchorLayoutOpts.Padding(&widget.Insets{Left: boxMargin, Right: boxMargin, Bottom: boxMargin + progressHeight + 4}),
	)))
	root.AddChild(b.panel)

	b.ui = &ebitenui.UI{Container: root}
}

// Update polls input, advances the dialog and syncs the widgets.
func (b *DialogBox) Update(now time.Duration) {
	b.dialog.Update(now, b.keys.Poll())
	b.sync()

	target := b.hiddenOffset()
	if b.dialog.Visible() {
		target = 0
	}
	b.offset, b.velocity = b.spring.Update(b.offset, b.velocity, target)

	b.ui.Update()
}

func (b *DialogBox) sync() {
	v := b.dialog.View()
	if !v.Visible {
		b.screen.reset()
		b.revealed = 0
		return
	}

	if b.screen.changed(b.dialog) {
		b.enterScreen(v)
	}

	revealed := len([]rune(v.Revealed))
	if revealed > b.revealed && b.blip != nil && !b.blip.IsPlaying() {
		_ = b.blip.Rewind()
		b.blip.Play()
	}
	b.revealed = revealed

	b.body.Label = revealPrefix(b.wrapped, revealed)
	for i, opt := range v.Options {
		if i < len(b.optionTexts) {
			b.optionTexts[i].Label = optionLabel(opt.Text, opt.Selected)
		}
	}
}

func (b *DialogBox) enterScreen(v dialog.View) {
	b.logger.Debug("screen", "index", b.screen.index, "label", v.Label, "speaker", v.Speaker)

	b.portrait.Image = b.portraits.get(v.Speaker)
	b.speaker.Label = v.Speaker

	textWidth := b.width - 2*boxMargin - portraitSize - 4*(b.style.Padding+b.style.BorderWidth)
	b.wrapped = wrapText(b.dialog.TargetText(), textWidth, faceMeasure(b.face))

	var face ebtext.Face = b.face
	b.options.RemoveChildren()
	b.optionTexts = b.optionTexts[:0]
	for _, opt := range v.Options {
		t := widget.NewText(widget.TextOpts.Text(optionLabel(opt.Text, opt.Selected), &face, b.style.TextColor))
		b.options.AddChild(t)
		b.optionTexts = append(b.optionTexts, t)
	}
}

func (b *DialogBox) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	b.width = float64(bounds.Dx())

	if !b.dialog.Visible() {
		return
	}

	if b.offscreen == nil || b.offscreen.Bounds() != bounds {
		b.offscreen = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	}
	b.offscreen.Clear()
	b.ui.Draw(b.offscreen)

	w := float32(bounds.Dx()) - 2*boxMargin
	y := float32(bounds.Dy()) - boxMargin - progressHeight
	b.progress.Value = b.dialog.View().Progress()
	b.progress.Draw(b.offscreen, boxMargin, y, w, progressHeight)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, b.offset)
	op.ColorScale.ScaleAlpha(float32(common.Lerp(1, 0, common.Clamp(b.offset/b.hiddenOffset(), 0, 1))))
	screen.DrawImage(b.offscreen, op)
}

// hiddenOffset is how far below its resting place the box sits when closed.
func (b *DialogBox) hiddenOffset() float64 {
	return b.style.Height + boxMargin + progressHeight
}
