package dialog

import (
	"time"
	"unicode/utf8"
)

// OptionView is an option as a host renders it.
type OptionView struct {
	Text     string
	Selected bool
}

// View is a render snapshot of the dialog.
type View struct {
	Visible bool
	Speaker string
	Label   string
	// Revealed is the text shown so far; TargetLen is the rune length of the
	// full text, for hosts that lay out against the final size.
	Revealed  string
	TargetLen int
	Options   []OptionView
}

// Progress returns the revealed fraction of the text in [0, 1].
func (v View) Progress() float64 {
	if v.TargetLen == 0 {
		return 1
	}
	return float64(utf8.RuneCountInString(v.Revealed)) / float64(v.TargetLen)
}

// View returns the current render snapshot.
func (d *Dialog) View() View {
	screen := d.CurrentScreen()
	if screen == nil {
		return View{}
	}

	v := View{
		Visible:   true,
		Speaker:   screen.Character.Name,
		Label:     screen.Label,
		Revealed:  d.RevealedText(),
		TargetLen: len(d.target),
	}
	if len(screen.Options) > 0 {
		v.Options = make([]OptionView, len(screen.Options))
		for i, opt := range screen.Options {
			v.Options[i] = OptionView{Text: opt.Text, Selected: i == d.option}
		}
	}
	return v
}

// Input is the set of host input events for one frame.
type Input struct {
	Show bool
	Skip bool
	Up   bool
	Down bool
}

// Update runs one host frame: a show request opens a hidden dialog, cursor
// moves apply, then a skip is attempted. The reveal only ticks on frames
// where no skip took effect.
func (d *Dialog) Update(now time.Duration, in Input) {
	if in.Show && !d.Visible() {
		d.Show()
	}
	if in.Up {
		d.MoveCursor(Up)
	}
	if in.Down {
		d.MoveCursor(Down)
	}
	if in.Skip && d.Skip(now) {
		return
	}
	d.Tick(now)
}
