package dialog

import (
	"time"

	"github.com/charmbracelet/log"
)

const (
	DefaultRevealInterval = 50 * time.Millisecond
	DefaultSkipDebounce   = 200 * time.Millisecond
)

// Config tunes a Dialog. Zero durations fall back to the defaults.
type Config struct {
	RevealInterval time.Duration
	SkipDebounce   time.Duration
	Logger         *log.Logger
}

func DefaultConfig() Config {
	return Config{
		RevealInterval: DefaultRevealInterval,
		SkipDebounce:   DefaultSkipDebounce,
	}
}

// Direction moves the option cursor.
type Direction int

const (
	Up Direction = iota
	Down
)

// Controller is the capability set a host needs from a dialog.
type Controller interface {
	Show()
	ShowLabel(label string)
	Hide()
	Tick(now time.Duration)
	Skip(now time.Duration) bool
	MoveCursor(dir Direction)
	Visible() bool
	CurrentLabel() string
	CurrentScreen() *Screen
	View() View
}

// Dialog is the navigation state machine over a parsed Script. It is driven
// from a single frame loop and is not safe for concurrent use.
type Dialog struct {
	script *Script
	cfg    Config
	logger *log.Logger

	listeners []Listener
	pending   []Notification
	emitting  bool
	firing    Notification

	current  int
	option   int
	revealed int
	target   []rune

	lastReveal time.Duration
	lastSkip   time.Duration
}

var _ Controller = (*Dialog)(nil)

// New returns a hidden dialog over script.
func New(script *Script, cfg Config) *Dialog {
	d := &Dialog{
		script:  script,
		current: -1,
	}
	d.SetConfig(cfg)
	return d
}

// SetConfig replaces the pacing and logger. Zero durations fall back to the
// defaults, and a nil logger keeps the current one (or log.Default).
func (d *Dialog) SetConfig(cfg Config) {
	if cfg.RevealInterval <= 0 {
		cfg.RevealInterval = DefaultRevealInterval
	}
	if cfg.SkipDebounce <= 0 {
		cfg.SkipDebounce = DefaultSkipDebounce
	}
	switch {
	case cfg.Logger != nil:
		d.logger = cfg.Logger.WithPrefix("dialog")
	case d.logger == nil:
		d.logger = log.Default().WithPrefix("dialog")
	}
	d.cfg = cfg
}

// AddListener registers l for lifecycle events.
func (d *Dialog) AddListener(l Listener) {
	if l == nil {
		return
	}
	d.listeners = append(d.listeners, l)
}

// Load replaces the script, hiding the dialog first if it is visible.
func (d *Dialog) Load(script *Script) {
	if d.Visible() {
		d.Hide()
	}
	d.script = script
}

// Script returns the script the dialog navigates.
func (d *Dialog) Script() *Script {
	return d.script
}

// Visible reports whether a screen is showing.
func (d *Dialog) Visible() bool {
	return d.current > -1
}

// CurrentIndex returns the current screen index, or -1 when hidden.
func (d *Dialog) CurrentIndex() int {
	return d.current
}

// CurrentScreen returns the showing screen, or nil when hidden.
func (d *Dialog) CurrentScreen() *Screen {
	if d.current == -1 {
		return nil
	}
	return d.script.Screen(d.current)
}

// CurrentLabel returns the label of the showing screen, or "".
func (d *Dialog) CurrentLabel() string {
	if s := d.CurrentScreen(); s != nil {
		return s.Label
	}
	return ""
}

// CurrentOption returns the option cursor.
func (d *Dialog) CurrentOption() int {
	return d.option
}

// RevealedText returns the part of the screen text revealed so far.
func (d *Dialog) RevealedText() string {
	return string(d.target[:d.revealed])
}

// TargetText returns the full text of the showing screen.
func (d *Dialog) TargetText() string {
	return string(d.target)
}

// Revealing reports whether the typewriter effect is still running.
func (d *Dialog) Revealing() bool {
	return d.revealed < len(d.target)
}

// Show opens the dialog at the first screen.
func (d *Dialog) Show() {
	d.gotoScreen(0)
}

// ShowLabel opens the dialog (or jumps) to the screen carrying label. An
// unknown label is ignored.
func (d *Dialog) ShowLabel(label string) {
	d.gotoScreen(d.script.Find(label))
}

// Hide closes the dialog and drops any reveal in progress.
func (d *Dialog) Hide() {
	d.current = -1
	d.option = 0
	d.revealed = 0
	d.target = nil
	d.logger.Debug("hide")
	d.emit(EventHidden)
}

// Tick reveals at most one more character once the reveal interval has
// elapsed since the previous one.
func (d *Dialog) Tick(now time.Duration) {
	if !d.Visible() || !d.Revealing() || now < d.lastReveal+d.cfg.RevealInterval {
		return
	}
	d.lastReveal = now
	d.revealed++
}

// Skip completes the reveal, or advances once the text is fully shown.
// Calls within the debounce window of the previous skip are ignored. It
// reports whether the skip took effect.
func (d *Dialog) Skip(now time.Duration) bool {
	if !d.Visible() || now < d.lastSkip+d.cfg.SkipDebounce {
		return false
	}
	d.lastSkip = now

	if d.Revealing() {
		d.revealed = len(d.target)
		return true
	}

	screen := d.CurrentScreen()
	if screen == nil || !screen.Branching() {
		d.gotoScreen(d.current + 1)
		return true
	}

	opt := screen.Options[d.option]
	if opt.Label == EndLabel {
		d.Hide()
		return true
	}

	// An unresolved label leaves the dialog on this screen.
	d.gotoScreen(d.script.Find(opt.Label))
	return true
}

// MoveCursor moves the option cursor, wrapping at both ends.
func (d *Dialog) MoveCursor(dir Direction) {
	screen := d.CurrentScreen()
	if screen == nil {
		return
	}
	n := len(screen.Options)
	if n == 0 {
		d.option = 0
		return
	}

	switch dir {
	case Up:
		d.option = (d.option - 1 + n) % n
	case Down:
		d.option = (d.option + 1) % n
	}
}

func (d *Dialog) gotoScreen(index int) {
	if index == d.current || index < 0 || index >= d.script.Len() {
		return
	}

	screen := d.script.Screen(index)
	if screen.Label == EndLabel {
		d.current = index
		d.Hide()
		return
	}

	wasHidden := d.current == -1
	d.current = index
	d.option = 0
	d.revealed = 0
	d.target = []rune(screen.Text())

	d.logger.Debug("goto screen", "index", index, "label", screen.Label)

	switch {
	case wasHidden:
		d.emit(EventShown)
	case screen.Label != "":
		d.emit(EventLabelReached)
	}
}

// emit queues ev and, unless a delivery is already running further up the
// stack, delivers queued events to every listener in the order they fired.
func (d *Dialog) emit(ev Event) {
	d.pending = append(d.pending, Notification{Event: ev, Label: d.CurrentLabel()})
	if d.emitting {
		return
	}

	d.emitting = true
	defer func() {
		d.emitting = false
		d.firing = Notification{}
	}()

	for len(d.pending) > 0 {
		n := d.pending[0]
		d.pending = d.pending[1:]
		d.firing = n
		for _, l := range d.listeners {
			l.OnDialogEvent(d, n.Event)
		}
	}
}

// EventLabel is the label that was current when the event being delivered
// fired. Outside of a delivery it is empty.
func (d *Dialog) EventLabel() string {
	return d.firing.Label
}
