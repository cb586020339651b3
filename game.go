package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/dialogbox/common"
	"github.com/milk9111/dialogbox/dialog"
	"github.com/milk9111/dialogbox/prefabs"
	"github.com/milk9111/dialogbox/session"
	"github.com/milk9111/dialogbox/widget"
)

type Game struct {
	frames int
	debug  bool
	paused bool
	quit   bool

	logger *log.Logger

	session *session.Session
	dialog  *dialog.Dialog
	box     *widget.DialogBox
	pause   *ebitenui.UI
	watcher *prefabs.Watcher
}

func NewGame(specName string, debug, watch bool, logger *log.Logger) (*Game, error) {
	s, err := session.Open(specName, logger)
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:   debug,
		logger:  logger,
		session: s,
		dialog:  s.Dialog,
	}
	g.dialog.AddListener(dialog.ListenerFunc(func(d *dialog.Dialog, ev dialog.Event) {
		logger.Info("dialog event", "event", ev, "label", d.EventLabel())
	}))

	box, err := widget.NewDialogBox(g.dialog, s.Spec, logger)
	if err != nil {
		return nil, err
	}
	g.box = box
	g.pause = NewPauseUI(g)

	if watch {
		w, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
		if err != nil {
			logger.Warn("hot reload disabled", "err", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

// now is the frame clock handed to the dialog. It only advances while the
// game is running, so pausing also pauses the typewriter.
func (g *Game) now() time.Duration {
	return time.Duration(g.frames) * time.Second / time.Duration(ebiten.TPS())
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pause.Update()
		return nil
	}

	g.frames++
	g.reload()
	g.box.Update(g.now())

	return nil
}

func (g *Game) restart() {
	g.dialog.Hide()
	g.dialog.Show()
}

func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		g.logger.Warn("watcher", "err", err)
	default:
	}

	changed := g.watcher.Poll()
	if len(changed) == 0 {
		return
	}

	ch, err := g.session.Reload(changed)
	if err != nil {
		g.logger.Error("reload failed", "files", changed, "err", err)
		return
	}
	if !ch.Spec {
		return
	}

	// Style, keys and portraits live in the box.
	box, err := widget.NewDialogBox(g.dialog, g.session.Spec, g.logger)
	if err != nil {
		g.logger.Error("rebuild dialog box", "err", err)
		return
	}
	g.box = box
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.box.Draw(screen)

	if g.debug {
		v := g.dialog.View()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f\n%s  screen: %d  label: %q  revealed: %d/%d",
			g.frames, ebiten.ActualFPS(), g.session.Spec.Name, g.dialog.CurrentIndex(), v.Label, len([]rune(v.Revealed)), v.TargetLen))
	} else if !g.dialog.Visible() {
		ebitenutil.DebugPrint(screen, "press D to talk, Esc to pause")
	}

	if g.paused {
		g.pause.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}
