package widget

import "github.com/milk9111/dialogbox/dialog"

// screenTracker notices when the dialog moves to a different screen, either
// by index or because a new script was loaded under the same index.
type screenTracker struct {
	index  int
	script *dialog.Script
}

func newScreenTracker() screenTracker {
	return screenTracker{index: -1}
}

// changed reports whether d shows a screen other than the one last seen, and
// records the current one.
func (t *screenTracker) changed(d *dialog.Dialog) bool {
	idx, script := d.CurrentIndex(), d.Script()
	if idx == t.index && script == t.script {
		return false
	}
	t.index, t.script = idx, script
	return true
}

func (t *screenTracker) reset() {
	*t = newScreenTracker()
}
