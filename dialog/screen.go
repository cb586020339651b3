package dialog

import "strings"

// EndLabel is the label of the terminal screen produced by an `end.` line.
// An option pointing at it closes the dialog.
const EndLabel = "end"

// Character identifies the speaker of a screen.
type Character struct {
	Name string
}

// Option is a branch choice on a screen.
type Option struct {
	Text  string
	Label string
}

// Screen is one page of dialog. Screens are built by the parser and are
// treated as read-only afterwards.
type Screen struct {
	Label     string
	Character Character
	Lines     []string
	Options   []Option
}

// Text returns the screen's paragraphs joined with newlines.
func (s *Screen) Text() string {
	return strings.Join(s.Lines, "\n")
}

// Branching reports whether the screen is left through its options rather
// than by sequential advance.
func (s *Screen) Branching() bool {
	return len(s.Options) > 0
}

func (s *Screen) empty() bool {
	return len(s.Text())+len(s.Options) == 0
}

// Script is the ordered screen list produced by Parse. Index 0 is the
// default entry point.
type Script struct {
	Screens []Screen
}

// Len returns the number of screens.
func (s *Script) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Screens)
}

// Screen returns the screen at index i, or nil when i is out of range.
func (s *Script) Screen(i int) *Screen {
	if s == nil || i < 0 || i >= len(s.Screens) {
		return nil
	}
	return &s.Screens[i]
}

// Find returns the index of the first screen carrying label, or -1. The
// empty label never resolves.
func (s *Script) Find(label string) int {
	if s == nil || label == "" {
		return -1
	}
	for i := range s.Screens {
		if s.Screens[i].Label == label {
			return i
		}
	}
	return -1
}
