package widget

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dialogbox/dialog"
	"github.com/milk9111/dialogbox/prefabs"
)

func runeWidth(s string) float64 {
	return float64(len([]rune(s)))
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width float64
		want  string
	}{
		{name: "fits", in: "aaa bbb ccc", width: 20, want: "aaa bbb ccc"},
		{name: "last word", in: "aaa bbb ccc", width: 7, want: "aaa bbb\nccc"},
		{name: "every word", in: "aaa bbb ccc", width: 5, want: "aaa\nbbb\nccc"},
		{name: "existing newline", in: "aa\nbbb ccc", width: 4, want: "aa\nbbb\nccc"},
		{name: "long word", in: "abcdefgh", width: 3, want: "abcdefgh"},
		{name: "no width", in: "aaa bbb", width: 0, want: "aaa bbb"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := wrapText(tc.in, tc.width, runeWidth)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
			if len([]rune(got)) != len([]rune(tc.in)) {
				t.Fatalf("expected rune count %d, got %d", len([]rune(tc.in)), len([]rune(got)))
			}
		})
	}
}

func TestRevealPrefix(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"héllo", 0, ""},
		{"héllo", 2, "hé"},
		{"héllo", 5, "héllo"},
		{"héllo", 9, "héllo"},
		{"héllo", -1, ""},
	}
	for _, tc := range tests {
		if got := revealPrefix(tc.in, tc.n); got != tc.want {
			t.Fatalf("revealPrefix(%q, %d): expected %q, got %q", tc.in, tc.n, tc.want, got)
		}
	}
}

func TestOptionLabel(t *testing.T) {
	if got := optionLabel(" Continue", true); got != "> Continue" {
		t.Fatalf("expected selected marker, got %q", got)
	}
	if got := optionLabel(" Continue", false); got != "  Continue" {
		t.Fatalf("expected indent, got %q", got)
	}
}

func TestProgressFill(t *testing.T) {
	p := NewProgress(color.White)

	tests := []struct {
		value float64
		want  float32
	}{
		{value: -1, want: 0},
		{value: 0.5, want: 46},
		{value: 1, want: 92},
		{value: 3, want: 92},
	}
	for _, tc := range tests {
		p.Value = tc.value
		fx, fy, fw, fh := p.Fill(0, 0, 100, 20)
		if fx != 4 || fy != 4 || fh != 12 {
			t.Fatalf("unexpected filler origin (%v, %v) height %v", fx, fy, fh)
		}
		if fw != tc.want {
			t.Fatalf("value %v: expected width %v, got %v", tc.value, tc.want, fw)
		}
	}

	p.Value = 1
	if _, _, fw, fh := p.Fill(0, 0, 4, 4); fw != 0 || fh != 0 {
		t.Fatalf("expected empty filler for tiny bar, got %vx%v", fw, fh)
	}
}

func TestPlaceholderColor(t *testing.T) {
	a := placeholderColor("Elder")
	if a != placeholderColor("Elder") {
		t.Fatalf("expected stable color per name")
	}
	if a.A != 0xff {
		t.Fatalf("expected opaque color, got %v", a)
	}
	if a == placeholderColor("Traveler") {
		t.Fatalf("expected different speakers to get different colors")
	}
}

func TestKeyMapFromSpec(t *testing.T) {
	km, err := KeyMapFromSpec(prefabs.KeysSpec{Skip: []string{"Enter", "Space"}, Up: []string{"W"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(km.Skip) != 2 || km.Skip[0] != ebiten.KeyEnter || km.Skip[1] != ebiten.KeySpace {
		t.Fatalf("unexpected skip keys %v", km.Skip)
	}
	if len(km.Up) != 1 || km.Up[0] != ebiten.KeyW {
		t.Fatalf("unexpected up keys %v", km.Up)
	}
	if len(km.Down) != 1 || km.Down[0] != ebiten.KeyArrowDown {
		t.Fatalf("expected default down key, got %v", km.Down)
	}

	if _, err := KeyMapFromSpec(prefabs.KeysSpec{Show: []string{"NotAKey"}}); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestScreenTrackerNoticesNewScript(t *testing.T) {
	d := dialog.New(dialog.MustParse("Hero> old"), dialog.DefaultConfig())
	tr := newScreenTracker()

	d.Show()
	if !tr.changed(d) {
		t.Fatalf("expected first screen to count as a change")
	}
	if tr.changed(d) {
		t.Fatalf("expected no change on the same screen")
	}

	// Reload and reopen within one frame: same index, new script.
	d.Load(dialog.MustParse("Sage> new"))
	d.Show()
	if !tr.changed(d) {
		t.Fatalf("expected a new script at the same index to count as a change")
	}

	tr.reset()
	if !tr.changed(d) {
		t.Fatalf("expected change after reset")
	}
}
