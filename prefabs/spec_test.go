package prefabs

import (
	"image/color"
	"testing"
	"time"

	"github.com/milk9111/dialogbox/dialog"
)

func TestLoadVillageDialog(t *testing.T) {
	spec, script, err := LoadDialog("village.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if spec.Name != "village" || spec.Hooks != "village.tengo" {
		t.Fatalf("unexpected spec %+v", spec)
	}
	if spec.RevealInterval != 40*time.Millisecond {
		t.Fatalf("expected 40ms reveal interval, got %v", spec.RevealInterval)
	}
	if got := spec.Portraits["Elder"]; got != "portraits/elder.png" {
		t.Fatalf("expected elder portrait, got %q", got)
	}
	if len(spec.Keys.Skip) != 2 {
		t.Fatalf("expected 2 skip keys, got %v", spec.Keys.Skip)
	}

	if script.Find("start") != 0 {
		t.Fatalf("expected start at 0, got %d", script.Find("start"))
	}
	if issues := dialog.Validate(script); len(issues) != 0 {
		t.Fatalf("expected village script to validate, got %v", issues)
	}

	cfg := spec.Config(nil)
	if cfg.RevealInterval != 40*time.Millisecond || cfg.SkipDebounce != 200*time.Millisecond {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestDialogSpecConfigDefaults(t *testing.T) {
	cfg := DialogSpec{}.Config(nil)
	if cfg.RevealInterval != dialog.DefaultRevealInterval || cfg.SkipDebounce != dialog.DefaultSkipDebounce {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadScriptErrors(t *testing.T) {
	if _, err := (DialogSpec{Name: "x"}).LoadScript(); err == nil {
		t.Fatalf("expected error for missing script")
	}
	if _, err := (DialogSpec{Name: "x", Script: "nope.dlg"}).LoadScript(); err == nil {
		t.Fatalf("expected error for unknown script")
	}
}

func TestStyleResolve(t *testing.T) {
	style, err := StyleSpec{BackColor: "#10203040", Padding: 4}.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if style.BackColor != (color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}) {
		t.Fatalf("unexpected back color %v", style.BackColor)
	}
	if style.Padding != 4 || style.BorderWidth != 2 {
		t.Fatalf("unexpected style %+v", style)
	}

	if _, err := (StyleSpec{TextColor: "#zzz"}).Resolve(); err == nil {
		t.Fatalf("expected error for bad color")
	}
}

func TestCleanScriptPath(t *testing.T) {
	cases := map[string]string{
		"village.dlg":                 "scripts/village.dlg",
		"scripts/village.dlg":         "scripts/village.dlg",
		"prefabs/scripts/village.dlg": "scripts/village.dlg",
		"prefabs/village.tengo":       "scripts/village.tengo",
		"":                            "",
	}
	for in, want := range cases {
		if got := cleanScriptPath(in); got != want {
			t.Fatalf("cleanScriptPath(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestWatchedExtensions(t *testing.T) {
	for path, want := range map[string]bool{
		"a.dlg":   true,
		"a.TENGO": true,
		"a.yaml":  true,
		"a.png":   false,
	} {
		if got := isSpecFile(path) || isScriptFile(path); got != want {
			t.Fatalf("%s: expected %v, got %v", path, want, got)
		}
	}
}
