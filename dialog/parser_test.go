package dialog

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseScenarioScript(t *testing.T) {
	s, err := Parse("start:\nHero> Hi there.\n[go]: Continue\nend.")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := []Screen{
		{
			Label:     "start",
			Character: Character{Name: "Hero"},
			Lines:     []string{"Hi there."},
			Options:   []Option{{Label: "go", Text: " Continue"}},
		},
		{Label: EndLabel},
		{},
	}
	if !reflect.DeepEqual(s.Screens, want) {
		t.Fatalf("expected %+v, got %+v", want, s.Screens)
	}
}

func TestParseStatements(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   []Screen
	}{
		{
			name:   "text_lines_merge",
			source: "Hello\nworld",
			want:   []Screen{{Lines: []string{"Hello world"}}},
		},
		{
			name:   "blank_line_does_not_break_paragraph",
			source: "Hello\n\n   \nworld",
			want:   []Screen{{Lines: []string{"Hello world"}}},
		},
		{
			name:   "mixed_line_endings",
			source: "a:\r\nHero> one\rtwo\nthree",
			want:   []Screen{{Label: "a", Character: Character{Name: "Hero"}, Lines: []string{"one two three"}}},
		},
		{
			name:   "consecutive_labels_stay_separate",
			source: "a:\nb:",
			want:   []Screen{{Label: "a"}, {Label: "b"}},
		},
		{
			name:   "label_merges_with_following_character",
			source: "intro:\nSage>\nWelcome.",
			want:   []Screen{{Label: "intro", Character: Character{Name: "Sage"}, Lines: []string{"Welcome."}}},
		},
		{
			name:   "character_line_starts_new_screen",
			source: "Hero> Hi.\nSage> Hello.",
			want: []Screen{
				{Character: Character{Name: "Hero"}, Lines: []string{"Hi."}},
				{Character: Character{Name: "Sage"}, Lines: []string{"Hello."}},
			},
		},
		{
			name:   "text_after_options_starts_new_screen",
			source: "Pick one\n[a]: A\n[b]:B\nafter",
			want: []Screen{
				{Lines: []string{"Pick one"}, Options: []Option{{Label: "a", Text: " A"}, {Label: "b", Text: " B"}}},
				{Lines: []string{"after"}},
			},
		},
		{
			name:   "option_without_text",
			source: "Q\n[next]:",
			want:   []Screen{{Lines: []string{"Q"}, Options: []Option{{Label: "next"}}}},
		},
		{
			name:   "label_line_with_space_is_text",
			source: "not a label:",
			want:   []Screen{{Lines: []string{"not a label:"}}},
		},
		{
			name:   "end_after_label_keeps_label",
			source: "a:\nend.",
			want:   []Screen{{Label: "a"}, {Label: EndLabel}, {}},
		},
		{
			name:   "end_prefix_only",
			source: "Hi\nend. trailing words",
			want:   []Screen{{Lines: []string{"Hi"}}, {Label: EndLabel}, {}},
		},
		{
			name:   "content_after_end",
			source: "end.\nmore:\nHero> again",
			want: []Screen{
				{Label: EndLabel},
				{},
				{Label: "more", Character: Character{Name: "Hero"}, Lines: []string{"again"}},
			},
		},
		{
			name:   "trailing_screen_committed",
			source: "Hero> last words",
			want:   []Screen{{Character: Character{Name: "Hero"}, Lines: []string{"last words"}}},
		},
		{
			name:   "empty_source",
			source: "",
			want:   nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := Parse(c.source)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if !reflect.DeepEqual(s.Screens, c.want) {
				t.Fatalf("expected %+v, got %+v", c.want, s.Screens)
			}
		})
	}
}

func TestParseEndAlwaysFollowedByOneEmptyScreen(t *testing.T) {
	sources := []string{
		"end.",
		"Hero> hi\nend.",
		"a:\n[x]: go\nend.",
		"x:\ny:\nend.",
	}
	for _, src := range sources {
		s, err := Parse(src)
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		n := s.Len()
		if n < 2 {
			t.Fatalf("%q: expected at least 2 screens, got %d", src, n)
		}
		end, tail := s.Screens[n-2], s.Screens[n-1]
		if end.Label != EndLabel {
			t.Fatalf("%q: expected end label, got %q", src, end.Label)
		}
		if !reflect.DeepEqual(tail, Screen{}) {
			t.Fatalf("%q: expected empty trailing screen, got %+v", src, tail)
		}
	}
}

func TestParseDeterministic(t *testing.T) {
	src := "start:\nHero> Hi.\nThere.\n[a]: one\n[b]: two\na:\nSage> A\nb:\nSage> B\nend."
	first, err := Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Parse(src)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("parse %d differs: %+v vs %+v", i, first, again)
		}
	}
}

func TestParseInvalidUTF8(t *testing.T) {
	_, err := Parse("fine\nbad \xff line")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Line != 2 {
		t.Fatalf("expected line 2, got %d", perr.Line)
	}
}

func TestScreenText(t *testing.T) {
	s := Screen{Lines: []string{"one", "two"}}
	if got := s.Text(); got != "one\ntwo" {
		t.Fatalf("expected %q, got %q", "one\ntwo", got)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	src := "start:\nHero> Hi there.\n[go]: Continue\n[end]: Leave\ngo:\nSage> Onwards.\n> Narration.\nend.\n"
	s, err := Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out := Format(s)
	if out != src {
		t.Fatalf("expected %q, got %q", src, out)
	}
	again, err := Parse(out)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if !reflect.DeepEqual(s, again) {
		t.Fatalf("expected %+v, got %+v", s, again)
	}
}

func TestValidate(t *testing.T) {
	s := MustParse("start:\nHero> Hi\n[nowhere]: ?\n[end]: bye\nstart:\nHero> again")
	issues := Validate(s)

	var msgs []string
	for _, is := range issues {
		msgs = append(msgs, is.String())
	}
	want := []string{
		`screen 1: label "start" already used by screen 0`,
		`screen 0: option " ?" points at unknown label "nowhere"`,
		`screen 1: script has no end. screen; the last screen never closes`,
	}
	if !reflect.DeepEqual(msgs, want) {
		t.Fatalf("expected %q, got %q", want, msgs)
	}

	if got := Validate(MustParse("Hero> hi\nend.")); len(got) != 0 {
		t.Fatalf("expected no issues, got %v", got)
	}
}
