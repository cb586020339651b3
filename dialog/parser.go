package dialog

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	lineBreakPattern = regexp.MustCompile(`\r\n|\r|\n`)
	labelPattern     = regexp.MustCompile(`^\w+:$`)
	optionPattern    = regexp.MustCompile(`^\[\w+\]:`)
)

// ParseError reports a script line that matches no statement form. A script
// that fails to parse must not be used.
type ParseError struct {
	Line   int // 1-based
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dialog: line %d: %s: %q", e.Line, e.Reason, e.Text)
}

type parser struct {
	screens []Screen
	screen  Screen
}

// Parse converts script source into screens. Lines are tried against the
// statement forms in priority order: label, character, option, end, text.
func Parse(source string) (*Script, error) {
	p := &parser{}

	for i, line := range lineBreakPattern.Split(source, -1) {
		if !utf8.ValidString(line) {
			return nil, &ParseError{Line: i + 1, Text: line, Reason: "invalid utf-8"}
		}

		if !(p.parseLabel(line) ||
			p.parseCharacter(line) ||
			p.parseOption(line) ||
			p.parseEnd(line) ||
			p.parseText(line)) {
			return nil, &ParseError{Line: i + 1, Text: line, Reason: "unrecognized statement"}
		}
	}

	if !p.screen.empty() || p.screen.Label != "" {
		p.commit()
	}

	return &Script{Screens: p.screens}, nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// scripts embedded in the binary.
func MustParse(source string) *Script {
	s, err := Parse(source)
	if err != nil {
		panic(err)
	}
	return s
}

func (p *parser) commit() {
	p.screens = append(p.screens, p.screen)
	p.screen = Screen{}
}

// tryNewScreen commits the screen in progress once it has text or options.
func (p *parser) tryNewScreen() {
	if !p.screen.empty() {
		p.commit()
	}
}

// tryNewLabeledScreen also commits a bare labeled screen, so two consecutive
// labels never collapse into one.
func (p *parser) tryNewLabeledScreen() {
	if !p.screen.empty() || p.screen.Label != "" {
		p.commit()
	}
}

func (p *parser) parseLabel(line string) bool {
	if !labelPattern.MatchString(line) {
		return false
	}

	p.tryNewLabeledScreen()
	p.screen.Label = strings.TrimSuffix(line, ":")

	return true
}

func (p *parser) parseCharacter(line string) bool {
	name, text, ok := strings.Cut(line, ">")
	if !ok {
		return false
	}

	p.tryNewScreen()

	p.screen.Character.Name = strings.TrimSpace(name)
	if text = strings.TrimSpace(text); text != "" {
		p.screen.Lines = append(p.screen.Lines, text)
	}

	return true
}

func (p *parser) parseOption(line string) bool {
	if !optionPattern.MatchString(line) {
		return false
	}

	colon := strings.IndexByte(line, ':')
	opt := Option{Label: line[1 : colon-1]}
	if text := strings.TrimSpace(line[colon+1:]); text != "" {
		opt.Text = " " + text
	}

	p.screen.Options = append(p.screen.Options, opt)

	return true
}

func (p *parser) parseEnd(line string) bool {
	if !strings.HasPrefix(line, "end.") {
		return false
	}

	p.tryNewLabeledScreen()
	p.screen.Label = EndLabel
	p.commit()
	p.commit()

	return true
}

func (p *parser) parseText(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}

	// Text continues the paragraph in progress; only options close it.
	if len(p.screen.Options) > 0 {
		p.commit()
	}

	if n := len(p.screen.Lines); n == 0 {
		p.screen.Lines = append(p.screen.Lines, line)
	} else {
		p.screen.Lines[n-1] += " " + line
	}

	return true
}
