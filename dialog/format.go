package dialog

import "strings"

// Format writes s back as script text. Each screen with text or a speaker
// is written as a character line, so anonymous screens stay separate when
// the output is parsed again.
func Format(s *Script) string {
	var b strings.Builder

	for i := 0; i < s.Len(); i++ {
		screen := s.Screen(i)

		if screen.Label == EndLabel {
			b.WriteString("end.\n")
			// Skip the empty screen that end. emits after itself.
			if next := s.Screen(i + 1); next != nil && next.Label == "" && next.Character.Name == "" && next.empty() {
				i++
			}
			continue
		}

		if screen.Label != "" {
			b.WriteString(screen.Label + ":\n")
		}

		if screen.Character.Name != "" || len(screen.Lines) > 0 {
			b.WriteString(screen.Character.Name + ">")
			for j, line := range screen.Lines {
				if j == 0 {
					b.WriteString(" " + line + "\n")
					continue
				}
				b.WriteString(line + "\n")
			}
			if len(screen.Lines) == 0 {
				b.WriteString("\n")
			}
		}

		for _, opt := range screen.Options {
			b.WriteString("[" + opt.Label + "]:" + opt.Text + "\n")
		}
	}

	return b.String()
}
