package dialog

import "fmt"

// Issue is a structural problem in a script that parses fine but navigates
// badly.
type Issue struct {
	Screen  int
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("screen %d: %s", i.Screen, i.Message)
}

// Validate reports dead-end options, unusable option labels, duplicate
// labels and a missing end screen. A dead-end option leaves the dialog stuck
// on its screen when chosen.
func Validate(s *Script) []Issue {
	var issues []Issue
	if s.Len() == 0 {
		return []Issue{{Screen: -1, Message: "script has no screens"}}
	}

	first := make(map[string]int, len(s.Screens))
	hasEnd := false
	for i, screen := range s.Screens {
		if screen.Label == "" {
			continue
		}
		if screen.Label == EndLabel {
			hasEnd = true
			continue
		}
		if j, ok := first[screen.Label]; ok {
			issues = append(issues, Issue{Screen: i, Message: fmt.Sprintf("label %q already used by screen %d", screen.Label, j)})
			continue
		}
		first[screen.Label] = i
	}

	for i, screen := range s.Screens {
		for _, opt := range screen.Options {
			switch {
			case opt.Label == "":
				issues = append(issues, Issue{Screen: i, Message: "option has an empty label"})
			case opt.Label == EndLabel:
			case s.Find(opt.Label) == -1:
				issues = append(issues, Issue{Screen: i, Message: fmt.Sprintf("option %q points at unknown label %q", opt.Text, opt.Label)})
			}
		}
	}

	if !hasEnd {
		issues = append(issues, Issue{Screen: s.Len() - 1, Message: "script has no end. screen; the last screen never closes"})
	}

	return issues
}
