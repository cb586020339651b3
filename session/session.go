// Package session ties a dialog prefab to a running dialog: the parsed
// script, the state machine and the hook runtime. Hosts keep one Session and
// feed it the files the prefab watcher reports.
package session

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/milk9111/dialogbox/dialog"
	"github.com/milk9111/dialogbox/hooks"
	"github.com/milk9111/dialogbox/prefabs"
)

type Session struct {
	Name   string
	Spec   prefabs.DialogSpec
	Dialog *dialog.Dialog
	Hooks  *hooks.Runtime

	logger *log.Logger
}

// Change reports which parts of a session a reload replaced. Hosts rebuild
// their presentation (style, keys, portraits) when Spec is set.
type Change struct {
	Spec   bool
	Script bool
	Hooks  bool
}

func (c Change) Any() bool {
	return c.Spec || c.Script || c.Hooks
}

// Open loads the prefab, builds its dialog and attaches its hooks. A hook
// script that fails to load is logged and left out.
func Open(name string, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.Default()
	}

	spec, script, err := prefabs.LoadDialog(name)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Name:   name,
		Spec:   spec,
		Dialog: dialog.New(script, spec.Config(logger)),
		logger: logger,
	}
	s.report(spec.Script, script)

	if spec.Hooks != "" {
		if err := s.attachHooks(spec.Hooks); err != nil {
			logger.Warn("hooks disabled", "hooks", spec.Hooks, "err", err)
		}
	}

	return s, nil
}

// Reload applies edits to the given files. Files that belong to neither the
// prefab, its script nor its hooks are ignored. On error nothing is replaced.
func (s *Session) Reload(files []string) (Change, error) {
	ch := s.classify(files)
	if !ch.Any() {
		return ch, nil
	}

	spec := s.Spec
	if ch.Spec {
		next, err := prefabs.LoadDialogSpec(s.Name)
		if err != nil {
			return Change{}, err
		}
		ch.Script = ch.Script || next.Script != spec.Script
		ch.Hooks = ch.Hooks || next.Hooks != spec.Hooks
		spec = next
	}

	var script *dialog.Script
	if ch.Script {
		var err error
		if script, err = spec.LoadScript(); err != nil {
			return Change{}, err
		}
	}

	if ch.Hooks {
		if err := s.reloadHooks(spec.Hooks); err != nil {
			return Change{}, err
		}
	}

	s.Spec = spec
	if ch.Spec {
		s.Dialog.SetConfig(spec.Config(s.logger))
	}
	if script != nil {
		s.report(spec.Script, script)
		s.Dialog.Load(script)
	}

	s.logger.Info("reloaded", "dialog", s.Name, "spec", ch.Spec, "script", ch.Script, "hooks", ch.Hooks)
	return ch, nil
}

func (s *Session) classify(files []string) Change {
	var ch Change
	for _, f := range files {
		base := filepath.Base(f)
		switch {
		case base == filepath.Base(s.Name):
			ch.Spec = true
		case base == filepath.Base(s.Spec.Script):
			ch.Script = true
		case s.Spec.Hooks != "" && base == filepath.Base(s.Spec.Hooks):
			ch.Hooks = true
		}
	}
	return ch
}

func (s *Session) attachHooks(name string) error {
	rt, err := hooks.Load(name, s.logger)
	if err != nil {
		return err
	}
	s.Hooks = rt
	s.Dialog.AddListener(rt)
	return nil
}

func (s *Session) reloadHooks(name string) error {
	if s.Hooks == nil {
		if name == "" {
			return nil
		}
		return s.attachHooks(name)
	}
	return s.Hooks.Reload(name)
}

func (s *Session) report(name string, script *dialog.Script) {
	for _, issue := range dialog.Validate(script) {
		s.logger.Warn("script issue", "script", name, "issue", issue.String())
	}
}
