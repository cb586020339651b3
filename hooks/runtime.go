// Package hooks runs tengo scripts on dialog lifecycle events.
//
// A hook script defines a `hooks` map keyed by event name ("shown",
// "labelReached", "hidden"). Each entry is called with a dialog handle exposing
//
//	d.event, d.label, d.visible
//	d.log(msg)
//	d.get(key, default), d.set(key, value)   // state kept between events
//	d.show(label), d.hide()                  // applied once the hook returns
package hooks

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/dialogbox/dialog"
	"github.com/milk9111/dialogbox/prefabs"
)

const dispatchScript = `
__hook := hooks[__event]
if is_callable(__hook) {
	__hook(__dialog)
}
`

// Runtime is a compiled hook script. It implements dialog.Listener.
type Runtime struct {
	name     string
	compiled *tengo.Compiled
	state    map[string]tengo.Object
	logger   *log.Logger

	pendingShow string
	pendingHide bool
}

var _ dialog.Listener = (*Runtime)(nil)

// Load compiles the hook script stored under prefabs/scripts.
func Load(name string, logger *log.Logger) (*Runtime, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("hooks: load %s: %w", name, err)
	}
	return Compile(name, src, logger)
}

// Compile builds a runtime from source.
func Compile(name string, src []byte, logger *log.Logger) (*Runtime, error) {
	compiled, err := compile(name, src)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = log.Default()
	}

	return &Runtime{
		name:     name,
		compiled: compiled,
		state:    map[string]tengo.Object{},
		logger:   logger.WithPrefix("hooks"),
	}, nil
}

func compile(name string, src []byte) (*tengo.Compiled, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + dispatchScript))
	if err := script.Add("__event", ""); err != nil {
		return nil, fmt.Errorf("hooks: compile %s: %w", name, err)
	}
	if err := script.Add("__dialog", map[string]any{}); err != nil {
		return nil, fmt.Errorf("hooks: compile %s: %w", name, err)
	}

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("hooks: compile %s: %w", name, err)
	}
	return compiled, nil
}

// Name is the script the runtime was last loaded from. Empty when disabled.
func (rt *Runtime) Name() string {
	return rt.name
}

// Reload recompiles the runtime from the named script, keeping the state set
// by earlier runs. An empty name disables the runtime. On error the previous
// script stays active.
func (rt *Runtime) Reload(name string) error {
	if name == "" {
		rt.name, rt.compiled = "", nil
		return nil
	}

	src, err := prefabs.LoadScript(name)
	if err != nil {
		return fmt.Errorf("hooks: load %s: %w", name, err)
	}
	compiled, err := compile(name, src)
	if err != nil {
		return err
	}

	rt.name, rt.compiled = name, compiled
	rt.logger.Info("hooks reloaded", "script", name)
	return nil
}

// OnDialogEvent runs the hook for ev. Script errors are logged and never
// affect navigation.
func (rt *Runtime) OnDialogEvent(d *dialog.Dialog, ev dialog.Event) {
	if rt.compiled == nil {
		return
	}
	rt.pendingShow, rt.pendingHide = "", false

	if err := rt.run(d, ev); err != nil {
		rt.logger.Error("hook failed", "script", rt.name, "event", ev, "err", err)
		return
	}

	show, hide := rt.pendingShow, rt.pendingHide
	rt.pendingShow, rt.pendingHide = "", false

	switch {
	case hide:
		if d.Visible() {
			d.Hide()
		}
	case show != "":
		d.ShowLabel(show)
	}
}

// State returns a state value set by the script.
func (rt *Runtime) State(key string) (any, bool) {
	v, ok := rt.state[key]
	if !ok {
		return nil, false
	}
	return tengo.ToInterface(v), true
}

func (rt *Runtime) run(d *dialog.Dialog, ev dialog.Event) error {
	if err := rt.compiled.Set("__event", ev.String()); err != nil {
		return err
	}
	if err := rt.compiled.Set("__dialog", rt.handle(d, ev)); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func (rt *Runtime) handle(d *dialog.Dialog, ev dialog.Event) *tengo.ImmutableMap {
	values := map[string]tengo.Object{
		"event":   &tengo.String{Value: ev.String()},
		"label":   &tengo.String{Value: d.EventLabel()},
		"visible": tengo.FalseValue,
	}
	if d.Visible() {
		values["visible"] = tengo.TrueValue
	}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		rt.logger.Info(strings.Join(parts, " "), "script", rt.name)
		return tengo.UndefinedValue, nil
	}}

	values["get"] = &tengo.UserFunction{Name: "get", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.UndefinedValue, nil
		}
		if v, ok := rt.state[objectAsString(args[0])]; ok {
			return v, nil
		}
		if len(args) > 1 {
			return args[1], nil
		}
		return tengo.UndefinedValue, nil
	}}

	values["set"] = &tengo.UserFunction{Name: "set", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return tengo.FalseValue, nil
		}
		key := objectAsString(args[0])
		if key == "" {
			return tengo.FalseValue, nil
		}
		rt.state[key] = args[1]
		return tengo.TrueValue, nil
	}}

	values["show"] = &tengo.UserFunction{Name: "show", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		label := strings.TrimSpace(objectAsString(args[0]))
		if label == "" {
			return tengo.FalseValue, nil
		}
		rt.pendingShow = label
		return tengo.TrueValue, nil
	}}

	values["hide"] = &tengo.UserFunction{Name: "hide", Value: func(args ...tengo.Object) (tengo.Object, error) {
		rt.pendingHide = true
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(o tengo.Object) string {
	if s, ok := tengo.ToString(o); ok {
		return s
	}
	return ""
}
