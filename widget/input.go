package widget

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/dialogbox/dialog"
	"github.com/milk9111/dialogbox/prefabs"
)

// KeyMap binds keys to dialog inputs. Show and skip fire on key release,
// cursor moves on key press.
type KeyMap struct {
	Show []ebiten.Key
	Skip []ebiten.Key
	Up   []ebiten.Key
	Down []ebiten.Key
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Show: []ebiten.Key{ebiten.KeyD},
		Skip: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
		Up:   []ebiten.Key{ebiten.KeyArrowUp},
		Down: []ebiten.Key{ebiten.KeyArrowDown},
	}
}

// KeyMapFromSpec resolves key names such as "Enter" or "ArrowUp". Empty
// lists keep the default binding.
func KeyMapFromSpec(spec prefabs.KeysSpec) (KeyMap, error) {
	km := DefaultKeyMap()
	for _, b := range []struct {
		names []string
		dst   *[]ebiten.Key
	}{
		{spec.Show, &km.Show},
		{spec.Skip, &km.Skip},
		{spec.Up, &km.Up},
		{spec.Down, &km.Down},
	} {
		if len(b.names) == 0 {
			continue
		}
		keys, err := parseKeys(b.names)
		if err != nil {
			return km, err
		}
		*b.dst = keys
	}
	return km, nil
}

func parseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("widget: key %q: %w", name, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Poll reads this frame's key state.
func (km KeyMap) Poll() dialog.Input {
	in := dialog.Input{
		Show: anyKey(km.Show, inpututil.IsKeyJustReleased),
		Skip: anyKey(km.Skip, inpututil.IsKeyJustReleased),
		Up:   anyKey(km.Up, inpututil.IsKeyJustPressed),
		Down: anyKey(km.Down, inpututil.IsKeyJustPressed),
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		in.Skip = in.Skip || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonRightBottom)
		in.Up = in.Up || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftTop)
		in.Down = in.Down || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftBottom)
	}

	return in
}

func anyKey(keys []ebiten.Key, fn func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if fn(k) {
			return true
		}
	}
	return false
}
