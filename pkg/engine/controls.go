package engine

import (
	"github.com/opd-ai/woosh/pkg/entity"
	"github.com/opd-ai/woosh/pkg/input"
)

// Controls are the keys steering one ship
type Controls struct {
	Up    input.Key
	Down  input.Key
	Left  input.Key
	Right input.Key
	Fire  input.Key
}

// Keys returns every key of the scheme
func (c Controls) Keys() []input.Key {
	return []input.Key{c.Up, c.Down, c.Left, c.Right, c.Fire}
}

var controlScheme = [2]Controls{
	entity.Left: {
		Up:    input.KeyW,
		Down:  input.KeyS,
		Left:  input.KeyA,
		Right: input.KeyD,
		Fire:  input.KeyLeftCtrl,
	},
	entity.Right: {
		Up:    input.KeyUp,
		Down:  input.KeyDown,
		Left:  input.KeyLeft,
		Right: input.KeyRight,
		Fire:  input.KeyRightCtrl,
	},
}

// ControlsFor returns the fixed key scheme of side
func ControlsFor(side entity.Side) Controls {
	return controlScheme[side]
}
