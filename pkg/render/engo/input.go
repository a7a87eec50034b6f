// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/woosh/pkg/input"
)

// binding ties a game key to the engo button registered for it
type binding struct {
	key    input.Key
	button string
	code   engo.Key
}

var bindings = []binding{
	{input.KeyW, "left-up", engo.KeyW},
	{input.KeyA, "left-left", engo.KeyA},
	{input.KeyS, "left-down", engo.KeyS},
	{input.KeyD, "left-right", engo.KeyD},
	{input.KeyLeftCtrl, "left-fire", engo.KeyLeftControl},
	{input.KeyUp, "right-up", engo.KeyArrowUp},
	{input.KeyLeft, "right-left", engo.KeyArrowLeft},
	{input.KeyDown, "right-down", engo.KeyArrowDown},
	{input.KeyRight, "right-right", engo.KeyArrowRight},
	{input.KeyRightCtrl, "right-fire", engo.KeyRightControl},
	{input.KeyEscape, "quit", engo.KeyEscape},
}

// SetupInputBindings registers one engo button per game key
func SetupInputBindings() {
	for _, b := range bindings {
		engo.Input.RegisterButton(b.button, b.code)
	}
}

// KeyboardSource implements input.Source from engo's button state. It must
// be polled from inside an engo system update.
type KeyboardSource struct{}

// NewKeyboardSource registers the key bindings and returns a source
func NewKeyboardSource() *KeyboardSource {
	SetupInputBindings()
	return &KeyboardSource{}
}

// PollEvents reports keys pressed since the previous frame. Escape is
// reported as Quit.
func (s *KeyboardSource) PollEvents() []input.Event {
	var events []input.Event
	for _, b := range bindings {
		if !engo.Input.Button(b.button).JustPressed() {
			continue
		}
		if b.key == input.KeyEscape {
			events = append(events, input.QuitEvent())
			continue
		}
		events = append(events, input.KeyPressedEvent(b.key))
	}
	return events
}

// Held returns the keys currently down
func (s *KeyboardSource) Held() input.KeySet {
	held := make(input.KeySet)
	for _, b := range bindings {
		if engo.Input.Button(b.button).Down() {
			held[b.key] = true
		}
	}
	return held
}
