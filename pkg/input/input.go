// Package input defines the keys, events and held-key state the game loop
// reads each frame, independent of the window backend producing them.
package input

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key the game reacts to
type Key int

// Keys known to the game. The left ship uses WASD and left Ctrl; the right
// ship uses the arrow keys and right Ctrl.
const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyLeftCtrl
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyRightCtrl
	KeyEscape
)

var keyNames = map[Key]string{
	KeyUnknown:   "Unknown",
	KeyW:         "W",
	KeyA:         "A",
	KeyS:         "S",
	KeyD:         "D",
	KeyLeftCtrl:  "LeftCtrl",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyRightCtrl: "RightCtrl",
	KeyEscape:    "Escape",
}

// AllKeys lists every known key except KeyUnknown
var AllKeys = []Key{
	KeyW, KeyA, KeyS, KeyD, KeyLeftCtrl,
	KeyUp, KeyDown, KeyLeft, KeyRight, KeyRightCtrl,
	KeyEscape,
}

// String returns the key name
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// ParseKey looks a key up by name, ignoring case
func ParseKey(name string) (Key, error) {
	for key, keyName := range keyNames {
		if key != KeyUnknown && strings.EqualFold(keyName, name) {
			return key, nil
		}
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}

// MarshalText implements encoding.TextMarshaler
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Key) UnmarshalText(text []byte) error {
	key, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = key
	return nil
}

// EventKind distinguishes discrete input events
type EventKind int

const (
	// Quit asks for the whole program to end
	Quit EventKind = iota
	// KeyPressed reports a key transitioning to pressed
	KeyPressed
)

// Event is a discrete input event collected once per frame
type Event struct {
	Kind EventKind
	Key  Key
}

// QuitEvent returns a Quit event
func QuitEvent() Event {
	return Event{Kind: Quit}
}

// KeyPressedEvent returns a KeyPressed event for key
func KeyPressedEvent(key Key) Event {
	return Event{Kind: KeyPressed, Key: key}
}

// KeySet is the level state of the keyboard: keys currently held down
type KeySet map[Key]bool

// NewKeySet returns a KeySet holding keys
func NewKeySet(keys ...Key) KeySet {
	set := make(KeySet, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

// Pressed reports whether key is held. A nil KeySet holds nothing.
func (s KeySet) Pressed(key Key) bool {
	return s[key]
}

// Source produces input for the game loop. PollEvents is called once per
// frame before Held.
type Source interface {
	PollEvents() []Event
	Held() KeySet
}
