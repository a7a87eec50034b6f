package input

import (
	"encoding/json"
	"fmt"
	"os"
)

// ScriptFrame describes the input of one or more consecutive frames
type ScriptFrame struct {
	Held    []Key `json:"held,omitempty"`
	Pressed []Key `json:"pressed,omitempty"`
	Quit    bool  `json:"quit,omitempty"`
	// Repeat holds Held for this many frames; Pressed and Quit fire on the
	// first of them only. Zero means one frame.
	Repeat int `json:"repeat,omitempty"`
}

// Script replays a fixed sequence of frames. Once the sequence is
// exhausted every poll returns a Quit event.
type Script struct {
	frames    []ScriptFrame
	index     int
	remaining int
	held      KeySet
}

// NewScript creates a Script over frames
func NewScript(frames ...ScriptFrame) *Script {
	return &Script{frames: frames, index: -1}
}

// LoadScript reads a JSON script of the form {"frames": [...]}
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	var doc struct {
		Frames []ScriptFrame `json:"frames"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}

	return NewScript(doc.Frames...), nil
}

// PollEvents advances to the next frame and returns its events
func (s *Script) PollEvents() []Event {
	if s.remaining > 0 {
		s.remaining--
		return nil
	}

	s.index++
	if s.index >= len(s.frames) {
		s.held = nil
		return []Event{QuitEvent()}
	}

	frame := s.frames[s.index]
	s.held = NewKeySet(frame.Held...)
	if frame.Repeat > 1 {
		s.remaining = frame.Repeat - 1
	}

	events := make([]Event, 0, len(frame.Pressed)+1)
	for _, key := range frame.Pressed {
		events = append(events, KeyPressedEvent(key))
	}
	if frame.Quit {
		events = append(events, QuitEvent())
	}
	return events
}

// Held returns the keys held during the current frame
func (s *Script) Held() KeySet {
	return s.held
}

// Done reports whether every scripted frame has been played. The next
// poll after Done returns Quit.
func (s *Script) Done() bool {
	return s.index >= len(s.frames)-1 && s.remaining == 0
}
