// Package audio defines the sound effects of the game and sinks that play
// or account for them.
package audio

import (
	"context"
	"sync"

	"github.com/opd-ai/woosh/pkg/logging"
)

// Clip names a sound effect
type Clip string

const (
	// Fire plays when a projectile is spawned
	Fire Clip = "fire"
	// Hit plays when a projectile strikes a ship
	Hit Clip = "hit"
)

// Clips lists every clip the game plays
var Clips = []Clip{Fire, Hit}

// Sink plays clips. Play is fire-and-forget and must not block the frame.
type Sink interface {
	Play(clip Clip)
}

// Silent is a Sink that only logs each play at debug level
type Silent struct {
	logger *logging.Logger
}

// NewSilent creates a Silent sink
func NewSilent(logger *logging.Logger) *Silent {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Silent{logger: logger}
}

// Play implements Sink
func (s *Silent) Play(clip Clip) {
	s.logger.Debug(context.Background(), "clip played", "clip", string(clip))
}

// Recorder is a Sink that counts plays per clip
type Recorder struct {
	mu     sync.Mutex
	counts map[Clip]int
	order  []Clip
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{counts: make(map[Clip]int)}
}

// Play implements Sink
func (r *Recorder) Play(clip Clip) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[clip]++
	r.order = append(r.order, clip)
}

// Count returns how many times clip was played
func (r *Recorder) Count(clip Clip) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[clip]
}

// Played returns every clip in play order
func (r *Recorder) Played() []Clip {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Clip(nil), r.order...)
}

// Reset forgets all recorded plays
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts = make(map[Clip]int)
	r.order = nil
}
