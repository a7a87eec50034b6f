// pkg/render/engo/audio.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/woosh/pkg/audio"
	"github.com/opd-ai/woosh/pkg/logging"
)

// soundEntity carries one loaded clip for the audio system
type soundEntity struct {
	ecs.BasicEntity
	common.AudioComponent
}

// AudioSink implements audio.Sink with engo audio players. Clips that
// failed to load are silent.
type AudioSink struct {
	players map[audio.Clip]*common.Player
	logger  *logging.Logger
}

// NewAudioSink creates players for the clips at the given asset URLs and
// adds them to system. A clip that cannot be loaded is logged and skipped.
func NewAudioSink(system *common.AudioSystem, urls map[audio.Clip]string, volume float64, logger *logging.Logger) *AudioSink {
	sink := &AudioSink{
		players: make(map[audio.Clip]*common.Player),
		logger:  logger,
	}

	for _, clip := range audio.Clips {
		url, ok := urls[clip]
		if !ok {
			continue
		}
		player, err := common.LoadedPlayer(url)
		if err != nil {
			logger.Warn(context.Background(), "audio clip unavailable", "clip", string(clip), "url", url, "error", err)
			continue
		}
		player.SetVolume(volume)

		e := &soundEntity{BasicEntity: ecs.NewBasic(), AudioComponent: common.AudioComponent{Player: player}}
		system.Add(&e.BasicEntity, &e.AudioComponent)
		sink.players[clip] = player
	}
	return sink
}

// Play restarts clip from the beginning
func (s *AudioSink) Play(clip audio.Clip) {
	player, ok := s.players[clip]
	if !ok {
		return
	}
	if err := player.Rewind(); err != nil {
		s.logger.Debug(context.Background(), "failed to rewind clip", "clip", string(clip), "error", err)
	}
	player.Play()
}

// Loaded reports whether clip has a player
func (s *AudioSink) Loaded(clip audio.Clip) bool {
	_, ok := s.players[clip]
	return ok
}
