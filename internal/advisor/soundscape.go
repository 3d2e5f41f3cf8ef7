package advisor

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/audio"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/gateway"
)

// Soundscape is the outcome of a soundscape request. Exactly one of Clip
// and Message is set.
type Soundscape struct {
	Script  string
	Clip    *audio.Clip
	Message string
}

// Soundscape writes a calming script for feeling and voices it. A refusal
// from the model is passed through as the message.
func (a *Advisor) Soundscape(ctx context.Context, feeling string) Soundscape {
	script, err := a.gen.SoundscapeScript(ctx, feeling)
	if err != nil {
		slog.Warn("AI request failed, using fallback", "op", "soundscape_script", "error", err)
		return Soundscape{Message: a.fallbacks.Soundscape}
	}
	if strings.Contains(script, gateway.RefusalMarker) {
		return Soundscape{Message: script}
	}

	data, err := a.gen.Speech(ctx, script)
	switch {
	case err == nil:
	case errors.Is(err, gateway.ErrNoAudio):
		slog.Warn("speech returned no audio", "op", "soundscape_speech")
		return Soundscape{Script: script, Message: a.fallbacks.Audio}
	default:
		slog.Warn("AI request failed, using fallback", "op", "soundscape_speech", "error", err)
		return Soundscape{Script: script, Message: a.fallbacks.Soundscape}
	}

	clip, err := audio.Decode(data)
	if err != nil {
		slog.Warn("undecodable speech audio", "op", "soundscape_decode", "error", err)
		return Soundscape{Script: script, Message: a.fallbacks.Soundscape}
	}
	return Soundscape{Script: script, Clip: &clip}
}
