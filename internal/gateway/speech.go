package gateway

import "context"

// Speech reads script aloud with the configured voice and returns base64
// encoded 16-bit PCM, 24 kHz mono.
func (c *Client) Speech(ctx context.Context, script string) (string, error) {
	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: script}}}},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &speechConfig{
				VoiceConfig: voiceConfig{
					PrebuiltVoiceConfig: prebuiltVoiceConfig{VoiceName: c.opts.Voice},
				},
			},
		},
	}

	resp, err := c.generate(ctx, c.opts.TTSModel, req)
	if err != nil {
		return "", err
	}
	data := resp.audio()
	if data == "" {
		return "", ErrNoAudio
	}
	return data, nil
}
