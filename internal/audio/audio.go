// Package audio turns the speech API's raw PCM into something playable.
package audio

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	SampleRate = 24000
	Channels   = 1
)

var ErrOddLength = errors.New("pcm data has an odd number of bytes")

// Clip is decoded mono audio with samples in [-1, 1).
type Clip struct {
	SampleRate int
	Channels   int
	Samples    []float32
}

// Decode reads base64 little-endian signed 16-bit PCM, 24 kHz mono.
func Decode(b64 string) (Clip, error) {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return Clip{}, fmt.Errorf("decode audio: %w", err)
	}
	if len(raw)%2 != 0 {
		return Clip{}, ErrOddLength
	}

	samples := make([]float32, len(raw)/2)
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(raw[2*i:]))
		samples[i] = float32(v) / 32768
	}
	return Clip{SampleRate: SampleRate, Channels: Channels, Samples: samples}, nil
}

func (c Clip) Duration() time.Duration {
	if c.SampleRate == 0 || c.Channels == 0 {
		return 0
	}
	frames := len(c.Samples) / c.Channels
	return time.Duration(frames) * time.Second / time.Duration(c.SampleRate)
}

// WAV encodes the clip as a 16-bit PCM RIFF/WAVE file.
func (c Clip) WAV() []byte {
	const bitsPerSample = 16
	dataLen := len(c.Samples) * 2
	blockAlign := c.Channels * bitsPerSample / 8

	var buf bytes.Buffer
	buf.Grow(44 + dataLen)
	buf.WriteString("RIFF")
	writeLE(&buf, uint32(36+dataLen))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	writeLE(&buf, uint32(16))
	writeLE(&buf, uint16(1)) // PCM
	writeLE(&buf, uint16(c.Channels))
	writeLE(&buf, uint32(c.SampleRate))
	writeLE(&buf, uint32(c.SampleRate*blockAlign))
	writeLE(&buf, uint16(blockAlign))
	writeLE(&buf, uint16(bitsPerSample))

	buf.WriteString("data")
	writeLE(&buf, uint32(dataLen))
	for _, s := range c.Samples {
		writeLE(&buf, toInt16(s))
	}
	return buf.Bytes()
}

func toInt16(s float32) int16 {
	v := math.Round(float64(s) * 32768)
	return int16(max(math.MinInt16, min(math.MaxInt16, v)))
}

func writeLE(buf *bytes.Buffer, v any) {
	// bytes.Buffer writes never fail
	_ = binary.Write(buf, binary.LittleEndian, v)
}
