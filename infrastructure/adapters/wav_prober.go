package adapters

import (
	"bytes"
	"fmt"

	"github.com/go-audio/wav"

	"github.com/pras0411/mslearn-intro-translator-text-to-speech/application/ports/outbound"
)

type wavProber struct{}

// NewWavProber measures spoken duration from the RIFF/WAV header of the
// synthesized audio.
func NewWavProber() outbound.AudioDurationPort {
	return &wavProber{}
}

func (p *wavProber) Probe(audio []byte) (float64, error) {
	decoder := wav.NewDecoder(bytes.NewReader(audio))
	if !decoder.IsValidFile() {
		return 0, fmt.Errorf("audio payload is not a valid wav file")
	}

	duration, err := decoder.Duration()
	if err != nil {
		return 0, fmt.Errorf("failed to read wav duration: %w", err)
	}
	return duration.Seconds(), nil
}
